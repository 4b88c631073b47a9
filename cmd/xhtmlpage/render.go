package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	xhtmlpage "github.com/alnah/go-xhtmlpage"
	"github.com/alnah/go-xhtmlpage/internal/config"
	"github.com/alnah/go-xhtmlpage/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Sentinel errors for rendering.
var (
	ErrUsage     = errors.New("invalid usage")
	ErrNoInput   = errors.New("no page files specified")
	ErrReadBody  = errors.New("failed to read markdown body")
	ErrWritePage = errors.New("failed to write page")
)

// renderOptions are shared by every page of a batch.
type renderOptions struct {
	outDir      string
	embedStyles bool
	loader      xhtmlpage.StyleLoader
	logger      *zap.Logger
}

// renderResult is the outcome of one page file.
type renderResult struct {
	Input    string
	Output   string
	Href     string
	ID       string
	Warnings []error
	Err      error
	Duration time.Duration
}

// renderBatch renders files with at most workers pages in flight. Results
// keep the order of files. A failing page does not stop the others;
// cancellation of ctx marks pages not yet started as failed.
func renderBatch(ctx context.Context, files []string, workers int, opts renderOptions) []renderResult {
	results := make([]renderResult, len(files))

	var g errgroup.Group
	g.SetLimit(resolveWorkers(workers))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = renderResult{Input: file, Err: err}
				return nil
			}
			results[i] = renderFile(file, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// renderFile loads one page file and writes its XHTML page.
func renderFile(file string, opts renderOptions) (result renderResult) {
	start := time.Now()
	result = renderResult{Input: file}
	defer func() { result.Duration = time.Since(start) }()

	page, err := config.Load(file)
	if err != nil {
		result.Err = err
		return result
	}

	doc, err := buildDocument(page, opts.embedStyles, opts.loader, opts.logger.With(zap.String("page", file)))
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", file, err)
		return result
	}
	result.ID = doc.ID()

	pathInPackage, err := doc.PathInPackage()
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", file, err)
		return result
	}
	if result.Href, err = doc.Href(); err != nil {
		result.Err = fmt.Errorf("%s: %w", file, err)
		return result
	}

	// Render into memory first so a failing page leaves no partial file.
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		result.Err = fmt.Errorf("%s: %w", file, err)
		return result
	}
	result.Warnings = doc.Warnings()

	out, err := fileutil.JoinContained(opts.outDir, pathInPackage)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", file, err)
		return result
	}
	if err := fileutil.WriteAtomic(out, buf.Bytes(), filePermissions, dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}
	result.Output = out
	return result
}

// buildDocument turns a page file into a configured Document.
func buildDocument(p *config.Page, embedStyles bool, loader xhtmlpage.StyleLoader, logger *zap.Logger) (*xhtmlpage.Document, error) {
	compat, err := xhtmlpage.ParseCompatibility(p.Compatibility)
	if err != nil {
		return nil, err
	}
	role, err := xhtmlpage.ParseGuideRole(p.GuideRole)
	if err != nil {
		return nil, err
	}

	meta := make([]xhtmlpage.Meta, 0, len(p.Meta))
	for _, m := range p.Meta {
		meta = append(meta, xhtmlpage.Meta{Name: m.Name, Content: m.Content})
	}
	opts := []xhtmlpage.Option{
		xhtmlpage.WithLogger(logger),
		xhtmlpage.WithHeadBuilder(xhtmlpage.MetaHead{Meta: meta}),
	}
	if p.Location != "" {
		opts = append(opts, xhtmlpage.WithLocation(p.Location))
	}
	if p.Body != "" {
		source, err := os.ReadFile(p.Resolve(p.Body)) // #nosec G304 -- named by the page file
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadBody, err)
		}
		opts = append(opts, xhtmlpage.WithBodyBuilder(xhtmlpage.NewMarkdownBody(source)))
	}

	doc := xhtmlpage.New(compat, opts...)
	doc.SetFileName(p.FileName)
	doc.SetPageTitle(p.Title)
	doc.SetEmbedStyles(p.EmbedStyles || embedStyles)
	doc.SetFlatLayout(p.FlatLayout)
	doc.SetGuideRole(role)
	doc.SetNotPartOfNavigation(p.NotPartOfNavigation)

	id := p.ID
	if id == "" {
		id = "page-" + uuid.NewString()
	}
	doc.SetID(id)

	for _, s := range p.Styles {
		src, err := styleSource(p, s, loader)
		if err != nil {
			return nil, err
		}
		doc.AddStyle(src)
	}
	return doc, nil
}

// styleSource picks the stylesheet implementation for a style entry.
func styleSource(p *config.Page, s config.Style, loader xhtmlpage.StyleLoader) (xhtmlpage.StyleSource, error) {
	switch {
	case s.File != "":
		return xhtmlpage.NewFileStylesheet(p.Resolve(s.File), s.Path), nil
	case s.Asset != "":
		return xhtmlpage.NewAssetStylesheet(loader, s.Asset, s.Path), nil
	default:
		sheet, err := xhtmlpage.ParseStylesheet(s.Path, s.CSS)
		if err != nil {
			return nil, err
		}
		return sheet, nil
	}
}

// resolveWorkers determines the render concurrency.
// Priority: explicit flag > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolveWorkers(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
