// Command xhtmlpage renders EPUB content pages from YAML page files.
//
//	xhtmlpage [flags] page.yaml...
//
// Each page file names a title, a file name and a location inside the
// package, the stylesheets to link or embed, and an optional Markdown body.
// Pages are written to {out}/{location}/{fileName}.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xhtmlpage "github.com/alnah/go-xhtmlpage"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runMain runs the command and returns its exit code.
func runMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, files, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		_, _ = fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}
	if flags.version {
		_, _ = fmt.Fprintf(stdout, "xhtmlpage %s\n", Version)
		return ExitSuccess
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintln(stderr, ErrNoInput)
		return exitCodeFor(ErrNoInput)
	}

	logger := newLogger(stderr, flags)
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	loader, err := xhtmlpage.NewStyleLoader(flags.assets)
	if err != nil {
		logger.Error("loading styles", zap.Error(err))
		return exitCodeFor(err)
	}

	workers := resolveWorkers(flags.workers)
	logger.Debug("rendering", zap.Int("pages", len(files)), zap.Int("workers", workers))

	results := renderBatch(ctx, files, workers, renderOptions{
		outDir:      flags.out,
		embedStyles: flags.embedStyles,
		loader:      loader,
		logger:      logger,
	})
	return report(logger, results)
}

// report logs every result and returns the exit code of the first failure.
func report(logger *zap.Logger, results []renderResult) int {
	code := ExitSuccess
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error("page failed", withHint(r.Err, zap.String("page", r.Input), zap.Error(r.Err))...)
			if code == ExitSuccess {
				code = exitCodeFor(r.Err)
			}
			continue
		}
		// The page logger already reported each warning; only add hints.
		for _, w := range r.Warnings {
			if h := hintFor(w); h != "" {
				logger.Info("stylesheet hint", zap.String("page", r.Input), zap.String("hint", h))
			}
		}
		logger.Info("page written",
			zap.String("page", r.Input),
			zap.String("output", r.Output),
			zap.String("href", r.Href),
			zap.String("id", r.ID),
			zap.Int("warnings", len(r.Warnings)),
			zap.Duration("duration", r.Duration))
	}
	logger.Debug("done", zap.Int("pages", len(results)), zap.Int("failed", failed))
	return code
}

// withHint appends a hint field when one applies to err.
func withHint(err error, fields ...zap.Field) []zap.Field {
	if h := hintFor(err); h != "" {
		fields = append(fields, zap.String("hint", h))
	}
	return fields
}

// newLogger builds a console logger on w. --verbose enables debug output,
// --quiet limits it to errors.
func newLogger(w io.Writer, f *cliFlags) *zap.Logger {
	level := zapcore.InfoLevel
	switch {
	case f.verbose:
		level = zapcore.DebugLevel
	case f.quiet:
		level = zapcore.ErrorLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}
