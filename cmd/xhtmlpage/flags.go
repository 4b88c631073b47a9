package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	out         string
	workers     int
	embedStyles bool
	assets      string
	verbose     bool
	quiet       bool
	version     bool
}

// addFlags registers all flags on fs.
func addFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVarP(&f.out, "out", "o", ".", "output directory (pages are written under their package path)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.BoolVar(&f.embedStyles, "embed-styles", false, "inline stylesheets into every page")
	fs.StringVar(&f.assets, "assets", "", "directory with custom styles/{name}.css")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

// parseFlags parses args (without the program name) and returns the flags
// and the page files.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("xhtmlpage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: xhtmlpage [flags] page.yaml...")
		_, _ = fmt.Fprintln(stderr, "\nRender EPUB content pages from YAML page files.\n\nFlags:")
		fs.PrintDefaults()
	}

	f := &cliFlags{}
	addFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.workers < 0 {
		return nil, nil, fmt.Errorf("%w: --workers must not be negative", ErrUsage)
	}
	if f.verbose && f.quiet {
		return nil, nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage)
	}
	return f, fs.Args(), nil
}
