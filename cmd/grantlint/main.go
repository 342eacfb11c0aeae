package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/grantlint/grantlint/internal/config"
	"github.com/grantlint/grantlint/internal/document"
	"github.com/grantlint/grantlint/internal/profile"
	"github.com/grantlint/grantlint/internal/report"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the requested level.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetFlags(0)
	} else {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	setupLogging(cfg)

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	code, err := run(cfg, args[0], os.Stdout)
	if err != nil {
		log.Printf("grantlint %s (built %s): %v", version, buildTime, err)
		os.Exit(2)
	}
	os.Exit(code)
}

// run validates one document and renders the report. It returns the
// process exit code: 0 for a clean report, 1 when failing findings
// exist.
func run(cfg *config.Config, path string, out io.Writer) (int, error) {
	prof, err := profile.Resolve(cfg.Profile)
	if err != nil {
		return 0, err
	}

	if cfg.IsDebug() {
		log.Printf("validating %s against profile %q", path, prof.Name)
	}

	doc, err := document.Open(path, cfg.MaxFileSize)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	runner := report.NewRunner(cfg.IncludePasses)
	rep, err := runner.RunProfileNamed(doc, prof, doc.Path())
	if err != nil {
		return 0, err
	}

	switch cfg.Format {
	case config.FormatJSON:
		if err := report.WriteJSON(out, rep); err != nil {
			return 0, err
		}
	default:
		fmt.Fprint(out, report.Summary(rep))
	}

	if rep.HasFailures() {
		return 1, nil
	}
	return 0, nil
}
