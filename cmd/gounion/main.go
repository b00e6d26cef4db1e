// gounion generates discriminated union types from //gounion: directives in
// Go source files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gounion/internal/config"
	"gounion/internal/diag"
	"gounion/internal/generator"
	"gounion/internal/model"
	"gounion/internal/parser"
)

var (
	inputDirs    []string
	configFile   string
	templateFile string
	outputDir    string
	toStdout     bool
	types        string
	exclude      string
	extras       string
	jobs         int
	incremental  bool
	check        bool
	verbose      bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gounion [flags] [dir...]",
		Short: "Generate discriminated union types from //gounion: directives",
		Long: `gounion reads the Go packages in the given directories (default ".") and
writes one file per union declared with a //gounion:union directive or in
the config file.`,
		Example: `    # Generate next to the declarations, as run by go:generate
    gounion

    # Generate for two packages with named factory methods everywhere
    gounion --extra from ./models ./api

    # Only some unions, into a separate directory
    gounion -T Shape,Result -o ./gen ./models

    # Print the generated code instead of writing it
    gounion --stdout ./models

    # Fail when generated files are stale
    gounion --check ./models`,
		Version:       generator.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}

	bindFlags(cmd.Flags())
	return cmd
}

func bindFlags(f *pflag.FlagSet) {
	f.SortFlags = false
	f.StringSliceVarP(&inputDirs, "input", "i", nil, "Input package directory (repeatable)")
	f.StringVarP(&configFile, "config", "c", "", "Config file (YAML/JSON/TOML)")
	f.StringVarP(&templateFile, "template", "t", "", "Template file (default: built-in)")
	f.StringVarP(&outputDir, "output", "o", "", "Output directory (default: next to each declaration)")
	f.BoolVar(&toStdout, "stdout", false, "Print generated code instead of writing files")
	f.StringVarP(&types, "types", "T", "", "Only generate these unions (comma-separated)")
	f.StringVarP(&exclude, "exclude", "X", "", "Exclude these unions (comma-separated)")
	f.StringVar(&extras, "extra", "", "Options for every union: "+strings.Join(model.ExtraNames(), ", ")+" (comma-separated)")
	f.IntVarP(&jobs, "jobs", "j", 0, "Unions generated in parallel (default: GOMAXPROCS)")
	f.BoolVar(&incremental, "incremental", false, "Skip files whose fingerprint is unchanged")
	f.BoolVar(&check, "check", false, "Report stale generated files instead of writing them")
	f.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func main() {
	os.Exit(Main())
}

// Main runs the command line and returns the exit code.
func Main() int {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		report(os.Stderr, err)
		return 1
	}
	return 0
}

// report prints every diagnostic in err on its own line.
func report(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, e := range diag.Flatten(err) {
		fmt.Fprintf(w, "%s %v\n", label("error:"), e)
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	log := newLogger(stderr)

	// Load configuration
	cfg := config.New()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply CLI overrides
	if outputDir != "" {
		cfg.Options.OutputDir = outputDir
	}
	if types != "" {
		cfg.Options.IncludeTypes = parseCommaSeparated(types)
	}
	if exclude != "" {
		cfg.Options.ExcludeTypes = parseCommaSeparated(exclude)
	}
	if extras != "" {
		cfg.Options.Extra = append(cfg.Options.Extra, parseCommaSeparated(extras)...)
	}
	if jobs > 0 {
		cfg.Options.Jobs = jobs
	}
	if incremental {
		cfg.Options.Incremental = true
	}
	if _, err := cfg.Extras(); err != nil {
		return err
	}

	dirs := append(append([]string(nil), inputDirs...), args...)
	if len(dirs) == 0 && len(cfg.Unions) == 0 {
		dirs = []string{"."}
	}

	// Parse input packages
	p := parser.New(cfg, log)
	var (
		decls []*model.Declaration
		errs  []error
	)
	for _, dir := range dirs {
		files, err := p.ParseDir(dir)
		if err != nil {
			errs = append(errs, err)
		}
		for _, f := range files {
			decls = append(decls, f.Unions...)
		}
	}
	configured, err := p.ParseConfig()
	if err != nil {
		errs = append(errs, err)
	}
	decls = append(decls, configured...)

	// Create generator and load template
	gen := generator.New(cfg, log)
	if templateFile != "" {
		if err := gen.LoadTemplate(templateFile); err != nil {
			return err
		}
	}

	outputs, err := gen.Generate(ctx, decls)
	if err != nil {
		errs = append(errs, err)
	}

	var stale []string
	for _, out := range outputs {
		switch {
		case toStdout:
			if _, err := stdout.Write(out.Source); err != nil {
				return err
			}
		case check:
			if generator.Changed(out) {
				stale = append(stale, out.Path)
			}
		default:
			written, err := gen.Write(out)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			log.WithFields(logrus.Fields{
				"union":   out.Union,
				"path":    out.Path,
				"written": written,
			}).Debug("output")
		}
	}
	if len(stale) > 0 {
		errs = append(errs, fmt.Errorf("%d generated files are out of date:\n  %s", len(stale), strings.Join(stale, "\n  ")))
	}

	log.WithFields(logrus.Fields{
		"unions": len(decls),
		"files":  len(outputs),
	}).Debug("done")
	return errors.Join(errs...)
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
