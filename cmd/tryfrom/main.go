// Command tryfrom generates the conversions between value.Value and the types
// of a package that carry a //go:tryfrom:derive directive. It is meant to be
// run by go generate:
//
//	//go:generate go run github.com/origadmin/tryfrom/cmd/tryfrom
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	goversion "github.com/caarlos0/go-version"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/origadmin/tryfrom/internal/analyzer"
	"github.com/origadmin/tryfrom/internal/config"
	"github.com/origadmin/tryfrom/internal/diff"
	"github.com/origadmin/tryfrom/internal/generator"
)

var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.MainContext(ctx, MainCommand(ctx))
}

type mainConfig struct {
	*cli.Command
	ctx context.Context

	Output  string `cli:"name=o aliases=output desc='generated file name (default <package>_tryfrom.gen.go)'"`
	Config  string `cli:"name=config desc='config file (default .tryfrom.yaml in the package directory)'"`
	Check   bool   `cli:"name=check desc='report stale generated files with a diff instead of writing them'"`
	Stdout  bool   `cli:"name=stdout desc='print the generated code instead of writing it'"`
	Tags    string `cli:"name=tags desc='comma separated build tags used to load packages'"`
	Debug   bool   `cli:"name=debug desc='enable debug logging'"`
	LogFile string `cli:"name=log-file desc='write logs to this file instead of stderr'"`
	Version bool   `cli:"name=version desc='print version information'"`
}

// MainCommand returns the tryfrom command.
func MainCommand(ctx context.Context) *cli.Command {
	cfg := &mainConfig{ctx: ctx}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, config.Application).
		WithSynopsis("tryfrom [opts] [packages]").
		WithDescription(config.Description + ". Packages default to the one in the current directory.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mainConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		v := buildVersion(version, commit, date, builtBy, treeState)
		fmt.Fprintln(cc.Out, v.String())
		return nil
	}
	if cfg.Check && cfg.Stdout {
		return fmt.Errorf("%w: -check and -stdout cannot be combined", cli.ErrUsage)
	}

	closeLog, err := cfg.setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("Starting tryfrom", "packages", args)
	stale, err := cfg.generate(cc.Out, ".", args)
	if err != nil {
		var verr *analyzer.ValidationError
		if errors.As(err, &verr) {
			for _, problem := range verr.Problems {
				fmt.Fprintln(os.Stderr, problem)
			}
			slog.Error("Analysis failed", "package", verr.Package, "problems", len(verr.Problems))
			return cli.ExitCodeErr(1)
		}
		return err
	}
	if cfg.Check && stale > 0 {
		slog.Error("Generated files are out of date", "count", stale)
		return cli.ExitCodeErr(1)
	}
	slog.Info("tryfrom finished successfully.")
	return nil
}

// generate analyzes the packages matching patterns in dir and processes
// their generated files. It returns how many of them were out of date.
func (cfg *mainConfig) generate(out io.Writer, dir string, patterns []string) (int, error) {
	var tags []string
	if cfg.Tags != "" {
		tags = strings.Split(cfg.Tags, ",")
	}
	baseFor := func(pkgDir string) (*config.Config, error) {
		return config.Find(pkgDir, cfg.Config)
	}

	a := analyzer.NewAnalyzer(tags...)
	a.Output = cfg.Output
	results, err := a.Load(cfg.ctx, dir, baseFor, patterns...)
	if err != nil {
		return 0, err
	}

	r := &runner{
		out:       out,
		generator: generator.NewGenerator(),
		colors:    colorsFor(out),
		check:     cfg.Check,
		stdout:    cfg.Stdout,
	}
	stale := 0
	for _, res := range results {
		changed, err := r.process(res)
		if err != nil {
			return stale, fmt.Errorf("package %s: %w", res.Package.Path, err)
		}
		if changed {
			stale++
		}
	}
	return stale, nil
}

// setupLogging installs the default logger. Logs go to stderr unless a log
// file is given; the level is Warn, or Debug with -debug.
func (cfg *mainConfig) setupLogging() (func(), error) {
	var logWriter io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		logWriter = f
		closeLog = func() { _ = f.Close() }
	}

	logLevel := slog.LevelWarn
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))
	return closeLog, nil
}

// colorsFor colors diffs only when w is a terminal.
func colorsFor(w io.Writer) *diff.Colors {
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return diff.NewColors()
	}
	return diff.NoColors()
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
