// Package commands implements the wren command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/convert"
	"github.com/simonhull/firebird-suite/wren/input"
	"github.com/simonhull/firebird-suite/wren/internal/config"
	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/validate"
)

// app holds what every subcommand needs once flags and config are parsed.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	printer *output.Printer
	rules   *validate.Registry
	lines   *input.LineReader
	plain   bool
	verbose bool

	out    io.Writer // results
	errOut io.Writer // prompts, status and logs
}

// newInput creates an Input wired to the app's streams, config and rules.
func (a *app) newInput(command string) *input.Input {
	return input.NewWithOptions(input.Options{
		Lines:  a.lines,
		Writer: a.errOut,
		Logger: a.log.WithFields(logger.F("command", command)),
		Plain:  a.plain,
	}).
		Prompt(a.cfg.Defaults.Prompt).
		WithValidators(a.rules)
}

func (a *app) close() {
	if a.lines != nil {
		_ = a.lines.Close()
	}
}

// closing wraps run so the line reader is released on every exit path.
func (a *app) closing(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return run(cmd, args)
	}
}

// skipConfig marks commands that run without loading wren.yml.
const skipConfig = "wren/skip-config"

// RootCmd creates and returns the root command for the wren CLI
func RootCmd() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *app) {
	var (
		verbose    bool
		plain      bool
		configPath string
		logLevel   string
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Validated line prompts for shell scripts",
		Long: `Wren asks for a single value, checks it against validators, converts it
and prints it to stdout. Prompts and errors go to stderr, so the answer can
be captured directly:

  email=$(wren ask --title "Enter your email" --validate notEmpty --validate email)

Press Ctrl-C to cancel (exit status 0) or Ctrl-D to submit an empty answer.`,
		Version:       wren.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(config.Catalog{
				Validators: validate.Default().List(),
				Converters: convert.Names(),
			}); err != nil {
				return err
			}

			a.cfg = cfg
			a.out = cmd.OutOrStdout()
			a.errOut = cmd.ErrOrStderr()
			a.plain = plain || cfg.Defaults.Plain || !isTerminal(a.errOut)
			a.verbose = verbose

			a.printer = output.NewPrinter(a.errOut, a.plain)
			a.printer.SetVerbose(verbose)
			output.SetDefault(a.printer)

			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.Defaults.LogLevel
			}
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = logger.LevelDebug
			}
			a.log = logger.NewLogger(level, a.errOut)

			a.rules = validate.Default()
			a.lines = input.NewLineReader(cmd.InOrStdin())

			if cfg.File != "" {
				a.log.Debug("loaded config", logger.F("file", cfg.File))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and text styles")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./wren.yml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error, silent")

	cmd.AddCommand(askCmd(a))
	cmd.AddCommand(areaCmd(a))
	cmd.AddCommand(rulesCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd, a
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Wren v%s\n", wren.Version)
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
