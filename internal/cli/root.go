// Package cli wires the tada command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// exitError carries a non-zero exit code out of a cobra RunE.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// app holds state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	theme      string
	logLevel   string
	noColor    bool

	cfg     *config.Config
	logger  *log.Logger
	closers []io.Closer
}

// setup loads config, applies flag overrides, theme and logger.
// logTo is used when no log file is configured.
func (a *app) setup(cmd *cobra.Command, logTo io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetColorMode(cfg.Color)
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}

	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, f)
		logTo = f
	}
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogFile != ""
	a.logger = logging.New(logTo, opts)
	return nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tada",
		Short: "A single-screen todo list",
		Long: `tada keeps a prioritised todo list in memory for the length of a session.

Run without arguments to open the interactive screen, or use "tada run" to
drive the same list from a script.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The screen owns the terminal, so logs only go to a file.
			if err := a.setup(cmd, io.Discard); err != nil {
				return err
			}
			defer a.close()

			store := taskstore.New(taskstore.WithLogger(a.logger))
			a.logger.Info("session started", "ui", "tui", "theme", a.cfg.Theme)
			return tui.Run(store, tui.Options{
				ConfirmDelete: a.cfg.ConfirmDelete,
				Logger:        a.logger,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	pf.StringVar(&a.theme, "theme", config.DefaultTheme, "color theme (classic, neon, mono)")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newRunCmd(a))
	return root
}

func newRunCmd(a *app) *cobra.Command {
	var (
		format string
		flat   bool
	)
	cmd := &cobra.Command{
		Use:   "run [script|-]",
		Short: "Execute a command script against a fresh list",
		Long:  "Reads commands from a file, or stdin when the argument is omitted or \"-\",\nthen prints the resulting list.\n\n" + ScriptHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := a.setup(cmd, cmd.ErrOrStderr()); err != nil {
				return err
			}
			defer a.close()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				in = file
			}

			store := taskstore.New(taskstore.WithLogger(a.logger))
			// Script chatter goes to stderr when stdout carries an export.
			out := cmd.OutOrStdout()
			if f != export.Text {
				out = cmd.ErrOrStderr()
			}
			r := &Runner{Store: store, Out: out, Err: cmd.ErrOrStderr(), Grouped: !flat}
			code := r.RunScript(in)

			if f == export.Text {
				r.Out = cmd.OutOrStdout()
				r.list()
			} else {
				doc := export.Document{Tasks: store.Tasks(), Stats: store.Stats()}
				if err := export.Write(cmd.OutOrStdout(), f, doc); err != nil {
					return err
				}
			}
			a.logger.Debug("script finished", "code", code, "tasks", store.Len())
			if code != codeOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "final output format (text, json, yaml)")
	cmd.Flags().BoolVar(&flat, "flat", false, "list without To Do / Done headers")
	return cmd
}

// Execute runs the root command with os.Args and returns the exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		ui.Fail(os.Stderr, err.Error())
		return codeError
	}
	return codeOK
}
