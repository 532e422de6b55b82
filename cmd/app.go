package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leonardinius/loxfront/internal/config"
	"github.com/leonardinius/loxfront/internal/interpreter"
	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/parser"
	"github.com/leonardinius/loxfront/internal/scanner"
	"github.com/leonardinius/loxfront/internal/token"
)

// Version is overridden at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

var ErrUsage = errors.New("Usage: loxfront [script]")

// exitStatus is returned by a run whose errors were already reported.
type exitStatus int

func (s exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

type LoxApp struct {
	opts     *appOpts
	reporter loxerrors.ErrReporter
	cfg      *config.Config
	logger   zerolog.Logger

	configPath string
	mode       string
	logLevel   string
	verbose    bool
}

func NewLoxApp(options ...AppOption) *LoxApp {
	opts := newAppOpts(options...)
	return &LoxApp{
		opts:     opts,
		reporter: loxerrors.NewErrReporter(opts.stderr),
		cfg:      config.Default(),
		logger:   zerolog.Nop(),
	}
}

// Main runs the command line and returns the process exit code.
func (app *LoxApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = loxerrors.ExitSoftware
		}
	}()

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root := app.NewRootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return loxerrors.ExitOK
	}

	var status exitStatus
	if errors.As(err, &status) {
		return int(status)
	}

	app.reporter.ReportError(err)
	return loxerrors.ExitUsage
}

// NewRootCommand builds the loxfront command tree bound to app.
func (app *LoxApp) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "loxfront [script]",
		Short: "Lox expression scanner, parser and printer",
		Long: `loxfront scans and parses Lox expressions.

Without a script it starts an interactive prompt. Each expression is printed
according to --mode:

  tokens  the scanned token stream
  ast     parenthesized prefix form, e.g. (* (- 123) (group 45.67))
  rpn     reverse polish notation, e.g. 123 ~ 45.67 *
  eval    the evaluated value`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return ErrUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE:       app.configure,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				return app.runFile(args[0])
			}
			return app.runPrompt()
		},
	}
	root.SetIn(app.opts.stdin)
	root.SetOut(app.opts.stdout)
	root.SetErr(app.opts.stderr)

	modes := make([]string, 0, len(config.Modes()))
	for _, mode := range config.Modes() {
		modes = append(modes, string(mode))
	}

	flags := root.Flags()
	flags.StringVar(&app.configPath, "config", "", "config file (.toml, .yaml, .yml), defaults to $"+config.EnvConfigFile)
	flags.StringVar(&app.mode, "mode", "", "output mode: "+strings.Join(modes, ", "))
	flags.StringVar(&app.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "loxfront %s\n", Version)
		},
	})

	return root
}

// configure resolves the effective config: file, then flags.
func (app *LoxApp) configure(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(app.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = config.Mode(app.mode)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = app.logLevel
	}
	if app.verbose {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	output := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = app.opts.stderr
		w.TimeFormat = time.TimeOnly
		w.NoColor = true
	})
	app.logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	app.cfg = cfg

	app.logger.Debug().Str("mode", string(cfg.Mode)).Str("config", app.configPath).Msg("configured")
	return nil
}

func (app *LoxApp) runPrompt() error {
	rl, err := app.opts.lineReader(app.cfg, app.opts.stdin, app.opts.stdout, app.opts.stderr)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		// Errors were reported, the prompt keeps going.
		_ = app.run(line)
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	app.logger.Debug().Str("file", scriptPath).Int("bytes", len(bytes)).Msg("running script")
	return app.run(string(bytes))
}

func (app *LoxApp) run(input string) error {
	diag := loxerrors.NewDiagnostics(loxerrors.WithLogger(app.logger))

	tokens, _ := scanner.NewScanner(input, diag).Scan()
	app.logger.Debug().Int("tokens", len(tokens)).Msg("scanned")

	if app.cfg.Mode == config.ModeTokens {
		app.printTokens(tokens)
		return app.checkDiagnostics(diag)
	}

	exprs, _ := parser.NewParser(tokens, diag).ParseAll()
	if err := app.checkDiagnostics(diag); err != nil {
		return err
	}
	app.logger.Debug().Int("expressions", len(exprs)).Msg("parsed")

	return app.print(exprs)
}

func (app *LoxApp) checkDiagnostics(diag *loxerrors.Diagnostics) error {
	if !diag.HadError() {
		return nil
	}
	app.reporter.ReportDiagnostics(diag)
	return exitStatus(diag.ExitCode())
}

func (app *LoxApp) printTokens(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(app.opts.stdout, tok)
	}
}

func (app *LoxApp) print(exprs []parser.Expr) error {
	switch app.cfg.Mode {
	case config.ModeRPN:
		printer := parser.NewRPNPrinter()
		for _, expr := range exprs {
			fmt.Fprintln(app.opts.stdout, printer.Print(expr))
		}
	case config.ModeEval:
		eval := interpreter.NewInterpreter(interpreter.WithLogger(app.logger))
		for _, expr := range exprs {
			out, err := eval.Interpret(expr)
			if err != nil {
				app.reporter.ReportError(err)
				return exitStatus(loxerrors.ExitSoftware)
			}
			fmt.Fprintln(app.opts.stdout, out)
		}
	default:
		printer := parser.NewAstPrinter()
		for _, expr := range exprs {
			fmt.Fprintln(app.opts.stdout, printer.Print(expr))
		}
	}

	return nil
}
