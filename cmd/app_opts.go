package cmd

import (
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/leonardinius/loxfront/internal/config"
)

// LineReader is the line source of the interactive prompt.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// LineReaderFactory builds the prompt's LineReader from the effective config.
type LineReaderFactory func(cfg *config.Config, stdin io.ReadCloser, stdout, stderr io.Writer) (LineReader, error)

type appOpts struct {
	stdin      io.ReadCloser
	stdout     io.Writer
	stderr     io.Writer
	lineReader LineReaderFactory
}

type AppOption func(*appOpts)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

// WithLineReader replaces the readline backed prompt input.
func WithLineReader(factory LineReaderFactory) AppOption {
	return func(opts *appOpts) {
		opts.lineReader = factory
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := &appOpts{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		lineReader: newReadline,
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

func newReadline(cfg *config.Config, stdin io.ReadCloser, stdout, stderr io.Writer) (LineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
	})
}
