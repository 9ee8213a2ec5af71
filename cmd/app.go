package cmd

import (
	"fmt"
	"io"

	"xatsw/internal/config"
	"xatsw/internal/prompt"
	"xatsw/pkg/logging"
)

// app carries the state shared by all commands of one invocation: the
// parsed global flags, the loaded configuration and the prompter.
type app struct {
	streams Streams

	configPath string
	logLevel   string
	debug      bool
	quiet      bool

	store *config.Store
	cfg   *config.Config

	prompter prompt.Prompter
	terminal *prompt.Terminal
}

func newApp(streams Streams) *app {
	if streams.In == nil {
		streams.In = eofReader{}
	}
	if streams.Out == nil {
		streams.Out = io.Discard
	}
	if streams.Err == nil {
		streams.Err = io.Discard
	}
	return &app{streams: streams}
}

// init configures logging.
func (a *app) init() error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return &usageError{err: err}
	}
	if a.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, a.streams.Err)
	return nil
}

// loadConfig reads the configuration once.
func (a *app) loadConfig() *config.Config {
	if a.cfg == nil {
		a.store = config.NewStore(a.configPath)
		a.cfg = a.store.Load()
	}
	return a.cfg
}

// prompt returns the interactive prompter, opening the terminal on first use.
func (a *app) prompt() (prompt.Prompter, error) {
	if a.prompter != nil {
		return a.prompter, nil
	}

	in, ok := a.streams.In.(io.ReadCloser)
	if !ok {
		in = io.NopCloser(a.streams.In)
	}
	term, err := prompt.NewTerminal(in, a.streams.Out, a.streams.Err)
	if err != nil {
		return nil, err
	}
	a.terminal = term
	a.prompter = term
	return term, nil
}

// close releases the terminal and persists the configuration if it was loaded.
func (a *app) close() error {
	if a.terminal != nil {
		if err := a.terminal.Close(); err != nil {
			logging.Debug("CLI", "Failed to close terminal: %v", err)
		}
		a.terminal = nil
	}
	if a.cfg == nil {
		return nil
	}
	if err := a.store.Save(a.cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// infof prints an informational line unless --quiet is set.
func (a *app) infof(format string, args ...interface{}) {
	if a.quiet {
		return
	}
	fmt.Fprintf(a.streams.Out, format+"\n", args...)
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
