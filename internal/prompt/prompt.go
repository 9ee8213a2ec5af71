// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user interrupts a prompt or closes input.
var ErrAborted = errors.New("prompt aborted")

// ValidateFunc rejects a candidate answer by returning an error describing why.
type ValidateFunc func(string) error

// Prompter asks the user for input.
type Prompter interface {
	// Line asks for a line of text. An empty answer selects suggestion when
	// it is non-empty. Answers rejected by validate are reported and asked
	// again.
	Line(label, suggestion string, validate ValidateFunc) (string, error)
	// Confirm asks a yes/no question, accepting only "y" or "n".
	Confirm(question string) (bool, error)
}

// LineReader is the subset of *readline.Instance used by Session.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Session implements Prompter on top of a LineReader.
type Session struct {
	rl  LineReader
	out io.Writer
}

// NewSession creates a Session reading from rl and reporting rejected
// answers to out.
func NewSession(rl LineReader, out io.Writer) *Session {
	return &Session{rl: rl, out: out}
}

// Terminal is a Session backed by a readline instance.
type Terminal struct {
	*Session
	instance *readline.Instance
}

// NewTerminal opens a readline instance on the given streams.
func NewTerminal(in io.ReadCloser, out, errOut io.Writer) (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		Stderr:          errOut,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &Terminal{Session: NewSession(rl, errOut), instance: rl}, nil
}

// Close releases the terminal.
func (t *Terminal) Close() error {
	return t.instance.Close()
}

func (s *Session) readLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	if err != nil {
		return "", fmt.Errorf("readline error: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Line implements Prompter.
func (s *Session) Line(label, suggestion string, validate ValidateFunc) (string, error) {
	prompt := label + ": "
	if suggestion != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, suggestion)
	}

	for {
		answer, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = suggestion
		}
		if answer == "" {
			continue
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm implements Prompter.
func (s *Session) Confirm(question string) (bool, error) {
	prompt := question + " (y/n): "
	for {
		answer, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(s.out, `Please answer "y" or "n".`)
	}
}
