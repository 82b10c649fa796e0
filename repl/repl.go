// Package repl drives a cmdtree registry interactively: a readline loop with
// context-sensitive tab completion on a terminal, or a plain line scanner when
// input is piped in.
package repl

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/saylorsolutions/cmdtree"
)

// ExitCommand terminates the loop as normal, non-error termination.
// End of input does the same.
const ExitCommand = "exit"

// REPL reads lines, tokenizes them, and feeds them through the registry.
// Every iteration is independent; no state is carried between commands.
type REPL struct {
	reg    *cmdtree.Registry
	prompt string
	out    *cmdtree.Printer
	in     io.Reader
	logger *slog.Logger
}

// Option configures a [REPL] during [New].
type Option func(*REPL)

// WithPrompt overrides the prompt shown before each line.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithPrinter overrides where command output and error reports are written.
func WithPrinter(out *cmdtree.Printer) Option {
	return func(r *REPL) {
		r.out = out
	}
}

// WithInput reads lines from reader instead of stdin, always via the scanner
// path. Line editing and completion need a terminal and are disabled.
func WithInput(reader io.Reader) Option {
	return func(r *REPL) {
		r.in = reader
	}
}

// WithLogger enables debug logging of dispatch activity.
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a REPL over the given registry.
func New(reg *cmdtree.Registry, opts ...Option) *REPL {
	r := &REPL{
		reg:    reg,
		prompt: ">> ",
		out:    cmdtree.NewPrinter(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until the user enters [ExitCommand] or input runs out.
// Command errors are reported and the loop continues; only input stream
// failures are returned.
func (r *REPL) Run() error {
	if r.in == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		return r.runLiner()
	}
	in := r.in
	if in == nil {
		in = os.Stdin
	}
	return r.runScanner(in)
}

func (r *REPL) runLiner() error {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()
	line.SetCtrlCAborts(true)
	line.SetWordCompleter(r.completeWord)
	for {
		input, err := line.Prompt(r.prompt)
		switch {
		case errors.Is(err, io.EOF):
			r.out.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}
		input = strings.TrimSpace(input)
		if len(input) == 0 {
			continue
		}
		line.AppendHistory(input)
		if input == ExitCommand {
			return nil
		}
		r.dispatch(input)
	}
}

func (r *REPL) runScanner(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if len(input) == 0 {
			continue
		}
		if input == ExitCommand {
			return nil
		}
		r.dispatch(input)
	}
	return scanner.Err()
}

func (r *REPL) dispatch(input string) {
	tokens := strings.Fields(input)
	r.logger.Debug("dispatching command", "tokens", tokens)
	if err := r.reg.Execute(tokens, r.out); err != nil {
		r.logger.Debug("command failed", "error", err)
		r.out.Errorln(err)
	}
}

// completeWord adapts the registry's completion to liner's word completer:
// everything before the trailing partial token is the head that liner keeps,
// and candidates replace the partial token only.
func (r *REPL) completeWord(line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]
	split := len(head) - partialLen(head)
	return head[:split], r.reg.Complete(head), tail
}

// partialLen is the byte length of the trailing partial token of head, zero
// when head ends in whitespace or is empty.
func partialLen(head string) int {
	return len(head) - strings.LastIndexFunc(head, unicode.IsSpace) - 1
}
