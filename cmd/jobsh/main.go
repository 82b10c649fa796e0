package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/saylorsolutions/cmdtree"
	"github.com/saylorsolutions/cmdtree/repl"
)

// helpPatterns are the sentinels recognized by the one-shot driver.
var helpPatterns = []string{"--help", "-h"}

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

func main() {
	if err := run(os.Args[1:], cmdtree.NewPrinter()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out *cmdtree.Printer) error {
	reg := buildRegistry()
	flags := flag.NewFlagSet("jobsh", flag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.Usage = func() {}
	interactive := flags.BoolP("interactive", "i", false, "Run the interactive shell even when command arguments are given")
	prompt := flags.String("prompt", ">> ", "Prompt shown in interactive mode")
	verbose := flags.BoolP("verbose", "v", false, "Enable debug logging")
	noColor := flags.Bool("no-color", false, "Disable prompt styling")
	if err := flags.Parse(args); err != nil {
		// pflag answers a leading --help/-h itself before the token list is
		// seen. Those are still the help sentinels with no tokens preceding
		// them, so they get the root listing, not the driver's flag usage.
		if errors.Is(err, flag.ErrHelp) {
			out.Print(reg.Help(nil))
			return nil
		}
		return err
	}

	tokens := flags.Args()
	if len(tokens) == 0 || *interactive {
		return repl.New(reg,
			repl.WithPrompt(renderPrompt(*prompt, *noColor)),
			repl.WithPrinter(out),
			repl.WithLogger(newLogger(*verbose)),
		).Run()
	}
	// One-shot mode scans the whole token list for the help sentinels and
	// helps on everything before the first one. The resolver's own in-line
	// --help handling reacts during its left-to-right walk instead; the two
	// are intentionally not unified.
	if i := firstHelpToken(tokens); i >= 0 {
		out.Print(reg.Help(tokens[:i]))
		return nil
	}
	return reg.Execute(tokens, out)
}

func firstHelpToken(tokens []string) int {
	return slices.IndexFunc(tokens, func(token string) bool {
		return slices.Contains(helpPatterns, token)
	})
}

func renderPrompt(prompt string, noColor bool) string {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return prompt
	}
	return promptStyle.Render(prompt)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
