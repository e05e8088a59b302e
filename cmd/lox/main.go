package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/labstack/gommon/color"

	"lox/internal"
)

func main() {
	verbose := flag.Bool("v", false, "trace each pipeline stage to stderr")
	flag.Parse()

	args := flag.Args()
	switch len(args) {
	case 0:
		runPrompt(*verbose)
	case 1:
		os.Exit(runFile(args[0], *verbose))
	default:
		fmt.Println("Usage: lox [-v] [script]")
		os.Exit(internal.ExitMisuse)
	}
}

// redWriter colorizes every line written to it with color.Red before
// forwarding it to the wrapped writer. The interpreter package itself
// never imports color (SPEC_FULL.md §3) — this is where that boundary
// is drawn, by wrapping stderr rather than teaching diagnostics about
// presentation.
type redWriter struct {
	w io.Writer
}

func (r redWriter) Write(p []byte) (int, error) {
	fmt.Fprint(r.w, color.Red(string(p)))
	return len(p), nil
}

func runFile(path string, verbose bool) int {
	session := internal.NewSession(os.Stdout, redWriter{os.Stderr}, internal.DefaultConfig())
	session.SetVerbose(verbose)

	source, err := ioutil.ReadFile(path)
	if err != nil {
		session.Logger().Error(err)
		return internal.ExitMisuse
	}

	return session.Run(string(source))
}

// runPrompt implements the REPL described in spec.md §6: each line is
// run as a complete Program against a session whose global environment
// persists across lines, per SPEC_FULL.md's resolution of that open
// question. The compile-error flag is reset between lines by Session.Run
// itself, so one bad line never poisons the next.
func runPrompt(verbose bool) {
	session := internal.NewSession(os.Stdout, redWriter{os.Stderr}, internal.DefaultConfig())
	session.SetVerbose(verbose)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Cyan("> "))
		if !scanner.Scan() {
			fmt.Println()
			if err := scanner.Err(); err != nil {
				session.Logger().Error(err)
			}
			return
		}
		session.Run(scanner.Text())
	}
}
