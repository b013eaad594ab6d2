// Command lumenc is the Lumen compiler front end's driver: it reads a
// source file, runs the lex → parse → analyze pipeline, and reports either
// success or a diagnostic stream.
//
// Grounded on the teacher interpreter's main/main.go: the
// flag-dispatch shape (--help/--version/a bare positional path/no
// args-means-interactive-mode), the colored stderr reporting convention,
// and the showHelp/showVersion text layout all carry over. What's gone is
// the eval/server/file-write machinery — this front end parses and
// type-checks, it does not execute (spec.md §1 puts code generation and
// interpretation out of scope), so there is no evaluator to wire up and no
// "server" subcommand.
package main

import (
	"fmt"
	"os"
	"strings"

	"lumen/internal/diag"
	"lumen/internal/parser"
	"lumen/internal/printer"
	"lumen/internal/sema"
	"lumen/internal/source"

	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	author  = "the Lumen project"
	license = "MIT"
	prompt  = "lumen> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  _
 | |    _   _ _ __ ___   ___ _ __
 | |   | | | | '_ ' _ \ / _ \ '_ \
 | |___| |_| | | | | | |  __/ | | |
 |_____|\__,_|_| |_| |_|\___|_| |_|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

func main() {
	if len(os.Args) < 2 {
		runREPL()
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "repl":
		runREPL()
	default:
		runFile(arg, hasFlag(os.Args[2:], "--ast"))
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// runFile compiles a single source file, printing diagnostics to stderr and
// exiting nonzero on any lexical, syntactic, or semantic error. With
// --ast, the parsed tree (including one left by syntax-error recovery) is
// additionally dumped to stdout via the debug printer, win or lose on
// semantic analysis; nothing is dumped after a lexical error.
func runFile(path string, showAST bool) {
	src, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	tu, diags, err := parser.ParseSource(src)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEXICAL ERROR] %v\n", err)
		os.Exit(1)
	}

	hadError := false
	if diags.HasErrors() {
		reportAll(os.Stderr, diags.All())
		hadError = true
	}

	if showAST && tu != nil {
		fmt.Fprintln(os.Stdout, printer.Print(tu))
	}

	if tu != nil {
		semaDiags := sema.Analyze(tu)
		if semaDiags.HasErrors() {
			reportAll(os.Stderr, semaDiags.All())
			hadError = true
		}
	}

	if hadError {
		os.Exit(1)
	}
	os.Exit(0)
}

func reportAll(w *os.File, items []diag.Diagnostic) {
	for _, d := range items {
		redColor.Fprintf(w, "[%s] %s\n", strings.ToUpper(d.Kind.String()), d.String())
	}
}

func showHelp() {
	cyanColor.Println("lumenc - the Lumen compiler front end")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumenc                     Start the diagnostics REPL")
	yellowColor.Println("  lumenc <path>              Compile a Lumen source file")
	yellowColor.Println("  lumenc <path> --ast        Compile and dump the typed AST")
	yellowColor.Println("  lumenc repl                Start the diagnostics REPL")
	yellowColor.Println("  lumenc --help              Display this help message")
	yellowColor.Println("  lumenc --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("Note: lumenc is a front end only — it lexes, parses, and type-checks.")
	cyanColor.Println("It does not execute programs; there is no evaluator or runtime.")
}

func showVersion() {
	cyanColor.Println("lumenc - the Lumen compiler front end")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}
