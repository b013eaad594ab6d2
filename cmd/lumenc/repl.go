package main

import (
	"os"
	"strings"

	"lumen/internal/parser"
	"lumen/internal/sema"

	"github.com/chzyer/readline"
)

// runREPL starts an interactive diagnostics session: each line (or
// multi-line paste) submitted is treated as its own translation unit and
// run through the full lex → parse → analyze pipeline, with the verdict
// printed instead of any evaluated result — there is no runtime to drive.
// Because top_decl never includes a bare statement, a line must be a
// complete top-level construct (`int x = 1;`, a whole function, a struct).
//
// Grounded on the teacher interpreter's repl.Repl.Start: the banner/line/
// prompt layout, readline for history and editing, ".exit" to quit, and
// trim-then-skip-blank-lines input handling are all carried over.
func runREPL() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			os.Stdout.WriteString("Goodbye!\n")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			os.Stdout.WriteString("Goodbye!\n")
			return
		}

		rl.SaveHistory(input)
		checkLine(input)
	}
}

func printBanner(w *os.File) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "Version: "+version+" | Author: "+author+" | License: "+license)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Lumen diagnostics REPL — type a complete declaration and press enter.")
	cyanColor.Fprintln(w, "This front end does not execute code; it only reports errors.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// checkLine runs one submitted chunk through the pipeline, recovering from
// any panic the way the teacher's executeWithRecovery does, so a malformed
// line never kills the session.
func checkLine(input string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stdout, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	tu, diags, err := parser.ParseSource(input)
	if err != nil {
		redColor.Fprintf(os.Stdout, "[LEXICAL ERROR] %v\n", err)
		return
	}
	if diags.HasErrors() {
		for _, d := range diags.All() {
			redColor.Fprintf(os.Stdout, "%s\n", d.String())
		}
		return
	}

	semaDiags := sema.Analyze(tu)
	if semaDiags.HasErrors() {
		for _, d := range semaDiags.All() {
			redColor.Fprintf(os.Stdout, "%s\n", d.String())
		}
		return
	}

	greenColor.Fprintln(os.Stdout, "ok")
}
