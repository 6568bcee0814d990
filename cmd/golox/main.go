package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"

	"github.com/mliezun/golox/internal"
)

const historyFile = ".golox_history"

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

var cli struct {
	Debug       bool   `help:"Enable debug logging."`
	PrintTokens bool   `help:"Dump the scanned tokens and exit."`
	PrintAst    bool   `help:"Dump the parsed syntax tree and exit."`
	Script      string `arg:"" optional:"" help:"Script to run. Without it a REPL starts." type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("golox"),
		kong.Description("Tree-walking interpreter for the Lox language."),
	)

	internal.SetDebug(cli.Debug)

	if cli.Script == "" {
		runPrompt()
		return
	}
	os.Exit(runFile(cli.Script))
}

func runFile(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	session := internal.NewSession(stdPrinter{})

	var res internal.RunResult
	switch {
	case cli.PrintTokens:
		res = session.DumpTokens(string(b))
	case cli.PrintAst:
		res = session.DumpTree(string(b))
	default:
		res = session.Run(string(b))
	}

	if res.HadError {
		return 65
	}
	if res.HadRuntimeError {
		return 70
	}
	return 0
}

func runPrompt() {
	fmt.Println(color.Cyan("golox REPL"))
	fmt.Println("Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	session := internal.NewSession(stdPrinter{})

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// Errors never terminate the REPL, the next prompt proceeds
		session.Run(line)
		ln.AppendHistory(line)
	}
}
