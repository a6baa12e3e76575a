// Command minilang runs the tree-walking interpreter.
//
//	minilang          start the interactive REPL
//	minilang <file>   run a script; exit non-zero on error
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	minilang "github.com/mivashch/tkom-project"
)

const (
	historyFile = ".minilang_history"
	prompt      = "> "
)

const banner = `minilang interactive interpreter
Type :quit or :q to exit`

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(runRepl())
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  minilang <file>   # run file")
		fmt.Fprintln(os.Stderr, "  minilang          # interactive REPL")
		os.Exit(1)
	}
}

func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "cannot read %s", path))
		return 1
	}

	prog, err := minilang.ParseSource(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ip := minilang.NewInterpreter()
	if _, err := ip.Run(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runRepl() int {
	fmt.Println(banner)

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

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ip := minilang.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if err == io.EOF {
			fmt.Println()
			return 0
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" || trimmed == ":q" {
			return 0
		}

		prog, perr := minilang.ParseSource(line)
		if perr != nil {
			fmt.Fprintln(os.Stderr, minilang.WrapErrorWithSource(perr, line))
			continue
		}
		v, rerr := ip.Run(prog)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, minilang.WrapErrorWithSource(rerr, line))
			continue
		}
		if v.Tag != minilang.VTNull {
			fmt.Println(minilang.FormatValue(v))
		}
		ln.AppendHistory(line)
	}
}
