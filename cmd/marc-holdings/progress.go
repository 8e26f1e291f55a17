package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/handiism/marc-holdings/internal/convert"
	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiDim    = "\x1b[2m"
	ansiReset  = "\x1b[0m"
)

// progressPrinter writes conversion events to a terminal or log stream.
type progressPrinter struct {
	mu       sync.Mutex
	out      io.Writer
	verbose  bool
	colorize bool
}

func newProgressPrinter(out io.Writer, verbose bool) *progressPrinter {
	return &progressPrinter{out: out, verbose: verbose, colorize: shouldColorize(out)}
}

func (p *progressPrinter) print(event convert.ProgressEvent) {
	if event.Level == convert.LevelVerbose && !p.verbose {
		return
	}

	var prefix, color string
	switch event.Level {
	case convert.LevelError:
		prefix, color = "✗ ", ansiRed
	case convert.LevelWarning:
		prefix, color = "! ", ansiYellow
	case convert.LevelSuccess:
		prefix, color = "✓ ", ansiGreen
	case convert.LevelInfo:
		prefix, color = "› ", ansiCyan
	default:
		prefix, color = "  ", ansiDim
	}

	line := prefix + event.Message
	if p.colorize {
		line = color + line + ansiReset
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
