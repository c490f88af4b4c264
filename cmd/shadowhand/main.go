// Package main is the entry point for shadowhand, which replays scripted
// mouse and keyboard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/shadowhand/internal/app"
	"github.com/dshills/shadowhand/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, done := parseFlags(args, stdout, stderr)
	if done {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		return report(stderr, err)
	}

	if err := application.Run(); err != nil {
		return report(stderr, err)
	}

	return 0
}

// report prints err and returns the exit code for it.
func report(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, script.ErrFileNotFound):
		fmt.Fprintf(stderr, "Error: Instruction file given doesn't exist. (%v)\n", err)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// parseFlags fills app.Options from args. When done is true the caller
// should exit with code immediately.
func parseFlags(args []string, stdout, stderr io.Writer) (opts app.Options, code int, done bool) {
	var showVersion bool
	var showHelp bool
	var delay time.Duration

	fs := flag.NewFlagSet("shadowhand", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.Backend, "backend", "", "Input backend (robot, trace)")
	fs.DurationVar(&delay, "delay", time.Second, "Wait before the first instruction and after each one")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "Print each action instead of performing it")
	fs.BoolVar(&opts.DryRun, "n", false, "Print each action instead of performing it (shorthand)")
	fs.BoolVar(&opts.Check, "check", false, "Parse and resolve the script without running it")
	fs.BoolVar(&opts.Metrics, "metrics", false, "Log per-action timing after the run")
	fs.StringVar(&opts.RecordPath, "record", "", "Record keystrokes from the terminal into this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "shadowhand - replay scripted mouse and keyboard input\n\n")
		fmt.Fprintf(out, "Usage: shadowhand [options] <instruction-file>\n")
		fmt.Fprintf(out, "       shadowhand -record <output-file>\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  shadowhand login.txt             Run a script\n")
		fmt.Fprintf(out, "  shadowhand -n -delay 0 login.txt Show what a script would do\n")
		fmt.Fprintf(out, "  shadowhand -check login.txt      Validate a script\n")
		fmt.Fprintf(out, "  shadowhand -record typed.txt     Capture keystrokes as a script\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, true
		}
		return opts, 1, true
	}

	if showHelp {
		fs.SetOutput(stdout)
		fs.Usage()
		return opts, 0, true
	}

	if showVersion {
		fmt.Fprintf(stdout, "shadowhand %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, 0, true
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "delay" {
			opts.Delay = &delay
		}
	})

	switch fs.NArg() {
	case 0:
		if opts.RecordPath == "" {
			fs.Usage()
			return opts, 1, true
		}
	case 1:
		opts.ScriptPath = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected one instruction file, got %d\n", fs.NArg())
		fs.Usage()
		return opts, 1, true
	}

	opts.Stdout = stdout
	opts.Stderr = stderr
	return opts, 0, false
}
