// Command faxc runs the Fax semantic analyses.
//
// Usage:
//
//	faxc tokenize <file.fax>     print the token stream as JSON
//	faxc ownership <tree.json>   run the ownership analysis
//	faxc typecheck <tree.json>   run the type analysis
//	faxc check <tree.json>       run the configured passes
//	faxc dump <tree.json>        print the tree
//	faxc version                 print the version
//
// An analysis that succeeds writes the tree to stdout unchanged (comments
// stripped) so that faxc can sit in a pipeline before code generation. One
// that fails writes a single diagnostic to stderr and exits with status 1.
// Unreadable input exits with status 2.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ComedicChimera/olive"

	"github.com/you-not-fish/fax/internal/config"
	"github.com/you-not-fish/fax/internal/diag"
	"github.com/you-not-fish/fax/internal/driver"
	"github.com/you-not-fish/fax/internal/logging"
	"github.com/you-not-fish/fax/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

// Exit statuses
const (
	exitOK       = 0
	exitFailed   = 1 // a diagnostic or lexical error was reported
	exitBadInput = 2 // usage, configuration or input errors
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	log := logging.New(stderr, logging.LevelError)

	// set up the argument parser and its subcommands
	cli := olive.NewCLI("faxc", "faxc checks Fax programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warning", "verbose"})
	cli.AddStringArg("config", "c", "path to the configuration file", false)
	cli.AddFlag("pretty", "p", "show diagnostics for people instead of as JSON")
	cli.AddFlag("no-color", "nc", "disable colored output")

	tokCmd := cli.AddSubcommand("tokenize", "print the tokens of a source file", true)
	tokCmd.AddPrimaryArg("source", "the source file", true)

	for _, sub := range []struct{ name, desc string }{
		{"ownership", "run the ownership analysis on a tree"},
		{"typecheck", "run the type analysis on a tree"},
		{"check", "run the configured analyses on a tree"},
	} {
		cmd := cli.AddSubcommand(sub.name, sub.desc, true)
		cmd.AddPrimaryArg("tree", "the program tree file", true)
		cmd.AddStringArg("source", "s", "the source file the tree was parsed from", false)
	}

	dumpCmd := cli.AddSubcommand("dump", "print a program tree", true)
	dumpCmd.AddPrimaryArg("tree", "the program tree file", true)
	dumpCmd.AddFlag("json", "j", "print the tree in its JSON form")

	cli.AddSubcommand("version", "print the faxc version", false)

	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		log.Error("CLI Usage Error", err)
		return exitBadInput
	}

	path, _ := result.Arguments["config"].(string)
	cfg, err := config.Load(path)
	if err != nil {
		log.Error("Config Error", err)
		return exitBadInput
	}
	if level, ok := result.Arguments["loglevel"].(string); ok && level != "" {
		cfg.LogLevel = level
	}
	if result.HasFlag("pretty") {
		cfg.Format = config.FormatPretty
	}
	if result.HasFlag("no-color") {
		cfg.Color = false
	}
	logging.SetColor(cfg.Color)

	c := &command{
		cfg:    cfg,
		log:    logging.New(stderr, logging.ParseLevel(cfg.LogLevel)),
		stdout: stdout,
		stderr: stderr,
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "tokenize":
		file, _ := subResult.PrimaryArg()
		return c.tokenize(file)
	case "ownership":
		return c.analyze(subResult, []string{config.PassOwnership})
	case "typecheck":
		return c.analyze(subResult, []string{config.PassTypes})
	case "check":
		return c.analyze(subResult, cfg.Passes)
	case "dump":
		file, _ := subResult.PrimaryArg()
		return c.dump(file, subResult.HasFlag("json"))
	case "version":
		fmt.Fprintf(stdout, "faxc version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return exitOK
	}

	log.Error("CLI Usage Error", errors.New("a subcommand is required"))
	return exitBadInput
}

// command holds the state shared by the subcommands.
type command struct {
	cfg    *config.Config
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
}

func (c *command) tokenize(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		c.log.Error("File Error", err)
		return exitBadInput
	}

	toks, err := driver.Tokenize(string(src), c.cfg.Normalize, c.log)
	var lerr *syntax.LexError
	if errors.As(err, &lerr) {
		if c.cfg.Format == config.FormatPretty {
			c.log.LexError(lerr, file, string(src))
		} else {
			c.writeJSON(lerr)
		}
		return exitFailed
	}

	if err := syntax.FprintTokens(c.stdout, toks); err != nil {
		c.log.Error("Output Error", err)
		return exitBadInput
	}
	return exitOK
}

func (c *command) analyze(result *olive.ArgParseResult, passes []string) int {
	file, _ := result.PrimaryArg()
	data, root, ok := c.load(file)
	if !ok {
		return exitBadInput
	}

	err := driver.Run(root, passes, c.log)
	var d *diag.Diagnostic
	switch {
	case errors.As(err, &d):
		c.report(d, result)
		return exitFailed
	case err != nil:
		c.log.Error("Analysis Error", err)
		return exitBadInput
	}

	out, err := syntax.Standardize(data)
	if err != nil {
		c.log.Error("Output Error", err)
		return exitBadInput
	}
	c.stdout.Write(out)
	c.log.Info("Checked", file)
	return exitOK
}

func (c *command) dump(file string, asJSON bool) int {
	_, root, ok := c.load(file)
	if !ok {
		return exitBadInput
	}
	if asJSON {
		if err := syntax.FprintJSON(c.stdout, root); err != nil {
			c.log.Error("Output Error", err)
			return exitBadInput
		}
		return exitOK
	}
	syntax.Fprint(c.stdout, root)
	return exitOK
}

// load reads and decodes a tree file, logging any failure.
func (c *command) load(file string) ([]byte, syntax.Node, bool) {
	data, err := os.ReadFile(file)
	if err != nil {
		c.log.Error("File Error", err)
		return nil, nil, false
	}
	root, err := driver.Decode(data, c.log)
	if err != nil {
		c.log.Error("Decode Error", err)
		return nil, nil, false
	}
	return data, root, true
}

// report writes the diagnostic that stopped an analysis.
func (c *command) report(d *diag.Diagnostic, result *olive.ArgParseResult) {
	if c.cfg.Format != config.FormatPretty {
		c.writeJSON(d)
		return
	}

	file, _ := result.PrimaryArg()
	var src []byte
	if path, ok := result.Arguments["source"].(string); ok {
		var err error
		if src, err = os.ReadFile(path); err != nil {
			c.log.Warn("File Warning", err.Error())
		}
		file = path
	}
	c.log.Diagnostic(d, file, string(src))
}

// writeJSON writes v to stderr as one line of JSON.
func (c *command) writeJSON(v any) {
	if err := json.NewEncoder(c.stderr).Encode(v); err != nil {
		c.log.Error("Output Error", err)
	}
}
