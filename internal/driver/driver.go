// Package driver runs the Fax analysis pipeline: it decodes a program
// tree, then runs the configured passes over it in order, stopping at the
// first diagnostic.
package driver

import (
	"fmt"

	"github.com/you-not-fish/fax/internal/config"
	"github.com/you-not-fish/fax/internal/logging"
	"github.com/you-not-fish/fax/internal/ownership"
	"github.com/you-not-fish/fax/internal/syntax"
	"github.com/you-not-fish/fax/internal/types2"
)

// Pass is one analysis over a decoded tree. A failing pass returns a
// *diag.Diagnostic.
type Pass struct {
	Name  string // name used in configuration
	Phase string // name shown in progress output
	Run   func(root syntax.Node) error
}

var passes = map[string]Pass{
	config.PassOwnership: {
		Name:  config.PassOwnership,
		Phase: "Ownership",
		Run:   ownership.Analyze,
	},
	config.PassTypes: {
		Name:  config.PassTypes,
		Phase: "Types",
		Run: func(root syntax.Node) error {
			return types2.Check(root, nil, nil)
		},
	},
}

// LookupPass returns the pass with the given name.
func LookupPass(name string) (Pass, bool) {
	p, ok := passes[name]
	return p, ok
}

// Decode parses a tree file. Failures are *syntax.DecodeError values.
func Decode(data []byte, log *logging.Logger) (syntax.Node, error) {
	log.BeginPhase("Decoding")
	root, err := syntax.DecodeTree(data)
	log.EndPhase(err == nil)
	if err != nil {
		return nil, err
	}
	log.Verbosef("decoded %d nodes", syntax.Count(root))
	return root, nil
}

// Run runs the named passes over root in order and returns the first
// error. Unknown pass names are reported before any pass runs.
func Run(root syntax.Node, names []string, log *logging.Logger) error {
	run := make([]Pass, 0, len(names))
	for _, name := range names {
		p, ok := LookupPass(name)
		if !ok {
			return fmt.Errorf("unknown analysis pass %q", name)
		}
		run = append(run, p)
	}

	for _, p := range run {
		log.BeginPhase(p.Phase)
		err := p.Run(root)
		log.EndPhase(err == nil)
		if err != nil {
			return err
		}
	}
	return nil
}

// Tokenize lexes src, first normalizing it to NFC if normalize is set.
// Failures are *syntax.LexError values.
func Tokenize(src string, normalize bool, log *logging.Logger) ([]syntax.Token, error) {
	if normalize {
		src = syntax.Normalize(src)
	}
	log.BeginPhase("Lexing")
	toks, err := syntax.Tokenize(src)
	log.EndPhase(err == nil)
	return toks, err
}
