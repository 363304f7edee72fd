// Package assembler turns CHIP-8 assembly source into a flat binary image.
//
// Source is loaded line by line (following include directives), parsed into
// nodes, and collected into an Assembly. The Assembly substitutes defines,
// computes the address of every node, resolves labels and finally emits the
// big-endian machine code.
package assembler

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
)

// Assembler holds the configuration and diagnostics for the assembly process.
type Assembler struct {
	// IncludePaths are searched for included files that are found neither as
	// given nor next to the entry file.
	IncludePaths []string

	warnings []string
	assembly *Assembly
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{}
}

// Warnings returns the warnings generated by the last run.
func (asm *Assembler) Warnings() []string {
	return asm.warnings
}

// Assembly returns the assembly built by the last successful run.
func (asm *Assembler) Assembly() *Assembly {
	return asm.assembly
}

func (asm *Assembler) addWarning(format string, args ...interface{}) {
	asm.warnings = append(asm.warnings, fmt.Sprintf(format, args...))
}

// Load reads the file at path, and every file it includes, into nodes.
func (asm *Assembler) Load(path string) ([]*Node, error) {
	asm.warnings = nil
	l := newLoader(filepath.Dir(path), asm.IncludePaths, asm.addWarning)
	return l.loadFile(path)
}

// LoadSource parses src into nodes. Includes are looked up relative to the
// working directory and the include paths.
func (asm *Assembler) LoadSource(src string) ([]*Node, error) {
	asm.warnings = nil
	l := newLoader(".", asm.IncludePaths, asm.addWarning)
	return l.load(sourceName, src)
}

// Assemble takes CHIP-8 assembly source and returns the machine code, with
// labels addressed from baseAddress.
func (asm *Assembler) Assemble(src string, baseAddress uint32) ([]byte, error) {
	nodes, err := asm.LoadSource(src)
	if err != nil {
		return nil, errors.Wrap(err, "parsing error")
	}
	return asm.build(nodes, baseAddress)
}

// AssembleFile assembles the source file at path and everything it includes.
func (asm *Assembler) AssembleFile(path string, baseAddress uint32) ([]byte, error) {
	nodes, err := asm.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "parsing error")
	}
	return asm.build(nodes, baseAddress)
}

// build runs the resolution passes over nodes and emits the code.
func (asm *Assembler) build(nodes []*Node, baseAddress uint32) ([]byte, error) {
	asm.assembly = nil

	a, err := NewAssembly(nodes, baseAddress)
	if err != nil {
		return nil, err
	}

	code, err := a.Bytes()
	if err != nil {
		return nil, err
	}

	for _, n := range a.Nodes {
		if n.IsMarker() {
			asm.addWarning("%s: ignored marker instruction %q", n.Pos, n.Mnemonic)
		}
	}

	asm.assembly = a
	return code, nil
}
