package assembler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// NodeType defines the type of an assembly node.
type NodeType int

const (
	// NodeInstruction type.
	NodeInstruction NodeType = iota
	// NodeLabel type.
	NodeLabel
	// NodeDefine type.
	NodeDefine
	// NodeDirective type.
	NodeDirective
)

func (t NodeType) String() string {
	switch t {
	case NodeInstruction:
		return "instruction"
	case NodeLabel:
		return "label"
	case NodeDefine:
		return "define"
	case NodeDirective:
		return "directive"
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

// Node represents one parsed element from the assembly source.
// Which fields are set depends on Type:
//
//	NodeInstruction: Mnemonic, Operands
//	NodeLabel:       Name
//	NodeDefine:      Name (the key), Value
//	NodeDirective:   Mnemonic, Args
type Node struct {
	Type     NodeType
	Pos      Position
	Mnemonic string
	Operands []Operand
	Args     []string
	Name     string
	Value    string
	Offset   uint32 // Address the node starts at, set when offsets are computed.
}

// IsMarker returns true for instructions whose mnemonic does not start with a
// letter or digit. Markers occupy no space and emit nothing.
func (n *Node) IsMarker() bool {
	if n.Type != NodeInstruction {
		return false
	}
	r, _ := utf8.DecodeRuneInString(n.Mnemonic)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Size returns the number of bytes the node emits.
func (n *Node) Size() (uint32, error) {
	switch n.Type {
	case NodeInstruction:
		if n.IsMarker() {
			return 0, nil
		}
		return chip8.WordSize, nil
	case NodeLabel, NodeDefine:
		return 0, nil
	case NodeDirective:
		return directiveSize(n)
	}
	return 0, errors.Errorf("unknown node type %d", n.Type)
}

func (n *Node) String() string {
	switch n.Type {
	case NodeInstruction:
		ops := make([]string, len(n.Operands))
		for i, op := range n.Operands {
			ops[i] = op.Raw
		}
		return strings.TrimSpace(n.Mnemonic + " " + strings.Join(ops, ", "))
	case NodeLabel:
		return n.Name + ":"
	case NodeDefine:
		return fmt.Sprintf("define %s %s", n.Name, n.Value)
	case NodeDirective:
		args := n.Args
		if strings.EqualFold(n.Mnemonic, "text") {
			args = make([]string, len(n.Args))
			for i, a := range n.Args {
				args[i] = `"` + a + `"`
			}
		}
		return strings.TrimSpace(n.Mnemonic + " " + strings.Join(args, ", "))
	}
	return n.Type.String()
}
