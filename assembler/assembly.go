package assembler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// Assembly is an ordered list of nodes positioned at a base address.
//
// NewAssembly substitutes defines and computes offsets. Labels are resolved
// once, just before the first emission. An Assembly is single-use: after Bytes
// has been called it is final.
type Assembly struct {
	Nodes    []*Node
	Base     uint32
	resolved bool
}

// NewAssembly resolves defines in nodes and assigns every node its offset,
// starting at base. The nodes are modified in place.
func NewAssembly(nodes []*Node, base uint32) (*Assembly, error) {
	a := &Assembly{Nodes: nodes, Base: base}
	a.resolveDefines()
	if err := a.computeOffsets(); err != nil {
		return nil, err
	}
	return a, nil
}

// resolveDefines replaces operands and directive arguments spelled exactly
// like a define key with that define's value. Values are not expanded again.
func (a *Assembly) resolveDefines() {
	defines := make(map[string]string)
	for _, n := range a.Nodes {
		if n.Type == NodeDefine {
			defines[n.Name] = n.Value
		}
	}
	if len(defines) == 0 {
		return
	}

	for _, n := range a.Nodes {
		switch n.Type {
		case NodeInstruction:
			for i, op := range n.Operands {
				if v, ok := defines[op.Raw]; ok {
					n.Operands[i] = Operand{Raw: v}
				}
			}
		case NodeDirective:
			for i, arg := range n.Args {
				if v, ok := defines[arg]; ok {
					n.Args[i] = v
				}
			}
		}
	}
}

// computeOffsets sets each node's offset to the base plus the sizes of all
// preceding nodes.
func (a *Assembly) computeOffsets() error {
	pc := a.Base
	for _, n := range a.Nodes {
		size, err := n.Size()
		if err != nil {
			return newError(n.Pos, err)
		}
		n.Offset = pc
		pc += size
	}
	return nil
}

// ResolveLabels replaces operands naming a label with the label's address in
// decimal. It runs only once; later calls do nothing.
func (a *Assembly) ResolveLabels() error {
	if a.resolved {
		return nil
	}

	labels := make(map[string]uint32)
	for _, n := range a.Nodes {
		if n.Type != NodeLabel {
			continue
		}
		if _, ok := labels[n.Name]; ok {
			return newError(n.Pos, errors.Wrapf(ErrDuplicateLabel, "%q", n.Name))
		}
		labels[n.Name] = n.Offset
	}

	for _, n := range a.Nodes {
		switch n.Type {
		case NodeInstruction:
			for i, op := range n.Operands {
				addr, ok, err := labelAddress(labels, op.Raw)
				if err != nil {
					return newError(n.Pos, err)
				}
				if ok {
					n.Operands[i] = Operand{Raw: addr}
				}
			}
		case NodeDirective:
			if !hasAddressArgs(n.Mnemonic) {
				continue
			}
			for i, arg := range n.Args {
				addr, ok, err := labelAddress(labels, arg)
				if err != nil {
					return newError(n.Pos, err)
				}
				if ok {
					n.Args[i] = addr
				}
			}
		}
	}

	a.resolved = true
	return nil
}

// labelAddress returns the decimal address of the label name, if it is one.
// Addresses that no operand can hold are an error.
func labelAddress(labels map[string]uint32, name string) (string, bool, error) {
	addr, ok := labels[name]
	if !ok {
		return "", false, nil
	}
	if addr > math.MaxUint16 {
		return "", false, errors.Wrapf(ErrInvalidOpcode, "label %q at %#x out of range (max %#x)", name, addr, math.MaxUint16)
	}
	return strconv.FormatUint(uint64(addr), 10), true, nil
}

// Bytes resolves labels and returns the machine code for the whole assembly.
// Nothing is returned if any node fails to encode.
func (a *Assembly) Bytes() ([]byte, error) {
	if err := a.ResolveLabels(); err != nil {
		return nil, err
	}

	var code []byte
	for _, n := range a.Nodes {
		b, err := emit(n)
		if err != nil {
			return nil, newError(n.Pos, err)
		}
		code = append(code, b...)
	}
	return code, nil
}

// emit returns the bytes for a single node.
func emit(n *Node) ([]byte, error) {
	switch n.Type {
	case NodeInstruction:
		if n.IsMarker() {
			return nil, nil
		}
		op, err := Encode(n)
		if err != nil {
			return nil, err
		}
		return chip8.AppendWord(nil, op), nil
	case NodeDirective:
		return generateDirectiveCode(n)
	case NodeLabel, NodeDefine:
		return nil, nil
	}
	return nil, errors.Errorf("unknown node type %d", n.Type)
}

// String renders every node with its offset, one per line.
func (a *Assembly) String() string {
	var sb strings.Builder
	for _, n := range a.Nodes {
		fmt.Fprintf(&sb, "0x%04x %s %s\n", n.Offset, n.Type, n)
	}
	return sb.String()
}

// Listing resolves labels and renders every node with its offset, the bytes it
// emits and its source text.
func (a *Assembly) Listing() (string, error) {
	if err := a.ResolveLabels(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range a.Nodes {
		b, err := emit(n)
		if err != nil {
			return "", newError(n.Pos, err)
		}

		text := n.String()
		if n.Type != NodeLabel {
			text = "    " + text
		}

		hex := make([]string, 0, 4)
		for i, c := range b {
			if i == 4 {
				hex = append(hex, "...")
				break
			}
			hex = append(hex, fmt.Sprintf("%02X", c))
		}
		fmt.Fprintf(&sb, "%04X  %-14s %s\n", n.Offset, strings.Join(hex, " "), text)
	}
	return sb.String(), nil
}
