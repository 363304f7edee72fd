package assembler

import (
	"strings"

	"github.com/pkg/errors"
)

// directives lists the directive mnemonics, in lower case.
var directives = map[string]bool{
	"db":     true,
	"dw":     true,
	"text":   true,
	"offset": true,
}

// isDirective returns true if mnemonic names a data directive.
func isDirective(mnemonic string) bool {
	return directives[strings.ToLower(mnemonic)]
}

// parseLine converts one logical line (comments stripped, continuations
// joined, labels already extracted) into a node.
func parseLine(line string, pos Position) (*Node, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.Errorf("%s: empty line", pos)
	}

	var n *Node
	var err error
	switch first := fields[0]; {
	case strings.EqualFold(first, "define"):
		n, err = parseDefine(fields)
	case isDirective(first):
		n = parseDirective(line)
	default:
		n = parseInstruction(fields)
	}
	if err != nil {
		return nil, newError(pos, err)
	}
	n.Pos = pos
	return n, nil
}

// parseInstruction builds an instruction node. Operands may be separated by
// commas, spaces or both.
func parseInstruction(fields []string) *Node {
	var operands []Operand
	for _, s := range strings.Split(strings.Join(fields[1:], ","), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		operands = append(operands, Operand{Raw: s})
	}
	return &Node{Type: NodeInstruction, Mnemonic: fields[0], Operands: operands}
}

// parseLabel builds a label node from "name:".
func parseLabel(line string) *Node {
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	return &Node{Type: NodeLabel, Name: name}
}

// parseDefine builds a define node from "define key value".
func parseDefine(fields []string) (*Node, error) {
	if len(fields) != 3 {
		return nil, errors.Wrapf(ErrInvalidDefine, "expected `define <key> <value>`, got %q", strings.Join(fields, " "))
	}
	return &Node{Type: NodeDefine, Name: fields[1], Value: fields[2]}, nil
}

// parseDirective builds a directive node. Quoted spans are kept together as a
// single argument.
func parseDirective(line string) *Node {
	line = strings.TrimSpace(line)
	mnemonic := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		mnemonic, rest = line[:i], line[i+1:]
	}
	return &Node{Type: NodeDirective, Mnemonic: mnemonic, Args: splitDirectiveArgs(rest)}
}

// splitDirectiveArgs splits s on commas and whitespace, except inside double
// quotes. Quotes are removed; an empty quoted string is still an argument.
func splitDirectiveArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuote := false
	quoted := false

	flush := func() {
		if cur.Len() > 0 || quoted {
			args = append(args, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for _, c := range s {
		switch {
		case c == '"':
			inQuote = !inQuote
			quoted = true
		case !inQuote && (c == ',' || c == ' ' || c == '\t'):
			flush()
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return args
}

// labelEnd returns the index of the label terminator in line, or -1 if the
// line does not start with a label. Terminators inside quotes are ignored,
// and the label name must be a single token.
func labelEnd(line string) int {
	var quote rune
	for i, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ':':
			name := strings.TrimSpace(line[:i])
			if name == "" || strings.ContainsAny(name, " \t") {
				return -1
			}
			return i
		}
	}
	return -1
}
