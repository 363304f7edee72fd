package assembler

import (
	"strings"

	"github.com/pkg/errors"
)

// patternKind classifies what an operand must look like.
type patternKind int

const (
	patRegister  patternKind = iota // V0-VF
	patImmediate                    // anything that is not a register
	patKeyword                      // an exact spelling, such as DT or [I]
)

// pattern matches a single operand.
type pattern struct {
	kind    patternKind
	keyword string
}

var (
	reg = pattern{kind: patRegister}
	imm = pattern{kind: patImmediate}
)

// kw matches the keyword s, ignoring case.
func kw(s string) pattern {
	return pattern{kind: patKeyword, keyword: s}
}

func (p pattern) match(op Operand) bool {
	switch p.kind {
	case patRegister:
		return op.IsRegister()
	case patImmediate:
		return !op.IsRegister()
	case patKeyword:
		return strings.EqualFold(op.Raw, p.keyword)
	}
	return false
}

// encoding is one operand shape of a mnemonic and how to encode it.
// slots[i] is the field operand i is stored in.
type encoding struct {
	shape []pattern
	base  uint16
	slots []slot
}

// matches returns true if operands have exactly the encoding's shape.
func (e encoding) matches(operands []Operand) bool {
	if len(operands) != len(e.shape) {
		return false
	}
	for i, p := range e.shape {
		if !p.match(operands[i]) {
			return false
		}
	}
	return true
}

// opcode binds operands to the encoding's fields.
func (e encoding) opcode(operands []Operand) *Opcode {
	o := &Opcode{Base: e.base}
	for i, s := range e.slots {
		o.set(s, operands[i])
	}
	return o
}

// form is shorthand for building table entries.
func form(base uint16, ops []pattern, slots ...slot) encoding {
	return encoding{shape: ops, base: base, slots: slots}
}

// shape is shorthand for an operand pattern list.
func shape(p ...pattern) []pattern {
	return p
}

// encodings maps upper-case mnemonics to their operand shapes, tried in order.
var encodings = mergeTables(flowTable, mathsTable, logicalTable, moveTable, miscTable)

func mergeTables(tables ...map[string][]encoding) map[string][]encoding {
	out := make(map[string][]encoding)
	for _, t := range tables {
		for mn, encs := range t {
			out[mn] = append(out[mn], encs...)
		}
	}
	return out
}

// IsMnemonic returns true if s names a known instruction.
func IsMnemonic(s string) bool {
	_, ok := encodings[strings.ToUpper(s)]
	return ok
}

// Lookup returns the opcode descriptor for an instruction node, without
// parsing its operands.
func Lookup(n *Node) (*Opcode, error) {
	if !IsMnemonic(n.Mnemonic) {
		return nil, errors.Wrapf(ErrInvalidInstruction, "%q", n.String())
	}

	for _, e := range encodings[strings.ToUpper(n.Mnemonic)] {
		if e.matches(n.Operands) {
			return e.opcode(n.Operands), nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidOpcode, "no form of %s takes %q", strings.ToUpper(n.Mnemonic), n.String())
}

// Encode returns the 16-bit opcode for an instruction node.
func Encode(n *Node) (uint16, error) {
	o, err := Lookup(n)
	if err != nil {
		return 0, err
	}
	return o.Word()
}
