package assembler

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// slot names an operand field of an opcode.
type slot int

const (
	slotVX slot = 1 << iota // bits 8-11
	slotVY                  // bits 4-7
	slotNNN                 // bits 0-11
	slotKK                  // bits 0-7
	slotN                   // bits 0-3

	// slotNone marks keyword operands that select the encoding but are not
	// stored in the opcode.
	slotNone slot = 0
)

// validSlots lists the slot combinations an opcode may use.
var validSlots = map[slot]bool{
	slotNone:                true,
	slotNNN:                 true,
	slotN:                   true,
	slotVX:                  true,
	slotVX | slotVY:         true,
	slotVX | slotKK:         true,
	slotVX | slotVY | slotN: true,
}

// Opcode is a base word plus the operands bound to its fields.
type Opcode struct {
	Base uint16
	VX   *Operand
	VY   *Operand
	NNN  *Operand
	KK   *Operand
	N    *Operand
}

// set binds op to the field s.
func (o *Opcode) set(s slot, op Operand) {
	switch s {
	case slotVX:
		o.VX = &op
	case slotVY:
		o.VY = &op
	case slotNNN:
		o.NNN = &op
	case slotKK:
		o.KK = &op
	case slotN:
		o.N = &op
	}
}

// Word parses the bound operands and combines them with the base word.
func (o *Opcode) Word() (uint16, error) {
	fields := []struct {
		s     slot
		op    *Operand
		max   uint16
		shift uint
	}{
		{slotVX, o.VX, chip8.MaxNibble, 8},
		{slotVY, o.VY, chip8.MaxNibble, 4},
		{slotNNN, o.NNN, chip8.MaxAddress, 0},
		{slotKK, o.KK, chip8.MaxByte, 0},
		{slotN, o.N, chip8.MaxNibble, 0},
	}

	var used slot
	for _, f := range fields {
		if f.op != nil {
			used |= f.s
		}
	}
	if !validSlots[used] {
		return 0, errors.Wrapf(ErrInvalidOpcode, "%s", o)
	}

	word := o.Base
	for _, f := range fields {
		if f.op == nil {
			continue
		}
		val, err := f.op.Value()
		if err != nil {
			return 0, err
		}
		if val > f.max {
			return 0, errors.Wrapf(ErrInvalidOpcode, "%q out of range (max %#x)", f.op.Raw, f.max)
		}
		word |= val << f.shift
	}
	return word, nil
}

func (o *Opcode) String() string {
	parts := []string{fmt.Sprintf("base: %#06x", o.Base)}
	for _, f := range []struct {
		name string
		op   *Operand
	}{
		{"vx", o.VX}, {"vy", o.VY}, {"nnn", o.NNN}, {"kk", o.KK}, {"n", o.N},
	} {
		if f.op != nil {
			parts = append(parts, f.name+": "+f.op.Raw)
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
