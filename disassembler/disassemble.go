// Package disassembler turns CHIP-8 machine code back into source that the
// assembler accepts.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/c8asm/chip8"
)

// LabelType defines the context of a label. Higher values win when an
// address is referenced in more than one way.
type LabelType int

const (
	// DataPointer is for an LD I target.
	DataPointer LabelType = iota
	// JumpTarget is for a JP target.
	JumpTarget
	// SubroutineEntry is for a CALL target.
	SubroutineEntry
)

// Instruction represents a single word of the image. Operands are decoded
// when rendering, once label names are known.
type Instruction struct {
	Op       uint16
	Mnemonic string
	IsCode   bool // Flag to mark as reachable code
}

// Disassemble decodes an image loaded at base. Words reachable from base are
// rendered as instructions and everything else as data.
func Disassemble(code []byte, base uint32) (string, error) {
	if len(code) == 0 {
		return "", nil
	}
	if uint64(base)+uint64(len(code)) > 0x10000 {
		return "", errors.Errorf("%d bytes at %#x run past the end of memory", len(code), base)
	}

	// Linear sweep over every whole word.
	instructions := make(map[uint32]*Instruction)
	for i, op := range chip8.BytesToWords(code[:len(code)&^1]) {
		addr := base + uint32(i*chip8.WordSize)
		mn, _ := Decode(op)
		instructions[addr] = &Instruction{Op: op, Mnemonic: mn}
	}

	// Control flow analysis.
	labels := make(map[uint32]LabelType)
	addLabel := func(addr uint32, lt LabelType) {
		if cur, ok := labels[addr]; !ok || lt > cur {
			labels[addr] = lt
		}
	}

	q := newQueue()
	q.push(base)
	for {
		addr, ok := q.pop()
		if !ok {
			break
		}

		inst, exists := instructions[addr]
		if !exists || inst.IsCode || inst.Mnemonic == unknownMnemonic {
			continue
		}
		inst.IsCode = true

		next := addr + chip8.WordSize
		target, lt, hasTarget := referencedAddress(inst.Op)
		if hasTarget {
			addLabel(target, lt)
		}

		switch flowOf(inst.Op) {
		case flowNext:
			q.push(next)
		case flowSkip:
			q.push(next)
			q.push(next + chip8.WordSize)
		case flowJump:
			q.push(target)
		case flowCall:
			q.push(target)
			q.push(next)
		}
	}

	isCode := func(addr uint32) bool {
		inst, ok := instructions[addr]
		return ok && inst.IsCode
	}

	// A label can only be placed at the start of an instruction or on data.
	end := base + uint32(len(code))
	for addr := range labels {
		if addr < base || addr >= end || (addr > base && isCode(addr-1)) {
			delete(labels, addr)
		}
	}

	operandName := func(a uint16) string {
		if lt, ok := labels[uint32(a)]; ok {
			return labelName(uint32(a), lt)
		}
		return hexAddress(a)
	}

	// Render the final output.
	var out strings.Builder
	for pc := base; pc < end; {
		if lt, ok := labels[pc]; ok {
			fmt.Fprintf(&out, "%s:\n", labelName(pc, lt))
		}

		if isCode(pc) {
			mn, ops := decode(instructions[pc].Op, operandName)
			if ops != "" {
				fmt.Fprintf(&out, "    %-8s %s\n", mn, ops)
			} else {
				fmt.Fprintf(&out, "    %s\n", mn)
			}
			pc += chip8.WordSize
			continue
		}

		// Data runs up to the next instruction or label.
		dataStart := pc
		pc++
		for pc < end && !isCode(pc) {
			if _, ok := labels[pc]; ok {
				break
			}
			pc++
		}
		out.WriteString(formatData(code[dataStart-base : pc-base]))
	}

	return out.String(), nil
}
