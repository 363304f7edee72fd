package disassembler

import "github.com/Urethramancer/c8asm/chip8"

// flow describes where execution goes after an instruction.
type flow int

const (
	flowNext flow = iota // the next instruction
	flowSkip             // the next instruction, or the one after it
	flowJump             // the target only
	flowCall             // the target, then the next instruction
	flowStop             // nowhere known
)

// flowOf classifies op for the control flow pass.
func flowOf(op uint16) flow {
	switch op {
	case chip8.OPRET, chip8.OPEXIT:
		return flowStop
	}

	switch op & 0xF000 {
	case chip8.OPJP:
		return flowJump
	case chip8.OPCALL:
		return flowCall
	case chip8.OPJPV0:
		return flowStop
	case chip8.OPSEi, chip8.OPSNEi, chip8.OPSNE, 0xE000:
		return flowSkip
	case chip8.OPSE:
		// 5xy1 and 5xy2 are register range transfers.
		if op&0xF00F == chip8.OPSE {
			return flowSkip
		}
	}
	return flowNext
}

// referencedAddress returns the address an instruction names, and the kind of
// label that address deserves.
func referencedAddress(op uint16) (uint32, LabelType, bool) {
	nnn := uint32(op & chip8.MaxAddress)
	switch op & 0xF000 {
	case chip8.OPJP, chip8.OPJPV0:
		return nnn, JumpTarget, true
	case chip8.OPCALL:
		return nnn, SubroutineEntry, true
	case chip8.OPLDI:
		return nnn, DataPointer, true
	}
	return 0, 0, false
}

// addrQueue is a simple worklist queue for addresses to decode.
type addrQueue struct {
	items []uint32
	seen  map[uint32]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[uint32]bool)}
}

func (q *addrQueue) push(addr uint32) {
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (uint32, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}
