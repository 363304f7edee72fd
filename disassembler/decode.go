package disassembler

import (
	"github.com/Urethramancer/c8asm/chip8"
)

// unknownMnemonic is used for words that are not instructions. The word is
// rendered as data so the output still assembles to the same image.
const unknownMnemonic = "dw"

// registerOps maps the low nibble of an 8xyN opcode to its mnemonic.
var registerOps = map[uint16]string{
	chip8.OPLD & 0xF:   "ld",
	chip8.OPOR & 0xF:   "or",
	chip8.OPAND & 0xF:  "and",
	chip8.OPXOR & 0xF:  "xor",
	chip8.OPADD & 0xF:  "add",
	chip8.OPSUB & 0xF:  "sub",
	chip8.OPSHR & 0xF:  "shr",
	chip8.OPSUBN & 0xF: "subn",
	chip8.OPSHL & 0xF:  "shl",
}

// Decode returns the mnemonic and operand text for a single opcode. Words that
// are not instructions decode as a dw directive.
func Decode(op uint16) (string, string) {
	return decode(op, hexAddress)
}

// decode is Decode with a custom renderer for address operands.
func decode(op uint16, addr func(uint16) string) (string, string) {
	x := (op >> 8) & 0xF
	y := (op >> 4) & 0xF
	n := op & 0xF
	kk := op & 0xFF
	nnn := op & 0xFFF

	switch op & 0xF000 {
	case 0x0000:
		return decodeSystem(op, addr)
	case chip8.OPJP:
		return "jp", addr(nnn)
	case chip8.OPCALL:
		return "call", addr(nnn)
	case chip8.OPSEi:
		return "se", join(reg(x), byteImm(kk))
	case chip8.OPSNEi:
		return "sne", join(reg(x), byteImm(kk))
	case 0x5000:
		switch op & 0xF00F {
		case chip8.OPSE:
			return "se", join(reg(x), reg(y))
		case chip8.OPSAVEXY:
			return "ld", join(reg(x), reg(y), "i")
		case chip8.OPLOADXY:
			return "ld", join("i", reg(x), reg(y))
		}
	case chip8.OPLDi:
		return "ld", join(reg(x), byteImm(kk))
	case chip8.OPADDi:
		return "add", join(reg(x), byteImm(kk))
	case chip8.OPLD:
		if mn, ok := registerOps[n]; ok {
			return mn, join(reg(x), reg(y))
		}
	case chip8.OPSNE:
		if n == 0 {
			return "sne", join(reg(x), reg(y))
		}
	case chip8.OPLDI:
		return "ld", join("i", addr(nnn))
	case chip8.OPJPV0:
		return "jp", join("v0", addr(nnn))
	case chip8.OPRND:
		return "rnd", join(reg(x), byteImm(kk))
	case chip8.OPDRW:
		return "drw", join(reg(x), reg(y), nibble(n))
	case 0xE000:
		switch op & 0xF0FF {
		case chip8.OPSKP:
			return "skp", reg(x)
		case chip8.OPSKNP:
			return "sknp", reg(x)
		}
	case 0xF000:
		return decodeSpecial(op)
	}
	return unknownMnemonic, wordImm(op)
}

// decodeSystem handles the 0nnn family: screen and mode controls, plus SYS.
func decodeSystem(op uint16, addr func(uint16) string) (string, string) {
	switch op {
	case chip8.OPCLS:
		return "cls", ""
	case chip8.OPRET:
		return "ret", ""
	case chip8.OPSCR:
		return "scr", ""
	case chip8.OPSCL:
		return "scl", ""
	case chip8.OPEXIT:
		return "exit", ""
	case chip8.OPLOW:
		return "low", ""
	case chip8.OPHIGH:
		return "high", ""
	}
	if op&0xFFF0 == chip8.OPSCD {
		return "scd", nibble(op & 0xF)
	}
	return "sys", addr(op & 0xFFF)
}

// decodeSpecial handles the Fx family, which moves values between a register
// and the timers, I, memory and the key pad.
func decodeSpecial(op uint16) (string, string) {
	x := reg((op >> 8) & 0xF)
	switch op & 0xF0FF {
	case chip8.OPLDVxDT:
		return "ld", join(x, "dt")
	case chip8.OPLDVxK:
		return "ld", join(x, "k")
	case chip8.OPLDDTVx:
		return "ld", join("dt", x)
	case chip8.OPLDSTVx:
		return "ld", join("st", x)
	case chip8.OPADDIVx:
		return "add", join("i", x)
	case chip8.OPLDFVx:
		return "ld", join("f", x)
	case chip8.OPLDHFVx:
		return "ld", join("hf", x)
	case chip8.OPLDBVx:
		return "ld", join("b", x)
	case chip8.OPLDIVx:
		return "ld", join("[i]", x)
	case chip8.OPLDVxI:
		return "ld", join(x, "[i]")
	case chip8.OPLDRVx:
		return "ld", join("r", x)
	case chip8.OPLDVxR:
		return "ld", join(x, "r")
	}
	return unknownMnemonic, wordImm(op)
}
