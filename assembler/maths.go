package assembler

import "github.com/Urethramancer/c8asm/chip8"

// mathsTable holds the arithmetic, shift and random instructions.
var mathsTable = map[string][]encoding{
	"ADD": {
		form(chip8.OPADDi, shape(reg, imm), slotVX, slotKK),
		form(chip8.OPADDIVx, shape(kw("I"), reg), slotNone, slotVX),
		form(chip8.OPADD, shape(reg, reg), slotVX, slotVY),
	},
	"SUB": {
		form(chip8.OPSUB, shape(reg, reg), slotVX, slotVY),
	},
	"SUBN": {
		form(chip8.OPSUBN, shape(reg, reg), slotVX, slotVY),
	},
	"SHR": {
		form(chip8.OPSHR, shape(reg), slotVX),
		form(chip8.OPSHR, shape(reg, reg), slotVX, slotVY),
	},
	"SHL": {
		form(chip8.OPSHL, shape(reg), slotVX),
		form(chip8.OPSHL, shape(reg, reg), slotVX, slotVY),
	},
	"RND": {
		form(chip8.OPRND, shape(reg, imm), slotVX, slotKK),
	},
}
