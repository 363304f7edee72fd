package assembler

import "github.com/Urethramancer/c8asm/chip8"

var logicalTable = map[string][]encoding{
	"OR": {
		form(chip8.OPOR, shape(reg, reg), slotVX, slotVY),
	},
	"AND": {
		form(chip8.OPAND, shape(reg, reg), slotVX, slotVY),
	},
	"XOR": {
		form(chip8.OPXOR, shape(reg, reg), slotVX, slotVY),
	},
}
