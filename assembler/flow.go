package assembler

import "github.com/Urethramancer/c8asm/chip8"

// flowTable holds jumps, calls, returns and conditional skips.
var flowTable = map[string][]encoding{
	"SYS": {
		form(chip8.OPSYS, shape(imm), slotNNN),
	},
	"RET": {
		form(chip8.OPRET, shape()),
	},
	// JP V0, addr jumps relative to V0.
	"JP": {
		form(chip8.OPJPV0, shape(kw("V0"), imm), slotNone, slotNNN),
		form(chip8.OPJP, shape(imm), slotNNN),
	},
	"CALL": {
		form(chip8.OPCALL, shape(imm), slotNNN),
	},
	"SE": {
		form(chip8.OPSE, shape(reg, reg), slotVX, slotVY),
		form(chip8.OPSEi, shape(reg, imm), slotVX, slotKK),
	},
	"SNE": {
		form(chip8.OPSNE, shape(reg, reg), slotVX, slotVY),
		form(chip8.OPSNEi, shape(reg, imm), slotVX, slotKK),
	},
	"SKP": {
		form(chip8.OPSKP, shape(reg), slotVX),
	},
	"SKNP": {
		form(chip8.OPSKNP, shape(reg), slotVX),
	},
}
