package assembler

import "github.com/Urethramancer/c8asm/chip8"

// moveTable holds the LD forms. The special registers are matched by
// spelling and must come before the plain immediate forms.
var moveTable = map[string][]encoding{
	"LD": {
		form(chip8.OPLD, shape(reg, reg), slotVX, slotVY),
		form(chip8.OPLDVxR, shape(reg, kw("R")), slotVX, slotNone),
		form(chip8.OPLDVxDT, shape(reg, kw("DT")), slotVX, slotNone),
		form(chip8.OPLDVxK, shape(reg, kw("K")), slotVX, slotNone),
		form(chip8.OPLDVxI, shape(reg, kw("[I]")), slotVX, slotNone),
		form(chip8.OPLDi, shape(reg, imm), slotVX, slotKK),

		form(chip8.OPLDHFVx, shape(kw("HF"), reg), slotNone, slotVX),
		form(chip8.OPLDRVx, shape(kw("R"), reg), slotNone, slotVX),
		form(chip8.OPLDSTVx, shape(kw("ST"), reg), slotNone, slotVX),
		form(chip8.OPLDFVx, shape(kw("F"), reg), slotNone, slotVX),
		form(chip8.OPLDBVx, shape(kw("B"), reg), slotNone, slotVX),
		form(chip8.OPLDIVx, shape(kw("[I]"), reg), slotNone, slotVX),
		form(chip8.OPLDDTVx, shape(kw("DT"), reg), slotNone, slotVX),
		form(chip8.OPLDI, shape(kw("I"), imm), slotNone, slotNNN),

		// Register range transfers.
		form(chip8.OPSAVEXY, shape(reg, reg, kw("I")), slotVX, slotVY, slotNone),
		form(chip8.OPLOADXY, shape(kw("I"), reg, reg), slotNone, slotVX, slotVY),
	},
}
