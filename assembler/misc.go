package assembler

import "github.com/Urethramancer/c8asm/chip8"

// miscTable holds the display instructions, including the SUPER-CHIP
// screen and mode controls.
var miscTable = map[string][]encoding{
	"CLS":  {form(chip8.OPCLS, shape())},
	"DRW":  {form(chip8.OPDRW, shape(reg, reg, imm), slotVX, slotVY, slotN)},
	"SCD":  {form(chip8.OPSCD, shape(imm), slotN)},
	"SCR":  {form(chip8.OPSCR, shape())},
	"SCL":  {form(chip8.OPSCL, shape())},
	"EXIT": {form(chip8.OPEXIT, shape())},
	"LOW":  {form(chip8.OPLOW, shape())},
	"HIGH": {form(chip8.OPHIGH, shape())},
}
