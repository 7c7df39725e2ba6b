package bios

import (
	"github.com/davecgh/go-spew/spew"

	"gbahle/regs"
)

// DumpRegisters renders the full 16-register guest state for diagnostics,
// grounded on cpu/debugger.go's spew.Sdump(Opcodes[...]) call: a GAME_ERROR
// log line can append this so a malformed-argument report carries the full
// register state rather than just the offending value.
func DumpRegisters(f *regs.File) string {
	snap := f.Snapshot()
	return spew.Sdump(snap)
}
