// Package bios implements the high-level emulation of the GBA BIOS
// software-interrupt layer: a single dispatcher that decodes an SWI
// immediate and routes it to a handler, mirroring the architectural side
// effects of the real BIOS ROM without executing it.
//
// Grounded on the teacher's cpu package: Dispatcher.Invoke plays the role
// of Cpu.tick's fetch-dispatch step, and the handlers map below is the
// direct descendant of cpu.Opcodes (a map[byte]struct{Name string; Fn...}
// dispatch table).
package bios

import (
	"gbahle/memory"
	"gbahle/regs"
)

// CPU is the external collaborator the dispatcher requires. It is supplied
// by the enclosing emulator; the core never constructs one and holds no
// state beyond what is passed in on each Invoke call.
type CPU interface {
	// Regs returns the guest register file. The dispatcher reads SWI
	// arguments from it and writes results back into it.
	Regs() *regs.File

	// Bus returns the guest memory bus used for every load/store the
	// core performs; the core never touches host memory directly.
	Bus() memory.Bus

	// RaiseSWI synthesizes a real SWI exception, used both for
	// full-BIOS passthrough and for SWIs this core delegates rather than
	// emulates (IntrWait family, CpuSet/CpuFastSet).
	RaiseSWI()

	// Halt delegates SWI 0x02 to the external halt routine.
	Halt()

	// FullBIOS reports whether the enclosing emulator wants every SWI
	// passed through to a real BIOS exception instead of HLE'd.
	FullBIOS() bool

	// BIOS returns the BIOS ROM image used by the checksum SWI.
	BIOS() Image
}
