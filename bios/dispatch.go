package bios

import (
	"gbahle/biolog"
)

// swiHandler pairs a handler function with the name logged for stub calls
// and diagnostics, mirroring cpu.Opcode's Name field ("for debugger").
type swiHandler struct {
	Name string
	Fn   func(d *Dispatcher, cpu CPU)
}

// Dispatcher is the SWI entry point named in spec.md §6. It holds no state
// of its own beyond a logger — every register and memory access goes
// through the CPU supplied to Invoke, so a single Dispatcher is safe to
// share across independent CPU instances (spec.md §5's re-entrancy
// requirement).
type Dispatcher struct {
	log *biolog.Logger
}

// New constructs a Dispatcher. log may be nil, in which case diagnostics are
// discarded (biolog.Logger is nil-safe).
func New(log *biolog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Invoke is the SWI entry point: immediate is the 8-bit SWI number. If cpu
// reports full-BIOS mode, the dispatcher raises a real SWI exception and
// returns without otherwise touching guest state.
func (d *Dispatcher) Invoke(cpu CPU, immediate uint32) {
	if cpu.FullBIOS() {
		d.note(kindPassthrough, "full-BIOS passthrough for SWI %#02x", byte(immediate))
		cpu.RaiseSWI()
		return
	}

	imm := byte(immediate)
	h, ok := handlers[imm]
	if !ok {
		d.note(kindStub, "unhandled SWI %#02x", imm)
		return
	}
	h.Fn(d, cpu)
}

// Invoke32 is the 32-bit-mode variant named in spec.md §6: it right-shifts
// the immediate by 16 before delegating to Invoke.
func (d *Dispatcher) Invoke32(cpu CPU, immediate uint32) {
	d.Invoke(cpu, immediate>>16)
}

func (d *Dispatcher) note(kind errKind, format string, args ...any) {
	switch kind {
	case kindStub:
		d.log.Stub(format, args...)
	case kindGameError:
		d.log.GameError(format, args...)
	case kindPassthrough:
		d.log.Info(format, args...)
	}
}

func stub(name string) swiHandler {
	return swiHandler{
		Name: name,
		Fn: func(d *Dispatcher, cpu CPU) {
			d.note(kindStub, "%s: stubbed, no-op", name)
		},
	}
}

// handlers is the dispatch table, directly descended from cpu.Opcodes: a
// byte-indexed map from SWI immediate to the handler that emulates it.
var handlers = map[byte]swiHandler{
	0x01: stub("RegisterRamReset"),
	0x02: {"Halt", func(d *Dispatcher, cpu CPU) { cpu.Halt() }},
	0x03: stub("Stop"),
	0x04: {"IntrWait", delegateToRealSWI},
	0x05: {"VBlankIntrWait", delegateToRealSWI},
	0x06: {"Div", (*Dispatcher).handleDiv},
	0x07: {"DivArm", (*Dispatcher).handleDivArm},
	0x08: {"Sqrt", (*Dispatcher).handleSqrt},
	0x09: stub("SqrtFixed"),
	0x0A: {"ArcTan2", (*Dispatcher).handleArcTan2},
	0x0B: {"CpuSet", delegateToRealSWI},
	0x0C: {"CpuFastSet", delegateToRealSWI},
	0x0D: {"BiosChecksumThenBgAffineSet", (*Dispatcher).handleChecksumFallthrough},
	0x0E: {"BgAffineSet", (*Dispatcher).handleBgAffineSet},
	0x0F: {"ObjAffineSet", (*Dispatcher).handleObjAffineSet},
	0x11: {"LZ77UnCompWram", (*Dispatcher).handleLZ77Width8},
	0x12: {"LZ77UnCompVram", (*Dispatcher).handleLZ77Width16},
	0x13: {"HuffUnComp", (*Dispatcher).handleHuffman},
	0x14: {"RLUnCompWram", (*Dispatcher).handleRLEWidth8},
	0x15: {"RLUnCompVram", (*Dispatcher).handleRLEWidth16},
	0x16: {"Diff8bitUnFilterWram", (*Dispatcher).handleUnFilter8to8},
	0x17: {"Diff8bitUnFilterVram", (*Dispatcher).handleUnFilter8to16},
	0x18: {"Diff16bitUnFilter", (*Dispatcher).handleUnFilter16to16},
	0x19: stub("SoundBias"),
	0x1A: stub("SoundDriverInit"),
	0x1B: stub("SoundDriverMode"),
	0x1E: stub("SoundDriverVSyncOff"),
	0x1F: {"MidiKey2Freq", (*Dispatcher).handleMidiKey2Freq},
}

func delegateToRealSWI(d *Dispatcher, cpu CPU) {
	cpu.RaiseSWI()
}
