package bios

import (
	"gbahle/codec"
)

// handleLZ77Width8 and handleLZ77Width16 implement BIOS SWI 0x11/0x12.
func (d *Dispatcher) handleLZ77Width8(cpu CPU)  { d.doLZ77(cpu, codec.Width8) }
func (d *Dispatcher) handleLZ77Width16(cpu CPU) { d.doLZ77(cpu, codec.Width16) }

func (d *Dispatcher) doLZ77(cpu CPU, width codec.Width) {
	r := cpu.Regs()
	newSrc, newDest := codec.DecodeLZ77(cpu.Bus(), d.log, r.R0(), r.R1(), width)
	r.SetR0(newSrc)
	r.SetR1(newDest)
	r.SetR3(0) // LZ77 additionally clears r3, per spec.md §3
}

// handleHuffman implements BIOS SWI 0x13.
func (d *Dispatcher) handleHuffman(cpu CPU) {
	r := cpu.Regs()
	newSrc, newDest := codec.DecodeHuffman(cpu.Bus(), d.log, r.R0(), r.R1())
	r.SetR0(newSrc)
	r.SetR1(newDest)
}

// handleRLEWidth8 and handleRLEWidth16 implement BIOS SWI 0x14/0x15.
func (d *Dispatcher) handleRLEWidth8(cpu CPU)  { d.doRLE(cpu, codec.Width8) }
func (d *Dispatcher) handleRLEWidth16(cpu CPU) { d.doRLE(cpu, codec.Width16) }

func (d *Dispatcher) doRLE(cpu CPU, width codec.Width) {
	r := cpu.Regs()
	newSrc, newDest := codec.DecodeRLE(cpu.Bus(), d.log, r.R0(), r.R1(), width)
	r.SetR0(newSrc)
	r.SetR1(newDest)
}

// handleUnFilter8to8, handleUnFilter8to16 and handleUnFilter16to16 implement
// BIOS SWI 0x16/0x17/0x18.
func (d *Dispatcher) handleUnFilter8to8(cpu CPU)   { d.doUnFilter(cpu, codec.Width8, codec.Width8) }
func (d *Dispatcher) handleUnFilter8to16(cpu CPU)  { d.doUnFilter(cpu, codec.Width8, codec.Width16) }
func (d *Dispatcher) handleUnFilter16to16(cpu CPU) { d.doUnFilter(cpu, codec.Width16, codec.Width16) }

func (d *Dispatcher) doUnFilter(cpu CPU, inWidth, outWidth codec.Width) {
	r := cpu.Regs()
	newSrc, newDest := codec.DecodeUnFilter(cpu.Bus(), d.log, r.R0(), r.R1(), inWidth, outWidth)
	r.SetR0(newSrc)
	r.SetR1(newDest)
}
