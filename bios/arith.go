package bios

import (
	"math"

	"gbahle/memory"
)

// handleDiv implements BIOS SWI 0x06 (spec.md §4.2): Div(num=r0, denom=r1).
func (d *Dispatcher) handleDiv(cpu CPU) {
	r := cpu.Regs()
	d.doDiv(cpu, int32(r.R0()), int32(r.R1()))
}

// handleDivArm implements BIOS SWI 0x07, the same routine with the
// numerator and denominator registers swapped (spec.md §4.1's table).
func (d *Dispatcher) handleDivArm(cpu CPU) {
	r := cpu.Regs()
	d.doDiv(cpu, int32(r.R1()), int32(r.R0()))
}

// doDiv performs the signed division described in spec.md §4.2. Go's native
// / and % already truncate toward zero and give the remainder the sign of
// the dividend, so the nonzero branch is a direct translation; the
// divide-by-zero branch replicates the BIOS's documented fallback instead
// of trapping.
func (d *Dispatcher) doDiv(cpu CPU, num, denom int32) {
	r := cpu.Regs()
	if denom == 0 {
		sign := int32(1)
		if num < 0 {
			sign = -1
		}
		d.note(kindGameError, "Div: divide by zero (num=%d)\n%s", num, DumpRegisters(r))
		r.SetR0(uint32(sign))
		r.SetR1(uint32(num))
		r.SetR3(1)
		return
	}
	quot := num / denom
	rem := num % denom
	r.SetR0(uint32(quot))
	r.SetR1(uint32(rem))
	r.SetR3(uint32(abs32(quot)))
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// handleSqrt implements BIOS SWI 0x08: r0 <- integer sqrt(r0), via Newton's
// method on the unsigned word in r0.
func (d *Dispatcher) handleSqrt(cpu CPU) {
	r := cpu.Regs()
	r.SetR0(isqrt(r.R0()))
}

func isqrt(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	x := n
	y := x/2 + x%2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// handleArcTan2 implements BIOS SWI 0x0A (spec.md §4.1): r0 is treated as a
// signed 1.14 fixed-point x coordinate, r1 as the matching y, and the
// result is the angle scaled so that a full turn is 0x10000.
func (d *Dispatcher) handleArcTan2(cpu CPU) {
	r := cpu.Regs()
	x := float64(int16(r.R0())) / 16384
	y := float64(int16(r.R1())) / 16384
	theta := math.Atan2(y, x) * (0x10000 / (2 * math.Pi))
	r.SetR0(uint32(int32(theta)) & 0xFFFF)
}

// handleMidiKey2Freq implements BIOS SWI 0x1F (spec.md §4.4). r0 points to
// a structure whose word at offset 4 holds the base frequency; r1 is an
// integer semitone offset and r2 a fractional semitone in 8.8 fixed point.
func (d *Dispatcher) handleMidiKey2Freq(cpu CPU) {
	r := cpu.Regs()
	base := cpu.Bus().Load32(r.R0()+4, memory.AccessNonSeq)
	semitone := int32(r.R1())
	frac := int32(r.R2())

	exponent := (180.0 - float64(semitone) - float64(frac)/256.0) / 12.0
	freq := float64(base) / math.Pow(2, exponent)

	r.SetR0(uint32(int64(freq)))
}
