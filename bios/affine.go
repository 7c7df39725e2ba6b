package bios

import (
	"math"

	"gbahle/memory"
)

// bgAffineInputSize and bgAffineOutputSize are the per-iteration block
// sizes BgAffineSet reads from r0 and writes to r1 (spec.md §4.3).
const (
	bgAffineInputSize  = 20
	bgAffineOutputSize = 16
	objAffineInputSize = 8
)

// handleBgAffineSet implements BIOS SWI 0x0E.
func (d *Dispatcher) handleBgAffineSet(cpu CPU) {
	d.doBgAffineSet(cpu)
}

// doBgAffineSet is split out from handleBgAffineSet so that the 0x0D
// checksum handler can fall into it directly, replicating the observed
// BIOS bug described in spec.md §9.
func (d *Dispatcher) doBgAffineSet(cpu CPU) {
	r := cpu.Regs()
	bus := cpu.Bus()

	src := r.R0()
	dest := r.R1()
	count := r.R2()

	for i := uint32(0); i < count; i++ {
		ox := fixed248ToFloat(int32(bus.Load32(src, memory.AccessSeq)))
		oy := fixed248ToFloat(int32(bus.Load32(src+4, memory.AccessSeq)))
		cx := float64(bus.Load16(src+8, memory.AccessSeq))
		cy := float64(bus.Load16(src+10, memory.AccessSeq))
		sx := fixed88ToFloat(bus.Load16(src+12, memory.AccessSeq))
		sy := fixed88ToFloat(bus.Load16(src+14, memory.AccessSeq))
		theta := bus.LoadU16(src+16, memory.AccessSeq)

		a, b, c, dd := rotScale(sx, sy, theta)
		rx := ox - (a*cx + b*cy)
		ry := oy - (c*cx + dd*cy)

		bus.Store16(dest, memory.AccessSeq, floatToFixed88(a))
		bus.Store16(dest+2, memory.AccessSeq, floatToFixed88(b))
		bus.Store16(dest+4, memory.AccessSeq, floatToFixed88(c))
		bus.Store16(dest+6, memory.AccessSeq, floatToFixed88(dd))
		bus.Store32(dest+8, memory.AccessSeq, floatToFixed248(rx))
		bus.Store32(dest+12, memory.AccessSeq, floatToFixed248(ry))

		src += bgAffineInputSize
		dest += bgAffineOutputSize
	}

	r.SetR0(src)
	r.SetR1(dest)
}

// handleObjAffineSet implements BIOS SWI 0x0F. Unlike BgAffineSet it has no
// translation component and writes its four output cells spaced r3 bytes
// apart, matching OAM's interleaved rotation/scale parameter layout
// (spec.md §4.3).
func (d *Dispatcher) handleObjAffineSet(cpu CPU) {
	r := cpu.Regs()
	bus := cpu.Bus()

	src := r.R0()
	dest := r.R1()
	count := r.R2()
	stride := r.R3()

	for i := uint32(0); i < count; i++ {
		sx := fixed88ToFloat(bus.Load16(src, memory.AccessSeq))
		sy := fixed88ToFloat(bus.Load16(src+2, memory.AccessSeq))
		theta := bus.LoadU16(src+4, memory.AccessSeq)

		a, b, c, dd := rotScale(sx, sy, theta)

		bus.Store16(dest, memory.AccessSeq, floatToFixed88(a))
		bus.Store16(dest+stride, memory.AccessSeq, floatToFixed88(b))
		bus.Store16(dest+2*stride, memory.AccessSeq, floatToFixed88(c))
		bus.Store16(dest+3*stride, memory.AccessSeq, floatToFixed88(dd))

		src += objAffineInputSize
		dest += 4 * stride
	}

	r.SetR0(src)
	r.SetR1(dest)
}

// rotScale composes the scale/rotation matrix shared by both affine
// solvers (spec.md §4.3's formula). theta's high byte is the angle in
// half-turn/128 units, per spec.md §3.
func rotScale(sx, sy float64, theta uint16) (a, b, c, d float64) {
	rad := float64(theta>>8) * math.Pi / 128
	sinT, cosT := math.Sincos(rad)
	a = sx * cosT
	b = -sx * sinT
	c = sy * sinT
	d = sy * cosT
	return
}

func fixed88ToFloat(v int16) float64   { return float64(v) / 256 }
func fixed248ToFloat(v int32) float64  { return float64(v) / 256 }
func floatToFixed88(v float64) uint16  { return uint16(int16(int32(v * 256))) }
func floatToFixed248(v float64) uint32 { return uint32(int32(v * 256)) }
