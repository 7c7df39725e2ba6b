package codec

import (
	"gbahle/memory"
)

// DestWriter is the width-aware destination cursor shared by the LZ77 and
// RLE decoders (spec.md §4.5 "Width handling", §4.7). At Width8 it stores
// each byte directly; at Width16 (used for targets such as VRAM that
// forbid 8-bit stores) it coalesces pairs of bytes into halfwords.
//
// The destination pointer always advances by 1 per byte regardless of
// width, matching spec.md's "The destination pointer advances by 1 on
// every byte in either mode."
type DestWriter struct {
	bus     memory.Bus
	log     destLogger
	dest    uint32
	width   Width
	scratch uint16 // zero-initialized per spec.md §9, so an odd starting dest is deterministic
	checked bool
}

// NewDestWriter constructs a DestWriter starting at dest.
func NewDestWriter(bus memory.Bus, log destLogger, dest uint32, width Width) *DestWriter {
	return &DestWriter{bus: bus, log: log, dest: dest, width: width}
}

// Dest returns the current destination pointer.
func (w *DestWriter) Dest() uint32 { return w.dest }

// PutByte writes one byte to the destination and advances the cursor by 1.
func (w *DestWriter) PutByte(b byte) {
	if !w.checked {
		checkDestination(w.log, w.dest)
		w.checked = true
	}
	switch w.width {
	case Width16:
		if w.dest%2 == 0 {
			w.scratch = uint16(b)
		} else {
			w.scratch = (w.scratch & 0x00FF) | (uint16(b) << 8)
			w.bus.Store16(w.dest^1, memory.AccessSeq, w.scratch)
		}
	default:
		w.bus.Store8(w.dest, memory.AccessSeq, b)
	}
	w.dest++
}

// PadZero writes n zero bytes, used by the RLE decoder to round the
// destination up to a 4-byte boundary (spec.md §4.7).
func (w *DestWriter) PadZero(n int) {
	for range n {
		w.PutByte(0)
	}
}
