package codec

import (
	"gbahle/memory"
)

// DecodeLZ77 implements BIOS SWI 0x11/0x12 (spec.md §4.5). src must point at
// the header word; dest is the first guest address to write decompressed
// output to. width selects byte-wise (Width8) or halfword-coalesced
// (Width16) destination stores.
//
// It returns the post-consumption source pointer and the post-production
// destination pointer, which the caller (bios package) writes back into r0
// and r1 per spec.md §3's invariants.
func DecodeLZ77(bus memory.Bus, log destLogger, src, dest uint32, width Width) (newSrc, newDest uint32) {
	header := ParseHeader(bus, src)
	remaining := header.Remaining

	r := NewSrcReader(bus, log, src+4)
	w := NewDestWriter(bus, log, dest, width)

	for remaining > 0 {
		flag := r.ReadByte()
		for bit := 7; bit >= 0 && remaining > 0; bit-- {
			if flag&(1<<uint(bit)) == 0 {
				w.PutByte(r.ReadByte())
				remaining--
				continue
			}

			b0 := r.ReadByte()
			b1 := r.ReadByte()
			disp := (uint32(b0&0x0F) << 8) | uint32(b1)
			length := uint32(b0>>4) + 3

			readCursor := w.Dest() - disp - 1
			for i := uint32(0); i < length && remaining > 0; i++ {
				b := bus.LoadU8(readCursor, memory.AccessSeq)
				w.PutByte(b)
				readCursor++
				remaining--
			}
		}
	}

	return r.Src(), w.Dest()
}
