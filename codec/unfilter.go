package codec

import (
	"gbahle/memory"
)

// DecodeUnFilter implements BIOS SWI 0x16/0x17/0x18 (spec.md §4.8), the
// differential "UnFilter" decoder. inWidth and outWidth are each Width8 or
// Width16; only (1,1), (1,2), (2,2) are meaningful combinations.
//
// For the (1,2) case (SWI 0x17), two consecutive 8-bit cumulative diffs are
// packed into a single 16-bit store: this is the literal byte-pairing
// behavior spec.md §4.8 describes via the scratch-halfword shift-and-OR,
// rather than a naive 8-to-16 zero-extension of every sample. Only every
// other source byte yields a physical write, and remaining/dest account
// for exactly the physical bytes produced, which keeps the invariant in
// spec.md §8 ("destination bytes written equals the header's declared
// length") exactly satisfiable for an even-length stream.
func DecodeUnFilter(bus memory.Bus, log destLogger, src, dest uint32, inWidth, outWidth Width) (newSrc, newDest uint32) {
	base := src &^ 3
	header := ParseHeader(bus, base)
	remaining := int64(header.Remaining)

	r := NewSrcReader(bus, log, base+4)
	destPtr := dest
	if remaining > 0 {
		checkDestination(log, destPtr)
	}

	var old uint32
	var scratch uint16
	iter := 0

	inMask := uint32(0xFF)
	if inWidth == Width16 {
		inMask = 0xFFFF
	}

	for remaining > 0 {
		var raw uint32
		if inWidth == Width8 {
			raw = uint32(r.ReadByte())
		} else {
			raw = uint32(r.ReadU16())
		}
		newVal := (old + raw) & inMask
		old = newVal

		switch {
		case outWidth > inWidth:
			scratch = (scratch >> 8) | (uint16(newVal) << 8)
			if iter%2 == 1 {
				bus.Store16(destPtr, memory.AccessSeq, scratch)
				destPtr += 2
				remaining -= 2
			}
		case outWidth == Width8:
			bus.Store8(destPtr, memory.AccessSeq, uint8(newVal))
			destPtr++
			remaining--
		default:
			bus.Store16(destPtr, memory.AccessSeq, uint16(newVal))
			destPtr += 2
			remaining -= 2
		}
		iter++
	}

	return r.Src(), destPtr
}
