package codec

import (
	"gbahle/memory"
)

// DecodeRLE implements BIOS SWI 0x14/0x15 (spec.md §4.7). Source is assumed
// 4-byte aligned. After the declared number of bytes has been produced, the
// destination is padded with zeroes up to a 4-byte boundary, honoring
// width.
func DecodeRLE(bus memory.Bus, log destLogger, src, dest uint32, width Width) (newSrc, newDest uint32) {
	header := ParseHeader(bus, src)
	remaining := header.Remaining
	padding := (4 - remaining) & 3

	r := NewSrcReader(bus, log, src+4)
	w := NewDestWriter(bus, log, dest, width)

	for remaining > 0 {
		flag := r.ReadByte()
		if flag&0x80 != 0 {
			length := uint32(flag&0x7F) + 3
			b := r.ReadByte()
			for i := uint32(0); i < length && remaining > 0; i++ {
				w.PutByte(b)
				remaining--
			}
		} else {
			length := uint32(flag) + 1
			for i := uint32(0); i < length && remaining > 0; i++ {
				w.PutByte(r.ReadByte())
				remaining--
			}
		}
	}

	w.PadZero(int(padding))

	return r.Src(), w.Dest()
}
