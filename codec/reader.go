package codec

import (
	"gbahle/memory"
)

// SrcReader is the source cursor shared by all four decoders. It logs (but
// never blocks on) a source address below working RAM, once, the first
// time a read occurs (spec.md §4.9, §9).
type SrcReader struct {
	bus     memory.Bus
	log     destLogger
	src     uint32
	checked bool
}

// NewSrcReader constructs a SrcReader starting at src.
func NewSrcReader(bus memory.Bus, log destLogger, src uint32) *SrcReader {
	return &SrcReader{bus: bus, log: log, src: src}
}

// Src returns the current source pointer.
func (r *SrcReader) Src() uint32 { return r.src }

func (r *SrcReader) precheck() {
	if !r.checked {
		checkSource(r.log, r.src)
		r.checked = true
	}
}

// ReadByte reads one byte and advances the source pointer by 1.
func (r *SrcReader) ReadByte() byte {
	r.precheck()
	b := r.bus.LoadU8(r.src, memory.AccessSeq)
	r.src++
	return b
}

// ReadU16 reads a little-endian halfword and advances the source pointer by 2.
func (r *SrcReader) ReadU16() uint16 {
	r.precheck()
	v := r.bus.LoadU16(r.src, memory.AccessSeq)
	r.src += 2
	return v
}

// ReadU32 reads a little-endian word and advances the source pointer by 4.
func (r *SrcReader) ReadU32() uint32 {
	r.precheck()
	v := r.bus.Load32(r.src, memory.AccessSeq)
	r.src += 4
	return v
}
