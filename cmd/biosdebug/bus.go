package main

import (
	"gbahle/memory"
)

// devBus is a sparse, full-address-space memory.Bus for the debugger, the
// same shape as mem.Bus's flat FakeRam generalized to the GBA's 32-bit
// space: a map rather than a fixed array, since the debugger only ever
// touches a handful of regions at a time.
type devBus struct {
	mem map[uint32]byte
}

func newDevBus() *devBus {
	return &devBus{mem: make(map[uint32]byte)}
}

func (b *devBus) Load8(addr uint32, _ memory.Access) int8   { return int8(b.mem[addr]) }
func (b *devBus) LoadU8(addr uint32, _ memory.Access) uint8 { return b.mem[addr] }

func (b *devBus) Load16(addr uint32, _ memory.Access) int16 {
	return int16(b.LoadU16(addr, 0))
}

func (b *devBus) LoadU16(addr uint32, _ memory.Access) uint16 {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *devBus) Load32(addr uint32, _ memory.Access) uint32 {
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 |
		uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24
}

func (b *devBus) Store8(addr uint32, _ memory.Access, v uint8) {
	b.mem[addr] = v
}

func (b *devBus) Store16(addr uint32, _ memory.Access, v uint16) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
}

func (b *devBus) Store32(addr uint32, _ memory.Access, v uint32) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
	b.mem[addr+2] = byte(v >> 16)
	b.mem[addr+3] = byte(v >> 24)
}

func (b *devBus) writeBytes(addr uint32, data []byte) {
	for i, d := range data {
		b.mem[addr+uint32(i)] = d
	}
}

// page renders 16 bytes starting at addr, in the same style as
// cpu/debugger.go's renderPage, but over a sparse map.
func (b *devBus) page(addr uint32) []byte {
	out := make([]byte, 16)
	for i := range out {
		out[i] = b.mem[addr+uint32(i)]
	}
	return out
}
