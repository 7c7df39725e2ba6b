package codec

import (
	"fmt"

	"gbahle/memory"
)

// fakeBus is a minimal in-memory implementation of memory.Bus for tests. It
// is sparse (backed by a map) so tests can use realistic GBA addresses
// (e.g. 0x02000000) without allocating a full address space.
type fakeBus struct {
	mem map[uint32]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: make(map[uint32]byte)}
}

func (b *fakeBus) Load8(addr uint32, _ memory.Access) int8   { return int8(b.mem[addr]) }
func (b *fakeBus) LoadU8(addr uint32, _ memory.Access) uint8 { return b.mem[addr] }

func (b *fakeBus) Load16(addr uint32, _ memory.Access) int16 {
	return int16(b.LoadU16(addr, 0))
}

func (b *fakeBus) LoadU16(addr uint32, _ memory.Access) uint16 {
	return uint16(b.mem[addr]) | uint16(b.mem[addr+1])<<8
}

func (b *fakeBus) Load32(addr uint32, _ memory.Access) uint32 {
	return uint32(b.mem[addr]) | uint32(b.mem[addr+1])<<8 |
		uint32(b.mem[addr+2])<<16 | uint32(b.mem[addr+3])<<24
}

func (b *fakeBus) Store8(addr uint32, _ memory.Access, v uint8) {
	b.mem[addr] = v
}

func (b *fakeBus) Store16(addr uint32, _ memory.Access, v uint16) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
}

func (b *fakeBus) Store32(addr uint32, _ memory.Access, v uint32) {
	b.mem[addr] = byte(v)
	b.mem[addr+1] = byte(v >> 8)
	b.mem[addr+2] = byte(v >> 16)
	b.mem[addr+3] = byte(v >> 24)
}

func (b *fakeBus) bytes(addr uint32, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b.mem[addr+uint32(i)]
	}
	return out
}

func (b *fakeBus) writeBytes(addr uint32, data []byte) {
	for i, d := range data {
		b.mem[addr+uint32(i)] = d
	}
}

// noopLogger discards everything; used where tests don't care about log
// output (the precheck calls still fire, but assertions ignore them).
type noopLogger struct{}

func (noopLogger) GameError(string, ...any) {}
func (noopLogger) Warn(string, ...any)      {}

// recordingLogger captures GameError calls (formatted) for tests that assert
// on a specific warning/error being raised.
type recordingLogger struct {
	onGameError func(msg string)
}

func (r *recordingLogger) GameError(format string, args ...any) {
	if r.onGameError != nil {
		r.onGameError(fmt.Sprintf(format, args...))
	}
}

func (r *recordingLogger) Warn(string, ...any) {}
