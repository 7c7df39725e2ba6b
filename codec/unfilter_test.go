package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUnFilter_Width8To8(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000480) // signature 0x80, remaining 4
	bus.writeBytes(testSrcBase+4, []byte{5, 3, 2, 1})

	newSrc, newDest := DecodeUnFilter(bus, log, testSrcBase, testDestBase, Width8, Width8)

	assert.Equal(t, []byte{5, 8, 10, 11}, bus.bytes(testDestBase, 4))
	assert.Equal(t, testSrcBase+8, newSrc)
	assert.Equal(t, testDestBase+4, newDest)
}

func TestDecodeUnFilter_Width16To16(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000480) // remaining 4 (two halfwords)
	bus.Store16(testSrcBase+4, 0, 5)
	bus.Store16(testSrcBase+6, 0, 3)

	newSrc, newDest := DecodeUnFilter(bus, log, testSrcBase, testDestBase, Width16, Width16)

	assert.Equal(t, uint16(5), bus.LoadU16(testDestBase, 0))
	assert.Equal(t, uint16(8), bus.LoadU16(testDestBase+2, 0))
	assert.Equal(t, testSrcBase+8, newSrc)
	assert.Equal(t, testDestBase+4, newDest)
}

// TestDecodeUnFilter_Width8To16Pairs covers the 1-byte-in, 2-byte-out case
// (SWI 0x17): two consecutive cumulative bytes are packed into one 16-bit
// store, and only the odd iteration commits a physical write.
func TestDecodeUnFilter_Width8To16Pairs(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000480) // remaining 4 (two output halfwords)
	bus.writeBytes(testSrcBase+4, []byte{5, 3, 2, 1})

	newSrc, newDest := DecodeUnFilter(bus, log, testSrcBase, testDestBase, Width8, Width16)

	// old sequence: 5, 8, 10, 11. First pair (5,8) packs low=5, high=8;
	// second pair (10,11) packs low=10, high=11.
	assert.Equal(t, uint16(0x0805), bus.LoadU16(testDestBase, 0))
	assert.Equal(t, uint16(0x0B0A), bus.LoadU16(testDestBase+2, 0))
	assert.Equal(t, testSrcBase+8, newSrc)
	assert.Equal(t, testDestBase+4, newDest)
}

// TestDecodeUnFilter_ChecksBadDestination covers spec.md §4.9: an
// unsupported destination region must log a GAME_ERROR, matching the other
// three decoders.
func TestDecodeUnFilter_ChecksBadDestination(t *testing.T) {
	bus := newFakeBus()

	var gameErrors []string
	log := &recordingLogger{onGameError: func(msg string) { gameErrors = append(gameErrors, msg) }}

	bus.Store32(testSrcBase, 0, 0x00000480)
	bus.writeBytes(testSrcBase+4, []byte{5, 3, 2, 1})

	const badDest uint32 = 0x08000000 // ROM: not EWRAM/IWRAM/VRAM

	DecodeUnFilter(bus, log, testSrcBase, badDest, Width8, Width8)

	assert.Len(t, gameErrors, 1)
}

func TestDecodeUnFilter_SourceAlignedDown(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000280) // remaining 2
	bus.writeBytes(testSrcBase+4, []byte{7, 4})

	// src passed in is misaligned by 1; the decoder must align it down to
	// the header word before reading.
	newSrc, newDest := DecodeUnFilter(bus, log, testSrcBase+1, testDestBase, Width8, Width8)

	assert.Equal(t, []byte{7, 11}, bus.bytes(testDestBase, 2))
	assert.Equal(t, testSrcBase+6, newSrc)
	assert.Equal(t, testDestBase+2, newDest)
}
