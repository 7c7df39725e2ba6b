package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRLE_Scenario(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000A30) // signature 0x30, remaining 10
	bus.writeBytes(testSrcBase+4, []byte{
		0x82, 'A', // compressed: length=(0x82&0x7F)+3=5, repeat 'A'
		0x02, 'B', 'C', 'D', // uncompressed: length=2+1=3, literal "BCD"
		0x81, 'E', // compressed: length=(0x81&0x7F)+3=4, clamped to the 2 bytes remaining
	})

	newSrc, newDest := DecodeRLE(bus, log, testSrcBase, testDestBase, Width8)

	assert.Equal(t, []byte("AAAAABCDEE"), bus.bytes(testDestBase, 10))
	assert.Equal(t, testSrcBase+4+8, newSrc)
	// padding = (4-10)&3 = 2: the declared length isn't 4-byte aligned, so
	// two zero bytes round the destination up.
	assert.Equal(t, []byte{0, 0}, bus.bytes(testDestBase+10, 2))
	assert.Equal(t, testDestBase+12, newDest)
}

func TestDecodeRLE_PadsToFourByteBoundary(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	// remaining = 5 -> padding = (4-5)&3 = 3
	bus.Store32(testSrcBase, 0, 0x00000530)
	bus.writeBytes(testSrcBase+4, []byte{0x04, 'H', 'E', 'L', 'L', 'O'})

	_, newDest := DecodeRLE(bus, log, testSrcBase, testDestBase, Width8)

	assert.Equal(t, []byte("HELLO"), bus.bytes(testDestBase, 5))
	assert.Equal(t, []byte{0, 0, 0}, bus.bytes(testDestBase+5, 3))
	assert.Equal(t, testDestBase+8, newDest)
}

func TestDecodeRLE_Width16Coalesces(t *testing.T) {
	bus := newFakeBus()
	log := noopLogger{}

	bus.Store32(testSrcBase, 0, 0x00000430)
	bus.writeBytes(testSrcBase+4, []byte{0x83, 'Z'}) // length (3&0x7f)+3=6... clamp by remaining=4

	_, newDest := DecodeRLE(bus, log, testSrcBase, testDestBase, Width16)

	assert.Equal(t, uint16('Z')|uint16('Z')<<8, bus.LoadU16(testDestBase, 0))
	assert.Equal(t, uint16('Z')|uint16('Z')<<8, bus.LoadU16(testDestBase+2, 0))
	assert.Equal(t, testDestBase+4, newDest)
}
