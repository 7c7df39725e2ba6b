// Package codec implements the four GBA BIOS decompression/transformation
// codecs used by the SWI layer: LZ77, Huffman, RLE, and UnFilter.
//
// All four decoders share a guest-memory I/O discipline (reads and writes
// go through a memory.Bus, never a host pointer), a destination-region
// precheck, and a compressed-stream header format (spec.md §3,
// "Compressed-stream header"). That shared discipline lives in this file
// and in reader.go/writer.go; each decoder's algorithm lives in its own
// file (lz77.go, huffman.go, rle.go, unfilter.go).
package codec

import (
	"gbahle/memory"
)

// Header is the parsed first word of every codec input stream: a one-byte
// signature and a 24-bit decompressed length.
type Header struct {
	Signature byte
	Remaining uint32
}

// Signature byte values (low byte of the header word). The low nibble of
// the UnFilter signature varies; only the top bit (0x80) is significant.
const (
	SignatureLZ77    byte = 0x10
	SignatureHuffman byte = 0x20
	SignatureRLE     byte = 0x30
	SignatureUnFilterMask byte = 0x80
)

// ParseHeader reads the 32-bit header word at addr and splits it into its
// signature byte and 24-bit decompressed length. The signature is assumed
// correct and is not verified (spec.md §3).
func ParseHeader(bus memory.Bus, addr uint32) Header {
	word := bus.Load32(addr, memory.AccessNonSeq)
	return Header{
		Signature: byte(word & 0xFF),
		Remaining: word >> 8,
	}
}

// HuffmanSymbolWidth extracts the symbol bit-width from the low nibble of a
// Huffman header's signature byte.
func HuffmanSymbolWidth(signature byte) byte {
	return signature & 0x0F
}

// Width describes the destination access granularity a decoder must use:
// byte stores for ordinary RAM, halfword-coalesced stores for VRAM and
// other 16-bit-only targets.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
)

// checkDestination logs (but never blocks on) an unsupported destination
// region, per spec.md §4.9. The decode always proceeds regardless of the
// outcome -- this function exists purely to centralize the log call shared
// by all four decoders.
func checkDestination(log destLogger, addr uint32) {
	if !memory.IsValidCodecDestination(addr) {
		log.GameError("codec destination %#x is not EWRAM/IWRAM/VRAM (region=%s)", addr, memory.ClassifyAddress(addr))
	}
}

// checkSource logs a source address that appears to point below working
// RAM (spec.md §4.9, §9 "source-below-BIOS warning without rejection").
func checkSource(log destLogger, addr uint32) {
	if memory.IsBelowWorkingRAM(addr) {
		log.Warn("codec source %#x is below working RAM base (region=%s)", addr, memory.ClassifyAddress(addr))
	}
}

// destLogger is the minimal logging surface the precheck functions need; it
// is satisfied by *biolog.Logger without this package importing biolog
// directly, keeping codec's dependency graph narrow.
type destLogger interface {
	GameError(format string, args ...any)
	Warn(format string, args ...any)
}
