package codec

import (
	"gbahle/mask"
	"gbahle/memory"
)

// bitReader pulls single bits, most-significant-bit first, out of a stream
// of 32-bit words read via a SrcReader -- the Huffman decoder's bitstream
// cursor (spec.md §4.6: "Read the bitstream in 32-bit words, MSB first").
type bitReader struct {
	r    *SrcReader
	word uint32
	left uint
}

func newBitReader(r *SrcReader) *bitReader {
	return &bitReader{r: r}
}

func (br *bitReader) nextBit() uint32 {
	if br.left == 0 {
		br.word = br.r.ReadU32()
		br.left = 32
	}
	br.left--
	return (br.word >> br.left) & 1
}

// DecodeHuffman implements BIOS SWI 0x13 (spec.md §4.6). src is aligned
// down to a 4-byte boundary before the header, tree-size byte, and tree are
// read. If the declared symbol width does not divide 32, the handler logs
// the misalignment and returns without modifying memory, per spec.md §7.
func DecodeHuffman(bus memory.Bus, log destLogger, src, dest uint32) (newSrc, newDest uint32) {
	base := src &^ 3
	header := ParseHeader(bus, base)
	width := HuffmanSymbolWidth(header.Signature)

	if width == 0 || 32%width != 0 {
		log.GameError("huffman: unimplemented unaligned symbol width %d", width)
		return src, dest
	}

	treeSize := bus.LoadU8(base+4, memory.AccessNonSeq)
	treeBase := base + 5
	bitstreamBase := treeBase + uint32(treeSize)*2 + 1

	r := NewSrcReader(bus, log, bitstreamBase)
	br := newBitReader(r)

	nodePtr := treeBase

	// nextSymbol descends the tree from the root for exactly one symbol,
	// resetting nodePtr to treeBase once a leaf is reached (spec.md §4.6:
	// "Reset node pointer to tree base").
	nextSymbol := func() uint32 {
		for {
			bit := br.nextBit()

			nodeByte := bus.LoadU8(nodePtr, memory.AccessNonSeq)
			offset := mask.NodeOffset(nodeByte)
			childAddr := (nodePtr &^ 1) + uint32(offset)*2 + 2

			var isLeaf bool
			var leafAddr uint32
			if bit == 1 {
				isLeaf = mask.RightIsLeaf(nodeByte)
				leafAddr = childAddr + 1
			} else {
				isLeaf = mask.LeftIsLeaf(nodeByte)
				leafAddr = childAddr
			}

			if !isLeaf {
				nodePtr = leafAddr
				continue
			}

			leafByte := bus.LoadU8(leafAddr, memory.AccessNonSeq)
			nodePtr = treeBase
			return uint32(leafByte) & ((1 << width) - 1)
		}
	}

	destPtr := dest
	if header.Remaining > 0 {
		checkDestination(log, destPtr)
	}

	// The main loop only ever produces whole 32-bit words; remaining is
	// rounded down to a multiple of 4 here so the final 1-3 bytes are
	// handled by the narrower trailing-partial-word path below instead of
	// overrunning the declared length with a full store32 (spec.md §4.6).
	main := header.Remaining &^ 3
	padding := header.Remaining - main

	var block uint32
	var bitsSeen uint

	for produced := uint32(0); produced < main; {
		symbol := nextSymbol()
		block |= symbol << bitsSeen
		bitsSeen += uint(width)

		if bitsSeen == 32 {
			bus.Store32(destPtr, memory.AccessSeq, block)
			destPtr += 4
			produced += 4
			block = 0
			bitsSeen = 0
		}
	}

	if padding > 0 {
		for bitsSeen < uint(padding)*8 {
			symbol := nextSymbol()
			block |= symbol << bitsSeen
			bitsSeen += uint(width)
		}
		for i := uint32(0); i < padding; i++ {
			bus.Store8(destPtr+i, memory.AccessSeq, byte(block>>(8*i)))
		}
		destPtr += padding
	}

	return r.Src(), destPtr
}
