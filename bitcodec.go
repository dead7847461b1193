// bitcodec.go implements conversions between the 20-bit pirate-binary
// representation and index-tuple form. Functions in this file expect valid
// bet binaries (at most one bit set per arena nibble) and do not validate
// multi-bit collisions.

package nfc

import "github.com/nfc-go/nfc/bitutil"

// PirateBinary returns the binary with only the given pirate's bit set, or
// 0 if index is 0 ("no pick in this arena").
//
// Arena 0 occupies the high nibble, so pirate 1 of arena 0 is bit 19.
func PirateBinary(index, arena uint8) uint32 {
	if index == 0 {
		return 0
	}
	return 1 << (19 - (uint32(index) - 1 + uint32(arena)*4))
}

// PiratesBinary packs a full 5-tuple of pirate indices into one binary.
func PiratesBinary(indices BetIndices) uint32 {
	var bin uint32
	for arena, index := range indices {
		bin |= PirateBinary(index, uint8(arena))
	}
	return bin
}

// BinaryToIndices unpacks a bet binary into its index-tuple form. For each
// arena the selected pirate is recovered from the position of the one set
// bit within the arena's nibble; an empty nibble yields index 0.
func BinaryToIndices(binary uint32) BetIndices {
	var indices BetIndices
	for arena, mask := range BitMasks {
		group := binary & mask
		if group == 0 {
			continue
		}
		indices[arena] = 4 - uint8(bitutil.BitScan(group)%4)
	}
	return indices
}

// BetsIndicesToBetBinaries converts a list of index-tuples into binaries.
func BetsIndicesToBetBinaries(betsIndices []BetIndices) []uint32 {
	binaries := make([]uint32, len(betsIndices))
	for i, indices := range betsIndices {
		binaries[i] = PiratesBinary(indices)
	}
	return binaries
}

// BetBinariesToBetIndices converts a list of binaries into index-tuples.
func BetBinariesToBetIndices(binaries []uint32) []BetIndices {
	betsIndices := make([]BetIndices, len(binaries))
	for i, binary := range binaries {
		betsIndices[i] = BinaryToIndices(binary)
	}
	return betsIndices
}
