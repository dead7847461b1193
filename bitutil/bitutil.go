// Package bitutil implements helpful bit utilities used to manipulate the
// 20-bit pirate-binary representation used throughout the round model.
package bitutil

// Precalculated De Bruijn-style magic used to form indices for the
// bitScanLookup array.
const BITSCAN_MAGIC uint32 = 0x077CB531

// Precalculated lookup table of LSB indices for 32 uints.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [32]int{
	0, 1, 28, 2, 29, 14, 24, 3,
	30, 22, 20, 15, 25, 17, 4, 8,
	31, 27, 13, 23, 21, 19, 16, 7,
	26, 12, 18, 6, 11, 5, 10, 9,
}

// BitScan returns the index of the Least Significant Bit (LSB) withing the binary.
// binary&-binary gives the LSB which is then run through the hashing scheme to index a lookup.
func BitScan(binary uint32) int { return bitScanLookup[binary&-binary*BITSCAN_MAGIC>>27] }

// PopLSB removes (pops) the least significant bit from binary and returns its index.
// If binary is empty, it returns -1.
func PopLSB(binary *uint32) int {
	if *binary == 0 {
		return -1
	}

	lsb := BitScan(*binary)
	*binary &= *binary - 1
	return lsb
}

// CountBits returns the number of bits set within binary.
func CountBits(binary uint32) int {
	var cnt int
	for binary > 0 {
		cnt++
		binary &= binary - 1
	}
	return cnt
}
