// hash.go implements the two textual encodings used to embed a portfolio in
// a URL: the base-26 bets hash (pirate selections) and the base-52 amounts
// hash (bet amounts). Both are byte-exact wire formats; see the decoding
// functions for the accepted alphabets.

package nfc

import "strings"

// amountLetters is the base-52 digit alphabet: a..z = 0..25, A..Z = 26..51.
const amountLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BetsHashValue encodes a list of index-tuples into the bets hash. The five
// tuples are flattened into one index stream, padded with a trailing 0 if
// its length is odd, and every index pair (m, a) becomes the letter
// 'a' + m*5 + a.
func BetsHashValue(betsIndices []BetIndices) string {
	flat := make([]uint8, 0, len(betsIndices)*ArenaCount+1)
	for _, indices := range betsIndices {
		flat = append(flat, indices[:]...)
	}
	if len(flat)%2 != 0 {
		flat = append(flat, 0)
	}

	var hash strings.Builder
	hash.Grow(len(flat) / 2)
	for i := 0; i < len(flat); i += 2 {
		hash.WriteByte('a' + flat[i]*5 + flat[i+1])
	}
	return hash.String()
}

// BetsHashToBetIndices decodes a bets hash back into index-tuples. The index
// stream is regrouped into chunks of five; a trailing partial chunk and
// all-zero chunks (both artifacts of the odd-length pad) are dropped.
func BetsHashToBetIndices(betsHash string) ([]BetIndices, error) {
	flat := make([]uint8, 0, len(betsHash)*2)
	for i := 0; i < len(betsHash); i++ {
		c := betsHash[i]
		if c < 'a' || c > 'y' {
			return nil, invalidInput("bets hash letter %q outside a..y", c)
		}
		v := c - 'a'
		flat = append(flat, v/5, v%5)
	}

	betsIndices := make([]BetIndices, 0, len(flat)/ArenaCount)
	for i := 0; i+ArenaCount <= len(flat); i += ArenaCount {
		var indices BetIndices
		copy(indices[:], flat[i:i+ArenaCount])
		if !indices.IsEmpty() {
			betsIndices = append(betsIndices, indices)
		}
	}
	return betsIndices, nil
}

// BetsHashToBetBinaries decodes a bets hash straight into bet binaries.
func BetsHashToBetBinaries(betsHash string) ([]uint32, error) {
	betsIndices, err := BetsHashToBetIndices(betsHash)
	if err != nil {
		return nil, err
	}
	return BetsIndicesToBetBinaries(betsIndices), nil
}

// BetsHashToBetsCount returns the number of bets encoded in a bets hash.
func BetsHashToBetsCount(betsHash string) (int, error) {
	betsIndices, err := BetsHashToBetIndices(betsHash)
	if err != nil {
		return 0, err
	}
	return len(betsIndices), nil
}

// BetAmountsToAmountsHash encodes a list of nullable bet amounts. Each
// amount v (a nil entry, or v < BetAmountMin, counts as 0) is mapped to
// w = v%BetAmountMax + BetAmountMax and emitted as three base-52 digits,
// most significant first.
func BetAmountsToAmountsHash(betAmounts []*uint32) string {
	var hash strings.Builder
	hash.Grow(len(betAmounts) * 3)
	for _, amount := range betAmounts {
		var v uint32
		if amount != nil && *amount >= BetAmountMin {
			v = *amount
		}
		w := v%BetAmountMax + BetAmountMax

		var triple [3]byte
		for i := 2; i >= 0; i-- {
			triple[i] = amountLetters[w%52]
			w /= 52
		}
		hash.Write(triple[:])
	}
	return hash.String()
}

// AmountsHashToBetAmounts decodes an amounts hash. Each digit triple with
// value t >= BetAmountMax stores the amount t - BetAmountMax; a triple below
// BetAmountMax decodes to nil ("omit").
func AmountsHashToBetAmounts(amountsHash string) ([]*uint32, error) {
	if len(amountsHash)%3 != 0 {
		return nil, invalidInput("amounts hash length %d is not a multiple of 3", len(amountsHash))
	}

	betAmounts := make([]*uint32, 0, len(amountsHash)/3)
	for i := 0; i < len(amountsHash); i += 3 {
		var t uint32
		for j := 0; j < 3; j++ {
			d := strings.IndexByte(amountLetters, amountsHash[i+j])
			if d < 0 {
				return nil, invalidInput("amounts hash letter %q outside a..zA..Z", amountsHash[i+j])
			}
			t = t*52 + uint32(d)
		}

		if t >= BetAmountMax {
			amount := t - BetAmountMax
			betAmounts = append(betAmounts, &amount)
		} else {
			betAmounts = append(betAmounts, nil)
		}
	}
	return betAmounts, nil
}
