// table.go precomputes the full table of non-empty betting combinations.
// The enumeration order is load-bearing: builders select by argmax over ERs
// with index-stable tie-breaks, so rows must stay in the fixed lexicographic
// order with the last arena varying fastest.

package nfc

// RoundTable holds the 3,124 non-empty bet rows as parallel arrays.
type RoundTable struct {
	// Bins[i] is the bet binary of row i.
	Bins [RowCount]uint32
	// Probs[i] is the product of stds over the row's selected arenas.
	Probs [RowCount]float64
	// Odds[i] is the product of integer odds over the selected arenas.
	Odds [RowCount]uint32
	// ERs[i] = Probs[i] * Odds[i], the expected return per unit wagered.
	ERs [RowCount]float64
	// MaxBets[i] = ceil(1,000,000 / Odds[i]), the game's per-bet wager cap.
	MaxBets [RowCount]uint32
}

// NewRoundTable enumerates {0..4}^5 minus the empty tuple and fills every
// row from the probability matrix and the current odds. Arenas with index 0
// contribute a factor of 1 to both products.
func NewRoundTable(stds *ProbabilityMatrix, currentOdds *OddsMatrix) *RoundTable {
	t := &RoundTable{}

	row := 0
	for a := uint8(0); a <= 4; a++ {
		for b := uint8(0); b <= 4; b++ {
			for c := uint8(0); c <= 4; c++ {
				for d := uint8(0); d <= 4; d++ {
					for e := uint8(0); e <= 4; e++ {
						if a|b|c|d|e == 0 {
							continue
						}
						indices := BetIndices{a, b, c, d, e}

						prob := 1.0
						odds := uint32(1)
						for arena, index := range indices {
							if index == 0 {
								continue
							}
							prob *= stds[arena][index]
							odds *= uint32(currentOdds[arena][index])
						}

						t.Bins[row] = PiratesBinary(indices)
						t.Probs[row] = prob
						t.Odds[row] = odds
						t.ERs[row] = prob * float64(odds)
						t.MaxBets[row] = (neofoodclubPayoutCeiling + odds - 1) / odds
						row++
					}
				}
			}
		}
	}

	return t
}

// RowByBinary returns the table row holding the given bet binary, or -1 if
// the binary is empty or not a valid bet.
func (t *RoundTable) RowByBinary(binary uint32) int {
	indices := BinaryToIndices(binary)
	if PiratesBinary(indices) != binary || indices.IsEmpty() {
		return -1
	}

	// The enumeration order doubles as a base-5 positional code.
	row := 0
	for _, index := range indices {
		row = row*5 + int(index)
	}
	return row - 1
}
