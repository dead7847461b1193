package nfc

import (
	"math"
	"testing"

	"github.com/nfc-go/nfc/enum"
)

func testRoundTable() *RoundTable {
	openingOdds := OddsMatrix{
		{1, 2, 13, 3, 13},
		{1, 4, 4, 3, 5},
		{1, 2, 6, 13, 13},
		{1, 7, 2, 13, 4},
		{1, 13, 13, 2, 3},
	}
	currentOdds := OddsMatrix{
		{1, 2, 13, 3, 13},
		{1, 5, 4, 2, 6},
		{1, 2, 6, 13, 13},
		{1, 8, 2, 13, 4},
		{1, 13, 13, 2, 3},
	}

	stds := MakeProbabilities(&openingOdds, enum.ModelOriginal)
	return NewRoundTable(&stds, &currentOdds)
}

func TestNewRoundTable(t *testing.T) {
	table := testRoundTable()

	seen := make(map[uint32]bool, RowCount)
	for i := 0; i < RowCount; i++ {
		if table.Bins[i] == 0 {
			t.Fatalf("row %d holds the empty bet", i)
		}
		if seen[table.Bins[i]] {
			t.Fatalf("row %d duplicates binary 0x%X", i, table.Bins[i])
		}
		seen[table.Bins[i]] = true

		if er := table.Probs[i] * float64(table.Odds[i]); math.Abs(table.ERs[i]-er) > 1e-12 {
			t.Fatalf("row %d: expected ER %v got %v", i, er, table.ERs[i])
		}

		odds := uint64(table.Odds[i])
		maxBet := uint64(table.MaxBets[i])
		if maxBet*odds < 1_000_000 || (maxBet-1)*odds >= 1_000_000 {
			t.Fatalf("row %d: max bet %d is not the tight cap for odds %d", i, maxBet, odds)
		}
	}
}

// TestRoundTableOrder pins the lexicographic enumeration: the last arena
// varies fastest and the first row is the bet on pirate 1 of arena 4.
func TestRoundTableOrder(t *testing.T) {
	table := testRoundTable()

	if got := BinaryToIndices(table.Bins[0]); got != (BetIndices{0, 0, 0, 0, 1}) {
		t.Fatalf("expected first row [0 0 0 0 1] got %v", got)
	}
	if got := BinaryToIndices(table.Bins[4]); got != (BetIndices{0, 0, 0, 1, 0}) {
		t.Fatalf("expected row 4 [0 0 0 1 0] got %v", got)
	}
	if got := BinaryToIndices(table.Bins[RowCount-1]); got != (BetIndices{4, 4, 4, 4, 4}) {
		t.Fatalf("expected last row [4 4 4 4 4] got %v", got)
	}
}

func TestRowByBinary(t *testing.T) {
	table := testRoundTable()

	for _, row := range []int{0, 4, 623, 1561, RowCount - 1} {
		if got := table.RowByBinary(table.Bins[row]); got != row {
			t.Fatalf("expected row %d got %d", row, got)
		}
	}

	if got := table.RowByBinary(0); got != -1 {
		t.Fatalf("expected -1 for the empty binary got %d", got)
	}
	// Two bits in one nibble is not a valid bet.
	if got := table.RowByBinary(0xC0000); got != -1 {
		t.Fatalf("expected -1 for a multi-bit nibble got %d", got)
	}
}

func BenchmarkNewRoundTable(b *testing.B) {
	openingOdds := OddsMatrix{
		{1, 2, 13, 3, 13},
		{1, 4, 4, 3, 5},
		{1, 2, 6, 13, 13},
		{1, 7, 2, 13, 4},
		{1, 13, 13, 2, 3},
	}
	stds := MakeProbabilities(&openingOdds, enum.ModelOriginal)

	for b.Loop() {
		NewRoundTable(&stds, &openingOdds)
	}
}
