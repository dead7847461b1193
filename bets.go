// bets.go implements the value-object side of a portfolio: hashes, shape
// predicates, and comparisons. Everything that needs the round's odds or
// probabilities (expected return, chances, win totals) lives on
// [NeoFoodClub] instead.

package nfc

import (
	"sort"

	"github.com/nfc-go/nfc/bitutil"
)

// NewPortfolio builds a portfolio from index-tuples. Empty tuples are
// rejected rather than dropped, so a portfolio can never hold the empty
// bet.
func NewPortfolio(betsIndices []BetIndices) (*Portfolio, error) {
	if len(betsIndices) == 0 {
		return nil, invalidInput("a portfolio holds at least one bet")
	}
	for i, indices := range betsIndices {
		if indices.IsEmpty() {
			return nil, invalidInput("bet %d is empty", i)
		}
	}
	return &Portfolio{Bins: BetsIndicesToBetBinaries(betsIndices)}, nil
}

// Binaries returns the bet binaries in order.
func (p *Portfolio) Binaries() []uint32 {
	binaries := make([]uint32, len(p.Bins))
	copy(binaries, p.Bins)
	return binaries
}

// BetsHash encodes the portfolio's selections (§ the bets hash wire form).
func (p *Portfolio) BetsHash() string {
	return BetsHashValue(p.Indices())
}

// AmountsHash encodes the portfolio's amounts, or "" if no amounts are set.
func (p *Portfolio) AmountsHash() string {
	if p.Amounts == nil {
		return ""
	}
	return BetAmountsToAmountsHash(p.Amounts)
}

// BetAmounts returns the parallel amounts sequence, nil when unset.
func (p *Portfolio) BetAmounts() []*uint32 {
	if p.Amounts == nil {
		return nil
	}
	amounts := make([]*uint32, len(p.Amounts))
	copy(amounts, p.Amounts)
	return amounts
}

// IsCrazy reports whether every bet selects a pirate in all five arenas.
func (p *Portfolio) IsCrazy() bool {
	for _, bin := range p.Bins {
		if bitutil.CountBits(bin) != ArenaCount {
			return false
		}
	}
	return len(p.Bins) > 0
}

// IsGambit reports whether the portfolio is built around one full bet: it
// contains a five-pirate binary of which every other bet is a sub-bet.
func (p *Portfolio) IsGambit() bool {
	if len(p.Bins) < 2 {
		return false
	}
	for _, full := range p.Bins {
		if bitutil.CountBits(full) != ArenaCount {
			continue
		}
		covered := true
		for _, bin := range p.Bins {
			if bin&full != bin {
				covered = false
				break
			}
		}
		if covered {
			return true
		}
	}
	return false
}

// Equal compares two portfolios as value objects: by their sorted bet
// binaries, ignoring order and amounts.
func (p *Portfolio) Equal(other *Portfolio) bool {
	if len(p.Bins) != len(other.Bins) {
		return false
	}
	a := p.Binaries()
	b := other.Binaries()
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
