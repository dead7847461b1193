/*
types.go contains declarations of the core data model: the bit-packed bet
representation, portfolios, probability/odds matrices, and the round-scoped
arena/pirate view.
*/

package nfc

// Bet binaries are plain uint32 values: a 20-bit field split into five 4-bit
// arena groups (arena 0 is the high nibble). Within a group, bit 3 (mask 0x8)
// is pirate 1, ..., bit 0 (mask 0x1) is pirate 4. A zero binary is the empty
// bet; a valid bet has at most one bit set per nibble.

// BetIndices is an ordered 5-tuple of pirate indices, one per arena. 0 means
// "no pick in this arena". A bet is "empty" iff all five are 0.
type BetIndices [ArenaCount]uint8

// IsEmpty reports whether every arena is unselected.
func (b BetIndices) IsEmpty() bool {
	return b == BetIndices{}
}

// Portfolio is an ordered, non-empty sequence of Bets, with an optional
// parallel sequence of bet amounts. The builders produce distinct bets within
// the size cap; NewPortfolio rejects only empty input and empty bets, and the
// cap is applied by the facade's MakeBetsFrom* constructors. A nil Amounts
// entry, or an entry below BetAmountMin, both mean "omit" — the two are never
// distinguished once inside a Portfolio.
type Portfolio struct {
	Bins    []uint32
	Amounts []*uint32
}

// Len returns the number of bets in the portfolio.
func (p *Portfolio) Len() int { return len(p.Bins) }

// Indices returns the BetIndices form of every bet in the portfolio, in
// order.
func (p *Portfolio) Indices() []BetIndices {
	out := make([]BetIndices, len(p.Bins))
	for i, bin := range p.Bins {
		out[i] = BinaryToIndices(bin)
	}
	return out
}

// ProbabilityMatrix is stds[arena][pirate]; column 0 is always (1.0, 0, 0, 0,
// 0) and is never consulted. Rows sum to 1.0 across columns 1..4 within
// 1e-9.
type ProbabilityMatrix [ArenaCount][PirateCount + 1]float64

// OddsMatrix is the raw current/opening odds, odds[arena][pirate]; column 0
// is always 1 (self-odds) and columns 1..4 are in {2, ..., 13}.
type OddsMatrix [ArenaCount][PirateCount + 1]uint8

// Chance is one entry of a portfolio's winnings distribution, sorted by
// ascending value. Cumulative is the running sum of probability up to and
// including this entry; tail is 1 minus the cumulative strictly before it.
type Chance struct {
	Value       uint32
	Probability float64
	Cumulative  float64
	Tail        float64
}

// Odds summarizes a portfolio's full Chance sequence.
type Odds struct {
	Best             Chance
	Bust             *Chance
	MostLikelyWinner Chance
	PartialRate      float64
	Chances          []Chance
}

// PirateID is a global pirate identifier in 1..20, stable across rounds.
type PirateID = uint16

// Pirate is a round-scoped view of a single contestant.
type Pirate struct {
	ID           PirateID
	ArenaID      uint8
	Index        uint8 // 1..4 within ArenaID
	CurrentOdds  uint8
	OpeningOdds  uint8
	PFA          *uint8 // positive food adjustment count
	NFA          *int8  // negative food adjustment count
	FA           *int8  // net food adjustment
	IsWinner     bool
}

// Arena is a round-scoped group of four ordered pirates.
type Arena struct {
	ID      uint8
	Name    string
	Pirates [PirateCount]Pirate
	Winner  uint8 // 0 if undecided, else 1..4
	Odds    float64
	Foods   *[10]uint8
}

// Ratio is Arena.Odds - 1.
func (a Arena) Ratio() float64 { return a.Odds - 1 }

// IsPositive reports whether the arena's pot ratio favors the house, i.e.
// Ratio() > 0.
func (a Arena) IsPositive() bool { return a.Ratio() > 0 }

// IsNegative is the complement of IsPositive.
func (a Arena) IsNegative() bool { return !a.IsPositive() }

// PirateIDs returns the four pirate IDs in index order.
func (a Arena) PirateIDs() [PirateCount]PirateID {
	var ids [PirateCount]PirateID
	for i, p := range a.Pirates {
		ids[i] = p.ID
	}
	return ids
}
