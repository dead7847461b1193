// builders.go implements the portfolio strategies. Every builder returns
// distinct, non-empty bets within the active size cap; strategies that sort
// invert their comparator under the REVERSE modifier, and strategies that
// can legitimately produce nothing return nil rather than an error.

package nfc

import "sort"

// sortedIndices returns the rows accepted by keep (every row when keep is
// nil), ordered by descending sort key with the earlier table index winning
// ties. REVERSE flips the key comparison, never the tie-break.
func (f *NeoFoodClub) sortedIndices(key func(row int) float64, keep func(row int) bool) []int {
	rows := make([]int, 0, RowCount)
	for row := 0; row < RowCount; row++ {
		if keep == nil || keep(row) {
			rows = append(rows, row)
		}
	}

	reverse := f.modifier.IsReverse()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := key(rows[i]), key(rows[j])
		if reverse {
			return a < b
		}
		return a > b
	})
	return rows
}

// portfolioFromRows assembles a portfolio from table rows and fills its
// amounts from the global bet amount.
func (f *NeoFoodClub) portfolioFromRows(rows []int) *Portfolio {
	table := f.RoundTable()
	p := &Portfolio{Bins: make([]uint32, len(rows))}
	for i, row := range rows {
		p.Bins[i] = table.Bins[row]
	}
	f.FillBetAmounts(p)
	return p
}

// MakeMaxTERBets returns the bets with the highest expected returns.
func (f *NeoFoodClub) MakeMaxTERBets() *Portfolio {
	table := f.RoundTable()
	rows := f.sortedIndices(func(row int) float64 { return table.ERs[row] }, nil)
	return f.portfolioFromRows(rows[:f.MaxAmountOfBets()])
}

// MakeUnitsBets returns the highest-ER bets whose odds product is at least
// units, or nil when no row qualifies.
func (f *NeoFoodClub) MakeUnitsBets(units uint32) *Portfolio {
	table := f.RoundTable()
	rows := f.sortedIndices(
		func(row int) float64 { return table.ERs[row] },
		func(row int) bool { return table.Odds[row] >= units },
	)
	if len(rows) == 0 {
		return nil
	}
	return f.portfolioFromRows(rows[:min(len(rows), f.MaxAmountOfBets())])
}

// MakeTenbetBets returns the highest-ER bets that include every pirate of
// the given binary. The binary must select one pirate in one to three
// arenas.
func (f *NeoFoodClub) MakeTenbetBets(piratesBinary uint32) (*Portfolio, error) {
	var arenas int
	for _, mask := range BitMasks {
		if piratesBinary&mask != 0 {
			arenas++
		}
	}
	if arenas == 0 || arenas > 3 {
		return nil, invalidInput("a tenbet pins 1 to 3 arenas, binary 0x%X pins %d", piratesBinary, arenas)
	}

	table := f.RoundTable()
	rows := f.sortedIndices(
		func(row int) float64 { return table.ERs[row] },
		func(row int) bool { return table.Bins[row]&piratesBinary == piratesBinary },
	)
	return f.portfolioFromRows(rows[:min(len(rows), f.MaxAmountOfBets())]), nil
}

// MakeGambitBets returns the highest-odds sub-bets of one full five-pirate
// binary, the full bet itself included.
func (f *NeoFoodClub) MakeGambitBets(piratesBinary uint32) (*Portfolio, error) {
	if popcount(piratesBinary) != ArenaCount {
		return nil, invalidInput("a gambit needs one pirate per arena, got binary 0x%X", piratesBinary)
	}

	table := f.RoundTable()
	rows := f.sortedIndices(
		func(row int) float64 { return float64(table.Odds[row]) },
		func(row int) bool { return table.Bins[row]&piratesBinary == table.Bins[row] },
	)
	return f.portfolioFromRows(rows[:min(len(rows), f.MaxAmountOfBets())]), nil
}

// MakeBestGambitBets builds the gambit around the full bet with the single
// highest expected return.
func (f *NeoFoodClub) MakeBestGambitBets() *Portfolio {
	table := f.RoundTable()
	rows := f.sortedIndices(
		func(row int) float64 { return table.ERs[row] },
		func(row int) bool { return popcount(table.Bins[row]) == ArenaCount },
	)
	p, _ := f.MakeGambitBets(table.Bins[rows[0]])
	return p
}

// MakeWinningGambitBets builds the gambit around the round's winners, or
// nil while the round is open.
func (f *NeoFoodClub) MakeWinningGambitBets() *Portfolio {
	winners := f.WinnersBinary()
	if winners == 0 {
		return nil
	}
	p, _ := f.MakeGambitBets(winners)
	return p
}

// MakeRandomGambitBets builds the gambit around a uniformly random full
// bet.
func (f *NeoFoodClub) MakeRandomGambitBets() *Portfolio {
	var indices BetIndices
	for arena := range indices {
		indices[arena] = uint8(1 + f.intN(PirateCount))
	}
	p, _ := f.MakeGambitBets(PiratesBinary(indices))
	return p
}

// MakeCrazyBets returns random distinct full bets up to the size cap.
func (f *NeoFoodClub) MakeCrazyBets() *Portfolio {
	return f.randomBets(1)
}

// MakeRandomBets returns random distinct non-empty bets, each arena
// independently left open or pinned to a pirate.
func (f *NeoFoodClub) MakeRandomBets() *Portfolio {
	return f.randomBets(0)
}

// randomBets fills the portfolio with distinct random bets whose arena
// indices start at lowest (0 admits open arenas, 1 forces full bets).
func (f *NeoFoodClub) randomBets(lowest int) *Portfolio {
	span := PirateCount + 1 - lowest
	seen := make(map[uint32]bool, f.MaxAmountOfBets())
	bins := make([]uint32, 0, f.MaxAmountOfBets())
	for len(bins) < f.MaxAmountOfBets() {
		var indices BetIndices
		for arena := range indices {
			indices[arena] = uint8(lowest + f.intN(span))
		}
		bin := PiratesBinary(indices)
		if bin == 0 || seen[bin] {
			continue
		}
		seen[bin] = true
		bins = append(bins, bin)
	}

	p := &Portfolio{Bins: bins}
	f.FillBetAmounts(p)
	return p
}

/*
MakeBustproofBets covers the whole outcome space so that no outcome pays
zero, spending bets on the arenas with the best pot ratios. It returns nil
when no arena is positive.

With one positive arena the four pirates of that arena are bet on directly.
With two, the three weaker pirates of the best arena are covered alone and
its strongest pirate is spread over the second arena; with three or more,
the spread nests one level deeper.
*/
func (f *NeoFoodClub) MakeBustproofBets() *Portfolio {
	arenas := f.Arenas()
	positives := make([]Arena, 0, ArenaCount)
	for _, arena := range arenas {
		if arena.IsPositive() {
			positives = append(positives, arena)
		}
	}
	sort.SliceStable(positives, func(i, j int) bool {
		return positives[i].Ratio() > positives[j].Ratio()
	})
	if len(positives) == 0 {
		return nil
	}

	var betsIndices []BetIndices
	switch len(positives) {
	case 1:
		best := positives[0]
		for _, pirate := range best.Pirates {
			betsIndices = append(betsIndices, betOn(pirate))
		}
	case 2:
		best, second := positives[0], positives[1]
		bestPirate := best.Best()[0]
		for _, pirate := range best.Pirates {
			if pirate.Index != bestPirate.Index {
				betsIndices = append(betsIndices, betOn(pirate))
			}
		}
		for _, pirate := range second.Pirates {
			betsIndices = append(betsIndices, betOn(bestPirate, pirate))
		}
	default:
		best, second, third := positives[0], positives[1], positives[2]
		bestPirate, secondPirate := best.Best()[0], second.Best()[0]
		for _, pirate := range best.Pirates {
			if pirate.Index != bestPirate.Index {
				betsIndices = append(betsIndices, betOn(pirate))
			}
		}
		for _, pirate := range second.Pirates {
			if pirate.Index != secondPirate.Index {
				betsIndices = append(betsIndices, betOn(bestPirate, pirate))
			}
		}
		for _, pirate := range third.Pirates {
			betsIndices = append(betsIndices, betOn(bestPirate, secondPirate, pirate))
		}
	}

	p := &Portfolio{Bins: BetsIndicesToBetBinaries(betsIndices)}

	// Scale the amounts so every outcome pays out roughly the same, instead
	// of capping every bet at the same wager.
	if f.betAmount != nil {
		oddsValues := f.BetOddsValues(p)
		lowest := oddsValues[0]
		for _, odds := range oddsValues {
			lowest = min(lowest, odds)
		}
		p.Amounts = make([]*uint32, len(p.Bins))
		for i, odds := range oddsValues {
			amount := uint32(uint64(*f.betAmount) * uint64(lowest) / uint64(odds))
			amount = max(amount, BetAmountMin)
			p.Amounts[i] = &amount
		}
	}
	return p
}

// betOn builds the index-tuple that pins exactly the given pirates in their
// own arenas.
func betOn(pirates ...Pirate) BetIndices {
	var indices BetIndices
	for _, pirate := range pirates {
		indices[pirate.ArenaID] = pirate.Index
	}
	return indices
}
