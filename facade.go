// facade.go bundles the parsed round data with the modifier, the selected
// probability model, and the derived caches, and exposes the named entry
// points. Every method except the random builders is a deterministic
// function of the facade's state; those draw from the injected generator,
// or from the shared global source when none is set. The caches fill
// lazily, so a facade is not safe for concurrent use without external
// synchronization.

package nfc

import (
	"math/rand/v2"
	"time"

	"github.com/nfc-go/nfc/bitutil"
	"github.com/nfc-go/nfc/enum"
)

// NeoFoodClub is the round facade.
type NeoFoodClub struct {
	data      RoundData
	betAmount *uint32
	modifier  Modifier
	model     enum.ProbabilityModel
	adjuster  FoodAdjuster
	catalog   PirateCatalog
	rng       *rand.Rand

	// Derived caches, rebuilt lazily after any setter call.
	stds  *ProbabilityMatrix
	table *RoundTable
}

// NewNeoFoodClub parses a round payload into a fresh facade with an empty
// modifier and the original probability model.
func NewNeoFoodClub(payload []byte) (*NeoFoodClub, error) {
	rd, err := ParseRoundData(payload)
	if err != nil {
		return nil, err
	}
	return &NeoFoodClub{data: *rd}, nil
}

// Copy returns a facade over the same round data that shares no mutable
// state with the receiver.
func (f *NeoFoodClub) Copy() *NeoFoodClub {
	cp := &NeoFoodClub{
		data:     f.data,
		modifier: f.modifier.Copy(),
		model:    f.model,
		adjuster: f.adjuster,
		catalog:  f.catalog,
	}
	cp.data.Changes = make([]OddsChange, len(f.data.Changes))
	copy(cp.data.Changes, f.data.Changes)
	if f.data.Foods != nil {
		foods := *f.data.Foods
		cp.data.Foods = &foods
	}
	if f.betAmount != nil {
		amount := *f.betAmount
		cp.betAmount = &amount
	}
	return cp
}

func (f *NeoFoodClub) invalidate() {
	f.stds = nil
	f.table = nil
}

// BetAmount returns the global bet amount, nil when unset.
func (f *NeoFoodClub) BetAmount() *uint32 { return f.betAmount }

// SetBetAmount sets or clears the global bet amount. Amounts below
// BetAmountMin mean "unset".
func (f *NeoFoodClub) SetBetAmount(amount *uint32) {
	if amount == nil || *amount < BetAmountMin {
		f.betAmount = nil
	} else {
		a := min(*amount, BetAmountMax)
		f.betAmount = &a
	}
	f.invalidate()
}

// Modifier returns the active modifier.
func (f *NeoFoodClub) Modifier() Modifier { return f.modifier }

// SetModifier replaces the active modifier and drops the derived caches.
func (f *NeoFoodClub) SetModifier(m Modifier) {
	f.modifier = m.Copy()
	f.invalidate()
}

// ProbabilityModel returns the selected probability model.
func (f *NeoFoodClub) ProbabilityModel() enum.ProbabilityModel { return f.model }

// SetProbabilityModel switches between the original and the
// multinomial-logit model.
func (f *NeoFoodClub) SetProbabilityModel(model enum.ProbabilityModel) {
	f.model = model
	f.invalidate()
}

// SetFoodAdjuster injects the external food preference table used to fill
// the pirates' food adjustment fields.
func (f *NeoFoodClub) SetFoodAdjuster(adjuster FoodAdjuster) { f.adjuster = adjuster }

// SetRand injects a seeded generator for the random builders. A nil value
// restores the shared global source.
func (f *NeoFoodClub) SetRand(rng *rand.Rand) { f.rng = rng }

func (f *NeoFoodClub) intN(n int) int {
	if f.rng != nil {
		return f.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Round returns the round number.
func (f *NeoFoodClub) Round() uint16 { return f.data.Round }

// Start returns the round's scheduled start timestamp, "" when absent.
func (f *NeoFoodClub) Start() string { return f.data.Start }

// Timestamp returns the payload's capture timestamp, "" when absent.
func (f *NeoFoodClub) Timestamp() string { return f.data.Timestamp }

// LastChange returns the most recent odds change timestamp, "" when absent.
func (f *NeoFoodClub) LastChange() string { return f.data.LastChange }

// Foods returns the per-arena food lists, nil when the payload had none.
func (f *NeoFoodClub) Foods() *[ArenaCount][10]uint8 { return f.data.Foods }

// Changes returns the historical odds changes.
func (f *NeoFoodClub) Changes() []OddsChange { return f.data.Changes }

// OpeningOdds returns the opening odds matrix.
func (f *NeoFoodClub) OpeningOdds() OddsMatrix { return f.data.OpeningOdds }

/*
CurrentOdds returns the effective current odds: the parsed current odds,
unless the modifier swaps in the opening odds or snaps to a historical time,
and always with any custom odds overlaid.
*/
func (f *NeoFoodClub) CurrentOdds() OddsMatrix {
	odds := f.data.CurrentOdds
	if f.modifier.IsOpeningOdds() {
		odds = f.data.OpeningOdds
	}
	if f.modifier.CustomTime != "" {
		odds = f.oddsAt(f.modifier.CustomTime)
	}

	for id, custom := range f.modifier.CustomOdds {
		if arena, index, ok := f.findPirate(id); ok {
			odds[arena][index] = custom
		}
	}
	return odds
}

// oddsAt replays the change log on top of the opening odds, applying every
// change at or before the given NST time of day ("15:04:05").
func (f *NeoFoodClub) oddsAt(timeOfDay string) OddsMatrix {
	odds := f.data.OpeningOdds
	for _, change := range f.data.Changes {
		ts, err := ParseTimestamp(change.T)
		if err != nil {
			continue
		}
		if ts.In(NST).Format("15:04:05") > timeOfDay {
			continue
		}
		if change.Arena < ArenaCount && change.Pirate >= 1 && change.Pirate <= PirateCount {
			odds[change.Arena][change.Pirate] = change.New
		}
	}
	return odds
}

// findPirate locates a pirate by its global ID, returning its arena and
// 1-based index.
func (f *NeoFoodClub) findPirate(id PirateID) (arena, index uint8, ok bool) {
	for a := 0; a < ArenaCount; a++ {
		for p := 0; p < PirateCount; p++ {
			if PirateID(f.data.Pirates[a][p]) == id {
				return uint8(a), uint8(p + 1), true
			}
		}
	}
	return 0, 0, false
}

// Winners returns the winning pirate index per arena, all zero while the
// round is open.
func (f *NeoFoodClub) Winners() [ArenaCount]uint8 { return f.data.Winners }

// WinnersBinary packs the winners tuple into a bet binary.
func (f *NeoFoodClub) WinnersBinary() uint32 {
	return PiratesBinary(BetIndices(f.data.Winners))
}

// IsOver reports whether the round has finished.
func (f *NeoFoodClub) IsOver() bool { return f.WinnersBinary() != 0 }

// IsOutdatedLock reports whether the round failed to finalize within 24
// hours of its scheduled start.
func (f *NeoFoodClub) IsOutdatedLock() bool {
	return isOutdatedLockAt(f.data.Start, f.IsOver(), time.Now())
}

// MaxAmountOfBets returns the portfolio size cap under the active modifier.
func (f *NeoFoodClub) MaxAmountOfBets() int {
	if f.modifier.IsCharityCorner() {
		return maxAmountOfBetsCharity
	}
	return MaxAmountOfBets
}

// Arenas returns the round-scoped arena view under the effective odds.
func (f *NeoFoodClub) Arenas() [ArenaCount]Arena {
	odds := f.CurrentOdds()
	return makeArenas(&f.data, &odds, f.adjuster)
}

// GetArena returns a single arena by index.
func (f *NeoFoodClub) GetArena(index int) (Arena, error) {
	if index < 0 || index >= ArenaCount {
		return Arena{}, outOfRange("arena index %d outside 0..4", index)
	}
	return f.Arenas()[index], nil
}

// WinningPirates returns the five winning pirates, or nil while the round
// is open.
func (f *NeoFoodClub) WinningPirates() []Pirate {
	if !f.IsOver() {
		return nil
	}
	arenas := f.Arenas()
	pirates := make([]Pirate, 0, ArenaCount)
	for a := 0; a < ArenaCount; a++ {
		pirates = append(pirates, arenas[a].Pirates[f.data.Winners[a]-1])
	}
	return pirates
}

// Probabilities returns the probability matrix under the selected model,
// derived from the opening odds.
func (f *NeoFoodClub) Probabilities() *ProbabilityMatrix {
	if f.stds == nil {
		stds := MakeProbabilities(&f.data.OpeningOdds, f.model)
		f.stds = &stds
	}
	return f.stds
}

// RoundTable returns the precomputed bet table under the effective odds.
func (f *NeoFoodClub) RoundTable() *RoundTable {
	if f.table == nil {
		odds := f.CurrentOdds()
		f.table = NewRoundTable(f.Probabilities(), &odds)
	}
	return f.table
}

// ToJSON re-encodes the round payload the facade was parsed from.
func (f *NeoFoodClub) ToJSON() ([]byte, error) { return f.data.ToJSON() }

// BetOddsValues returns each bet's odds product under the effective odds.
func (f *NeoFoodClub) BetOddsValues(p *Portfolio) []uint32 {
	table := f.RoundTable()
	values := make([]uint32, len(p.Bins))
	for i, bin := range p.Bins {
		if row := table.RowByBinary(bin); row >= 0 {
			values[i] = table.Odds[row]
		}
	}
	return values
}

// OddsOf aggregates a portfolio into its winnings distribution summary.
func (f *NeoFoodClub) OddsOf(p *Portfolio) *Odds {
	return NewOdds(BuildChanceObjects(p.Indices(), f.BetOddsValues(p), f.Probabilities()))
}

// ExpectedReturn sums the portfolio's per-bet expected returns.
func (f *NeoFoodClub) ExpectedReturn(p *Portfolio) float64 {
	table := f.RoundTable()
	var er float64
	for _, bin := range p.Bins {
		if row := table.RowByBinary(bin); row >= 0 {
			er += table.ERs[row]
		}
	}
	return er
}

// NetExpected sums amount*(er - 1) over all bets carrying an amount; it is
// 0 for a portfolio without amounts.
func (f *NeoFoodClub) NetExpected(p *Portfolio) float64 {
	if p.Amounts == nil {
		return 0
	}
	table := f.RoundTable()
	var net float64
	for i, bin := range p.Bins {
		if i >= len(p.Amounts) || p.Amounts[i] == nil || *p.Amounts[i] < BetAmountMin {
			continue
		}
		if row := table.RowByBinary(bin); row >= 0 {
			net += float64(*p.Amounts[i]) * (table.ERs[row] - 1)
		}
	}
	return net
}

// FillBetAmounts sets each bet's amount to the global bet amount, capped by
// the bet's max-bet and floored at BetAmountMin. Without a global bet
// amount the portfolio's amounts stay unset.
func (f *NeoFoodClub) FillBetAmounts(p *Portfolio) {
	if f.betAmount == nil {
		return
	}
	table := f.RoundTable()
	p.Amounts = make([]*uint32, len(p.Bins))
	for i, bin := range p.Bins {
		amount := *f.betAmount
		if row := table.RowByBinary(bin); row >= 0 {
			amount = min(amount, table.MaxBets[row])
		}
		amount = max(amount, BetAmountMin)
		p.Amounts[i] = &amount
	}
}

// IsBustproof reports whether every outcome pays the portfolio something.
func (f *NeoFoodClub) IsBustproof(p *Portfolio) bool {
	odds := f.OddsOf(p)
	return odds != nil && odds.Bust == nil
}

// IsGuaranteedWin reports whether the portfolio cannot lose money: it is
// bustproof and every single bet's capped payout exceeds the total wagered.
func (f *NeoFoodClub) IsGuaranteedWin(p *Portfolio) bool {
	if p.Amounts == nil || !f.IsBustproof(p) {
		return false
	}

	var total uint64
	lowest := uint64(1 << 62)
	oddsValues := f.BetOddsValues(p)
	for i := range p.Bins {
		if i >= len(p.Amounts) || p.Amounts[i] == nil || *p.Amounts[i] < BetAmountMin {
			return false
		}
		amount := uint64(*p.Amounts[i])
		total += amount
		payout := min(amount*uint64(oddsValues[i]), neofoodclubPayoutCeiling)
		lowest = min(lowest, payout)
	}
	return lowest > total
}

// GetWinUnits returns the portfolio's total winning odds units against the
// round's winners.
func (f *NeoFoodClub) GetWinUnits(p *Portfolio) uint32 {
	winners := f.WinnersBinary()
	if winners == 0 {
		return 0
	}
	var units uint32
	oddsValues := f.BetOddsValues(p)
	for i, bin := range p.Bins {
		if bin&winners == bin {
			units += oddsValues[i]
		}
	}
	return units
}

// GetWinNP returns the portfolio's total neopoint payout against the
// round's winners, applying the per-bet payout ceiling.
func (f *NeoFoodClub) GetWinNP(p *Portfolio) uint32 {
	winners := f.WinnersBinary()
	if winners == 0 || p.Amounts == nil {
		return 0
	}
	var np uint64
	oddsValues := f.BetOddsValues(p)
	for i, bin := range p.Bins {
		if i >= len(p.Amounts) || p.Amounts[i] == nil {
			continue
		}
		if bin&winners == bin {
			np += min(uint64(*p.Amounts[i])*uint64(oddsValues[i]), neofoodclubPayoutCeiling)
		}
	}
	return uint32(np)
}

// MakeBetsFromIndices builds a portfolio from explicit index-tuples and
// fills its amounts from the global bet amount.
func (f *NeoFoodClub) MakeBetsFromIndices(betsIndices []BetIndices) (*Portfolio, error) {
	if len(betsIndices) > f.MaxAmountOfBets() {
		return nil, invalidInput("%d bets exceed the cap of %d", len(betsIndices), f.MaxAmountOfBets())
	}
	p, err := NewPortfolio(betsIndices)
	if err != nil {
		return nil, err
	}
	f.FillBetAmounts(p)
	return p, nil
}

// MakeBetsFromBinaries builds a portfolio from explicit bet binaries.
func (f *NeoFoodClub) MakeBetsFromBinaries(binaries []uint32) (*Portfolio, error) {
	return f.MakeBetsFromIndices(BetBinariesToBetIndices(binaries))
}

// MakeBetsFromHash decodes a bets hash into a portfolio.
func (f *NeoFoodClub) MakeBetsFromHash(betsHash string) (*Portfolio, error) {
	betsIndices, err := BetsHashToBetIndices(betsHash)
	if err != nil {
		return nil, err
	}
	return f.MakeBetsFromIndices(betsIndices)
}

// PirateCatalog resolves display data for a global pirate ID. The catalog
// itself (names, images) lives outside this module and is injected by the
// caller.
type PirateCatalog func(id PirateID) (name, image string)

// SetPirateCatalog injects the external display-data lookup.
func (f *NeoFoodClub) SetPirateCatalog(catalog PirateCatalog) { f.catalog = catalog }

// LookupPirate resolves a pirate's display data through the injected
// catalog; ok is false when no catalog is set.
func (f *NeoFoodClub) LookupPirate(id PirateID) (name, image string, ok bool) {
	if f.catalog == nil {
		return "", "", false
	}
	name, image = f.catalog(id)
	return name, image, true
}

// popcount is a local shorthand over the shared bit utilities.
func popcount(binary uint32) int { return bitutil.CountBits(binary) }
