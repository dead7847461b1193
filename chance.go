// chance.go collapses a portfolio into its discrete winnings distribution.
// The outcome space has 1,024 points (four pirates per arena, five arenas);
// rather than walking all of them, the portfolio is folded into a partition
// of inclusion binaries whose per-key probability is a product of nibble
// sums, and the partition is summed per payout value.

package nfc

import (
	"sort"

	"github.com/nfc-go/nfc/bitutil"
)

// ibDoable reports whether an inclusion binary admits any outcome, i.e.
// every arena nibble has at least one accepted pirate.
func ibDoable(binary uint32) bool {
	for _, mask := range BitMasks {
		if binary&mask == 0 {
			return false
		}
	}
	return true
}

// ibProb returns the probability mass of an inclusion binary: the product
// over arenas of the summed probabilities of the accepted pirates.
func ibProb(binary uint32, stds *ProbabilityMatrix) float64 {
	prob := 1.0
	for arena, mask := range BitMasks {
		var sum float64
		group := binary & mask
		for group != 0 {
			index := 4 - bitutil.PopLSB(&group)%4
			sum += stds[arena][index]
		}
		prob *= sum
	}
	return prob
}

/*
ExpandIBObject refines a portfolio into a map from inclusion binaries to the
total payout units won on any outcome the key accepts.

Each bet's acceptance mask ORs, per arena, the nibble of its selected pirate
or the full 0xF for an unselected arena. Starting from the universal key
0xFFFFF, every bet mask splits the existing keys it overlaps: the overlap
inherits the combined payout, and the per-arena remainders keep the old one.
The resulting keys partition the outcome space by portfolio payout.
*/
func ExpandIBObject(bets []BetIndices, betOdds []uint32) map[uint32]uint32 {
	betsToIB := make(map[uint32]uint32, len(bets))
	for i, indices := range bets {
		var ib uint32
		for arena, index := range indices {
			ib |= ConvertPirIB[index] & BitMasks[arena]
		}
		betsToIB[ib] += betOdds[i]
	}

	// Ascending key order keeps the refinement deterministic.
	ibBets := make([]uint32, 0, len(betsToIB))
	for ib := range betsToIB {
		ibBets = append(ibBets, ib)
	}
	sort.Slice(ibBets, func(i, j int) bool { return ibBets[i] < ibBets[j] })

	res := map[uint32]uint32{0xFFFFF: 0}
	for _, ibBet := range ibBets {
		betValue := betsToIB[ibBet]

		// Snapshot the keys before mutating the map.
		ibKeys := make([]uint32, 0, len(res))
		for ibKey := range res {
			ibKeys = append(ibKeys, ibKey)
		}

		for _, ibKey := range ibKeys {
			com := ibBet & ibKey
			if !ibDoable(com) {
				continue
			}

			valKey := res[ibKey]
			delete(res, ibKey)
			res[com] = betValue + valKey

			// Carve the rest of the old key into per-arena remainders that
			// the bet does not accept.
			for _, mask := range BitMasks {
				tst := ibKey ^ (com & mask)
				if ibDoable(tst) {
					res[tst] = valKey
					ibKey = ibKey&^mask | com&mask
				}
			}
		}
	}

	return res
}

// BuildChanceObjects aggregates a portfolio's refined inclusion map into the
// sorted winnings distribution described by [Chance].
func BuildChanceObjects(bets []BetIndices, betOdds []uint32, stds *ProbabilityMatrix) []Chance {
	winTable := make(map[uint32]float64)
	for ib, value := range ExpandIBObject(bets, betOdds) {
		winTable[value] += ibProb(ib, stds)
	}

	values := make([]uint32, 0, len(winTable))
	for value := range winTable {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	chances := make([]Chance, 0, len(values))
	cumulative, tail := 0.0, 1.0
	for _, value := range values {
		probability := winTable[value]
		cumulative += probability
		chances = append(chances, Chance{
			Value:       value,
			Probability: probability,
			Cumulative:  cumulative,
			Tail:        tail,
		})
		tail -= probability
	}
	return chances
}

// NewOdds summarizes a Chance sequence. The sequence must be sorted by
// ascending value, as produced by [BuildChanceObjects].
func NewOdds(chances []Chance) *Odds {
	if len(chances) == 0 {
		return nil
	}

	odds := &Odds{
		Best:        chances[len(chances)-1],
		PartialRate: 1,
		Chances:     chances,
	}
	if chances[0].Value == 0 {
		bust := chances[0]
		odds.Bust = &bust
		odds.PartialRate = 1 - bust.Probability
	}

	for _, chance := range chances {
		if chance.Value > 0 && chance.Probability > odds.MostLikelyWinner.Probability {
			odds.MostLikelyWinner = chance
		}
	}
	return odds
}
