// arena.go builds the round-scoped arena/pirate view from the parsed round
// payload and the effective odds.

package nfc

import (
	"sort"

	"github.com/nfc-go/nfc/enum"
)

// FoodAdjuster reports how one food affects one pirate's appetite: a
// positive return is a favourite, a negative one an allergy, 0 neutral.
// The pirate catalog itself lives outside this module, so the adjustment
// table is injected by the caller; a nil adjuster leaves every food
// adjustment field unset.
type FoodAdjuster func(pirate PirateID, food uint8) int

// makeArenas derives the full arena view. The odds matrix passed in is the
// effective one: opening odds, current odds, or current odds with a custom
// overlay, depending on the active modifier.
func makeArenas(rd *RoundData, odds *OddsMatrix, adjuster FoodAdjuster) [ArenaCount]Arena {
	var arenas [ArenaCount]Arena

	for a := 0; a < ArenaCount; a++ {
		arena := Arena{
			ID:     uint8(a),
			Name:   enum.ArenaNames[a],
			Winner: rd.Winners[a],
		}
		if rd.Foods != nil {
			foods := rd.Foods[a]
			arena.Foods = &foods
		}

		for p := 0; p < PirateCount; p++ {
			pirate := Pirate{
				ID:          PirateID(rd.Pirates[a][p]),
				ArenaID:     uint8(a),
				Index:       uint8(p + 1),
				CurrentOdds: odds[a][p+1],
				OpeningOdds: rd.OpeningOdds[a][p+1],
				IsWinner:    rd.Winners[a] == uint8(p+1),
			}
			if adjuster != nil && arena.Foods != nil {
				var pfa uint8
				var nfa int8
				for _, food := range arena.Foods {
					switch effect := adjuster(pirate.ID, food); {
					case effect > 0:
						pfa++
					case effect < 0:
						nfa--
					}
				}
				fa := int8(pfa) + nfa
				pirate.PFA = &pfa
				pirate.NFA = &nfa
				pirate.FA = &fa
			}

			arena.Odds += 1 / float64(pirate.CurrentOdds)
			arena.Pirates[p] = pirate
		}

		arenas[a] = arena
	}

	return arenas
}

// Best returns the arena's pirates ordered by ascending current odds, i.e.
// strongest contender first.
func (a Arena) Best() [PirateCount]Pirate {
	best := a.Pirates
	sort.SliceStable(best[:], func(i, j int) bool {
		return best[i].CurrentOdds < best[j].CurrentOdds
	})
	return best
}
