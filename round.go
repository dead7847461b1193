// round.go implements parsing and serialization of the round payload. The
// payload is the single immutable input everything else is derived from;
// parsing accepts both wire shapes of an odds change (the old "pirate" field
// name and the newer "p").

package nfc

import "encoding/json"

// RoundData is the decoded round payload.
type RoundData struct {
	Round       uint16                         `json:"round"`
	Start       string                         `json:"start,omitempty"`
	Timestamp   string                         `json:"timestamp,omitempty"`
	LastChange  string                         `json:"lastChange,omitempty"`
	Pirates     [ArenaCount][PirateCount]uint8 `json:"pirates"`
	CurrentOdds OddsMatrix                     `json:"currentOdds"`
	OpeningOdds OddsMatrix                     `json:"openingOdds"`
	Winners     [ArenaCount]uint8              `json:"winners"`
	Foods       *[ArenaCount][10]uint8         `json:"foods,omitempty"`
	Changes     []OddsChange                   `json:"changes,omitempty"`
}

// OddsChange is one historical odds movement of a single pirate.
type OddsChange struct {
	T     string
	Old   uint8
	New   uint8
	Arena uint8
	// Pirate is the pirate's index within the arena, 1..4.
	Pirate uint8
}

// oddsChangeWire carries both accepted shapes: the v1 payload names the
// pirate index "pirate", the v2 payload names it "p".
type oddsChangeWire struct {
	T      string `json:"t"`
	Old    uint8  `json:"old"`
	New    uint8  `json:"new"`
	Arena  uint8  `json:"arena"`
	Pirate *uint8 `json:"pirate,omitempty"`
	P      *uint8 `json:"p,omitempty"`
}

func (c *OddsChange) UnmarshalJSON(data []byte) error {
	var wire oddsChangeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return invalidInput("malformed odds change: %v", err)
	}

	c.T = wire.T
	c.Old = wire.Old
	c.New = wire.New
	c.Arena = wire.Arena
	switch {
	case wire.Pirate != nil:
		c.Pirate = *wire.Pirate
	case wire.P != nil:
		c.Pirate = *wire.P
	default:
		return invalidInput("odds change carries neither \"pirate\" nor \"p\"")
	}
	return nil
}

func (c OddsChange) MarshalJSON() ([]byte, error) {
	return json.Marshal(oddsChangeWire{
		T:     c.T,
		Old:   c.Old,
		New:   c.New,
		Arena: c.Arena,
		P:     &c.Pirate,
	})
}

// ParseRoundData decodes a round payload and validates the structural
// invariants the rest of the model relies on: odds columns within bounds
// and a sane winners tuple.
func ParseRoundData(data []byte) (*RoundData, error) {
	var rd RoundData
	if err := json.Unmarshal(data, &rd); err != nil {
		return nil, invalidInput("malformed round payload: %v", err)
	}

	for arena := 0; arena < ArenaCount; arena++ {
		for pirate := 1; pirate <= PirateCount; pirate++ {
			for _, odds := range [2]uint8{
				rd.CurrentOdds[arena][pirate], rd.OpeningOdds[arena][pirate],
			} {
				if odds < 2 || odds > 13 {
					return nil, invalidInput(
						"odds %d of arena %d pirate %d outside 2..13", odds, arena, pirate)
				}
			}
		}
		// Column 0 is the self-odds slot and is pinned to 1 regardless of
		// what the payload carried.
		rd.CurrentOdds[arena][0] = 1
		rd.OpeningOdds[arena][0] = 1

		if rd.Winners[arena] > PirateCount {
			return nil, invalidInput("winner %d of arena %d outside 0..4", rd.Winners[arena], arena)
		}
	}

	return &rd, nil
}

// ToJSON re-encodes the round payload. Field order is not preserved from
// the original input. Field names are, except that every odds change is
// written in the v2 shape ("p"), whichever shape it was parsed from.
func (rd *RoundData) ToJSON() ([]byte, error) {
	return json.Marshal(rd)
}
