// modifier.go implements the round-view modifier: a wire-stable flag bitset
// plus an optional overlay of custom odds and an optional time snap.

package nfc

import "github.com/nfc-go/nfc/enum"

// Modifier adjusts how a round is viewed without touching the parsed round
// data. The flag bits are a plain integer bitset, not emitted by MakeURL; CustomOdds
// overlays the current odds of individual pirates; CustomTime snaps the
// current odds to the historical state at a time of day ("15:04:05", NST).
type Modifier struct {
	Value      enum.ModifierFlag
	CustomOdds map[PirateID]uint8
	CustomTime string
}

// NewModifier builds a modifier from a raw flag value.
func NewModifier(value enum.ModifierFlag, customOdds map[PirateID]uint8) Modifier {
	return Modifier{Value: value, CustomOdds: customOdds}
}

func (m Modifier) IsEmpty() bool   { return m.Value == enum.ModifierEmpty }
func (m Modifier) IsGeneral() bool { return m.Value&enum.ModifierGeneral != 0 }
func (m Modifier) IsOpeningOdds() bool {
	return m.Value&enum.ModifierOpeningOdds != 0
}
func (m Modifier) IsReverse() bool { return m.Value&enum.ModifierReverse != 0 }
func (m Modifier) IsCharityCorner() bool {
	return m.Value&enum.ModifierCharityCorner != 0
}

// Copy returns a deep copy, so the source and the copy never share the
// custom odds map.
func (m Modifier) Copy() Modifier {
	cp := m
	if m.CustomOdds != nil {
		cp.CustomOdds = make(map[PirateID]uint8, len(m.CustomOdds))
		for id, odds := range m.CustomOdds {
			cp.CustomOdds[id] = odds
		}
	}
	return cp
}
