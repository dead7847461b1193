// Package enum contains custom type declarations and predefined constants.
// Used to avoid the "magic numbers" antipattern.
package enum

// PirateIndex identifies a pirate within an arena: 1..4, or 0 for "no pick".
type PirateIndex = uint8

// ArenaIndex identifies one of the five arenas: 0..4.
type ArenaIndex = uint8

const (
	ArenaShipwreck ArenaIndex = iota
	ArenaTreasure
	ArenaIceberg
	ArenaLagoon
	ArenaHidden
)

// ArenaNames gives the canonical arena names in arena-index order.
var ArenaNames = [5]string{
	"Shipwreck", "Treasure", "Ice Berg", "Lagoon", "Hidden Tower",
}

// ProbabilityModel selects the algorithm used to derive a ProbabilityMatrix
// from a round's odds.
type ProbabilityModel int

const (
	// ModelOriginal is the odds-bound rectification model.
	ModelOriginal ProbabilityModel = iota
	// ModelMultinomialLogit is the softmax-normalized alternative.
	ModelMultinomialLogit
)

// ModifierFlag is a bitset of round-view modifiers. Values are wire-stable
// plain integers; the module's URL and JSON output does not carry them.
type ModifierFlag int32

const (
	ModifierEmpty         ModifierFlag = 0
	ModifierGeneral       ModifierFlag = 1 << 0
	ModifierOpeningOdds   ModifierFlag = 1 << 1
	ModifierReverse       ModifierFlag = 1 << 2
	ModifierCharityCorner ModifierFlag = 1 << 3
)

