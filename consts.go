/*
consts.go contains declarations of the wire-stable constants that define the
round model's fixed structure: five arenas of four pirates each, the
3,124-row combinatorial table, and the Hash Codec's numeric bounds.
*/

package nfc

// Arena and pirate counts. The round structure is fixed: changing these
// would change the meaning of every bit mask and hash format below, so they
// are not configurable.
const (
	ArenaCount  = 5
	PirateCount = 4
)

// RowCount is the number of non-empty betting combinations: 5^5 - 1.
const RowCount = 3124

// BitMasks[a] isolates arena a's 4-bit nibble within a 20-bit PirateBinary.
// Arena 0 occupies the high nibble.
var BitMasks = [ArenaCount]uint32{0xF0000, 0xF000, 0xF00, 0xF0, 0xF}

// PirIB[i-1] has bit i set in every arena's nibble, i.e. the mask that picks
// out "pirate i" across all five arenas at once.
var PirIB = [PirateCount]uint32{0x88888, 0x44444, 0x22222, 0x11111}

// ConvertPirIB mirrors PirIB with an all-ones mask prepended at index 0,
// matching the wire convention where index 0 means "every pirate accepted".
var ConvertPirIB = [PirateCount + 1]uint32{0xFFFFF, 0x88888, 0x44444, 0x22222, 0x11111}

// Bet amount bounds for the Hash Codec (§4.2, §6).
const (
	BetAmountMin = 50
	BetAmountMax = 70304
)

// MaxAmountOfBets is the default portfolio size cap; it drops to
// maxAmountOfBetsCharity under the CHARITY_CORNER modifier.
const (
	MaxAmountOfBets        = 15
	maxAmountOfBetsCharity = 10
)

// neofoodclubPayoutCeiling is the game's per-bet payout cap used to derive
// RoundTable.MaxBets: maxbet = ceil(neofoodclubPayoutCeiling / odds).
const neofoodclubPayoutCeiling = 1_000_000
