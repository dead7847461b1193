// Package format provides functions to format bet binaries and portfolios.
// It is used mainly to visualize betting sets in tools and test failures.
package format

import (
	"fmt"
	"strings"

	"github.com/nfc-go/nfc"
	"github.com/nfc-go/nfc/enum"
)

// Binary formats a single bet binary into an arena-by-pirate grid.
func Binary(binary uint32) string {
	var binaryStr strings.Builder

	binaryStr.WriteString("              1  2  3  4\n")

	indices := nfc.BinaryToIndices(binary)
	for arena := 0; arena < nfc.ArenaCount; arena++ {
		fmt.Fprintf(&binaryStr, "%-12s ", enum.ArenaNames[arena])

		for pirate := 1; pirate <= nfc.PirateCount; pirate++ {
			symbol := byte('.')
			if indices[arena] == uint8(pirate) {
				symbol = 'x'
			}
			binaryStr.WriteByte(' ')
			binaryStr.WriteByte(symbol)
			binaryStr.WriteByte(' ')
		}
		binaryStr.WriteByte('\n')
	}

	return binaryStr.String()
}

// Portfolio formats a full portfolio into one line per bet: the index
// tuple, the binary, and the amount when one is set.
func Portfolio(p *nfc.Portfolio) string {
	var portfolioStr strings.Builder

	for i, bin := range p.Bins {
		fmt.Fprintf(&portfolioStr, "%2d  %v  0x%05X", i+1, nfc.BinaryToIndices(bin), bin)

		if i < len(p.Amounts) && p.Amounts[i] != nil {
			fmt.Fprintf(&portfolioStr, "  %6d NP", *p.Amounts[i])
		}
		portfolioStr.WriteByte('\n')
	}

	fmt.Fprintf(&portfolioStr, "hash: %s", p.BetsHash())
	if p.Amounts != nil {
		fmt.Fprintf(&portfolioStr, "  amounts: %s", p.AmountsHash())
	}
	portfolioStr.WriteByte('\n')

	return portfolioStr.String()
}

// Chances formats a winnings distribution, one line per payout tier.
func Chances(chances []nfc.Chance) string {
	var chancesStr strings.Builder

	for _, chance := range chances {
		fmt.Fprintf(&chancesStr, "%8d units  p=%.6f  cum=%.6f  tail=%.6f\n",
			chance.Value, chance.Probability, chance.Cumulative, chance.Tail)
	}

	return chancesStr.String()
}
