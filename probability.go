// probability.go derives a per-arena win-probability matrix from raw opening
// odds. Two models share the same contract: every arena row of the result
// sums to 1 across pirates 1..4 (within floating tolerance) whenever the
// input odds admit a consistent distribution, and column 0 is fixed at 1.

package nfc

import "github.com/nfc-go/nfc/enum"

// MakeProbabilities dispatches to the given probability model. Unknown model
// tags fall back to the original model.
func MakeProbabilities(openingOdds *OddsMatrix, model enum.ProbabilityModel) ProbabilityMatrix {
	if model == enum.ModelMultinomialLogit {
		return makeLogitProbabilities(openingOdds)
	}
	return makeOriginalProbabilities(openingOdds)
}

/*
makeOriginalProbabilities implements the rectification model.

Each pirate's odds pin its probability between a pessimistic and an
optimistic bound:

	odds 13: [0, 1/13]       the longshot cap
	odds 2:  [1/3, 1]        the favourite floor
	else:    [1/(1+o), 1/o]

The bounds are then tightened against the rest of the arena (a pirate can
claim at most whatever mass the other three minimums leave free, and at
least whatever the other maximums cannot cover), the midpoint seeds the
estimate, and a rectification sweep redistributes the residual 1 - total
across the pirates with odds at or below the current rectify level.
*/
func makeOriginalProbabilities(openingOdds *OddsMatrix) ProbabilityMatrix {
	var std, lo, hi ProbabilityMatrix

	for arena := 0; arena < ArenaCount; arena++ {
		std[arena][0] = 1

		var loSum, hiSum float64
		for pirate := 1; pirate <= PirateCount; pirate++ {
			odds := float64(openingOdds[arena][pirate])
			switch openingOdds[arena][pirate] {
			case 13:
				lo[arena][pirate] = 0
				hi[arena][pirate] = 1.0 / 13
			case 2:
				lo[arena][pirate] = 1.0 / 3
				hi[arena][pirate] = 1
			default:
				lo[arena][pirate] = 1 / (1 + odds)
				hi[arena][pirate] = 1 / odds
			}
			loSum += lo[arena][pirate]
			hiSum += hi[arena][pirate]
		}

		for pirate := 1; pirate <= PirateCount; pirate++ {
			loOriginal := lo[arena][pirate]
			hiOriginal := hi[arena][pirate]

			lo[arena][pirate] = max(loOriginal, 1-hiSum+hiOriginal)
			hi[arena][pirate] = min(hiOriginal, 1-loSum+loOriginal)

			if openingOdds[arena][pirate] == 13 {
				std[arena][pirate] = 0.05
			} else {
				std[arena][pirate] = (lo[arena][pirate] + hi[arena][pirate]) / 2
			}
		}

		for rectifyLevel := uint8(2); rectifyLevel <= 12; rectifyLevel++ {
			var rectifyCount int
			var stdTotal, rectifyValue float64
			maxRectifyValue := 1.0

			for pirate := 1; pirate <= PirateCount; pirate++ {
				stdTotal += std[arena][pirate]
				if openingOdds[arena][pirate] <= rectifyLevel {
					rectifyCount++
					rectifyValue += std[arena][pirate] - lo[arena][pirate]
					maxRectifyValue = min(maxRectifyValue, hi[arena][pirate]-lo[arena][pirate])
				}
			}

			if stdTotal == 1 {
				break
			}
			// A rectify at this level is hopeless when the mass outside the
			// rectified set already exceeds 1, when nothing qualifies, or
			// when the qualifying headroom cannot absorb the residual.
			if stdTotal-rectifyValue > 1 || rectifyCount == 0 ||
				maxRectifyValue*float64(rectifyCount) < rectifyValue+1-stdTotal {
				continue
			}

			rectifyValue += 1 - stdTotal
			rectifyValue /= float64(rectifyCount)
			for pirate := 1; pirate <= PirateCount; pirate++ {
				if openingOdds[arena][pirate] <= rectifyLevel {
					std[arena][pirate] = lo[arena][pirate] + rectifyValue
				}
			}
			break
		}
	}

	return std
}

// makeLogitProbabilities is the multinomial-logit alternative: each arena's
// implied probabilities 1/odds are renormalized to sum to 1, which is the
// closed-form logit fit when the only regressor is the posted odds.
func makeLogitProbabilities(openingOdds *OddsMatrix) ProbabilityMatrix {
	var std ProbabilityMatrix

	for arena := 0; arena < ArenaCount; arena++ {
		std[arena][0] = 1

		var sum float64
		for pirate := 1; pirate <= PirateCount; pirate++ {
			sum += 1 / float64(openingOdds[arena][pirate])
		}
		for pirate := 1; pirate <= PirateCount; pirate++ {
			std[arena][pirate] = 1 / float64(openingOdds[arena][pirate]) / sum
		}
	}

	return std
}
