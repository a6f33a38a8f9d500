package score

import "github.com/prawinrajulu/reclaim/internal/model"

// bandRange is one row of the fixed confidence partition. The ranges are
// evaluated in order and together cover every integer in [0,100] exactly
// once.
type bandRange struct {
	lo   int
	hi   int
	band model.ConfidenceBand
}

var bandRanges = []bandRange{
	{0, 20, model.BandInsufficient},
	{21, 45, model.BandLow},
	{46, 70, model.BandMedium},
	{71, 100, model.BandHigh},
}

// Classify derives the confidence band from a numeric score. The band is
// always computed here, locally and deterministically; a band label
// asserted by the advisory model is never trusted. Scores outside [0,100]
// classify as INSUFFICIENT.
func Classify(score int) model.ConfidenceBand {
	for _, r := range bandRanges {
		if score >= r.lo && score <= r.hi {
			return r.band
		}
	}
	return model.BandInsufficient
}
