package quality

import (
	"strings"

	"github.com/prawinrajulu/reclaim/internal/model"
)

const baselineScore = 50

// Assessor scores a free-text field for vagueness vs. specificity using
// lexical heuristics. It is pure and stateless: the same input always
// produces the same report.
type Assessor struct {
	lexicon Lexicon
}

// NewAssessor creates an assessor with the default lexicon
func NewAssessor() *Assessor {
	return NewAssessorWithLexicon(DefaultLexicon())
}

// NewAssessorWithLexicon creates an assessor with a custom lexicon
func NewAssessorWithLexicon(lexicon Lexicon) *Assessor {
	return &Assessor{lexicon: lexicon}
}

// Assess scores a single free-text field. Flags describe which rules fired;
// they annotate for the reviewer and are never grounds for auto-rejection.
func (a *Assessor) Assess(text string) model.InputQualityReport {
	if strings.TrimSpace(text) == "" {
		return model.InputQualityReport{
			Score:   0,
			Quality: model.QualityLow,
			Flags:   []string{"No input provided"},
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(text))
	tokens := strings.Fields(normalized)

	genericCount := 0
	for _, token := range tokens {
		if containsToken(a.lexicon.GenericTerms, token) {
			genericCount++
		}
	}

	specificCount := 0
	for _, token := range tokens {
		for _, fragment := range a.lexicon.SpecificFragments {
			if strings.Contains(token, fragment) {
				specificCount++
				break // Only count once per token
			}
		}
	}

	// All adjustments are summed on top of the baseline; the score is
	// clamped once at the end so a specificity bonus is never clipped
	// against a brevity penalty prematurely.
	score := baselineScore
	var flags []string

	if len(tokens) < 5 {
		score -= 20
		flags = append(flags, "Very short description")
	}

	if genericCount > 0 && specificCount == 0 {
		score -= 30
		flags = append(flags, "Only generic terms, no unique identifiers")
	}

	if specificCount >= 2 {
		score += 20
		flags = append(flags, "Contains specific ownership indicators")
	}

	if len(text) > 100 {
		score += 10
	}

	score = clamp(score, 0, 100)

	return model.InputQualityReport{
		Score:   score,
		Quality: qualityFor(score),
		Flags:   flags,
	}
}

// qualityFor maps a clamped score to its coarse label
func qualityFor(score int) model.Quality {
	switch {
	case score < 40:
		return model.QualityLow
	case score < 70:
		return model.QualityMedium
	default:
		return model.QualityHigh
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsToken(terms []string, token string) bool {
	for _, term := range terms {
		if term == token {
			return true
		}
	}
	return false
}
