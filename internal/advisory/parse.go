package advisory

import (
	"encoding/json"
	"strings"
)

// structuredComparison is the schema the advisory model is instructed to
// return. InternalScore is a pointer so a syntactically valid object with
// the score missing is detectable; Band captures any confidence label the
// model asserts on its own, which is deliberately never used.
type structuredComparison struct {
	InternalScore          *float64 `json:"internal_score"`
	WhatMatched            []string `json:"what_matched"`
	WhatPartiallyMatched   []string `json:"what_partially_matched"`
	WhatDidNotMatch        []string `json:"what_did_not_match"`
	MissingInformation     []string `json:"missing_information"`
	Inconsistencies        []string `json:"inconsistencies"`
	Reasoning              string   `json:"reasoning"`
	RecommendationForAdmin string   `json:"recommendation_for_admin"`
	Band                   string   `json:"confidence_band"` // Ignored: the band is always derived locally
}

// parseComparison extracts and validates the structured comparison from the
// model's free-form response text.
func parseComparison(text string) (*structuredComparison, *DegradationError) {
	payload, ok := extractJSON(text, '{', '}')
	if !ok {
		return nil, degradedf("comparison", "no JSON object in model response", nil)
	}

	var cmp structuredComparison
	if err := json.Unmarshal([]byte(payload), &cmp); err != nil {
		return nil, degradedf("comparison", "malformed JSON in model response", err)
	}

	if cmp.InternalScore == nil {
		return nil, degradedf("comparison", "model response missing internal_score", nil)
	}

	return &cmp, nil
}

// parseQuestions extracts the verification-question array from the model's
// response. Fewer than two usable questions counts as a failure; more than
// five are truncated.
func parseQuestions(text string) ([]string, *DegradationError) {
	payload, ok := extractJSON(text, '[', ']')
	if !ok {
		return nil, degradedf("questions", "no JSON array in model response", nil)
	}

	var raw []string
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, degradedf("questions", "malformed JSON in model response", err)
	}

	var questions []string
	for _, q := range raw {
		q = strings.TrimSpace(q)
		if q != "" {
			questions = append(questions, q)
		}
	}

	if len(questions) < 2 {
		return nil, degradedf("questions", "model returned fewer than two questions", nil)
	}
	if len(questions) > 5 {
		questions = questions[:5]
	}

	return questions, nil
}

// extractJSON returns the first balanced JSON value delimited by the given pair
// in text. Models often wrap their payload in prose or markdown fences, so
// the payload is located by brace matching rather than by trusting the whole
// response to be JSON. Delimiters inside JSON strings are skipped.
func extractJSON(text string, open, closer byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
