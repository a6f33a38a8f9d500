package model

// Quality is the coarse label derived from an input quality score
type Quality string

const (
	QualityLow    Quality = "low"    // score < 40
	QualityMedium Quality = "medium" // 40 <= score < 70
	QualityHigh   Quality = "high"   // score >= 70
)

// InputQualityReport is the heuristic assessment of one free-text field
type InputQualityReport struct {
	Score   int      `json:"score"`           // 0-100, clamped
	Quality Quality  `json:"quality"`         // Pure function of Score
	Flags   []string `json:"flags,omitempty"` // Which rules fired; advisory annotation only, never auto-rejects
}

// ConfidenceBand is the coarse categorical confidence shown in place of the
// raw numeric score
type ConfidenceBand string

const (
	BandInsufficient ConfidenceBand = "INSUFFICIENT" // 0-20, and the default for anything out of range
	BandLow          ConfidenceBand = "LOW"          // 21-45
	BandMedium       ConfidenceBand = "MEDIUM"       // 46-70
	BandHigh         ConfidenceBand = "HIGH"         // 71-100
)

// AdvisoryAnalysis is the complete advisory result attached to a claim.
// It annotates for the human reviewer; it never changes claim status.
type AdvisoryAnalysis struct {
	ConfidenceBand         ConfidenceBand `json:"confidence_band"`
	Reasoning              string         `json:"reasoning"`
	WhatMatched            []string       `json:"what_matched"`
	WhatPartiallyMatched   []string       `json:"what_partially_matched"`
	WhatDidNotMatch        []string       `json:"what_did_not_match"`
	MissingInformation     []string       `json:"missing_information"`
	Inconsistencies        []string       `json:"inconsistencies"`
	InputQualityFlags      []string       `json:"input_quality_flags"`
	RecommendationForAdmin string         `json:"recommendation_for_admin"`
	AdvisoryNote           string         `json:"advisory_note"`
}
