package model

// ClaimStatus tracks the adjudication state of a claim.
// Only the human decision endpoint transitions this; the advisory engine
// never writes it.
type ClaimStatus string

const (
	ClaimStatusPending     ClaimStatus = "pending"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusRejected    ClaimStatus = "rejected"
)

// ClaimInput is the claimant's submission for a found item
type ClaimInput struct {
	ItemID              string `json:"item_id" yaml:"item_id"`
	ProductType         string `json:"product_type" yaml:"product_type"`
	Description         string `json:"description" yaml:"description"`
	IdentificationMarks string `json:"identification_marks" yaml:"identification_marks"`
	LostLocation        string `json:"lost_location" yaml:"lost_location"`
	ApproximateDate     string `json:"approximate_date,omitempty" yaml:"approximate_date"`
}

// Claim is the stored claim record. Persistence belongs to the external
// storage layer; the type is defined here so the advisory result has a
// documented embedding point.
type Claim struct {
	ID            string            `json:"id"`
	ItemID        string            `json:"item_id"`
	ClaimantID    string            `json:"claimant_id"`
	Input         ClaimInput        `json:"input"`
	Status        ClaimStatus       `json:"status"`
	Analysis      *AdvisoryAnalysis `json:"ai_analysis,omitempty"`
	Questions     []string          `json:"verification_questions,omitempty"`
	InternalScore int               `json:"internal_score,omitempty"` // Audit only, never shown to the claimant
	CreatedAt     string            `json:"created_at,omitempty"`
}
