package model

// ItemKind distinguishes lost reports from found reports
type ItemKind string

const (
	ItemKindLost  ItemKind = "lost"  // Owner reported the item missing
	ItemKindFound ItemKind = "found" // Finder handed the item in
)

// ItemStatus tracks the lifecycle of a reported item
type ItemStatus string

const (
	ItemStatusOpen     ItemStatus = "open"     // Listed and claimable
	ItemStatusClaimed  ItemStatus = "claimed"  // An approved claim exists
	ItemStatusReturned ItemStatus = "returned" // Handed back to the owner
	ItemStatusArchived ItemStatus = "archived" // Removed from circulation
)

// IsTerminal reports whether the status ends the item's claimable lifecycle
func (s ItemStatus) IsTerminal() bool {
	switch s {
	case ItemStatusClaimed, ItemStatusReturned, ItemStatusArchived:
		return true
	}
	return false
}

// Item represents a reported lost or found item
type Item struct {
	ID              string     `json:"id" yaml:"id"`
	Kind            ItemKind   `json:"item_type" yaml:"kind"`
	Keyword         string     `json:"item_keyword" yaml:"keyword"`                         // Short label (e.g., "iPhone 13")
	Description     string     `json:"description" yaml:"description"`                      // Public description from the reporter
	Location        string     `json:"location" yaml:"location"`                            // Where it was lost/found
	ApproximateTime string     `json:"approximate_time,omitempty" yaml:"approximate_time"`  // Reporter's time estimate
	SecretMessage   string     `json:"secret_message,omitempty" yaml:"secret_message"`      // Private details only the true owner could confirm
	ReporterID      string     `json:"reporter_id" yaml:"reporter_id"`
	Status          ItemStatus `json:"status" yaml:"status"`
}
