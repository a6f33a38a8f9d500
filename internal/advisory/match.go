package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/prawinrajulu/reclaim/internal/llm"
	"github.com/prawinrajulu/reclaim/internal/model"
	"github.com/prawinrajulu/reclaim/internal/score"
)

// minMatchConfidence is the floor below which suggested pairs are discarded
const minMatchConfidence = 50

// ItemMatch is one suggested lost-to-found pairing for admin review
type ItemMatch struct {
	Lost       model.Item           `json:"lost_item"`
	Found      model.Item           `json:"found_item"`
	Confidence int                  `json:"confidence"`
	Band       model.ConfidenceBand `json:"confidence_band"`
	Reason     string               `json:"reason"`
}

// MatchResult is the outcome of one matching run. Degraded matching is
// empty, never an error: the admin sees "no suggestions" and moves on.
type MatchResult struct {
	Matches  []ItemMatch
	Degraded bool
}

// Matcher suggests candidate pairings between open lost reports and open
// found reports, best-effort. Like the claim engine it only annotates:
// no item is ever linked or has its status changed here.
type Matcher struct {
	provider llm.Provider
	limiter  *llm.Limiter
}

// NewMatcher creates a matcher sharing the engine's provider configuration.
// A misconfigured or absent model is not an error; every run then degrades
// to an empty suggestion list.
func NewMatcher(cfg *model.Config) *Matcher {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		provider = nil
	}

	return &Matcher{
		provider: provider,
		limiter:  llm.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
	}
}

// Match suggests pairings between the given lost and found items. Either
// side being empty short-circuits to no matches without a model call.
// Unknown IDs and pairs under the confidence floor are dropped; survivors
// are sorted by confidence, highest first.
func (m *Matcher) Match(ctx context.Context, lost, found []model.Item) *MatchResult {
	if len(lost) == 0 || len(found) == 0 {
		return &MatchResult{Matches: []ItemMatch{}}
	}

	if m.provider == nil {
		return degradedMatches(degradedf("matching", "no advisory model configured", nil))
	}

	if err := m.limiter.Wait(ctx, m.provider.Name()); err != nil {
		return degradedMatches(degradedf("matching", "rate limiter wait aborted", err))
	}

	resp, err := m.provider.Complete(ctx, llm.CompletionRequest{
		System: llm.MatchInstruction,
		Prompt: llm.BuildMatchPrompt(lost, found),
	})
	if err != nil {
		return degradedMatches(degradedf("matching", "model call failed", err))
	}

	raw, degraded := parseMatches(resp.Text)
	if degraded != nil {
		return degradedMatches(degraded)
	}

	lostByID := itemsByID(lost)
	foundByID := itemsByID(found)

	matches := make([]ItemMatch, 0, len(raw))
	for _, r := range raw {
		confidence := int(r.Confidence)
		if confidence < minMatchConfidence {
			continue
		}
		lostItem, ok := lostByID[r.LostID]
		if !ok {
			continue
		}
		foundItem, ok := foundByID[r.FoundID]
		if !ok {
			continue
		}
		matches = append(matches, ItemMatch{
			Lost:       lostItem,
			Found:      foundItem,
			Confidence: confidence,
			Band:       score.Classify(confidence),
			Reason:     r.Reason,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	return &MatchResult{Matches: matches}
}

func degradedMatches(degraded *DegradationError) *MatchResult {
	fmt.Fprintf(os.Stderr, "Warning: %v\n", degraded)
	return &MatchResult{Matches: []ItemMatch{}, Degraded: true}
}

func itemsByID(items []model.Item) map[string]model.Item {
	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID
}

// rawMatch is the schema the model is instructed to return per pair
type rawMatch struct {
	LostID     string  `json:"lost_id"`
	FoundID    string  `json:"found_id"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// parseMatches extracts the match array from the model's free-form response.
// An empty array is a valid answer, unlike verification questions.
func parseMatches(text string) ([]rawMatch, *DegradationError) {
	payload, ok := extractJSON(text, '[', ']')
	if !ok {
		return nil, degradedf("matching", "no JSON array in model response", nil)
	}

	var raw []rawMatch
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, degradedf("matching", "malformed JSON in model response", err)
	}

	return raw, nil
}
