package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prawinrajulu/reclaim/internal/cache"
	"github.com/prawinrajulu/reclaim/internal/llm"
	"github.com/prawinrajulu/reclaim/internal/model"
	"github.com/prawinrajulu/reclaim/internal/quality"
	"github.com/prawinrajulu/reclaim/internal/score"
	"github.com/prawinrajulu/reclaim/internal/store"
)

// AdvisoryNote is the fixed disclaimer attached to every analysis. It must
// always state that the analysis is advisory-only and that a human
// administrator makes the final decision.
const AdvisoryNote = "This AI analysis is advisory only. It does not prove or disprove ownership, and the final decision on this claim always rests with the reviewing administrator."

const (
	fallbackReasoning = "AI analysis is not available for this claim. An administrator must manually review all submitted details before making a decision."

	fallbackMissingNote = "Automated comparison was not performed; verify every detail with the claimant manually"
)

// fallbackQuestions is the generic question list substituted whenever the
// model cannot produce item-specific verification questions.
var fallbackQuestions = []string{
	"Describe any unique marks, damage, stickers, or accessories on the item that only the owner would know about.",
	"What was stored in or with the item when you lost it?",
}

// Engine runs the claim-adjudication advisory pipeline: pre-validation,
// input quality assessment, best-effort advisory model calls, and
// deterministic confidence-band classification. It annotates claims for a
// human reviewer and has no ability to decide them: the claim status is
// never read or written here.
type Engine struct {
	provider  llm.Provider
	assessor  *quality.Assessor
	items     store.ItemStore
	questions cache.Cache
	limiter   *llm.Limiter
	config    *model.Config
}

// NewEngine creates an engine over the given item store. A misconfigured or
// absent advisory model is not an error: the engine runs with a nil provider
// and every analysis degrades to the manual-review fallback.
func NewEngine(cfg *model.Config, items store.ItemStore) *Engine {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		provider = nil
	}

	var questions cache.Cache
	if cfg.Cache.Enabled {
		questions = cache.NewMemoryCache(cfg.Cache.QuestionTTL, 10*time.Minute)
	}

	return &Engine{
		provider:  provider,
		assessor:  quality.NewAssessor(),
		items:     items,
		questions: questions,
		limiter:   llm.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		config:    cfg,
	}
}

// Result is the complete output of one claim analysis
type Result struct {
	// Analysis is shown to the claimant and embedded into the stored claim
	Analysis model.AdvisoryAnalysis

	// Questions are the verification questions for the admin to ask
	Questions []string

	// InternalScore is the model's raw numeric score, kept for audit and
	// storage but never shown to the claimant. Zero when degraded.
	InternalScore int

	// Degraded reports whether the comparison fell back to the fixed
	// INSUFFICIENT analysis
	Degraded bool
}

// AnalyzeClaim runs the full advisory pipeline for one claim submission.
//
// It returns an error only for pre-validation failures (or an item lookup
// failure from the store). Advisory model failures of any kind are absorbed:
// the returned analysis is then the fixed INSUFFICIENT fallback, still
// carrying the real input-quality flags.
func (e *Engine) AnalyzeClaim(ctx context.Context, claimantID string, input model.ClaimInput) (*Result, error) {
	// Field lengths are checked before anything else: undersized input
	// never reaches the store or the model.
	minDesc := e.config.Advisory.MinDescriptionChars
	if len(input.Description) < minDesc {
		return nil, validationf("description", "Description is too vague: minimum %d characters required", minDesc)
	}
	minMarks := e.config.Advisory.MinMarksChars
	if len(input.IdentificationMarks) < minMarks {
		return nil, validationf("identification_marks", "Identification marks are too vague: minimum %d characters required", minMarks)
	}

	item, err := e.items.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if item.Kind != model.ItemKindFound {
		return nil, validationf("item", "Claims can only be made against found items")
	}
	if item.Status.IsTerminal() {
		return nil, validationf("item", "This item is no longer claimable (status: %s)", item.Status)
	}
	if item.ReporterID == claimantID {
		return nil, validationf("item", "You cannot claim an item you reported yourself")
	}

	// Both fields are assessed unconditionally, before any model call, so
	// the flags survive every degradation path.
	descQuality := e.assessor.Assess(input.Description)
	marksQuality := e.assessor.Assess(input.IdentificationMarks)

	flags := make([]string, 0, len(descQuality.Flags)+len(marksQuality.Flags))
	flags = append(flags, descQuality.Flags...)
	flags = append(flags, marksQuality.Flags...)

	questions := e.verificationQuestions(ctx, item)

	cmp, degraded := e.compare(ctx, item, input, descQuality, marksQuality)
	if degraded != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", degraded)
		return &Result{
			Analysis:  fallbackAnalysis(flags),
			Questions: questions,
			Degraded:  true,
		}, nil
	}

	internalScore := int(*cmp.InternalScore)

	// The band is always recomputed from the numeric score. The model's
	// own confidence_band label, if present, is discarded.
	analysis := model.AdvisoryAnalysis{
		ConfidenceBand:         score.Classify(internalScore),
		Reasoning:              cmp.Reasoning,
		WhatMatched:            emptyIfNil(cmp.WhatMatched),
		WhatPartiallyMatched:   emptyIfNil(cmp.WhatPartiallyMatched),
		WhatDidNotMatch:        emptyIfNil(cmp.WhatDidNotMatch),
		MissingInformation:     emptyIfNil(cmp.MissingInformation),
		Inconsistencies:        emptyIfNil(cmp.Inconsistencies),
		InputQualityFlags:      flags,
		RecommendationForAdmin: cmp.RecommendationForAdmin,
		AdvisoryNote:           AdvisoryNote,
	}

	return &Result{
		Analysis:      analysis,
		Questions:     questions,
		InternalScore: internalScore,
	}, nil
}

// verificationQuestions obtains 2-5 owner-only questions for the item,
// best-effort. Any failure substitutes the generic fallback list; this step
// never aborts the pipeline. Successful lists are cached per item so repeat
// claims reuse the same questions; fallbacks are not cached, so a recovered
// provider gets retried.
func (e *Engine) verificationQuestions(ctx context.Context, item *model.Item) []string {
	if e.questions != nil {
		if data, found := e.questions.Get(cache.QuestionKey(item.ID)); found {
			var cached []string
			if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
				return cached
			}
		}
	}

	if e.provider == nil {
		return fallbackQuestions
	}

	if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", degradedf("questions", "rate limiter wait aborted", err))
		return fallbackQuestions
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System: llm.SystemInstruction,
		Prompt: llm.BuildQuestionPrompt(item),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", degradedf("questions", "model call failed", err))
		return fallbackQuestions
	}

	questions, degraded := parseQuestions(resp.Text)
	if degraded != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", degraded)
		return fallbackQuestions
	}

	if e.questions != nil {
		if data, err := json.Marshal(questions); err == nil {
			_ = e.questions.Set(cache.QuestionKey(item.ID), data, e.config.Cache.QuestionTTL)
		}
	}

	return questions
}

// compare obtains the structured comparison from the advisory model. The
// two outcomes are strict: either a validated comparison or a degradation
// value; a failure can never surface as anything else.
func (e *Engine) compare(ctx context.Context, item *model.Item, input model.ClaimInput, descQuality, marksQuality model.InputQualityReport) (*structuredComparison, *DegradationError) {
	if e.provider == nil {
		return nil, degradedf("comparison", "no advisory model configured", nil)
	}

	if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
		return nil, degradedf("comparison", "rate limiter wait aborted", err)
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System: llm.SystemInstruction,
		Prompt: llm.BuildComparisonPrompt(item, input, descQuality, marksQuality),
	})
	if err != nil {
		return nil, degradedf("comparison", "model call failed", err)
	}

	return parseComparison(resp.Text)
}

// fallbackAnalysis is the fixed-shape result returned whenever the
// comparison cannot be completed. Same shape as a successful analysis, band
// INSUFFICIENT, with the real input-quality flags carried through.
func fallbackAnalysis(flags []string) model.AdvisoryAnalysis {
	return model.AdvisoryAnalysis{
		ConfidenceBand:         model.BandInsufficient,
		Reasoning:              fallbackReasoning,
		WhatMatched:            []string{},
		WhatPartiallyMatched:   []string{},
		WhatDidNotMatch:        []string{},
		MissingInformation:     []string{fallbackMissingNote},
		Inconsistencies:        []string{},
		InputQualityFlags:      flags,
		RecommendationForAdmin: "Ask the claimant the verification questions and compare answers against the finder's private notes.",
		AdvisoryNote:           AdvisoryNote,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
