package advisory

import (
	"reflect"
	"testing"
)

func TestExtractJSON_FencedObject(t *testing.T) {
	text := "Here is the analysis:\n```json\n{\"internal_score\": 42}\n```\nHope that helps!"

	payload, ok := extractJSON(text, '{', '}')
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if payload != `{"internal_score": 42}` {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	text := `prefix {"outer": {"inner": 1}, "n": 2} suffix {ignored}`

	payload, ok := extractJSON(text, '{', '}')
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if payload != `{"outer": {"inner": 1}, "n": 2}` {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	text := `{"reasoning": "matches {mostly}, see \"notes\" ]"}`

	payload, ok := extractJSON(text, '{', '}')
	if !ok {
		t.Fatal("expected to find a JSON object")
	}
	if payload != text {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestExtractJSON_NoPayload(t *testing.T) {
	if _, ok := extractJSON("the model rambled with no JSON at all", '{', '}'); ok {
		t.Error("expected no object in prose")
	}
	if _, ok := extractJSON(`{"unterminated": true`, '{', '}'); ok {
		t.Error("expected failure on an unbalanced object")
	}
}

func TestParseComparison_Valid(t *testing.T) {
	cmp, degraded := parseComparison(`The comparison: {"internal_score": 72, "what_matched": ["color"], "reasoning": "ok"}`)
	if degraded != nil {
		t.Fatalf("unexpected degradation: %v", degraded)
	}
	if cmp.InternalScore == nil || *cmp.InternalScore != 72 {
		t.Errorf("unexpected score: %v", cmp.InternalScore)
	}
	if !reflect.DeepEqual(cmp.WhatMatched, []string{"color"}) {
		t.Errorf("unexpected matched list: %v", cmp.WhatMatched)
	}
}

func TestParseComparison_MissingScore(t *testing.T) {
	_, degraded := parseComparison(`{"reasoning": "looks fine", "what_matched": []}`)
	if degraded == nil {
		t.Fatal("expected degradation when internal_score is absent")
	}
	if degraded.Stage != "comparison" {
		t.Errorf("unexpected stage: %s", degraded.Stage)
	}
}

func TestParseComparison_NotJSON(t *testing.T) {
	_, degraded := parseComparison("I think the claim is strong.")
	if degraded == nil {
		t.Fatal("expected degradation for prose-only response")
	}
}

func TestParseQuestions_Valid(t *testing.T) {
	questions, degraded := parseQuestions(`Sure: ["What color is the strap?", "  What is engraved inside?  ", ""]`)
	if degraded != nil {
		t.Fatalf("unexpected degradation: %v", degraded)
	}
	want := []string{"What color is the strap?", "What is engraved inside?"}
	if !reflect.DeepEqual(questions, want) {
		t.Errorf("got %v, want %v", questions, want)
	}
}

func TestParseQuestions_TooFew(t *testing.T) {
	if _, degraded := parseQuestions(`["Only one question?"]`); degraded == nil {
		t.Error("expected degradation for a single question")
	}
	if _, degraded := parseQuestions(`["", "  "]`); degraded == nil {
		t.Error("expected degradation when all questions are blank")
	}
}

func TestParseQuestions_TruncatesAtFive(t *testing.T) {
	questions, degraded := parseQuestions(`["q1","q2","q3","q4","q5","q6","q7"]`)
	if degraded != nil {
		t.Fatalf("unexpected degradation: %v", degraded)
	}
	if len(questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(questions))
	}
}
