package llm

import (
	"fmt"
	"strings"

	"github.com/prawinrajulu/reclaim/internal/model"
)

// SystemInstruction frames every advisory call. The model assists a human
// administrator; it is told up front that it has no authority to decide.
const SystemInstruction = "You are an assistant helping campus lost-and-found administrators review ownership claims. You never decide whether a claim is approved or rejected - you only compare details and explain what you see. A human administrator makes every final decision."

// MatchInstruction frames the lost-to-found matching call. Matches are
// suggestions for an administrator, not links: nothing is joined
// automatically.
const MatchInstruction = "You are an assistant helping campus lost-and-found administrators match lost-item reports with found-item reports. Compare items on description, location, and date. You only suggest candidate pairs with a confidence score; an administrator reviews every suggestion."

// BuildQuestionPrompt constructs the prompt that asks for verification
// questions a true owner could answer but a stranger could not. The item's
// secret text never leaves this prompt; it is not echoed to the claimant.
func BuildQuestionPrompt(item *model.Item) string {
	var b strings.Builder

	b.WriteString("A student handed in a found item. The finder privately recorded details that only the true owner should be able to confirm.\n\n")
	fmt.Fprintf(&b, "Item: %s\n", item.Keyword)
	fmt.Fprintf(&b, "Found at: %s\n", item.Location)
	fmt.Fprintf(&b, "Finder's private notes: %s\n\n", item.SecretMessage)
	b.WriteString("Write 2 to 5 short verification questions that a true owner could answer from memory but a stranger could not guess. ")
	b.WriteString("Do not reveal any of the private details in the questions themselves.\n\n")
	b.WriteString(`Return ONLY a JSON array of question strings, for example:
["What color is the case?", "What is on the lock screen?"]`)

	return b.String()
}

// BuildComparisonPrompt constructs the structured-comparison prompt. It
// supplies the found item's reported attributes, the claimant's submission,
// and both input quality reports, and instructs the model to return a single
// JSON object with a numeric internal score plus categorized explanations.
func BuildComparisonPrompt(item *model.Item, input model.ClaimInput, descQuality, marksQuality model.InputQualityReport) string {
	var b strings.Builder

	b.WriteString("Compare a found-item report against an ownership claim.\n\n")

	b.WriteString("FOUND ITEM (reported by the finder):\n")
	fmt.Fprintf(&b, "- Item: %s\n", item.Keyword)
	fmt.Fprintf(&b, "- Description: %s\n", item.Description)
	fmt.Fprintf(&b, "- Location found: %s\n", item.Location)
	if item.ApproximateTime != "" {
		fmt.Fprintf(&b, "- Approximate time: %s\n", item.ApproximateTime)
	}
	if item.SecretMessage != "" {
		fmt.Fprintf(&b, "- Private details from finder: %s\n", item.SecretMessage)
	}

	b.WriteString("\nCLAIM (submitted by the claimant):\n")
	fmt.Fprintf(&b, "- Product type: %s\n", input.ProductType)
	fmt.Fprintf(&b, "- Description: %s\n", input.Description)
	fmt.Fprintf(&b, "- Identification marks: %s\n", input.IdentificationMarks)
	fmt.Fprintf(&b, "- Location lost: %s\n", input.LostLocation)
	if input.ApproximateDate != "" {
		fmt.Fprintf(&b, "- Approximate date: %s\n", input.ApproximateDate)
	}

	b.WriteString("\nINPUT QUALITY (lexical heuristics, already computed):\n")
	fmt.Fprintf(&b, "- Description: score %d/100 (%s)%s\n", descQuality.Score, descQuality.Quality, flagSuffix(descQuality.Flags))
	fmt.Fprintf(&b, "- Identification marks: score %d/100 (%s)%s\n", marksQuality.Score, marksQuality.Quality, flagSuffix(marksQuality.Flags))

	b.WriteString(`
Return ONLY a JSON object with exactly these fields:
{
  "internal_score": <integer 0-100, how well the claim matches the found item>,
  "what_matched": [<short strings>],
  "what_partially_matched": [<short strings>],
  "what_did_not_match": [<short strings>],
  "missing_information": [<short strings>],
  "inconsistencies": [<short strings>],
  "reasoning": "<2-3 sentence summary for the reviewing administrator>",
  "recommendation_for_admin": "<suggested next step, never a decision>"
}

Weight the private finder details heavily: matching them is strong evidence, contradicting them is strong counter-evidence. Vague claims that merely restate the public listing deserve a low score.`)

	return b.String()
}

// matchSummaryLimit caps how many items of each side go into one matching
// prompt
const matchSummaryLimit = 20

// BuildMatchPrompt constructs the lost-to-found matching prompt from short
// item summaries. Secret finder details stay out of it: matching sees only
// the public listing fields.
func BuildMatchPrompt(lost, found []model.Item) string {
	var b strings.Builder

	b.WriteString("Match these lost-item reports with found-item reports.\n\n")

	b.WriteString("LOST ITEMS:\n")
	writeMatchSummaries(&b, lost)

	b.WriteString("\nFOUND ITEMS:\n")
	writeMatchSummaries(&b, found)

	b.WriteString(`
Return ONLY a JSON array of matches. Each match has exactly these fields:
{
  "lost_id": "<id of the lost item>",
  "found_id": "<id of the found item>",
  "confidence": <integer 0-100>,
  "reason": "<brief explanation of why they might match>"
}

Only include pairs with confidence 50 or higher. An empty array is a valid answer.`)

	return b.String()
}

func writeMatchSummaries(b *strings.Builder, items []model.Item) {
	n := len(items)
	if n > matchSummaryLimit {
		n = matchSummaryLimit
	}
	for _, item := range items[:n] {
		fmt.Fprintf(b, "- id: %s | item: %s | description: %s | location: %s",
			item.ID, item.Keyword, item.Description, item.Location)
		if item.ApproximateTime != "" {
			fmt.Fprintf(b, " | when: %s", item.ApproximateTime)
		}
		b.WriteString("\n")
	}
}

func flagSuffix(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	return ", flags: " + strings.Join(flags, "; ")
}
