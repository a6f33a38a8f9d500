package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prawinrajulu/reclaim/internal/advisory"
	"github.com/prawinrajulu/reclaim/internal/model"
)

var (
	matchJSON    string
	matchTimeout time.Duration
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <items.yaml>",
	Short: "Suggest matches between open lost and found reports",
	Long: `Match asks the advisory model to pair open lost-item reports with open
found-item reports:
- Load the lost and found lists from one YAML document
- Prompt the model with short public summaries (no finder secrets)
- Keep suggestions with confidence 50 or higher, sorted highest first

Suggestions are for an administrator to review; nothing is linked
automatically. Without a working model the command reports no
suggestions instead of failing.

Example:
  reclaim match items.yaml --llm openai --llm-model gpt-4o-mini
  reclaim match items.yaml --json matches.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchJSON, "json", "", "write JSON result to this path (default: stdout)")
	matchCmd.Flags().DurationVar(&matchTimeout, "timeout", 2*time.Minute, "overall matching timeout")

	// LLM flags shared with analyze
	matchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the advisory model (disabled: no suggestions)")
	matchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "advisory model provider (openai, anthropic, ollama)")
	matchCmd.Flags().StringVar(&llmModel, "llm-model", "", "advisory model name")
}

func runMatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), matchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	file, err := advisory.LoadItemsFile(path)
	if err != nil {
		return err
	}

	// Only open reports are matchable, mirroring the claim eligibility rule
	lost := openItems(file.Lost)
	found := openItems(file.Found)

	if verbose {
		fmt.Fprintf(os.Stderr, "Matching: %d lost vs %d found\n\n", len(lost), len(found))
	}

	matcher := advisory.NewMatcher(cfg)
	result := matcher.Match(ctx, lost, found)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Suggestions: %d\n", len(result.Matches))
		if result.Degraded {
			fmt.Fprintln(os.Stderr, "✓ Advisory model unavailable, no suggestions produced")
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeMatches(result, matchJSON, cfg.Output.Pretty)
}

func openItems(items []model.Item) []model.Item {
	open := make([]model.Item, 0, len(items))
	for _, item := range items {
		if !item.Status.IsTerminal() {
			open = append(open, item)
		}
	}
	return open
}

// matchOutput is the JSON document emitted for one matching run
type matchOutput struct {
	Matches []advisory.ItemMatch `json:"matches"`
	Message string               `json:"message,omitempty"`
}

func writeMatches(result *advisory.MatchResult, path string, pretty bool) error {
	out := matchOutput{Matches: result.Matches}
	if result.Degraded {
		out.Message = "AI matching temporarily unavailable"
	} else if len(result.Matches) == 0 {
		out.Message = "No matches suggested"
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
	return nil
}
