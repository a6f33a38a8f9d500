package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prawinrajulu/reclaim/internal/advisory"
	"github.com/prawinrajulu/reclaim/internal/model"
)

var (
	outJSON     string
	timeout     time.Duration
	llmEnabled  bool
	llmProvider string
	llmModel    string
	noCache     bool
	showScore   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <claim.yaml>",
	Short: "Analyze a single claim file and print the advisory result",
	Long: `Analyze runs the full advisory pipeline on one claim file:
- Validate the claim fields and the item's eligibility
- Assess the description and identification marks for vagueness
- Ask the advisory model for verification questions and a structured comparison
- Classify the numeric score into a confidence band

The claim file is a YAML document holding the found item, the claimant ID,
and the claim fields (see examples/ for samples).

Example:
  reclaim analyze claim.yaml
  reclaim analyze claim.yaml --json analysis.json
  reclaim analyze claim.yaml --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write JSON result to this path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&showScore, "show-score", false, "include the raw internal score in the output (audit use)")

	// Pipeline flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable verification-question caching")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the advisory model (disabled: fixed fallback analysis)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "advisory model provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "advisory model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	runner := advisory.NewFileRunner(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "Advisory model: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		} else {
			fmt.Fprintln(os.Stderr, "Advisory model: disabled (fallback analysis)")
		}
		fmt.Fprintln(os.Stderr)
	}

	report, err := runner.AnalyzeFile(ctx, path)
	if err != nil {
		var vErr *advisory.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("claim rejected: %s", vErr.Reason)
		}
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Confidence band: %s\n", report.Result.Analysis.ConfidenceBand)
		fmt.Fprintf(os.Stderr, "✓ Verification questions: %d\n", len(report.Result.Questions))
		if report.Result.Degraded {
			fmt.Fprintln(os.Stderr, "✓ Advisory model unavailable, returned manual-review fallback")
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeReport(report, outJSON, cfg.Output.Pretty)
}

// analysisOutput is the JSON document emitted for one analyzed claim
type analysisOutput struct {
	ItemID        string                 `json:"item_id"`
	ClaimantID    string                 `json:"claimant_id"`
	Status        model.ClaimStatus      `json:"status"`
	Analysis      model.AdvisoryAnalysis `json:"ai_analysis"`
	Questions     []string               `json:"verification_questions"`
	InternalScore *int                   `json:"internal_score,omitempty"`
}

func writeReport(report *advisory.FileReport, path string, pretty bool) error {
	out := analysisOutput{
		ItemID:     report.File.Item.ID,
		ClaimantID: report.File.ClaimantID,
		// Advisory analysis never moves a claim out of pending
		Status:    model.ClaimStatusPending,
		Analysis:  report.Result.Analysis,
		Questions: report.Result.Questions,
	}
	if showScore {
		out.InternalScore = &report.Result.InternalScore
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

// buildConfig assembles runtime configuration from defaults, flags, and
// environment variables (API keys are only ever read from the environment)
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache

	if !llmEnabled {
		return cfg, nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
