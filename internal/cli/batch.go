package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prawinrajulu/reclaim/internal/advisory"
	"github.com/prawinrajulu/reclaim/internal/model"
	"github.com/prawinrajulu/reclaim/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple claim files in parallel",
	Long: `Batch processes multiple claim files concurrently:
- Read claim-file paths from an input file (one per line, # comments)
- Analyze claims in parallel with a configurable worker count
- Write one JSON result per claim into the output directory

Example:
  reclaim batch claims.txt
  reclaim batch claims.txt --concurrency 10 --output-dir ./analyses
  reclaim batch claims.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./reclaim-analyses", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// LLM flags shared with analyze
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the advisory model (disabled: fixed fallback analysis)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "advisory model provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "advisory model name")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable verification-question caching")
	batchCmd.Flags().BoolVar(&showScore, "show-score", false, "include the raw internal score in the output (audit use)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Reclaim Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", listPath)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	runner := advisory.NewFileRunner(cfg)
	processor := worker.NewBatchProcessor(runner, concurrency)

	results, err := processor.ProcessFile(ctx, listPath)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(outputDir, resultFileName(result.Path))
		if err := writeBatchResult(result.Report, outPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%s)\n", result.Path, outPath, result.Report.Result.Analysis.ConfidenceBand)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Completed: %d analyzed, %d failed\n", successCount, failureCount)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d claims failed", failureCount)
	}
	return nil
}

func resultFileName(claimPath string) string {
	base := filepath.Base(claimPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".analysis.json"
}

func writeBatchResult(report *advisory.FileReport, path string) error {
	out := analysisOutput{
		ItemID:     report.File.Item.ID,
		ClaimantID: report.File.ClaimantID,
		Status:     model.ClaimStatusPending,
		Analysis:   report.Result.Analysis,
		Questions:  report.Result.Questions,
	}
	if showScore {
		out.InternalScore = &report.Result.InternalScore
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
