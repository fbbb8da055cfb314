package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-agent/internal/config"
	"github.com/jonathan/hr-agent/internal/extraction"
	"github.com/jonathan/hr-agent/internal/fetch"
	"github.com/jonathan/hr-agent/internal/llm"
	"github.com/jonathan/hr-agent/internal/screening"
)

var (
	screenJobFile string
	screenJobURL  string
)

var screenCmd = &cobra.Command{
	Use:   "screen [resume files...]",
	Short: "Score a batch of resumes against a job description",
	Long:  "Extract text from the given resume files, score each candidate against the job description, and print the ranked candidates as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().StringVarP(&screenJobFile, "job", "j", "", "Path to a file containing the job description")
	screenCmd.Flags().StringVarP(&screenJobURL, "job-url", "u", "", "URL of the job posting")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	if screenJobFile == "" && screenJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if screenJobFile != "" && screenJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	var jobDescription string
	if screenJobFile != "" {
		content, err := os.ReadFile(screenJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(content)
	} else {
		text, err := fetch.JobDescription(ctx, screenJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		jobDescription = text
	}
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("job description is empty")
	}

	var extractor extraction.TextExtractor
	var model screening.ModelScorer
	if cfg.DevMode {
		extractor = extraction.NewStubExtractor()
		model = screening.NewStubModelScorer()
	} else {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create model client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = extraction.NewDocExtractor()
		model = screening.NewGeminiScorer(client)
	}

	texts := extractor.Extract(ctx, args)
	batch := screening.NewBatchProcessor(screening.NewScorer(model))
	candidates := batch.Process(ctx, texts, jobDescription)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{"candidates": candidates})
}
