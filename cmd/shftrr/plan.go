package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlie2bored/shftrr/internal/escapeplan"
	"github.com/charlie2bored/shftrr/internal/llm"
	"github.com/charlie2bored/shftrr/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an escape plan from a JSON input file",
	Long:  "Runs the escape plan pipeline against an input file without a database or server. Uses the Gemini model when GEMINI_API_KEY is set, otherwise the deterministic generator.",
	RunE:  runPlan,
}

var (
	planInputPath  string
	planOutputPath string
)

func init() {
	planCmd.Flags().StringVarP(&planInputPath, "input", "i", "", "Path to the escape plan input JSON (required)")
	planCmd.Flags().StringVarP(&planOutputPath, "output", "o", "", "Write the plan to this file instead of stdout")

	if err := planCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(planInputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var in types.EscapePlanInput
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	var gateway escapeplan.Gateway
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()
		gateway = client
	}

	generator := escapeplan.NewGenerator(gateway, logger)
	plan, source, err := generator.Generate(ctx, &in, nil)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}
	logger.Info("plan generated", slog.String("source", source))

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	out = append(out, '\n')

	if planOutputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(planOutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}
