// Package main provides the entry point for the shftrr HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shftrr",
	Short: "shftrr career pivot coaching API server",
	Long:  "shftrr generates personalized career escape plans from a user's financial situation, skills, and goals, backed by a deterministic plan generator when no model is available.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
