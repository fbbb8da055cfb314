// Package main provides the entry point for the HR agent: resume screening,
// interview slot discovery and interview scheduling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hr_agent",
	Short: "HR hiring workflow agent",
	Long:  "HR agent screens resume batches against job descriptions, finds open interview slots on the company calendar, and schedules interviews with confirmation emails.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
