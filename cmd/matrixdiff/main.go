package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"matrixdiff/adapters/gemini"
	"matrixdiff/app"
	"matrixdiff/domain/compare"
	"matrixdiff/internal/config"
	"matrixdiff/ports"
)

func main() {
	// Load environment variables from .env if present; real env wins.
	_ = godotenv.Load()

	var (
		local       bool
		concurrency int
	)

	rootCmd := &cobra.Command{
		Use:   "matrixdiff <workbook.xlsx>",
		Short: "Quarter-over-quarter semantic drift report for code note worksheets",
		Long: `matrixdiff compares the Q3 and Q4 snapshot sheets of a workbook,
scores how far each code's notes drifted using text embeddings, and writes
color-coded report sheets with a summary back into the same file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var scorer ports.Scorer
			thresholds := compare.DefaultThresholds
			if local {
				scorer = compare.NewLexicalScorer()
				thresholds = compare.LexicalThresholds
			} else {
				if err := cfg.RequireAPIKey(); err != nil {
					return err
				}
				scorer = compare.NewEmbeddingScorer(gemini.NewClient(cfg.Embed))
			}

			if concurrency < 1 {
				concurrency = cfg.Embed.Concurrency
			}

			pipeline := app.NewPipeline(scorer, thresholds, concurrency)
			return pipeline.Run(cmd.Context(), args[0])
		},
	}

	rootCmd.Flags().BoolVar(&local, "local", false,
		"compare with a local sequence ratio instead of the embedding API (no credential needed)")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 0,
		"max in-flight embedding calls (default EMBED_CONCURRENCY)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
