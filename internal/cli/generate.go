package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/553059210/Exam-gen/internal/model"
	"github.com/553059210/Exam-gen/internal/pipeline"
)

var (
	inputDir  string
	outputDir string
	outPrefix string
	seed      int64
	examTitle string
	extractor string
	writeJSON bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an exam paper pair from a directory of law documents",
	Long: `Generate parses every recognized document (.docx, .html, .txt, .md)
in the input directory into legal articles, samples them with the
configured importance weights, synthesizes the five question sections
and writes the LaTeX paper pair (plain and answer-annotated).

A fixed seed reproduces the exact same exam for the same inputs.

Example:
  examgen generate --input ./laws --seed 2025 --out-prefix exam_01
  examgen generate --input ./laws --output ./out --json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&inputDir, "input", "", "input directory with law documents")
	generateCmd.Flags().StringVar(&outputDir, "output", "", "output directory for generated files")
	generateCmd.Flags().StringVar(&outPrefix, "out-prefix", "exam_01", "output file prefix")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed override")
	generateCmd.Flags().StringVar(&examTitle, "title", "", "exam title override")
	generateCmd.Flags().StringVar(&extractor, "extractor", "", "keyword extractor (heuristic, openai)")
	generateCmd.Flags().BoolVar(&writeJSON, "json", false, "also write the raw exam as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Flags override the config hierarchy
	if cmd.Flags().Changed("input") {
		cfg.InputDir = inputDir
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("title") {
		cfg.ExamTitle = examTitle
	}
	if cmd.Flags().Changed("extractor") {
		cfg.Analysis.Extractor = extractor
	}
	if cfg.Analysis.Extractor == "openai" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Input: %s\n", cfg.InputDir)
		fmt.Fprintf(os.Stderr, "Seed: %d\n", cfg.Seed)
		fmt.Fprintf(os.Stderr, "Extractor: %s\n", cfg.Analysis.Extractor)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, verbose)
	result, err := p.Generate(context.Background(), outPrefix, writeJSON)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	fmt.Printf("Parsed %d articles\n", result.ArticleCount)
	counts := result.Exam.Counts()
	fmt.Printf("Assembled %d questions (判断 %d, 单选 %d, 多选 %d, 填空 %d, 简答 %d)\n",
		result.Exam.Total(),
		counts[model.TypeTrueFalse], counts[model.TypeSingle], counts[model.TypeMultiple],
		counts[model.TypeFill], counts[model.TypeShort])
	fmt.Printf("Wrote: %s, %s\n", result.ExamPath, result.AnswersPath)
	if result.JSONPath != "" {
		fmt.Printf("Wrote: %s\n", result.JSONPath)
	}

	return nil
}

// loadConfig merges the viper hierarchy over the built-in defaults.
// Unmarshal leaves absent keys at their default values, so a missing
// key never fails.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		return model.DefaultConfig()
	}
	return cfg
}
