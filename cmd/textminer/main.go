package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"textminer/internal/config"
	"textminer/internal/pipeline"
	"textminer/internal/tokenize"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// run flags
	inputPath string
	outputDir string
	minLen    int
	threshold int
	top       int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textminer",
	Short: "textminer - corpus token frequency mining",
	Long: `textminer reads a text corpus, normalizes and tokenizes it, removes
stopwords and short tokens, counts token frequencies, and writes the results
to CSV, Excel, a summary, a bar chart, and a run log.

The pipeline is a single pass: read file -> transform text -> aggregate
counts -> write outputs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd executes the mining pipeline
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the mining pipeline over the configured corpus",
	Long: `Runs the full pipeline:
  1. Load the corpus file as UTF-8 text
  2. Normalize (NFKC), tokenize, drop stopwords and short tokens
  3. Count token frequencies
  4. Write CSVs, the Excel workbook, the summary, the chart, and the run log`,
	RunE: runPipeline,
}

// stopwordsCmd prints the effective stopword set
var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Print the effective stopword set",
	RunE:  printStopwords,
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the textminer version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("textminer %s\n", version)
	},
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// Flags beat config file values.
	if cmd.Flags().Changed("input") {
		cfg.Corpus.Input = inputPath
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Export.OutputDir = outputDir
	}
	if cmd.Flags().Changed("min-len") {
		cfg.Tokenizer.MinTokenLength = minLen
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Export.Threshold = threshold
	}
	if cmd.Flags().Changed("top") {
		cfg.Export.Top = top
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stats, err := pipeline.Run(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s complete: %d tokens, %d unique. See %s/run_log.txt\n",
		stats.RunID, stats.TotalTokens, stats.UniqueTokens, cfg.Export.OutputDir)
	return nil
}

func printStopwords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sw := tokenize.NewStopwords(cfg.Tokenizer.ExtraStopwords, cfg.Tokenizer.NoDefaultStopwords)
	for _, w := range sw.Sorted() {
		fmt.Println(w)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "textminer.yaml", "path to YAML config")

	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "corpus file to mine")
	runCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for output artifacts")
	runCmd.Flags().IntVar(&minLen, "min-len", 0, "minimum token length")
	runCmd.Flags().IntVar(&threshold, "threshold", 0, "minimum count for the thresholded outputs")
	runCmd.Flags().IntVar(&top, "top", 0, "rows in the summary tables")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stopwordsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
