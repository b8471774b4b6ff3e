// bankingest converts daily BAI2 bank settlement files into per-account
// balance and per-transaction CSV outputs, with an optional XLSX review
// workbook, and records each run in a JSON history file.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bank-ingest/internal/bai2"
	"bank-ingest/internal/config"
	"bank-ingest/internal/gateway"
	"bank-ingest/internal/usecase"
)

// version is set at build time with -ldflags.
var version = "dev"

var log = logrus.New()

var (
	cfgFile    string
	inputPath  string
	outputDir  string
	permissive bool
	writeXLSX  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bankingest",
	Short: "Ingest BAI2 bank settlement files into tabular outputs",
	Long: `bankingest parses a daily BAI2 settlement file, validates every
control total and record count the bank declared, and writes two CSVs:
per-account balance summaries and per-transaction detail rows. A file that
fails validation produces no output at all.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Parse one settlement file and write its outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bankingest %s (%s)\n", version, runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd.Flags().StringVar(&inputPath, "input", "", "settlement file, or directory to scan for the newest one")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the CSV and XLSX outputs")
	runCmd.Flags().BoolVar(&permissive, "permissive", false, "skip unrecognized record types instead of failing")
	runCmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "also write the XLSX review workbook")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func runIngest() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", cfg.OutputDir, err)
	}

	parser := bai2.New(log)
	parser.Permissive = cfg.Permissive

	var report usecase.ReportWriter
	if cfg.WriteXLSX {
		report = gateway.NewXLSXReportWriter(cfg.OutputDir)
	}
	uc := usecase.NewIngestUseCase(
		gateway.NewLocalFileSource(cfg.InputPath),
		parser,
		gateway.NewCSVRowWriter(cfg.OutputDir),
		report,
		gateway.NewRunLog(filepath.Join(cfg.WorkDir, cfg.RunLogName)),
		log,
	)

	result, err := uc.Ingest(context.Background())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"run_id":           result.RunID,
		"balances_csv":     result.BalancesCSV,
		"transactions_csv": result.TransactionsCSV,
	}).Info("ingest completed")
	return nil
}

// loadConfig reads the config file if one was given and applies flag
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if inputPath != "" {
		cfg.InputPath = inputPath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if permissive {
		cfg.Permissive = true
	}
	if writeXLSX {
		cfg.WriteXLSX = true
	}
	return cfg, nil
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
