package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"contentteam/internal/config"
	"contentteam/internal/cultural"
	"contentteam/internal/logging"
	"contentteam/internal/metrics"
	"contentteam/internal/mobile"
	"contentteam/internal/quality"
	"contentteam/internal/readability"
	"contentteam/internal/storage"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootCmd = &cobra.Command{
		Use:                "contentteam",
		Short:              "Marketing content analysis and generation for the Indian market",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
	configPath  string
	dbPath      string
	logLevel    string
	metricsFile string

	// appFs backs every file read and report write so commands can run on a
	// memory filesystem in tests.
	appFs afero.Fs = afero.NewOsFs()
	app   *appContext
)

type appContext struct {
	cfg      *config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the run archive database (SQLite)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(culturalCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(seoCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(competitorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if metricsFile != "" {
		cfg.Metrics.Textfile = metricsFile
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	app = &appContext{
		cfg:      cfg,
		logger:   logger,
		recorder: metrics.NewRecorder("contentteam", logger),
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if app == nil {
		return nil
	}
	defer func() { _ = app.logger.Sync() }()
	if path := app.cfg.Metrics.Textfile; path != "" {
		return app.recorder.WriteTextfile(path)
	}
	return nil
}

// readInput loads a UTF-8 input file.
func readInput(path string) (string, error) {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// analyzers are the scoring components built from the scoring section.
type analyzers struct {
	readability *readability.Scorer
	cultural    *cultural.Checker
	mobile      *mobile.Optimizer
	quality     *quality.Assessor
}

func (a *appContext) analyzers() analyzers {
	s := a.cfg.Scoring
	r := readability.New(s.Readability)
	c := cultural.New(s.Cultural)
	m := mobile.New(s.Mobile)
	return analyzers{
		readability: r,
		cultural:    c,
		mobile:      m,
		quality:     quality.New(s.Quality, r, m, c),
	}
}

func (a *appContext) openStore() (*storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(a.cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}
