package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/config"
	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/logger"
	"github.com/BarkinBalci/donation-session-service/internal/repository/csvfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		inputPath string
		outputDir string
		shares    = dataset.Shares{
			Train: cfg.Dataset.TrainShare,
			Val:   cfg.Dataset.ValShare,
			Test:  cfg.Dataset.TestShare,
		}
	)
	flag.StringVar(&inputPath, "input", "sessions.csv", "session table to split")
	flag.StringVar(&outputDir, "output_dir", ".", "directory for train.csv, val.csv and test.csv")
	flag.Float64Var(&shares.Train, "train_share", shares.Train, "fraction of sessions for training")
	flag.Float64Var(&shares.Val, "val_share", shares.Val, "fraction of sessions for validation")
	flag.Float64Var(&shares.Test, "test_share", shares.Test, "fraction of sessions for testing")
	flag.Parse()

	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	if err := run(context.Background(), inputPath, outputDir, shares, log); err != nil {
		log.Error("Dataset split failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, inputPath, outputDir string, shares dataset.Shares, log *zap.Logger) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open session table: %w", err)
	}
	rows, err := dataset.ReadSessionRows(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("failed to read session table: %w", err)
	}

	split, err := dataset.SplitBySessions(rows, shares)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	parts := []struct {
		name string
		rows int
		err  error
	}{
		{name: "train.csv", rows: len(split.Train), err: csvfile.WriteFile(ctx, filepath.Join(outputDir, "train.csv"), split.Train, log)},
		{name: "val.csv", rows: len(split.Val), err: csvfile.WriteFile(ctx, filepath.Join(outputDir, "val.csv"), split.Val, log)},
		{name: "test.csv", rows: len(split.Test), err: csvfile.WriteFile(ctx, filepath.Join(outputDir, "test.csv"), split.Test, log)},
	}
	for _, part := range parts {
		if part.err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, part.err)
		}
		log.Info("Wrote split", zap.String("file", part.name), zap.Int("row_count", part.rows))
	}

	return nil
}
