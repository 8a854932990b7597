package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/config"
	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/logger"
	"github.com/BarkinBalci/donation-session-service/internal/pipeline"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
	"github.com/BarkinBalci/donation-session-service/internal/repository/clickhouse"
	"github.com/BarkinBalci/donation-session-service/internal/repository/csvfile"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

const (
	sinkCSV        = "csv"
	sinkClickHouse = "clickhouse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		paymentsPath  string
		campaignsPath string
		outputPath    string
		sink          string
		params        = cfg.Sessions
	)
	flag.StringVar(&paymentsPath, "payments", "payments.csv", "path to the payments export")
	flag.StringVar(&campaignsPath, "campaigns", "campaigns.csv", "path to the campaigns export")
	flag.StringVar(&outputPath, "output", "sessions.csv", "session table path (csv sink only)")
	flag.StringVar(&sink, "sink", sinkCSV, "where to write rows: csv or clickhouse")
	flag.IntVar(&params.SessionCount, "session_count", params.SessionCount, "maximum number of sessions (0 = unlimited)")
	flag.IntVar(&params.MaxPosition, "max_position", params.MaxPosition, "highest carousel position to emit")
	flag.IntVar(&params.MergePaymentsWithinSeconds, "merge_payments_within_seconds", params.MergePaymentsWithinSeconds, "session window measured from its first payment")
	flag.Parse()

	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, params, paymentsPath, campaignsPath, outputPath, sink, log); err != nil {
		log.Error("Session generation failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, params config.Sessions, paymentsPath, campaignsPath, outputPath, sink string, log *zap.Logger) error {
	campaigns, err := dataset.LoadCampaignsFile(campaignsPath)
	if err != nil {
		return err
	}
	payments, err := dataset.LoadPaymentsFile(paymentsPath)
	if err != nil {
		return err
	}

	log.Info("Loaded input",
		zap.Int("payment_count", len(payments)),
		zap.Int("campaign_count", len(campaigns)))

	writer, finish, err := openSink(ctx, cfg, sink, outputPath, log)
	if err != nil {
		return err
	}

	p := pipeline.New(campaigns, writer, pipeline.Config{
		Params: sessions.Params{
			SessionCount: params.SessionCount,
			MaxPosition:  params.MaxPosition,
			Timeout:      time.Duration(params.MergePaymentsWithinSeconds) * time.Second,
		},
		Workers:      cfg.Consumer.Workers,
		MaxBatchSize: cfg.Consumer.BatchSizeMax,
	}, log)

	_, runErr := p.Run(ctx, payments)
	if err := finish(runErr); err != nil && runErr == nil {
		return fmt.Errorf("failed to close %s sink: %w", sink, err)
	}
	return runErr
}

// openSink returns the row writer and a finish func that settles it once the run ends.
// A failed run never leaves a partial CSV at outputPath.
func openSink(ctx context.Context, cfg *config.Config, sink, outputPath string, log *zap.Logger) (repository.SessionRowWriter, func(runErr error) error, error) {
	switch sink {
	case sinkCSV:
		w, err := csvfile.Create(outputPath, log)
		if err != nil {
			return nil, nil, err
		}
		return w, func(runErr error) error {
			if runErr != nil {
				return w.Abort()
			}
			return w.Commit()
		}, nil

	case sinkClickHouse:
		client, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
		if err != nil {
			return nil, nil, err
		}
		repo := clickhouse.NewRepository(client, log)
		if err := repo.InitSchema(ctx); err != nil {
			_ = repo.Close()
			return nil, nil, err
		}
		return repo, func(error) error { return repo.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown sink %q (supported: %s, %s)", sink, sinkCSV, sinkClickHouse)
	}
}
