// Package main runs the light-node indexing daemon: it maintains the
// asset registry, exposes metrics and can replay a block dump through
// the full ingestion path.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/repository/bolt"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	DataPath        string        `long:"data-path" env:"LIGHTNODE_DATA_PATH" description:"path to the chain store file" default:"lightnode.db"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"LIGHTNODE_REFRESH_INTERVAL" description:"asset registry refresh interval" default:"30s"`
	BalanceWorkers  int           `long:"balance-workers" env:"LIGHTNODE_BALANCE_WORKERS" description:"concurrent balance recomputations" default:"4"`
	ImportFile      string        `long:"import-file" env:"LIGHTNODE_IMPORT_FILE" description:"JSON-lines block dump to ingest on startup"`
	MetricsAddr     string        `long:"metrics-addr" env:"LIGHTNODE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("lightnode indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := bolt.Open(cfg.DataPath, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close store failed", zap.Error(err))
		}
	}()

	registry, err := chain.NewAssetRegistry(repo, metrics.NewRegistry(), cfg.RefreshInterval, logger.Named("registry"))
	if err != nil {
		return err
	}
	syncer, err := chain.NewSyncer(repo, registry, metrics.NewSyncer(), logger.Named("syncer"))
	if err != nil {
		return err
	}
	expander, err := chain.NewTxExpander(repo, logger.Named("expander"))
	if err != nil {
		return err
	}
	engine, err := chain.NewBalanceEngine(repo, expander, registry, syncer, metrics.NewBalance(), logger.Named("balance"), cfg.BalanceWorkers)
	if err != nil {
		return err
	}

	if err := registry.Refresh(ctx); err != nil {
		return fmt.Errorf("initial asset refresh: %w", err)
	}
	if err := syncer.Init(ctx); err != nil {
		return fmt.Errorf("init chain position: %w", err)
	}

	engine.Start(ctx)
	defer engine.Stop()

	if cfg.ImportFile != "" {
		<-syncer.Ready()
		if err := importBlocks(ctx, cfg.ImportFile, repo, syncer, logger); err != nil {
			return fmt.Errorf("import blocks: %w", err)
		}
	}

	logger.Info("lightnode indexer running",
		zap.Int64("height", syncer.Height()),
		zap.Duration("refresh_interval", cfg.RefreshInterval))

	return registry.Run(ctx)
}

// importBlocks ingests a JSON-lines dump of blocks so an interrupted
// import can be resumed. Only blocks at or below the confirmed index are
// skipped; a stored block above it is re-ingested (Ingest is replay-safe)
// so the linker picks it up again.
func importBlocks(ctx context.Context, path string, repo *bolt.Repository, syncer *chain.Syncer, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dump %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	line := 0
	ingested := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		var block model.Block
		if err := json.Unmarshal(scanner.Bytes(), &block); err != nil {
			return fmt.Errorf("dump line %d: %w", line, err)
		}

		if block.Index <= syncer.Index() {
			if _, err := repo.Block(ctx, block.Index); err == nil {
				continue
			} else if !errors.Is(err, chain.ErrNotFound) {
				return fmt.Errorf("check block %d: %w", block.Index, err)
			}
		}

		if err := syncer.Ingest(ctx, block); err != nil {
			return fmt.Errorf("ingest block %d: %w", block.Index, err)
		}
		ingested++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dump %s: %w", path, err)
	}

	logger.Info("block dump imported",
		zap.String("file", path),
		zap.Int("blocks", ingested),
		zap.Int64("height", syncer.Height()))
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
