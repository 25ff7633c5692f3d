// Package main runs a one-shot integrity check over the local chain
// store: missing block indexes in a range, asset definitions without
// state, and optionally the record of a single asset.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/repository/bolt"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	DataPath string `long:"data-path" env:"LIGHTNODE_DATA_PATH" description:"path to the chain store file" default:"lightnode.db"`
	Start    int64  `long:"start" env:"LIGHTNODE_VERIFY_START" description:"first block index to verify" default:"0"`
	End      int64  `long:"end" env:"LIGHTNODE_VERIFY_END" description:"last block index to verify; defaults to the last stored index" default:"-1"`
	Asset    string `long:"asset" env:"LIGHTNODE_VERIFY_ASSET" description:"print the record of a single asset id"`
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

	clean, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("lightnode verifier failed", zap.Error(err))
	}
	if !clean {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (bool, error) {
	repo, err := bolt.Open(cfg.DataPath, metrics.NewRepository())
	if err != nil {
		return false, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close store failed", zap.Error(err))
		}
	}()

	verifier, err := chain.NewVerifier(repo, logger.Named("verifier"))
	if err != nil {
		return false, err
	}

	end := cfg.End
	if end < 0 {
		count, err := repo.BlockCount(ctx)
		if err != nil {
			return false, fmt.Errorf("load block count: %w", err)
		}
		if count == 0 {
			logger.Info("store is empty, nothing to verify")
			return true, nil
		}
		end = count - 1
	}

	missing, err := verifier.VerifyBlocks(ctx, cfg.Start, end)
	if err != nil {
		return false, fmt.Errorf("verify blocks: %w", err)
	}
	for _, idx := range missing {
		logger.Warn("missing block", zap.Int64("index", idx))
	}

	withoutState, err := verifier.VerifyAssets(ctx)
	if err != nil {
		return false, fmt.Errorf("verify assets: %w", err)
	}
	for _, id := range withoutState {
		logger.Warn("asset without state", zap.String("asset", id))
	}

	if cfg.Asset != "" {
		acct, err := repo.Asset(ctx, cfg.Asset)
		if err != nil {
			return false, fmt.Errorf("load asset %s: %w", cfg.Asset, err)
		}
		logger.Info("asset record",
			zap.String("asset", acct.Address),
			zap.Any("state", acct.State))
	}

	return len(missing) == 0 && len(withoutState) == 0, nil
}
