package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"go.uber.org/zap"
)

// Syncer ingests mined blocks, persists them with their transactions and
// advances the locally-confirmed contiguous chain height. Blocks may
// arrive in any order; the confirmed index only advances when the run
// from genesis has no gaps.
type Syncer struct {
	logger  *zap.Logger
	repo    Repository
	assets  AssetDiscoverer
	metrics SyncerMetrics

	mu       sync.Mutex
	index    int64
	height   int64
	unlinked map[int64]struct{}

	ready     chan struct{}
	readyOnce sync.Once
}

// NewSyncer builds a Syncer with dependencies.
func NewSyncer(repo Repository, assets AssetDiscoverer, metrics SyncerMetrics, logger *zap.Logger) (*Syncer, error) {
	if repo == nil {
		return nil, errors.New("syncer repository is required")
	}
	if assets == nil {
		return nil, errors.New("syncer asset discoverer is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}

	return &Syncer{
		logger:   logger,
		repo:     repo,
		assets:   assets,
		metrics:  metrics,
		index:    -1,
		height:   0,
		unlinked: make(map[int64]struct{}),
		ready:    make(chan struct{}),
	}, nil
}

// Init rebuilds the chain position from the persisted block count and
// marks the syncer ready. Collaborators that must not issue requests
// before the store is usable wait on Ready.
func (s *Syncer) Init(ctx context.Context) error {
	count, err := s.repo.BlockCount(ctx)
	if err != nil {
		return fmt.Errorf("load block count: %w", err)
	}

	s.mu.Lock()
	s.index = count - 1
	s.height = count
	s.metrics.SetPosition(s.index, len(s.unlinked))
	s.mu.Unlock()

	if count > 0 {
		hash, err := s.repo.BestBlockHash(ctx)
		if err != nil {
			return fmt.Errorf("load best block hash: %w", err)
		}
		tip, err := s.repo.BlockByHash(ctx, hash)
		if err != nil {
			return fmt.Errorf("load tip block %s: %w", hash, err)
		}
		s.logger.Info("chain position restored",
			zap.Int64("index", count-1),
			zap.Int64("tip_index", tip.Index),
			zap.String("tip_hash", hash))
	} else {
		s.logger.Info("starting with empty chain store")
	}

	s.readyOnce.Do(func() { close(s.ready) })
	return nil
}

// Ready is closed once Init has completed.
func (s *Syncer) Ready() <-chan struct{} {
	return s.ready
}

// Index returns the highest block index confirmed contiguous from genesis.
func (s *Syncer) Index() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Height returns Index plus one.
func (s *Syncer) Height() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// Ingest persists the block and its transactions, registers newly observed
// assets and advances the chain position. A persistence failure aborts the
// call and leaves the position unchanged; re-ingesting the same block is
// safe.
func (s *Syncer) Ingest(ctx context.Context, block model.Block) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveIngest(err, len(block.Transactions), started)
	}()

	if block.Index < 0 {
		return fmt.Errorf("block index %d is negative", block.Index)
	}

	if err = s.repo.SaveBlock(ctx, block); err != nil {
		return fmt.Errorf("save block %d: %w", block.Index, err)
	}

	for i := range block.Transactions {
		tx := block.Transactions[i]
		tx.BlockIndex = block.Index
		tx.Time = block.Time

		if err = s.repo.SaveTransaction(ctx, tx); err != nil {
			return fmt.Errorf("save transaction %s: %w", tx.TxID, err)
		}

		for _, out := range tx.Vout {
			if out.Asset == "" {
				continue
			}
			if err = s.assets.Discover(ctx, out.Asset); err != nil {
				return fmt.Errorf("discover asset %s: %w", out.Asset, err)
			}
		}

		// A register transaction defines the asset whose id is the txid.
		if tx.Type == model.TxRegister && tx.Asset != nil {
			if err = s.assets.Discover(ctx, tx.TxID); err != nil {
				return fmt.Errorf("discover registered asset %s: %w", tx.TxID, err)
			}
			if err = s.repo.SaveAssetState(ctx, tx.TxID, *tx.Asset); err != nil {
				return fmt.Errorf("save asset state %s: %w", tx.TxID, err)
			}
		}
	}

	s.link(block.Index)
	return nil
}

// link advances the contiguous position. It holds the mutex only across
// in-memory mutation; no persistence happens under the lock.
func (s *Syncer) link(index int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index <= s.index {
		s.logger.Debug("block already linked", zap.Int64("index", index))
		return
	}

	s.unlinked[index] = struct{}{}
	for {
		if _, ok := s.unlinked[s.index+1]; !ok {
			break
		}
		delete(s.unlinked, s.index+1)
		s.index++
		s.height = s.index + 1
	}

	s.metrics.SetPosition(s.index, len(s.unlinked))
	s.logger.Debug("chain position updated",
		zap.Int64("index", s.index),
		zap.Int("unlinked", len(s.unlinked)))
}
