package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"github.com/goodnatureofminers/lightnode7000-backend/pkg/batcher"
	"github.com/goodnatureofminers/lightnode7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultRecomputeWorkers = 4

	checkpointFlushSize     = 100
	checkpointFlushInterval = time.Second
	checkpointFlushRPS      = 20
)

// checkpoint is a balance write-back queued for best-effort persistence.
type checkpoint struct {
	address string
	asset   string
	balance int64
	index   int64
}

// BalanceEngine answers per-address, per-asset balance queries from a
// cache of checkpoints, recomputing only entries older than the caller's
// staleness threshold by replaying the address history since the last
// checkpoint.
type BalanceEngine struct {
	logger   *zap.Logger
	repo     Repository
	expander TransactionExpander
	assets   AssetSource
	position ChainPosition
	metrics  BalanceMetrics
	workers  int

	updates *batcher.Batcher[checkpoint]
}

// NewBalanceEngine builds a BalanceEngine. Start must be called before
// Balances for checkpoint write-backs to be persisted.
func NewBalanceEngine(
	repo Repository,
	expander TransactionExpander,
	assets AssetSource,
	position ChainPosition,
	metrics BalanceMetrics,
	logger *zap.Logger,
	workers int,
) (*BalanceEngine, error) {
	if repo == nil {
		return nil, errors.New("balance repository is required")
	}
	if expander == nil {
		return nil, errors.New("balance expander is required")
	}
	if assets == nil {
		return nil, errors.New("balance asset source is required")
	}
	if position == nil {
		return nil, errors.New("balance chain position is required")
	}
	if metrics == nil {
		return nil, errors.New("balance metrics is required")
	}
	if workers <= 0 {
		workers = defaultRecomputeWorkers
	}

	e := &BalanceEngine{
		logger:   logger,
		repo:     repo,
		expander: expander,
		assets:   assets,
		position: position,
		metrics:  metrics,
		workers:  workers,
	}
	e.updates = batcher.New[checkpoint](
		logger.Named("checkpoints"),
		e.flushCheckpoints,
		batcher.Options{
			FlushSize:     checkpointFlushSize,
			FlushInterval: checkpointFlushInterval,
			FlushRPS:      checkpointFlushRPS,
		},
	)
	return e, nil
}

// Start begins the background checkpoint writer.
func (e *BalanceEngine) Start(ctx context.Context) {
	e.updates.Start(ctx)
}

// Stop flushes pending checkpoints and stops the background writer.
func (e *BalanceEngine) Stop() {
	e.updates.Stop()
}

// Balances returns the balance of each wanted asset for the address. An
// empty wantedAssets means every asset known to the registry. Entries
// whose checkpoint is within blockAge blocks of the confirmed index are
// returned as cached; the rest are recomputed incrementally. The first
// recompute failure cancels the remaining recomputations and is returned.
func (e *BalanceEngine) Balances(ctx context.Context, address string, wantedAssets []string, blockAge int64) (_ []model.AssetBalance, err error) {
	started := time.Now()
	assetCount := len(wantedAssets)
	defer func() {
		e.metrics.ObserveQuery(err, assetCount, started)
	}()

	if !model.ValidAddress(address) {
		return nil, fmt.Errorf("address %q: %w", address, ErrInvalidAddress)
	}
	if blockAge < 1 {
		blockAge = 1
	}

	acct, err := e.loadOrCreate(ctx, address)
	if err != nil {
		return nil, err
	}

	if len(wantedAssets) == 0 {
		wantedAssets = e.assets.AssetIDs()
		assetCount = len(wantedAssets)
	}

	current := e.position.Index()

	fresh := make([]model.AssetBalance, 0, len(wantedAssets))
	stale := make([]model.AssetBalance, 0, len(wantedAssets))
	for _, asset := range wantedAssets {
		entry, ok := acct.Balance(asset)
		if ok && current-entry.Index < blockAge {
			fresh = append(fresh, entry)
			continue
		}
		if !ok {
			entry = model.AssetBalance{Asset: asset, Balance: 0, Index: -1}
		}
		stale = append(stale, entry)
	}

	recomputed, err := workerpool.Map(ctx, e.workers, stale,
		func(ctx context.Context, entry model.AssetBalance) (model.AssetBalance, error) {
			return e.recompute(ctx, address, entry, current)
		})
	if err != nil {
		return nil, fmt.Errorf("recompute balances for %s: %w", address, err)
	}

	out := append(fresh, recomputed...)
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	return out, nil
}

// recompute replays the address history for one asset from the entry's
// checkpoint and queues the updated checkpoint for persistence.
func (e *BalanceEngine) recompute(ctx context.Context, address string, entry model.AssetBalance, current int64) (_ model.AssetBalance, err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveRecompute(err, started)
	}()

	txs, err := e.repo.AddressTransactions(ctx, address, entry.Asset, entry.Index+1)
	if err != nil {
		return model.AssetBalance{}, fmt.Errorf("load history for %s/%s: %w", address, entry.Asset, err)
	}

	balance := entry.Balance
	for _, tx := range txs {
		full, expandErr := e.expander.Expand(ctx, tx.TxID)
		if expandErr != nil {
			err = fmt.Errorf("expand transaction %s: %w", tx.TxID, expandErr)
			return model.AssetBalance{}, err
		}
		for _, out := range full.Vout {
			if out.Address == address && out.Asset == entry.Asset {
				balance += out.Value
			}
		}
		for _, in := range full.Vin {
			if in.Address == address && in.Asset == entry.Asset {
				balance -= in.Value
			}
		}
	}

	updated := model.AssetBalance{Asset: entry.Asset, Balance: balance, Index: current}

	if addErr := e.updates.Add(ctx, checkpoint{
		address: address,
		asset:   entry.Asset,
		balance: balance,
		index:   current,
	}); addErr != nil {
		e.logger.Warn("queue balance checkpoint failed",
			zap.String("address", address),
			zap.String("asset", entry.Asset),
			zap.Error(addErr))
	}

	return updated, nil
}

func (e *BalanceEngine) loadOrCreate(ctx context.Context, address string) (model.Account, error) {
	acct, err := e.repo.Address(ctx, address)
	if errors.Is(err, ErrNotFound) {
		created := model.Account{
			Address: address,
			Type:    model.AccountContract,
			Assets:  []model.AssetBalance{},
		}
		if saveErr := e.repo.SaveAddress(ctx, created); saveErr != nil {
			return model.Account{}, fmt.Errorf("create account %s: %w", address, saveErr)
		}
		acct, err = e.repo.Address(ctx, address)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("load account %s: %w", address, err)
	}
	return acct, nil
}

func (e *BalanceEngine) flushCheckpoints(ctx context.Context, items []checkpoint) error {
	for _, cp := range items {
		if err := e.repo.UpdateBalance(ctx, cp.address, cp.asset, cp.balance, cp.index); err != nil {
			return fmt.Errorf("update balance %s/%s: %w", cp.address, cp.asset, err)
		}
	}
	return nil
}
