package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/clock"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"go.uber.org/zap"
)

const defaultRefreshInterval = 30 * time.Second

// AssetRegistry caches the known set of asset-definition accounts. The
// cache is replaced wholesale by Refresh and extended incrementally by
// Discover during ingestion.
type AssetRegistry struct {
	logger   *zap.Logger
	repo     Repository
	metrics  RegistryMetrics
	interval time.Duration

	mu     sync.RWMutex
	known  map[string]struct{}
	assets []model.Account
}

// NewAssetRegistry builds an AssetRegistry refreshing on the given interval.
func NewAssetRegistry(repo Repository, metrics RegistryMetrics, interval time.Duration, logger *zap.Logger) (*AssetRegistry, error) {
	if repo == nil {
		return nil, errors.New("registry repository is required")
	}
	if metrics == nil {
		return nil, errors.New("registry metrics is required")
	}
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &AssetRegistry{
		logger:   logger,
		repo:     repo,
		metrics:  metrics,
		interval: interval,
		known:    make(map[string]struct{}),
	}, nil
}

// Refresh replaces the cached asset list with the persisted one.
func (r *AssetRegistry) Refresh(ctx context.Context) (err error) {
	started := time.Now()
	list, err := r.repo.AssetList(ctx)
	defer func() {
		r.metrics.ObserveRefresh(err, len(list), started)
	}()
	if err != nil {
		return fmt.Errorf("load asset list: %w", err)
	}

	known := make(map[string]struct{}, len(list))
	for _, acct := range list {
		known[acct.Address] = struct{}{}
	}

	r.mu.Lock()
	r.known = known
	r.assets = list
	r.mu.Unlock()

	r.logger.Debug("asset registry refreshed", zap.Int("assets", len(list)))
	return nil
}

// Run refreshes the registry on a fixed interval until the context is
// canceled. Refresh failures are logged and the loop continues; the next
// tick retries.
func (r *AssetRegistry) Run(ctx context.Context) error {
	for {
		if err := clock.SleepWithContext(ctx, r.interval); err != nil {
			return err
		}
		if err := r.Refresh(ctx); err != nil {
			r.logger.Warn("periodic asset refresh failed", zap.Error(err))
		}
	}
}

// Discover registers an asset id if it is not cached yet, creating its
// asset-definition account. Concurrent discoveries of the same id create
// at most one record.
func (r *AssetRegistry) Discover(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.known[id]; ok {
		r.mu.Unlock()
		return nil
	}
	r.known[id] = struct{}{}
	r.mu.Unlock()

	acct := model.Account{
		Address: id,
		Type:    model.AccountAsset,
		Assets:  []model.AssetBalance{},
	}
	if err := r.repo.SaveAddress(ctx, acct); err != nil {
		r.mu.Lock()
		delete(r.known, id)
		r.mu.Unlock()
		return fmt.Errorf("create asset account %s: %w", id, err)
	}

	r.mu.Lock()
	r.assets = append(r.assets, acct)
	r.mu.Unlock()

	r.logger.Info("registered new asset", zap.String("asset", id))
	return nil
}

// AssetIDs returns the ids of all cached asset definitions.
func (r *AssetRegistry) AssetIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.assets))
	for _, acct := range r.assets {
		ids = append(ids, acct.Address)
	}
	return ids
}
