// Package chain implements the light-node indexing core: block ingestion
// and linking, transaction expansion, balance accounting and integrity
// verification over an abstract persistence contract.
package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=chain

type (
	// Repository is the persistence contract the chain engines depend on.
	// Lookups return ErrNotFound when the record is absent.
	Repository interface {
		BlockCount(ctx context.Context) (int64, error)
		BlockByHash(ctx context.Context, hash string) (model.Block, error)
		BestBlockHash(ctx context.Context) (string, error)
		SaveBlock(ctx context.Context, block model.Block) error
		BlockIndexes(ctx context.Context, start, end int64) ([]int64, error)

		Transaction(ctx context.Context, txid string) (model.Transaction, error)
		SaveTransaction(ctx context.Context, tx model.Transaction) error
		UpdateTransaction(ctx context.Context, tx model.Transaction) error
		// AddressTransactions returns value-bearing transactions touching
		// (address, asset) with block index >= fromIndex, ordered by block index.
		AddressTransactions(ctx context.Context, address, asset string, fromIndex int64) ([]model.Transaction, error)

		Address(ctx context.Context, address string) (model.Account, error)
		SaveAddress(ctx context.Context, account model.Account) error
		UpdateBalance(ctx context.Context, address, asset string, balance, index int64) error

		AssetList(ctx context.Context) ([]model.Account, error)
		SaveAssetState(ctx context.Context, id string, state model.AssetState) error
	}

	// AssetDiscoverer registers assets observed during ingestion.
	AssetDiscoverer interface {
		Discover(ctx context.Context, id string) error
	}

	// AssetSource lists the ids of all known assets.
	AssetSource interface {
		AssetIDs() []string
	}

	// TransactionExpander resolves a transaction's inputs to the outputs
	// they spend.
	TransactionExpander interface {
		Expand(ctx context.Context, txid string) (model.Transaction, error)
	}

	// ChainPosition reports the highest block index confirmed as part of a
	// contiguous run from genesis.
	ChainPosition interface {
		Index() int64
	}

	SyncerMetrics interface {
		ObserveIngest(err error, txs int, started time.Time)
		SetPosition(index int64, unlinked int)
	}

	BalanceMetrics interface {
		ObserveQuery(err error, assets int, started time.Time)
		ObserveRecompute(err error, started time.Time)
	}

	RegistryMetrics interface {
		ObserveRefresh(err error, assets int, started time.Time)
	}
)
