// Package bolt implements the chain persistence contract on an embedded
// bbolt store. Records are JSON-encoded; block keys are big-endian block
// indexes so cursor scans walk the chain in order.
package bolt

import (
	"errors"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"
)

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var (
	bucketBlocks      = []byte("blocks")
	bucketBlockHashes = []byte("block_hashes")
	bucketTxs         = []byte("txs")
	bucketAddresses   = []byte("addresses")
	bucketAssetIDs    = []byte("asset_ids")
	bucketAddressTxs  = []byte("addr_txs")

	// bucketPendingSpends holds prev_txid|spender_txid markers for spends
	// stored before their funding transaction.
	bucketPendingSpends = []byte("pending_spends")
)

// Repository is a bbolt-backed store for blocks, transactions and
// account records.
type Repository struct {
	db      *bbolt.DB
	metrics Metrics
}

// Open opens (creating if needed) the store at path.
func Open(path string, metrics Metrics) (*Repository, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{
			bucketBlocks,
			bucketBlockHashes,
			bucketTxs,
			bucketAddresses,
			bucketAssetIDs,
			bucketAddressTxs,
			bucketPendingSpends,
		} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the underlying store.
func (r *Repository) Close() error {
	return r.db.Close()
}
