package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"github.com/goodnatureofminers/lightnode7000-backend/pkg/safe"
	bbolt "go.etcd.io/bbolt"
)

// indexKey encodes a block index as a big-endian key so cursor order
// equals chain order.
func indexKey(index int64) ([]byte, error) {
	u, err := safe.Uint64(index)
	if err != nil {
		return nil, fmt.Errorf("block index: %w", err)
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, u)
	return key, nil
}

// normalizeHash canonicalizes a hex hash: optional 0x prefix stripped,
// lowercased, zero-padded to 64 chars, validated.
func normalizeHash(s string) (string, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	h, err := chainhash.NewHashFromStr(trimmed)
	if err != nil {
		return "", fmt.Errorf("hash %q: %w", s, err)
	}
	return h.String(), nil
}

// SaveBlock upserts the block under its index, normalizing hash fields
// before the write. At most one block is stored per index.
func (r *Repository) SaveBlock(ctx context.Context, block model.Block) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_block", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	key, err := indexKey(block.Index)
	if err != nil {
		return err
	}
	if block.Hash, err = normalizeHash(block.Hash); err != nil {
		return fmt.Errorf("block %d hash: %w", block.Index, err)
	}
	if block.PreviousHash, err = normalizeHash(block.PreviousHash); err != nil {
		return fmt.Errorf("block %d previous hash: %w", block.Index, err)
	}
	if block.MerkleRoot, err = normalizeHash(block.MerkleRoot); err != nil {
		return fmt.Errorf("block %d merkle root: %w", block.Index, err)
	}

	data, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("encode block %d: %w", block.Index, err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketBlocks).Put(key, data); err != nil {
			return fmt.Errorf("put block %d: %w", block.Index, err)
		}
		if err := tx.Bucket(bucketBlockHashes).Put([]byte(block.Hash), key); err != nil {
			return fmt.Errorf("put block hash %s: %w", block.Hash, err)
		}
		return nil
	})
	return err
}

// Block returns the block stored at index.
func (r *Repository) Block(ctx context.Context, index int64) (_ model.Block, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("block", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Block{}, err
	}

	key, err := indexKey(index)
	if err != nil {
		return model.Block{}, err
	}

	var block model.Block
	err = r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketBlocks).Get(key)
		if data == nil {
			return fmt.Errorf("block %d: %w", index, chain.ErrNotFound)
		}
		if err := json.Unmarshal(data, &block); err != nil {
			return fmt.Errorf("decode block %d: %w", index, err)
		}
		return nil
	})
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

// BlockByHash returns the block with the given hash.
func (r *Repository) BlockByHash(ctx context.Context, hash string) (_ model.Block, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("block_by_hash", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Block{}, err
	}

	normalized, err := normalizeHash(hash)
	if err != nil {
		return model.Block{}, err
	}

	var block model.Block
	err = r.db.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketBlockHashes).Get([]byte(normalized))
		if key == nil {
			return fmt.Errorf("block %s: %w", normalized, chain.ErrNotFound)
		}
		data := tx.Bucket(bucketBlocks).Get(key)
		if data == nil {
			return fmt.Errorf("block %s: %w", normalized, chain.ErrNotFound)
		}
		if err := json.Unmarshal(data, &block); err != nil {
			return fmt.Errorf("decode block %s: %w", normalized, err)
		}
		return nil
	})
	if err != nil {
		return model.Block{}, err
	}
	return block, nil
}

// BlockCount returns the number of stored blocks.
func (r *Repository) BlockCount(ctx context.Context) (_ int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("block_count", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	var count int64
	err = r.db.View(func(tx *bbolt.Tx) error {
		count = int64(tx.Bucket(bucketBlocks).Stats().KeyN)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// BestBlockHash returns the hash of the highest-index stored block.
func (r *Repository) BestBlockHash(ctx context.Context) (_ string, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("best_block_hash", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return "", err
	}

	var hash string
	err = r.db.View(func(tx *bbolt.Tx) error {
		_, data := tx.Bucket(bucketBlocks).Cursor().Last()
		if data == nil {
			return fmt.Errorf("best block: %w", chain.ErrNotFound)
		}
		var block model.Block
		if err := json.Unmarshal(data, &block); err != nil {
			return fmt.Errorf("decode best block: %w", err)
		}
		hash = block.Hash
		return nil
	})
	if err != nil {
		return "", err
	}
	return hash, nil
}

// BlockIndexes returns the indexes of stored blocks within [start, end],
// ascending.
func (r *Repository) BlockIndexes(ctx context.Context, start, end int64) (_ []int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("block_indexes", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if end < start {
		return nil, fmt.Errorf("invalid range [%d, %d]", start, end)
	}

	from, err := indexKey(start)
	if err != nil {
		return nil, err
	}
	to, err := safe.Uint64(end)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}

	var indexes []int64
	err = r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketBlocks).Cursor()
		for k, _ := c.Seek(from); k != nil; k, _ = c.Next() {
			idx := binary.BigEndian.Uint64(k)
			if idx > to {
				break
			}
			indexes = append(indexes, int64(idx))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return indexes, nil
}
