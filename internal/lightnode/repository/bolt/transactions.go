package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	bbolt "go.etcd.io/bbolt"
)

// addressTxKey builds the composite key address|index|txid used by the
// per-address history index. Base58 addresses never contain NUL, so the
// separator is unambiguous.
func addressTxKey(address string, index int64, txid string) ([]byte, error) {
	idx, err := indexKey(index)
	if err != nil {
		return nil, err
	}
	key := make([]byte, 0, len(address)+1+len(idx)+1+len(txid))
	key = append(key, address...)
	key = append(key, 0)
	key = append(key, idx...)
	key = append(key, 0)
	key = append(key, txid...)
	return key, nil
}

func normalizeTransaction(tx model.Transaction) (model.Transaction, error) {
	var err error
	if tx.TxID, err = normalizeHash(tx.TxID); err != nil {
		return tx, fmt.Errorf("txid: %w", err)
	}
	for i := range tx.Vin {
		if tx.Vin[i].TxID, err = normalizeHash(tx.Vin[i].TxID); err != nil {
			return tx, fmt.Errorf("vin %d txid: %w", i, err)
		}
	}
	return tx, nil
}

// pendingSpendKey builds the composite key prev_txid|spender_txid marking
// a stored spend whose funding transaction has not arrived yet.
func pendingSpendKey(prev, spender string) []byte {
	key := make([]byte, 0, len(prev)+1+len(spender))
	key = append(key, prev...)
	key = append(key, 0)
	key = append(key, spender...)
	return key
}

// resolveInputs copies address/asset/value from the spent outputs into
// the transaction's inputs, as far as the referenced transactions are
// already stored. Inputs whose funding transaction is absent are marked
// pending and back-filled by resolvePendingSpends once it arrives.
func resolveInputs(btx *bbolt.Tx, tx model.Transaction) (model.Transaction, error) {
	txBucket := btx.Bucket(bucketTxs)
	pending := btx.Bucket(bucketPendingSpends)

	for i := range tx.Vin {
		in := &tx.Vin[i]
		if in.Asset != "" {
			continue
		}

		data := txBucket.Get([]byte(in.TxID))
		if data == nil {
			if err := pending.Put(pendingSpendKey(in.TxID, tx.TxID), nil); err != nil {
				return tx, fmt.Errorf("mark pending spend %s: %w", tx.TxID, err)
			}
			continue
		}

		var prev model.Transaction
		if err := json.Unmarshal(data, &prev); err != nil {
			return tx, fmt.Errorf("decode transaction %s: %w", in.TxID, err)
		}
		if int(in.Vout) >= len(prev.Vout) {
			continue
		}

		out := prev.Vout[in.Vout]
		in.Address = out.Address
		in.Asset = out.Asset
		in.Value = out.Value
	}
	return tx, nil
}

// putTransaction resolves, stores and indexes one transaction within an
// open write transaction.
func putTransaction(btx *bbolt.Tx, tx model.Transaction) error {
	tx, err := resolveInputs(btx, tx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode transaction %s: %w", tx.TxID, err)
	}
	if err := btx.Bucket(bucketTxs).Put([]byte(tx.TxID), data); err != nil {
		return fmt.Errorf("put transaction %s: %w", tx.TxID, err)
	}
	return indexAddresses(btx, tx)
}

// resolvePendingSpends back-fills spends that were stored before tx: each
// waiting spender is re-resolved against the now-available outputs and
// its input addresses are indexed.
func resolvePendingSpends(btx *bbolt.Tx, tx model.Transaction) error {
	pending := btx.Bucket(bucketPendingSpends)
	txBucket := btx.Bucket(bucketTxs)

	prefix := append([]byte(tx.TxID), 0)
	var keys [][]byte
	c := pending.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}

	for _, k := range keys {
		spenderID := string(k[len(prefix):])
		if data := txBucket.Get([]byte(spenderID)); data != nil {
			var spender model.Transaction
			if err := json.Unmarshal(data, &spender); err != nil {
				return fmt.Errorf("decode transaction %s: %w", spenderID, err)
			}
			if err := putTransaction(btx, spender); err != nil {
				return err
			}
		}
		if err := pending.Delete(k); err != nil {
			return fmt.Errorf("clear pending spend %s: %w", spenderID, err)
		}
	}
	return nil
}

// indexAddresses writes history index entries for every address the
// transaction touches.
func indexAddresses(btx *bbolt.Tx, tx model.Transaction) error {
	if !tx.Type.BearsValue() {
		return nil
	}

	bucket := btx.Bucket(bucketAddressTxs)
	put := func(address string) error {
		if address == "" {
			return nil
		}
		key, err := addressTxKey(address, tx.BlockIndex, tx.TxID)
		if err != nil {
			return err
		}
		return bucket.Put(key, []byte(tx.TxID))
	}

	for _, out := range tx.Vout {
		if err := put(out.Address); err != nil {
			return fmt.Errorf("index output address: %w", err)
		}
	}
	for _, in := range tx.Vin {
		if err := put(in.Address); err != nil {
			return fmt.Errorf("index input address: %w", err)
		}
	}
	return nil
}

// SaveTransaction upserts a transaction, resolving its inputs against
// already-stored transactions, and indexes every touched address. Spends
// of outputs that arrive later are back-filled when the funding
// transaction is saved.
func (r *Repository) SaveTransaction(ctx context.Context, tx model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_transaction", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	if tx, err = normalizeTransaction(tx); err != nil {
		return fmt.Errorf("transaction %s: %w", tx.TxID, err)
	}

	err = r.db.Update(func(btx *bbolt.Tx) error {
		if err := putTransaction(btx, tx); err != nil {
			return err
		}
		return resolvePendingSpends(btx, tx)
	})
	return err
}

// UpdateTransaction rewrites an existing transaction, matched by txid,
// and indexes any input addresses resolved since the original save.
func (r *Repository) UpdateTransaction(ctx context.Context, tx model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("update_transaction", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	if tx, err = normalizeTransaction(tx); err != nil {
		return fmt.Errorf("transaction %s: %w", tx.TxID, err)
	}

	err = r.db.Update(func(btx *bbolt.Tx) error {
		if btx.Bucket(bucketTxs).Get([]byte(tx.TxID)) == nil {
			return fmt.Errorf("transaction %s: %w", tx.TxID, chain.ErrNotFound)
		}
		return putTransaction(btx, tx)
	})
	return err
}

// Transaction returns the transaction with the given txid.
func (r *Repository) Transaction(ctx context.Context, txid string) (_ model.Transaction, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transaction", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Transaction{}, err
	}

	normalized, err := normalizeHash(txid)
	if err != nil {
		return model.Transaction{}, err
	}

	var tx model.Transaction
	err = r.db.View(func(btx *bbolt.Tx) error {
		data := btx.Bucket(bucketTxs).Get([]byte(normalized))
		if data == nil {
			return fmt.Errorf("transaction %s: %w", normalized, chain.ErrNotFound)
		}
		if err := json.Unmarshal(data, &tx); err != nil {
			return fmt.Errorf("decode transaction %s: %w", normalized, err)
		}
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// AddressTransactions returns value-bearing transactions touching
// (address, asset) with block index >= fromIndex, ordered by block index.
func (r *Repository) AddressTransactions(ctx context.Context, address, asset string, fromIndex int64) (_ []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("address_transactions", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if fromIndex < 0 {
		fromIndex = 0
	}

	prefix := append([]byte(address), 0)
	seek, err := addressTxKey(address, fromIndex, "")
	if err != nil {
		return nil, err
	}

	var txs []model.Transaction
	err = r.db.View(func(btx *bbolt.Tx) error {
		txBucket := btx.Bucket(bucketTxs)
		c := btx.Bucket(bucketAddressTxs).Cursor()
		for k, txid := c.Seek(seek); k != nil && bytes.HasPrefix(k, prefix); k, txid = c.Next() {
			data := txBucket.Get(txid)
			if data == nil {
				return fmt.Errorf("indexed transaction %s: %w", txid, chain.ErrNotFound)
			}
			var tx model.Transaction
			if err := json.Unmarshal(data, &tx); err != nil {
				return fmt.Errorf("decode transaction %s: %w", txid, err)
			}
			if !tx.Type.BearsValue() || !touchesAsset(tx, address, asset) {
				continue
			}
			txs = append(txs, tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// touchesAsset reports whether the transaction moves the asset to or from
// the address. Unexpanded inputs carry no address and never match.
func touchesAsset(tx model.Transaction, address, asset string) bool {
	for _, out := range tx.Vout {
		if out.Address == address && out.Asset == asset {
			return true
		}
	}
	for _, in := range tx.Vin {
		if in.Address == address && in.Asset == asset {
			return true
		}
	}
	return false
}
