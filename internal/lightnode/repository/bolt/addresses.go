package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	bbolt "go.etcd.io/bbolt"
)

func getAccount(btx *bbolt.Tx, address string) (model.Account, error) {
	data := btx.Bucket(bucketAddresses).Get([]byte(address))
	if data == nil {
		return model.Account{}, fmt.Errorf("account %s: %w", address, chain.ErrNotFound)
	}
	var acct model.Account
	if err := json.Unmarshal(data, &acct); err != nil {
		return model.Account{}, fmt.Errorf("decode account %s: %w", address, err)
	}
	return acct, nil
}

func putAccount(btx *bbolt.Tx, acct model.Account) error {
	data, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("encode account %s: %w", acct.Address, err)
	}
	if err := btx.Bucket(bucketAddresses).Put([]byte(acct.Address), data); err != nil {
		return fmt.Errorf("put account %s: %w", acct.Address, err)
	}
	if acct.Type == model.AccountAsset {
		if err := btx.Bucket(bucketAssetIDs).Put([]byte(acct.Address), nil); err != nil {
			return fmt.Errorf("put asset id %s: %w", acct.Address, err)
		}
	}
	return nil
}

// Address returns the account record for an address.
func (r *Repository) Address(ctx context.Context, address string) (_ model.Account, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("address", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Account{}, err
	}

	var acct model.Account
	err = r.db.View(func(btx *bbolt.Tx) error {
		acct, err = getAccount(btx, address)
		return err
	})
	if err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// SaveAddress upserts an account record.
func (r *Repository) SaveAddress(ctx context.Context, acct model.Account) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_address", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}
	if acct.Address == "" {
		return fmt.Errorf("account address is required")
	}

	err = r.db.Update(func(btx *bbolt.Tx) error {
		return putAccount(btx, acct)
	})
	return err
}

// UpdateBalance upserts the per-asset checkpoint of an account. The
// checkpoint index never decreases: a write older than the stored entry
// is dropped.
func (r *Repository) UpdateBalance(ctx context.Context, address, asset string, balance, index int64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("update_balance", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	err = r.db.Update(func(btx *bbolt.Tx) error {
		acct, err := getAccount(btx, address)
		if err != nil {
			return err
		}

		updated := false
		for i := range acct.Assets {
			if acct.Assets[i].Asset != asset {
				continue
			}
			if acct.Assets[i].Index > index {
				return nil
			}
			acct.Assets[i].Balance = balance
			acct.Assets[i].Index = index
			updated = true
			break
		}
		if !updated {
			acct.Assets = append(acct.Assets, model.AssetBalance{
				Asset:   asset,
				Balance: balance,
				Index:   index,
			})
		}

		return putAccount(btx, acct)
	})
	return err
}
