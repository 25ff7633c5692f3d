package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/chain"
	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	bbolt "go.etcd.io/bbolt"
)

// Asset returns the asset-definition account for an asset id.
func (r *Repository) Asset(ctx context.Context, id string) (_ model.Account, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("asset", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Account{}, err
	}

	var acct model.Account
	err = r.db.View(func(btx *bbolt.Tx) error {
		acct, err = getAccount(btx, id)
		if err != nil {
			return err
		}
		if acct.Type != model.AccountAsset {
			return fmt.Errorf("asset %s: %w", id, chain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// AssetList returns every asset-definition account.
func (r *Repository) AssetList(ctx context.Context) (_ []model.Account, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("asset_list", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var list []model.Account
	err = r.db.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(bucketAssetIDs).ForEach(func(id, _ []byte) error {
			acct, err := getAccount(btx, string(id))
			if err != nil {
				return err
			}
			list = append(list, acct)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SaveAssetState attaches the computed state blob to an asset-definition
// account.
func (r *Repository) SaveAssetState(ctx context.Context, id string, state model.AssetState) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_asset_state", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	err = r.db.Update(func(btx *bbolt.Tx) error {
		acct, err := getAccount(btx, id)
		if err != nil {
			return err
		}
		if acct.Type != model.AccountAsset {
			return fmt.Errorf("asset %s: %w", id, chain.ErrNotFound)
		}
		acct.State = &state
		return putAccount(btx, acct)
	})
	return err
}
