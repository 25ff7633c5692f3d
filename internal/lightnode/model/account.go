package model

import "github.com/btcsuite/btcd/btcutil/base58"

// AccountType distinguishes holder accounts from asset definitions.
type AccountType string

var (
	// AccountContract is a wallet or contract account holding balances.
	AccountContract AccountType = "c"
	// AccountAsset is an asset-definition account; its address is the asset id.
	AccountAsset AccountType = "a"
)

// Account is the per-address record kept by the balance cache. Each
// (address, asset) pair appears at most once in Assets.
type Account struct {
	Address string         `json:"address"`
	Type    AccountType    `json:"type"`
	Assets  []AssetBalance `json:"assets"`
	// State holds asset metadata for asset-definition accounts.
	State *AssetState `json:"state,omitempty"`
}

// AssetBalance is a cached balance checkpoint. Index is the block index
// through which Balance is accurate and never decreases across updates.
type AssetBalance struct {
	Asset   string `json:"asset"`
	Balance int64  `json:"balance"`
	Index   int64  `json:"index"`
}

// AssetState is the metadata payload of a registered asset.
type AssetState struct {
	Name      string `json:"name"`
	Precision uint8  `json:"precision"`
	Owner     string `json:"owner"`
	Admin     string `json:"admin"`
	Amount    int64  `json:"amount"`
}

// Balance returns the cached entry for an asset, if present.
func (a Account) Balance(asset string) (AssetBalance, bool) {
	for _, entry := range a.Assets {
		if entry.Asset == asset {
			return entry, true
		}
	}
	return AssetBalance{}, false
}

// ValidAddress reports whether s is a well-formed base58check address.
func ValidAddress(s string) bool {
	if s == "" {
		return false
	}
	_, _, err := base58.CheckDecode(s)
	return err == nil
}
