package model

// TransactionType describes the kind of a transaction.
type TransactionType string

var (
	// TxMiner credits the block producer.
	TxMiner TransactionType = "miner"
	// TxIssue issues units of a registered asset.
	TxIssue TransactionType = "issue"
	// TxClaim claims accumulated utility tokens.
	TxClaim TransactionType = "claim"
	// TxRegister registers a new asset definition; the asset id is the txid.
	TxRegister TransactionType = "register"
	// TxContract moves value between addresses.
	TxContract TransactionType = "contract"
	// TxInvocation executes contract code and may move value.
	TxInvocation TransactionType = "invocation"
)

// BearsValue reports whether transactions of this type move value and
// therefore participate in address balance computation.
func (t TransactionType) BearsValue() bool {
	switch t {
	case TxContract, TxClaim, TxInvocation, TxIssue, TxMiner:
		return true
	default:
		return false
	}
}

// Transaction is a persisted transaction. BlockIndex and Time are stamped
// from the containing block during ingestion. Vin entries start as bare
// spend references and gain Address/Asset/Value once the transaction is
// expanded.
type Transaction struct {
	TxID       string          `json:"txid"`
	Type       TransactionType `json:"type"`
	BlockIndex int64           `json:"blockIndex"`
	Time       int64           `json:"time"`
	Vin        []Vin           `json:"vin"`
	Vout       []Vout          `json:"vout"`
	// Asset carries the definition payload of register transactions.
	Asset *AssetState `json:"asset,omitempty"`
}

// Vin references the output at position Vout of a prior transaction.
// Address, Asset and Value are copies of the spent output, filled in by
// expansion.
type Vin struct {
	TxID    string `json:"txid"`
	Vout    uint32 `json:"vout"`
	Address string `json:"address,omitempty"`
	Asset   string `json:"asset,omitempty"`
	Value   int64  `json:"value,omitempty"`
}

// Vout is a value output. Value is in integer base units.
type Vout struct {
	Address string `json:"address"`
	Asset   string `json:"asset"`
	Value   int64  `json:"value"`
}

// Expanded reports whether every input already carries the asset of the
// output it spends. A transaction without inputs is trivially expanded.
func (t Transaction) Expanded() bool {
	for _, in := range t.Vin {
		if in.Asset == "" {
			return false
		}
	}
	return true
}
