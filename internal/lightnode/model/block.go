// Package model defines domain models for light-node chain indexing.
package model

// Block represents a mined block as persisted by the local index.
// Index is assigned by the chain, not by arrival order; at most one
// block is stored per index.
type Block struct {
	Index        int64         `json:"index"`
	Hash         string        `json:"hash"`
	PreviousHash string        `json:"previousHash"`
	MerkleRoot   string        `json:"merkleRoot"`
	Time         int64         `json:"time"`
	Transactions []Transaction `json:"tx"`
}

// Height reports the one-based height the block occupies once linked.
func (b Block) Height() int64 {
	return b.Index + 1
}
