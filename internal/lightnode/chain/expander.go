package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/lightnode7000-backend/internal/lightnode/model"
	"go.uber.org/zap"
)

// TxExpander resolves a transaction's inputs to the address, asset and
// value of the outputs they spend, persisting the expanded form so the
// resolution happens once per transaction.
type TxExpander struct {
	repo   Repository
	logger *zap.Logger
}

// NewTxExpander builds a TxExpander.
func NewTxExpander(repo Repository, logger *zap.Logger) (*TxExpander, error) {
	if repo == nil {
		return nil, errors.New("expander repository is required")
	}

	return &TxExpander{repo: repo, logger: logger}, nil
}

// Expand returns the transaction with every input carrying the output it
// spends. Expanding an already-expanded transaction returns it unchanged.
// A failure to load the transaction or any referenced transaction is
// fatal; the write-back of the expanded form is best-effort.
func (e *TxExpander) Expand(ctx context.Context, txid string) (model.Transaction, error) {
	tx, err := e.repo.Transaction(ctx, txid)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("load transaction %s: %w", txid, err)
	}

	if tx.Expanded() {
		return tx, nil
	}

	for i := range tx.Vin {
		in := &tx.Vin[i]

		prev, err := e.repo.Transaction(ctx, in.TxID)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("load referenced transaction %s: %w", in.TxID, err)
		}
		if int(in.Vout) >= len(prev.Vout) {
			return model.Transaction{}, fmt.Errorf("transaction %s has no output %d", in.TxID, in.Vout)
		}

		out := prev.Vout[in.Vout]
		in.Address = out.Address
		in.Asset = out.Asset
		in.Value = out.Value
	}

	if err := e.repo.UpdateTransaction(ctx, tx); err != nil {
		e.logger.Warn("persist expanded transaction failed",
			zap.String("txid", txid),
			zap.Error(err))
	}

	return tx, nil
}
