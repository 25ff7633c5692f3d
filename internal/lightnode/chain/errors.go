package chain

import "errors"

var (
	// ErrNotFound reports that a required block, transaction, account or
	// asset is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress reports a malformed base58check address.
	ErrInvalidAddress = errors.New("invalid address")
)
