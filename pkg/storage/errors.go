package storage

import "errors"

// Sentinel errors shared by all storage backends.
var (
	// ErrAlreadyInTx is returned when Begin is called on a handle that already
	// operates inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called on a handle that
	// is not inside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
