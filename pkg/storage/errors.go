package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle.
	ErrAlreadyInTx = errors.New("storage: nested transactions are not supported")
	// ErrNotInTx is returned by Commit and Rollback on the root handle.
	ErrNotInTx = errors.New("storage: no transaction in progress")
)
