// Package storage declares what the monitor needs from persistence: tracked
// products, batch runs, check results and the job queue, plus transactions
// spanning them. pkg/storage/postgres is the implementation.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage bundles every repository; it is what a transaction exposes.
type AllStorage interface {
	ProductStorage
	RunStorage
	ResultStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle owned by the process.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
