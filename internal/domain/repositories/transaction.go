package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions.
// Repositories called with the ctx passed to fn join the transaction.
type TransactionManager interface {
	// ReadTx executes a function within a read-only transaction whose reads all
	// observe the same database state
	ReadTx(ctx context.Context, fn TxFn) error
}
