package sqlite

import (
	"context"
	"fmt"

	"github.com/FuFicFac/vibe-writer/internal/domain/repositories"
)

// TransactionManager implements repositories.TransactionManager for SQLite
type TransactionManager struct {
	db *DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// ReadTx runs fn in a transaction. SQLite transactions are serializable, so
// every query fn makes sees the same database state.
func (tm *TransactionManager) ReadTx(ctx context.Context, fn repositories.TxFn) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
