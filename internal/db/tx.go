package db

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// Tx is a single unit of work. Every write of a multi-step operation goes
// through one Tx; Commit or Rollback is always called exactly once.
type Tx interface {
	Commit() error
	Rollback() error
}

type TransactionManager interface {
	Begin(ctx context.Context) (Tx, error)
}

type transactionManager struct {
	db *pg.DB
}

func NewTransactionManager(db *pg.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (m *transactionManager) Begin(ctx context.Context) (Tx, error) {
	tx, err := m.db.BeginContext(ctx)
	if err != nil {
		return nil, err
	}

	return &pgTx{tx: tx}, nil
}

type pgTx struct {
	tx *pg.Tx
}

func (t *pgTx) Commit() error {
	return t.tx.Commit()
}

func (t *pgTx) Rollback() error {
	return t.tx.Rollback()
}

// ORM unwraps a transaction started by NewTransactionManager. Repositories
// use it to run queries inside the caller's unit of work; it only accepts
// transactions issued by this package.
func ORM(tx Tx) orm.DB {
	return tx.(*pgTx).tx
}
