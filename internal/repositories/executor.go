package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/kunsthaus/canvas-bids/internal/middlewares"
)

// extContext is the query surface shared by *sqlx.DB and *sqlx.Tx.
type extContext interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// executor returns the per-request transaction when one is present in the
// context, the connection pool otherwise. Write routes run behind the tx
// middleware, so their statements all join the same transaction.
func executor(ctx context.Context, db *sqlx.DB) extContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
