// Package dbtx is the unit of work shared by every service: one *sql.Tx per
// business operation, with gorm repositories bound to it.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// WithinTx runs fn inside a transaction. The transaction is committed only
// when fn returns nil; every other path rolls back.
func WithinTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// Bind returns a gorm handle whose statements run on tx. A nil tx returns db
// unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}

	// Setting Context forces gorm to clone the statement so db is not mutated.
	s := db.Session(&gorm.Session{Context: context.Background(), SkipDefaultTransaction: true})
	s.Statement.ConnPool = tx
	return s
}
