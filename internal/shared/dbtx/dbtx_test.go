package dbtx_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/dbtx"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/testdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `gorm:"primaryKey"`
	Body string
}

func TestWithinTx(t *testing.T) {
	t.Run("commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err = dbtx.WithinTx(context.Background(), db, func(tx *sql.Tx) error { return nil })

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err = dbtx.WithinTx(context.Background(), db, func(tx *sql.Tx) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("db down"))

		called := false
		err = dbtx.WithinTx(context.Background(), db, func(tx *sql.Tx) error {
			called = true
			return nil
		})

		assert.EqualError(t, err, "db down")
		assert.False(t, called)
	})
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	gormDB, sqlDB := testdb.Open(t, &note{})

	t.Run("rolled back writes disappear", func(t *testing.T) {
		err := dbtx.WithinTx(ctx, sqlDB, func(tx *sql.Tx) error {
			if err := dbtx.Bind(gormDB, tx).WithContext(ctx).Create(&note{ID: "a", Body: "x"}).Error; err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, gormDB.Model(&note{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("committed writes persist", func(t *testing.T) {
		err := dbtx.WithinTx(ctx, sqlDB, func(tx *sql.Tx) error {
			return dbtx.Bind(gormDB, tx).WithContext(ctx).Create(&note{ID: "b", Body: "y"}).Error
		})
		require.NoError(t, err)

		var got note
		require.NoError(t, gormDB.First(&got, "id = ?", "b").Error)
		assert.Equal(t, "y", got.Body)
	})

	t.Run("nil tx keeps handle", func(t *testing.T) {
		assert.Same(t, gormDB, dbtx.Bind(gormDB, nil))
	})
}
