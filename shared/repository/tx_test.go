package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/infras/otel/mocks"
	"tasknest/infras/postgres"
	"tasknest/shared/repository"
)

func newTransactor(t *testing.T) (repository.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = mockDB.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(mockDB, "postgres"))

	return repository.NewTransactor(conn, mocks.NewOtel()), mock
}

func TestTransactor_Commit(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM todos").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM projects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM todos WHERE project_id = $1", "p-1"); err != nil {
			return err
		}

		_, err := tx.Exec("DELETE FROM projects WHERE id = $1", "p-1")

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollbackOnError(t *testing.T) {
	transactor, mock := newTransactor(t)

	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := transactor.WithinTx(context.Background(), func(_ *sqlx.Tx) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginFails(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := transactor.WithinTx(context.Background(), func(_ *sqlx.Tx) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
