package connection_test

import (
	"context"
	"testing"

	"go-school/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPostgresDSN(t *testing.T) {
	dsn := connection.PostgresDSN("localhost", "app", "secret", "school", "5432", "disable")
	assert.Equal(t, "host=localhost user=app password=secret dbname=school port=5432 sslmode=disable", dsn)
}

func TestWithSQLTx_RunsOnTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE school_counters").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	err = connection.WithSQLTx(gdb, tx).
		WithContext(context.Background()).
		Exec("UPDATE school_counters SET last_value = 0").Error
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithSQLTx_NilTxKeepsHandle(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	assert.Same(t, gdb, connection.WithSQLTx(gdb, nil))
}
