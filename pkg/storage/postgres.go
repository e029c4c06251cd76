package storage

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun/driver/pgdriver"
)

func NewPostgresDrive(ctx context.Context, dsn string) (*sqlDrive, error) {
	db := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return newSQLDrive(ctx, db, postgresDialect)
}
