package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

func NewSQLiteDrive(ctx context.Context, dsn string) (*sqlDrive, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// an in-memory database lives only as long as its single connection
	db.SetMaxOpenConns(1)

	return newSQLDrive(ctx, db, sqliteDialect)
}
