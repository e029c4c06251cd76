package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations
var migrationsFS embed.FS

var ErrNotFound = errors.New("blob not found")

type dialect struct {
	migrateName string
	root        string
	putQuery    string
	getQuery    string
}

var (
	sqliteDialect = dialect{
		migrateName: "sqlite3",
		root:        "migrations/sqlite",
		putQuery: `
			INSERT INTO generations (name, data)
			VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET data = excluded.data
		`,
		getQuery: `SELECT data FROM generations WHERE name = ?`,
	}
	postgresDialect = dialect{
		migrateName: "postgres",
		root:        "migrations/postgres",
		putQuery: `
			INSERT INTO generations (name, data)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET data = excluded.data
		`,
		getQuery: `SELECT data FROM generations WHERE name = $1`,
	}
)

type sqlDrive struct {
	db      *sql.DB
	dialect dialect
}

func newSQLDrive(ctx context.Context, db *sql.DB, d dialect) (*sqlDrive, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging db: %w", err)
	}

	src := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       d.root,
	}

	n, err := migrate.Exec(db, d.migrateName, src, migrate.Up)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("storage migrations applied", "dialect", d.migrateName, "count", n)

	return &sqlDrive{db: db, dialect: d}, nil
}

func (s *sqlDrive) Put(ctx context.Context, name string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.putQuery, name, data); err != nil {
		return fmt.Errorf("saving blob %q: %w", name, err)
	}
	return nil
}

func (s *sqlDrive) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	if err := s.db.QueryRowContext(ctx, s.dialect.getQuery, name).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching blob %q: %w", name, err)
	}
	return data, nil
}

func (s *sqlDrive) Close() error {
	return s.db.Close()
}
