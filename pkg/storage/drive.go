// Package storage keeps generated images in a key-value blob store ("drive").
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dskvich/telemage/pkg/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Drive stores blobs under a name. Put overwrites an existing name.
// The service only writes; each store also has a Get used to check its contents in tests.
type Drive interface {
	Put(ctx context.Context, name string, data []byte) error
	Close() error
}

// NewDrive opens the blob store selected by driver and prepares its schema.
func NewDrive(ctx context.Context, driver, dsn string) (Drive, error) {
	var (
		drive Drive
		err   error
	)

	switch driver {
	case DriverSQLite:
		drive, err = NewSQLiteDrive(ctx, dsn)
	case DriverPostgres:
		drive, err = NewPostgresDrive(ctx, dsn)
	case DriverRedis:
		drive, err = NewRedisDrive(ctx, dsn)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s drive: %w", driver, err)
	}

	slog.Info("storage drive ready", "driver", driver)
	return drive, nil
}
