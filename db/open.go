// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// sqlitePragmas are appended to SQLite DSNs that don't set their own.
// Foreign keys are off by default in SQLite.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, dsn, err := driverFor(dbType, url)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// SQLite allows a single writer; serialize through one connection
	// so concurrent transactions queue instead of failing with SQLITE_BUSY.
	if driver == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func driverFor(dbType, url string) (driver, dsn string, err error) {
	switch dbType {
	case TypePostgres:
		return TypePostgres, url, nil
	case TypeSQLite:
		if strings.Contains(url, "_pragma=") {
			return TypeSQLite, url, nil
		}
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		return TypeSQLite, url + sep + strings.Join(sqlitePragmas, "&"), nil
	default:
		return "", "", fmt.Errorf("unsupported database type %q", dbType)
	}
}
