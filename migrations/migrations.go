// Package migrations embeds the SQL schema migrations for each supported
// dialect.
package migrations

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dialects with an embedded migration set.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Source returns a golang-migrate source for the given dialect.
func Source(dialect string) (source.Driver, error) {
	switch dialect {
	case Postgres, SQLite:
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}

	d, err := iofs.New(FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}
	return d, nil
}
