// Package migrations embeds the goose migrations of each supported dialect.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL migration directory
func Postgres() (fs.FS, error) {
	return fs.Sub(files, "postgres")
}

// SQLite returns the SQLite migration directory
func SQLite() (fs.FS, error) {
	return fs.Sub(files, "sqlite")
}
