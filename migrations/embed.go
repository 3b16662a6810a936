// Package migrations holds the goose migrations for the remote item tables.
package migrations

import "embed"

// FS contains every migration file.
//
//go:embed *.sql
var FS embed.FS
