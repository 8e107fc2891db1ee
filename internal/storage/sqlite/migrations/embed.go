package migrations

import "embed"

// FS contains embedded SQLite migrations for the planning store.
//
//go:embed *.sql
var FS embed.FS
