package migrations

import "embed"

// Files holds the forward-only schema migrations of the session database.
//
//go:embed *.sql
var Files embed.FS
