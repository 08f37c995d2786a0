package migrations

import "embed"

// Files holds the ordered schema migrations compiled into the binary, so a
// deployment is a single executable plus its database file.
//
//go:embed *.sql
var Files embed.FS
