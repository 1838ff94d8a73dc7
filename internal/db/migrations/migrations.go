// Package migrations embeds the SQL applied at startup by golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
