// Package migrations embeds goose SQL migrations for the expense schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
