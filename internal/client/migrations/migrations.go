// Package migrations embeds the goose migrations for the client's local
// database (credential store + restaurant snapshot cache).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
