// Package mailscout embeds assets shared by the binaries, most notably the
// database migrations applied by the migrate subcommand.
package mailscout

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations
var Migrations embed.FS
