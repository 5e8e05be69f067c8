package postgres

import "embed"

// MigrationsFS embeds the goose SQL migrations so the binary can run
// them without access to the source tree.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migrations inside MigrationsFS.
const MigrationsDir = "migrations"
