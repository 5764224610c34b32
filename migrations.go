// Package pricewatch holds assets shared by the binaries, such as the SQL
// migrations applied by the migrate command.
package pricewatch

import "embed"

// Migrations contains the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
