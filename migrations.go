// Package countries holds assets shared by the binaries, such as the
// embedded SQL migrations applied by the migrate command.
package countries

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
