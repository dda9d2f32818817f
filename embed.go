// Package recon exposes assets embedded at the repository root.
package recon

import "embed"

// Migrations holds the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
