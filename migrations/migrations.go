// Package migrations embeds the database schema so deployment tooling does
// not depend on files shipped next to the binary.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string
