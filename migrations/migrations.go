// Package migrations embeds the schema migrations, one directory per
// supported database dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
