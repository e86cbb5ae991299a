// Package migrations berisi skema database dalam bentuk file SQL berurutan.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
