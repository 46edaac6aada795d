package migrations

import "embed"

// FS embeds the SQL migrations for the ledger event journal. The
// golang-migrate library reads these files via the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
