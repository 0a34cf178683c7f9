package store

import _ "embed"

// Schema creates the tables the Postgres store reads and writes. Statements are
// idempotent; `tripapp migrate` and the integration tests apply it.
//
//go:embed schema.sql
var Schema string
