// Package db carries the reference PostgreSQL schema.
package db

import _ "embed"

//go:embed schema.sql
var Schema string
