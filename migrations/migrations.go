// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package migrations embeds the goose SQL migrations.
package migrations

import (
	"embed"
)

//go:embed sql/*.sql
var FS embed.FS

// Dir is the root of the embedded migration files.
const Dir = "sql"
