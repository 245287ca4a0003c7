// Package preset provides the embedded generation presets and utilities for
// loading them.
package preset

import "embed"

// dataFS embeds all TOML files from this directory at build time.
//
//go:embed *.toml
var dataFS embed.FS
