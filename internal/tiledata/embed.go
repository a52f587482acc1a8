// Package tiledata provides embedded run presets and tile styling, and
// utilities for loading them.
package tiledata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
