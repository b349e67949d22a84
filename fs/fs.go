// Package appfs embeds static repo assets so binaries stay self-contained.
package appfs

import "embed"

//go:embed migrations
var FS embed.FS
