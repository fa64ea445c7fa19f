package static

import "embed"

// FS holds the admin stylesheet and editor bootstrap script.
//
//go:embed dist
var FS embed.FS
