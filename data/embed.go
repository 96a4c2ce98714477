// Package data bundles the quote datasets and their registry manifest into
// the binary.
package data

import "embed"

// ManifestPath is the registry manifest location inside FS.
const ManifestPath = "registry.yaml"

//go:embed registry.yaml books/*.json dance/*.json others/*.json
var FS embed.FS
