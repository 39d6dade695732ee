// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
	"io/fs"
)

// Files contains the page templates compiled into the binary:
//   - templates/layout.html - shared document shell and link partial
//   - templates/home.html   - content block for /
//   - templates/about.html  - content block for /about
//
//go:embed templates
var Files embed.FS

// Templates returns the template directory as its own filesystem root.
func Templates() (fs.FS, error) {
	return fs.Sub(Files, "templates")
}
