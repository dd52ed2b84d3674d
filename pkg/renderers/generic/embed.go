package generic

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded section templates for consumers that want
// to extend or inspect the built-in bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
