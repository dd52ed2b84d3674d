package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/benchforge/stepgen/pkg/render/template"
)

// Compose renders each resolved section through its template and joins them
// into one script: sections separated by two blank lines, with a single
// trailing newline. Section templates live under dir, named after the
// section.
func Compose(tr template.Renderer, dir string, resolved []ResolvedSection) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("render: template renderer is nil")
	}

	parts := make([]string, 0, len(resolved))
	for _, section := range resolved {
		out, err := tr.RenderTemplate(path.Join(dir, section.Name), section.Context)
		if err != nil {
			return nil, fmt.Errorf("render: section %q: %w", section.Name, err)
		}
		parts = append(parts, strings.TrimRight(out, "\n"))
	}
	return []byte(strings.Join(parts, "\n\n\n") + "\n"), nil
}
