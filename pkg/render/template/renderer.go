package template

// Renderer is the engine contract template families rely on. Section bodies
// live in named templates loaded from an fs.FS; RenderString exists for
// one-off fragments and tests.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
