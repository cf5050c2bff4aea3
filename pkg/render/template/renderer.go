package template

import (
	"io"
)

// Renderer mirrors the github.com/goliatone/go-template engine contract. A
// conforming engine is responsible for splitting templates into static text
// and interpolation slots and for routing every slot value through the
// markup protocol (directly or via registered filters) before emitting it.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
