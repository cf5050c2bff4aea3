package markup

import (
	"fmt"
	"html"
)

// Safe is trusted, already-escaped HTML text. Values of this type pass
// through From verbatim; constructing one asserts the content is safe to
// emit without further escaping.
type Safe string

// HTML satisfies Renderer so trusted text composes with everything else that
// participates in the rendering protocol.
func (s Safe) HTML() string {
	return string(s)
}

// Renderer is the rendering-capability hook. Any value that can produce its
// own HTML-safe representation implements it; From invokes the hook instead
// of escaping. Implementations must return text that is already safe.
type Renderer interface {
	HTML() string
}

// Thunk defers a branch value until resolution selects it. Conditions and
// Cond invoke the selected thunk exactly once per resolution; unselected
// thunks are never invoked. Any other function value is treated as plain
// data, so a callable payload must be wrapped explicitly to be deferred.
type Thunk func() any

// Escape substitutes the HTML metacharacters (&, <, >, and both quotes) in s
// and marks the result trusted.
func Escape(s string) Safe {
	return Safe(html.EscapeString(s))
}

// From converts any interpolated value into trusted text. nil renders empty,
// Safe and Renderer values pass through unescaped, and everything else is
// stringified and escaped. Total over all inputs; the only side effects are
// those of a Renderer hook it invokes.
func From(value any) Safe {
	switch v := value.(type) {
	case nil:
		return ""
	case Safe:
		return v
	case Renderer:
		return Safe(v.HTML())
	default:
		return Escape(fmt.Sprint(v))
	}
}

// resolve evaluates a branch payload: thunks are invoked, anything else is
// returned as-is. A typed-nil thunk resolves to nil rather than panicking.
func resolve(value any) any {
	switch fn := value.(type) {
	case Thunk:
		if fn == nil {
			return nil
		}
		return fn()
	case func() any:
		if fn == nil {
			return nil
		}
		return fn()
	default:
		return value
	}
}
