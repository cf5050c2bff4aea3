package markup

type branch struct {
	condition bool
	value     any
}

// Conditions resolves the value paired with the first truthy condition.
// Branches are scanned in insertion order; values may be plain data
// (evaluated eagerly) or Thunks (invoked only when their branch is
// selected). The builder implements Renderer, so an instance dropped into an
// interpolation slot renders its resolved branch transparently:
//
//	markup.NewConditions().
//		When(user.Admin, markup.Safe(`<span class="admin">ADMIN</span>`)).
//		When(user.Premium, markup.Safe(`<span class="pro">PRO</span>`)).
//		Default(markup.Safe(`<span>FREE</span>`))
//
// Instances are transient single-render expressions and are not safe for
// concurrent use.
type Conditions struct {
	branches   []branch
	fallback   any
	hasDefault bool
}

// NewConditions returns an empty builder with no branches and no default.
func NewConditions() *Conditions {
	return &Conditions{}
}

// When appends a conditional branch. The first truthy condition wins;
// duplicate or contradictory conditions are legal.
func (c *Conditions) When(condition bool, value any) *Conditions {
	c.branches = append(c.branches, branch{condition: condition, value: value})
	return c
}

// Default sets the fallback used when no condition matches. Calling it again
// overwrites the previous fallback; once set, even an explicit nil or false
// default permanently distinguishes this instance from one with no default.
func (c *Conditions) Default(value any) *Conditions {
	c.fallback = value
	c.hasDefault = true
	return c
}

// Resolve scans branches in insertion order and returns the resolved value
// of the first truthy one. When nothing matches it returns the resolved
// default if one was ever set, otherwise (nil, false). Resolving again
// re-runs the same scan, re-invoking whichever thunk is selected; results
// are never cached.
func (c *Conditions) Resolve() (any, bool) {
	for _, b := range c.branches {
		if b.condition {
			return resolve(b.value), true
		}
	}
	if c.hasDefault {
		return resolve(c.fallback), true
	}
	return nil, false
}

// HTML implements Renderer by passing the resolved value back through From,
// so a branch payload may itself be plain data, trusted text, or another
// Renderer. No match and no default renders as the empty string.
func (c *Conditions) HTML() string {
	value, ok := c.Resolve()
	if !ok {
		return ""
	}
	return string(From(value))
}
