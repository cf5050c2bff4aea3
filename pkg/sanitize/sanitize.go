// Package sanitize admits third-party HTML into the markup protocol by
// policy-based sanitization rather than escaping. It is the third way into
// markup.Safe: Escape for plain data, Safe/Renderer for pre-trusted output,
// and sanitize for markup of uncertain provenance (user comments, CMS
// fragments, embedded widgets).
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-markup/pkg/markup"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy

	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// Sanitizer wraps a bluemonday policy and emits trusted text. Policies are
// safe for concurrent use, so a Sanitizer may be shared across renders.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New constructs a Sanitizer around a caller-supplied policy. A nil policy
// falls back to the user-generated-content policy used by Fragment.
func New(policy *bluemonday.Policy) *Sanitizer {
	if policy == nil {
		policy = ugcPolicy()
	}
	return &Sanitizer{policy: policy}
}

// Sanitize runs raw markup through the policy and marks the survivor
// trusted.
func (s *Sanitizer) Sanitize(raw string) markup.Safe {
	if s == nil || s.policy == nil {
		return markup.Escape(raw)
	}
	return markup.Safe(s.policy.Sanitize(raw))
}

// Fragment sanitizes block-level user-generated markup with bluemonday's UGC
// policy and marks the result trusted. Empty or whitespace-only input yields
// empty trusted text.
func Fragment(raw string) markup.Safe {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(ugcPolicy().Sanitize(trimmed))
	return markup.Safe(cleaned)
}

// Inline sanitizes a phrasing-content fragment, keeping only an allowlist
// of inline elements (b, i, em, strong, code, small, sub, sup, span with
// class, anchors with standard URLs). Anything block-level or scriptable is
// stripped.
func Inline(raw string) markup.Safe {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(inlineSanitizer().Sanitize(trimmed))
	return markup.Safe(cleaned)
}

func ugcPolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		fragmentPolicy = bluemonday.UGCPolicy()
	})
	return fragmentPolicy
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "small", "sub", "sup")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowElements("span")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)

		inlinePolicy = policy
	})
	return inlinePolicy
}
