// Package markup implements the value-resolution and escaping protocol used
// by templating layers to turn interpolated values into HTML-safe text.
// Plain data is escaped, Safe text and Renderer implementations pass through
// verbatim, and Thunk values defer expensive branch computations until a
// Conditions builder (or the Cond helper) actually selects them. Every
// interpolated value flows through From exactly once; output is never
// re-escaped.
package markup
