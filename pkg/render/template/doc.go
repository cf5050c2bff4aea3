// Package template defines the engine-agnostic rendering seam between the
// markup protocol and a concrete template engine. Adapters live in
// subpackages; the contract they satisfy is the single boundary the markup
// core assumes about its template-compiler collaborator.
package template
