/**
 * Copyright (c) 2019, The TypeGraph Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

// Child role keys recognized by the element kinds in this package. Other
// node kinds add further roles; consumers must treat the key space as open.
const (
	ChildDirectives        = "directives"
	ChildAppliedDirectives = "appliedDirectives"
)

// ChildrenContainer is a keyed, ordered collection of an element's
// structural children. It decouples how an element stores children
// internally from how a rewrite pass supplies replacements: a pass obtains
// the container from ChildrenWithTypeReferences, swaps entries (typically
// TypeReference placeholders for concrete elements) and feeds the result to
// WithNewChildren. Keys an element does not recognize are ignored rather
// than rejected, keeping the contract forward-compatible as node kinds with
// more roles appear.
//
// A container is immutable once built. The zero value is an empty container.
type ChildrenContainer struct {
	children map[string][]Element
	keys     []string
}

// Keys returns the role keys present in the container, in the order they
// were first added.
func (c ChildrenContainer) Keys() []string {
	return c.keys
}

// Children returns the ordered children stored at the given role key. An
// unknown key yields an empty sequence rather than failing, so callers can
// probe roles defensively.
func (c ChildrenContainer) Children(key string) []Element {
	return c.children[key]
}

// ChildrenContainerBuilder accumulates role-keyed children and finalizes
// them into a ChildrenContainer.
type ChildrenContainerBuilder struct {
	container ChildrenContainer
}

// NewChildrenContainer starts building a ChildrenContainer.
func NewChildrenContainer() *ChildrenContainerBuilder {
	return &ChildrenContainerBuilder{
		container: ChildrenContainer{children: map[string][]Element{}},
	}
}

// WithChildren appends the given children under the role key.
func (b *ChildrenContainerBuilder) WithChildren(key string, children []Element) *ChildrenContainerBuilder {
	c := &b.container
	if _, exists := c.children[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.children[key] = append(c.children[key], children...)
	return b
}

// WithChild appends one child under the role key.
func (b *ChildrenContainerBuilder) WithChild(key string, child Element) *ChildrenContainerBuilder {
	return b.WithChildren(key, []Element{child})
}

// Build finalizes the accumulated children. The builder must not be reused
// afterwards.
func (b *ChildrenContainerBuilder) Build() ChildrenContainer {
	container := b.container
	b.container = ChildrenContainer{}
	return container
}

// directivesFromElements narrows a role's children back to directive
// declarations for reconstruction of a DirectivesHolder.
func directivesFromElements(op Op, elements []Element) ([]Directive, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	directives := make([]Directive, len(elements))
	for i, e := range elements {
		d, ok := e.(Directive)
		if !ok {
			return nil, NewError(
				"child at key \""+ChildDirectives+"\" is not a Directive: "+e.Kind().String(),
				op, ErrKindInternal)
		}
		directives[i] = d
	}
	return directives, nil
}

// appliedDirectivesFromElements narrows a role's children back to directive
// applications.
func appliedDirectivesFromElements(op Op, elements []Element) ([]AppliedDirective, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	applied := make([]AppliedDirective, len(elements))
	for i, e := range elements {
		d, ok := e.(AppliedDirective)
		if !ok {
			return nil, NewError(
				"child at key \""+ChildAppliedDirectives+"\" is not an AppliedDirective: "+e.Kind().String(),
				op, ErrKindInternal)
		}
		applied[i] = d
	}
	return applied, nil
}

// directivesToElements widens directive declarations for a children
// container.
func directivesToElements(directives []Directive) []Element {
	elements := make([]Element, len(directives))
	for i, d := range directives {
		elements[i] = d
	}
	return elements
}

// appliedDirectivesToElements widens directive applications for a children
// container.
func appliedDirectivesToElements(applied []AppliedDirective) []Element {
	elements := make([]Element, len(applied))
	for i, d := range applied {
		elements[i] = d
	}
	return elements
}
