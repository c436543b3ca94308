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

import (
	"fmt"
)

// TypeReference is a named placeholder standing in for an element that is
// not resolved yet. References are what let a conceptually cyclic type graph
// be constructed incrementally: an element under construction stores a
// reference instead of the concrete element, and a later resolution pass
// swaps the reference for the element registered under its name in a
// TypeMap. The cyclicity thereby lives in the lookup table, never in the
// element values themselves.
type TypeReference interface {
	Element
	NamedElement
	fmt.Stringer

	// schemaTypeReference puts a special mark for a TypeReference.
	schemaTypeReference()
}

type typeReference struct {
	elementIdentity

	name string
}

var _ TypeReference = (*typeReference)(nil)

// NewTypeReference creates a placeholder for the element with the given
// name.
func NewTypeReference(name string) (TypeReference, error) {
	if err := ValidateName(name); err != nil {
		return nil, NewError("cannot reference type", Op("schema.NewTypeReference"), err)
	}
	return &typeReference{
		elementIdentity: newElementIdentity(),
		name:            name,
	}, nil
}

// MustNewTypeReference is a convenience function equivalent to
// NewTypeReference but panics on failure instead of returning an error.
func MustNewTypeReference(name string) TypeReference {
	ref, err := NewTypeReference(name)
	if err != nil {
		panic(err)
	}
	return ref
}

// Name implements NamedElement.
func (r *typeReference) Name() string {
	return r.name
}

// String implements fmt.Stringer.
func (r *typeReference) String() string {
	return "ref(" + r.name + ")"
}

// Kind implements Element.
func (r *typeReference) Kind() ElementKind {
	return ElementKindTypeReference
}

// Accept implements Element.
func (r *typeReference) Accept(ctx *TraverserContext, visitor Visitor) TraversalControl {
	return visitor.VisitTypeReference(r, ctx)
}

// Children implements Element. A reference is a leaf until resolved.
func (r *typeReference) Children() []Element {
	return nil
}

// ChildrenWithTypeReferences implements Element.
func (r *typeReference) ChildrenWithTypeReferences() ChildrenContainer {
	return NewChildrenContainer().Build()
}

// WithNewChildren implements Element. No child roles are recognized.
func (r *typeReference) WithNewChildren(children ChildrenContainer) (Element, error) {
	return r.Copy(), nil
}

// Copy implements Element.
func (r *typeReference) Copy() Element {
	clone := *r
	clone.elementIdentity = newElementIdentity()
	return &clone
}

// schemaTypeReference implements TypeReference.
func (*typeReference) schemaTypeReference() {}
