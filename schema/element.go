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
	"sync/atomic"
)

// ElementKind enumerates the concrete element kinds in the type-system
// graph. It is a closed set: Element carries an unexported marker method so
// only types in this package can implement it.
type ElementKind int

// Enumeration of ElementKind
const (
	ElementKindScalar ElementKind = iota + 1
	ElementKindDirective
	ElementKindAppliedDirective
	ElementKindTypeReference
)

func (k ElementKind) String() string {
	switch k {
	case ElementKindScalar:
		return "Scalar"
	case ElementKindDirective:
		return "Directive"
	case ElementKindAppliedDirective:
		return "AppliedDirective"
	case ElementKindTypeReference:
		return "TypeReference"
	}
	return "UnknownElementKind"
}

// Identity is an opaque token distinguishing one built element from another.
// It is allocated when an element is built and is never derived from field
// contents, so two builds fed identical content still compare unequal. This
// is deliberate: a rewrite pass must be able to tell "the old element" from
// "a freshly rebuilt but content-identical element"; collapsing the two by
// structural equality would break caches and traversal bookkeeping keyed by
// element identity.
type Identity uint64

// lastIdentity backs newIdentity and is only accessed atomically.
var lastIdentity uint64

func newIdentity() Identity {
	return Identity(atomic.AddUint64(&lastIdentity, 1))
}

// Hash returns a well-distributed 64-bit hash of the identity token. The
// value is deterministic for a given token and independent of element
// contents. The mixing steps are the MurmurHash3 64-bit finalizer.
func (id Identity) Hash() uint64 {
	x := uint64(id)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// Element is the capability set every value in the type-system graph
// satisfies: identity, visitor dispatch and children read/rewrite. Elements
// are immutable once built; all "mutating" operations return new elements.
type Element interface {
	// Kind identifies the concrete kind of the element.
	Kind() ElementKind

	// Identity returns the element's opaque identity token.
	Identity() Identity

	// Accept dispatches to the visitor method matching the element's concrete
	// kind, passing ctx through unchanged. Accept never descends into
	// children; that is the traverser's job, driven by Children.
	Accept(ctx *TraverserContext, visitor Visitor) TraversalControl

	// Children returns the element's structural children as one flat ordered
	// sequence, for walkers that do not need to distinguish child roles.
	Children() []Element

	// ChildrenWithTypeReferences returns the same children keyed by role, for
	// rewrite passes that must put back role-tagged replacements.
	ChildrenWithTypeReferences() ChildrenContainer

	// WithNewChildren returns a new element whose children at the roles the
	// element recognizes are replaced by the container's contents. Roles the
	// element does not recognize are silently ignored; every other attribute
	// carries over unchanged.
	WithNewChildren(children ChildrenContainer) (Element, error)

	// Copy returns a new element with identical content but a fresh identity.
	Copy() Element

	// schemaElement is a special mark restricting implementations to this
	// package, keeping the element kinds a closed set.
	schemaElement()
}

// NamedElement is implemented by elements addressable by name.
type NamedElement interface {
	// Name of the element
	Name() string
}

// ElementWithDescription is implemented by elements that provide
// documentation text.
type ElementWithDescription interface {
	// Description provides documentation for the element.
	Description() string
}

// elementIdentity supplies the identity token and the closed-set marker. It
// is embedded by every concrete element implementation in this package.
type elementIdentity struct {
	id Identity
}

func newElementIdentity() elementIdentity {
	return elementIdentity{id: newIdentity()}
}

// Identity implements Element.
func (e elementIdentity) Identity() Identity {
	return e.id
}

// schemaElement implements Element.
func (elementIdentity) schemaElement() {}
