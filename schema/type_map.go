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

// TypeMap is the name-indexed arena the resolution pass looks concrete
// elements up in. Elements reference each other only through this index
// while references are being resolved; once resolved, they reference plain
// immutable values. The map itself is not an element and is freely mutable
// until resolution starts.
//
// A TypeMap is not safe for concurrent mutation; confine registration and
// resolution to one sequential task.
type TypeMap struct {
	elements map[string]Element
	names    []string
}

// NewTypeMap creates an empty TypeMap.
func NewTypeMap() *TypeMap {
	return &TypeMap{
		elements: map[string]Element{},
	}
}

// Register indexes the element under its name. The element must be named;
// registering a second element under the same name fails with
// ErrKindDuplicateName.
func (m *TypeMap) Register(element Element) error {
	const op = Op("schema.TypeMap.Register")

	named, ok := element.(NamedElement)
	if !ok {
		return NewError(
			fmt.Sprintf("cannot register unnamed element of kind %s", element.Kind()),
			op, ErrKindMissingField)
	}
	name := named.Name()
	if _, exists := m.elements[name]; exists {
		return NewError(
			fmt.Sprintf("an element named %q is already registered", name),
			op, ErrKindDuplicateName)
	}

	m.elements[name] = element
	m.names = append(m.names, name)
	return nil
}

// Lookup returns the element registered under name, or nil.
func (m *TypeMap) Lookup(name string) Element {
	return m.elements[name]
}

// Names returns the registered names in registration order.
func (m *TypeMap) Names() []string {
	return m.names
}

// ResolveContainer returns a container in which every TypeReference child,
// at every role key, is replaced by the element registered under the
// reference's name. Non-reference children pass through untouched. A
// reference naming an unregistered element fails with
// ErrKindUnresolvedReference.
func (m *TypeMap) ResolveContainer(container ChildrenContainer) (ChildrenContainer, error) {
	const op = Op("schema.TypeMap.ResolveContainer")

	resolved := NewChildrenContainer()
	for _, key := range container.Keys() {
		children := container.Children(key)
		out := make([]Element, len(children))
		for i, child := range children {
			ref, ok := child.(TypeReference)
			if !ok {
				out[i] = child
				continue
			}
			concrete := m.Lookup(ref.Name())
			if concrete == nil {
				return ChildrenContainer{}, NewError(
					fmt.Sprintf("no element named %q is registered", ref.Name()),
					op, ErrKindUnresolvedReference)
			}
			out[i] = concrete
		}
		resolved.WithChildren(key, out)
	}
	return resolved.Build(), nil
}

// ResolveChildren rebuilds the element with every TypeReference among its
// role-keyed children swapped for the registered concrete element. When no
// child is a reference, the element is returned as is, identity included.
func (m *TypeMap) ResolveChildren(element Element) (Element, error) {
	container := element.ChildrenWithTypeReferences()

	hasReference := false
	for _, key := range container.Keys() {
		for _, child := range container.Children(key) {
			if _, ok := child.(TypeReference); ok {
				hasReference = true
				break
			}
		}
	}
	if !hasReference {
		return element, nil
	}

	resolved, err := m.ResolveContainer(container)
	if err != nil {
		return nil, err
	}
	return element.WithNewChildren(resolved)
}
