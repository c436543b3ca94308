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
	"sort"
)

// ElementComparator reports whether a should be ordered before b when an
// element's children are frozen by a builder.
type ElementComparator func(a, b Element) bool

// ComparatorEnvironment describes the slot being ordered: the kind of the
// element under construction and the kind of the children being sorted.
type ComparatorEnvironment struct {
	ParentKind ElementKind
	ChildKind  ElementKind
}

// ComparatorRegistry supplies the comparator a builder uses to order a
// child sequence deterministically before freezing it. Feeding two builds
// the same logical content in different input order then converges on the
// same frozen order, which keeps round-trip printing and structural
// comparisons reproducible. Returning a nil comparator keeps declaration
// order.
type ComparatorRegistry interface {
	Comparator(env ComparatorEnvironment) ElementComparator
}

// ComparatorRegistryFunc is an adapter to allow the use of ordinary
// functions as ComparatorRegistry.
type ComparatorRegistryFunc func(env ComparatorEnvironment) ElementComparator

// Comparator calls f(env).
func (f ComparatorRegistryFunc) Comparator(env ComparatorEnvironment) ElementComparator {
	return f(env)
}

// ComparatorRegistryFunc implements ComparatorRegistry.
var _ ComparatorRegistry = (ComparatorRegistryFunc)(nil)

// DefaultComparatorRegistry returns the registry builders fall back to: it
// orders nothing, preserving declaration order everywhere.
func DefaultComparatorRegistry() ComparatorRegistry {
	return ComparatorRegistryFunc(func(ComparatorEnvironment) ElementComparator {
		return nil
	})
}

// ByNameComparatorRegistry returns a registry ordering every child sequence
// alphabetically by element name. Elements without a name sort after named
// ones.
func ByNameComparatorRegistry() ComparatorRegistry {
	return ComparatorRegistryFunc(func(ComparatorEnvironment) ElementComparator {
		return func(a, b Element) bool {
			an, aok := a.(NamedElement)
			bn, bok := b.(NamedElement)
			if !aok || !bok {
				return aok
			}
			return an.Name() < bn.Name()
		}
	})
}

// sortDirectives returns the sequence ordered by the registry's comparator
// for the environment, or the sequence itself when the registry keeps
// declaration order. The sort is stable: same-name entries keep their
// declaration order, which matters for repeatable directives.
func sortDirectives(registry ComparatorRegistry, parent ElementKind, directives []Directive) []Directive {
	if registry == nil {
		return directives
	}
	cmp := registry.Comparator(ComparatorEnvironment{ParentKind: parent, ChildKind: ElementKindDirective})
	if cmp == nil || len(directives) < 2 {
		return directives
	}
	sorted := make([]Directive, len(directives))
	copy(sorted, directives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j])
	})
	return sorted
}

// sortAppliedDirectives is the AppliedDirective counterpart of
// sortDirectives.
func sortAppliedDirectives(registry ComparatorRegistry, parent ElementKind, applied []AppliedDirective) []AppliedDirective {
	if registry == nil {
		return applied
	}
	cmp := registry.Comparator(ComparatorEnvironment{ParentKind: parent, ChildKind: ElementKindAppliedDirective})
	if cmp == nil || len(applied) < 2 {
		return applied
	}
	sorted := make([]AppliedDirective, len(applied))
	copy(sorted, applied)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j])
	})
	return sorted
}
