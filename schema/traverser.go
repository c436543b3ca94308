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

// TraverserContext accompanies each visit. Elements pass it through Accept
// unchanged; only the traverser creates contexts. UserData is opaque to both
// the traverser and the elements.
type TraverserContext struct {
	parent   *TraverserContext
	element  Element
	userData interface{}
}

// Parent returns the context of the element this visit descended from, or
// nil at a root.
func (ctx *TraverserContext) Parent() *TraverserContext {
	return ctx.parent
}

// Element returns the element being visited. It is nil on the synthetic
// context above the roots.
func (ctx *TraverserContext) Element() Element {
	return ctx.element
}

// UserData returns the value supplied to Traverse.
func (ctx *TraverserContext) UserData() interface{} {
	return ctx.userData
}

// Traverse walks the given elements depth-first in a single sequential pass,
// dispatching each element to the visitor via Accept. The traverser alone
// drives descent: Continue recurses into the element's Children, SkipSubtree
// moves on to the next sibling, and Quit ends the whole walk as soon as the
// signal is observed. Traverse returns Quit if the walk was cut short and
// Continue otherwise.
func Traverse(elements []Element, visitor Visitor, userData interface{}) TraversalControl {
	root := &TraverserContext{userData: userData}
	for _, element := range elements {
		if traverse(root, element, visitor) == Quit {
			return Quit
		}
	}
	return Continue
}

func traverse(parent *TraverserContext, element Element, visitor Visitor) TraversalControl {
	ctx := &TraverserContext{
		parent:   parent,
		element:  element,
		userData: parent.userData,
	}

	switch element.Accept(ctx, visitor) {
	case Quit:
		return Quit
	case SkipSubtree:
		return Continue
	}

	for _, child := range element.Children() {
		if traverse(ctx, child, visitor) == Quit {
			return Quit
		}
	}
	return Continue
}
