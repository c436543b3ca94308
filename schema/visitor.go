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

// TraversalControl is the signal a visitor returns from each visit to steer
// the walk.
type TraversalControl int

const (
	// Continue descends into the visited element's children.
	Continue TraversalControl = iota

	// SkipSubtree skips the visited element's children but keeps walking its
	// siblings.
	SkipSubtree

	// Quit stops the entire walk. The stop is cooperative: the traverser
	// checks the signal after each Accept returns; there is no preemptive
	// cancellation.
	Quit
)

func (c TraversalControl) String() string {
	switch c {
	case Continue:
		return "CONTINUE"
	case SkipSubtree:
		return "SKIP_SUBTREE"
	case Quit:
		return "QUIT"
	}
	return "UNKNOWN_TRAVERSAL_CONTROL"
}

// Visitor processes elements during a traversal, one method per concrete
// element kind. Element.Accept double-dispatches to the matching method, so
// new visitors can be written without the element kinds knowing about them.
type Visitor interface {
	VisitScalar(scalar Scalar, ctx *TraverserContext) TraversalControl
	VisitDirective(directive Directive, ctx *TraverserContext) TraversalControl
	VisitAppliedDirective(applied AppliedDirective, ctx *TraverserContext) TraversalControl
	VisitTypeReference(ref TypeReference, ctx *TraverserContext) TraversalControl
}

// VisitorFuncs is an adapter to create a Visitor from function values. A nil
// function visits by returning Continue.
type VisitorFuncs struct {
	VisitScalarFunc           func(scalar Scalar, ctx *TraverserContext) TraversalControl
	VisitDirectiveFunc        func(directive Directive, ctx *TraverserContext) TraversalControl
	VisitAppliedDirectiveFunc func(applied AppliedDirective, ctx *TraverserContext) TraversalControl
	VisitTypeReferenceFunc    func(ref TypeReference, ctx *TraverserContext) TraversalControl
}

// VisitScalar calls f.VisitScalarFunc(scalar, ctx).
func (f VisitorFuncs) VisitScalar(scalar Scalar, ctx *TraverserContext) TraversalControl {
	if f.VisitScalarFunc == nil {
		return Continue
	}
	return f.VisitScalarFunc(scalar, ctx)
}

// VisitDirective calls f.VisitDirectiveFunc(directive, ctx).
func (f VisitorFuncs) VisitDirective(directive Directive, ctx *TraverserContext) TraversalControl {
	if f.VisitDirectiveFunc == nil {
		return Continue
	}
	return f.VisitDirectiveFunc(directive, ctx)
}

// VisitAppliedDirective calls f.VisitAppliedDirectiveFunc(applied, ctx).
func (f VisitorFuncs) VisitAppliedDirective(applied AppliedDirective, ctx *TraverserContext) TraversalControl {
	if f.VisitAppliedDirectiveFunc == nil {
		return Continue
	}
	return f.VisitAppliedDirectiveFunc(applied, ctx)
}

// VisitTypeReference calls f.VisitTypeReferenceFunc(ref, ctx).
func (f VisitorFuncs) VisitTypeReference(ref TypeReference, ctx *TraverserContext) TraversalControl {
	if f.VisitTypeReferenceFunc == nil {
		return Continue
	}
	return f.VisitTypeReferenceFunc(ref, ctx)
}

// VisitorFuncs implements Visitor.
var _ Visitor = VisitorFuncs{}
