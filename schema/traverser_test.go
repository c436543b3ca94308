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

package schema_test

import (
	"github.com/typegraph/typegraph/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// countingVisitor appends each visited element and returns a fixed signal
// once a threshold is reached.
type countingVisitor struct {
	visited []schema.Element
	stopAt  int
	signal  schema.TraversalControl
}

func (v *countingVisitor) visit(e schema.Element) schema.TraversalControl {
	v.visited = append(v.visited, e)
	if v.stopAt > 0 && len(v.visited) == v.stopAt {
		return v.signal
	}
	return schema.Continue
}

func (v *countingVisitor) VisitScalar(s schema.Scalar, ctx *schema.TraverserContext) schema.TraversalControl {
	return v.visit(s)
}

func (v *countingVisitor) VisitDirective(d schema.Directive, ctx *schema.TraverserContext) schema.TraversalControl {
	return v.visit(d)
}

func (v *countingVisitor) VisitAppliedDirective(d schema.AppliedDirective, ctx *schema.TraverserContext) schema.TraversalControl {
	return v.visit(d)
}

func (v *countingVisitor) VisitTypeReference(r schema.TypeReference, ctx *schema.TraverserContext) schema.TraversalControl {
	return v.visit(r)
}

var _ = Describe("Traverse", func() {
	var (
		d1      schema.Directive
		d2      schema.Directive
		applied schema.AppliedDirective
		root    schema.Scalar
	)

	BeforeEach(func() {
		d1 = directiveNamed("one")
		d2 = directiveNamed("two")
		applied = appliedNamed("one")
		root = schema.NewScalarBuilder().
			Name("SomeScalar").
			Coercing(noopCoercing()).
			Directives(d1, d2).
			AppliedDirectives(applied).
			MustBuild()
	})

	It("visits the element before its children, directives first", func() {
		visitor := &countingVisitor{}
		control := schema.Traverse([]schema.Element{root}, visitor, nil)

		Expect(control).Should(Equal(schema.Continue))
		Expect(visitor.visited).Should(Equal([]schema.Element{root, d1, d2, applied}))
	})

	It("quits after exactly two visits when the second returns QUIT", func() {
		visitor := &countingVisitor{stopAt: 2, signal: schema.Quit}
		control := schema.Traverse([]schema.Element{root}, visitor, nil)

		Expect(control).Should(Equal(schema.Quit))
		Expect(visitor.visited).Should(HaveLen(2))
	})

	It("skips a subtree but keeps walking siblings", func() {
		other := schema.NewScalarBuilder().
			Name("OtherScalar").
			Coercing(noopCoercing()).
			MustBuild()

		visitor := &countingVisitor{stopAt: 1, signal: schema.SkipSubtree}
		control := schema.Traverse([]schema.Element{root, other}, visitor, nil)

		Expect(control).Should(Equal(schema.Continue))
		Expect(visitor.visited).Should(Equal([]schema.Element{root, other}))
	})

	It("links each context to its parent and passes user data through", func() {
		userData := "payload"
		var directiveCtx *schema.TraverserContext

		visitor := schema.VisitorFuncs{
			VisitDirectiveFunc: func(d schema.Directive, ctx *schema.TraverserContext) schema.TraversalControl {
				if directiveCtx == nil {
					directiveCtx = ctx
				}
				return schema.Continue
			},
		}
		schema.Traverse([]schema.Element{root}, visitor, userData)

		Expect(directiveCtx).ShouldNot(BeNil())
		Expect(directiveCtx.Element()).Should(BeIdenticalTo(d1))
		Expect(directiveCtx.UserData()).Should(Equal(userData))

		parent := directiveCtx.Parent()
		Expect(parent).ShouldNot(BeNil())
		Expect(parent.Element()).Should(BeIdenticalTo(root))
		Expect(parent.Parent().Element()).Should(BeNil())
	})

	It("continues everywhere with a zero VisitorFuncs", func() {
		control := schema.Traverse([]schema.Element{root}, schema.VisitorFuncs{}, nil)
		Expect(control).Should(Equal(schema.Continue))
	})

	It("dispatches type references to VisitTypeReference", func() {
		ref := schema.MustNewTypeReference("Pending")
		visitor := &countingVisitor{}
		schema.Traverse([]schema.Element{ref}, visitor, nil)

		Expect(visitor.visited).Should(Equal([]schema.Element{ref}))
	})
})
