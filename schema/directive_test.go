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

var _ = Describe("Directive", func() {
	It("builds from a config and round-trips its fields", func() {
		d, err := schema.NewDirective(&schema.DirectiveConfig{
			Name:        "deprecated",
			Description: "Marks an element as no longer supported.",
			Locations: []schema.DirectiveLocation{
				schema.DirectiveLocationScalar,
				schema.DirectiveLocationFieldDefinition,
			},
			Args: []schema.ArgumentDef{
				{Name: "reason", DefaultValue: "No longer supported"},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(d.Name()).Should(Equal("deprecated"))
		Expect(d.Description()).Should(Equal("Marks an element as no longer supported."))
		Expect(d.Repeatable()).Should(BeFalse())
		Expect(d.Locations()).Should(Equal([]schema.DirectiveLocation{
			schema.DirectiveLocationScalar,
			schema.DirectiveLocationFieldDefinition,
		}))
		Expect(d.Args()).Should(HaveLen(1))
		Expect(d.Args()[0].Name).Should(Equal("reason"))
		Expect(d.Kind()).Should(Equal(schema.ElementKindDirective))
	})

	It("stringifies with an at-sign", func() {
		Expect(directiveNamed("skip").String()).Should(Equal("@skip"))
	})

	It("rejects an invalid directive name", func() {
		_, err := schema.NewDirective(&schema.DirectiveConfig{Name: ""})
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsInvalidNameError(err)).Should(BeTrue())

		Expect(func() {
			schema.MustNewDirective(&schema.DirectiveConfig{Name: "no spaces"})
		}).Should(Panic())
	})

	It("rejects an invalid argument name", func() {
		_, err := schema.NewDirective(&schema.DirectiveConfig{
			Name: "limit",
			Args: []schema.ArgumentDef{{Name: "1st"}},
		})
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsInvalidNameError(err)).Should(BeTrue())
	})

	It("does not alias the caller's config", func() {
		config := &schema.DirectiveConfig{
			Name:      "cached",
			Locations: []schema.DirectiveLocation{schema.DirectiveLocationScalar},
		}
		d := schema.MustNewDirective(config)

		config.Locations[0] = schema.DirectiveLocationEnum
		Expect(d.Locations()).Should(Equal([]schema.DirectiveLocation{
			schema.DirectiveLocationScalar,
		}))
	})

	It("is a leaf element with a rebuilding copy", func() {
		d := directiveNamed("skip")
		Expect(d.Children()).Should(BeEmpty())
		Expect(d.ChildrenWithTypeReferences().Keys()).Should(BeEmpty())

		copied := d.Copy()
		Expect(copied).ShouldNot(BeIdenticalTo(d))
		Expect(copied.Identity()).ShouldNot(Equal(d.Identity()))
		Expect(copied.(schema.Directive).Name()).Should(Equal("skip"))
	})
})

var _ = Describe("AppliedDirective", func() {
	It("records the application site's argument values in order", func() {
		applied, err := schema.NewAppliedDirective(&schema.AppliedDirectiveConfig{
			Name: "limit",
			Args: []schema.DirectiveArgument{
				{Name: "max", Value: 10},
				{Name: "scope", Value: "query"},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(applied.Name()).Should(Equal("limit"))
		Expect(applied.Args()).Should(HaveLen(2))
		Expect(applied.Args()[0].Name).Should(Equal("max"))
		Expect(applied.Args()[1].Name).Should(Equal("scope"))
		Expect(applied.Kind()).Should(Equal(schema.ElementKindAppliedDirective))
	})

	It("looks an argument up by name", func() {
		applied := schema.MustNewAppliedDirective(&schema.AppliedDirectiveConfig{
			Name: "limit",
			Args: []schema.DirectiveArgument{{Name: "max", Value: 10}},
		})

		arg := applied.Arg("max")
		Expect(arg).ShouldNot(BeNil())
		Expect(arg.Value).Should(Equal(10))
		Expect(applied.Arg("missing")).Should(BeNil())
	})

	It("stringifies in application notation", func() {
		Expect(appliedNamed("skip").String()).Should(Equal("@skip"))

		applied := schema.MustNewAppliedDirective(&schema.AppliedDirectiveConfig{
			Name: "limit",
			Args: []schema.DirectiveArgument{
				{Name: "max", Value: 10},
				{Name: "scope", Value: "query"},
			},
		})
		Expect(applied.String()).Should(Equal(`@limit(max: 10, scope: "query")`))
	})

	It("rejects an invalid name", func() {
		_, err := schema.NewAppliedDirective(&schema.AppliedDirectiveConfig{Name: "@limit"})
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsInvalidNameError(err)).Should(BeTrue())
	})
})
