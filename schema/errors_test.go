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
	"encoding/json"

	"github.com/typegraph/typegraph/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("formats op, message and cause", func() {
		cause := schema.NewError("name is empty", schema.ErrKindInvalidName)
		err := schema.NewError("cannot build scalar", schema.Op("schema.ScalarBuilder.Build"), cause)

		Expect(err.Error()).Should(Equal(
			"schema.ScalarBuilder.Build: cannot build scalar: name is empty"))
	})

	It("inherits the kind from its cause", func() {
		cause := schema.NewError("name is empty", schema.ErrKindInvalidName)
		err := schema.NewError("cannot build scalar", cause)

		Expect(schema.IsInvalidNameError(err)).Should(BeTrue())
		Expect(schema.IsMissingFieldError(err)).Should(BeFalse())
	})

	It("classifies kinds through the predicates", func() {
		Expect(schema.IsMissingFieldError(
			schema.NewError("absent", schema.ErrKindMissingField))).Should(BeTrue())
		Expect(schema.IsDuplicateNameError(
			schema.NewError("again", schema.ErrKindDuplicateName))).Should(BeTrue())
		Expect(schema.IsUnresolvedReferenceError(
			schema.NewError("dangling", schema.ErrKindUnresolvedReference))).Should(BeTrue())
		Expect(schema.IsInvalidNameError(nil)).Should(BeFalse())
	})

	It("exposes the underlying error", func() {
		cause := schema.NewError("inner")
		err := schema.NewError("outer", cause).(*schema.Error)
		Expect(err.Unwrap()).Should(BeIdenticalTo(cause))
	})

	It("marshals to JSON with message, op and kind", func() {
		err := schema.NewError("cannot build scalar",
			schema.Op("schema.ScalarBuilder.Build"), schema.ErrKindMissingField)

		encoded, marshalErr := json.Marshal(err)
		Expect(marshalErr).ShouldNot(HaveOccurred())
		Expect(string(encoded)).Should(MatchJSON(`{
			"message": "cannot build scalar",
			"op": "schema.ScalarBuilder.Build",
			"kind": "missing required field"
		}`))
	})

	It("omits op and kind when unset", func() {
		encoded, marshalErr := json.Marshal(schema.NewError("plain"))
		Expect(marshalErr).ShouldNot(HaveOccurred())
		Expect(string(encoded)).Should(MatchJSON(`{"message": "plain"}`))
	})
})
