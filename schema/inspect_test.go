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
	"io"

	"github.com/typegraph/typegraph/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type customInspectValue struct{}

func (customInspectValue) Inspect(out io.Writer) error {
	_, err := out.Write([]byte("<custom>"))
	return err
}

var _ = Describe("Inspect", func() {
	It("JSON-quotes strings", func() {
		Expect(schema.Inspect(`say "hi"`)).Should(Equal(`"say \"hi\""`))
	})

	It("renders nil as null", func() {
		Expect(schema.Inspect(nil)).Should(Equal("null"))
	})

	It("renders numbers and booleans plainly", func() {
		Expect(schema.Inspect(42)).Should(Equal("42"))
		Expect(schema.Inspect(true)).Should(Equal("true"))
	})

	It("renders sequences element-wise", func() {
		Expect(schema.Inspect([]interface{}{1, "two"})).Should(Equal(`[1, "two"]`))
		Expect(schema.Inspect([]int{})).Should(Equal("[]"))
	})

	It("renders an empty map as braces", func() {
		Expect(schema.Inspect(map[string]int{})).Should(Equal("{}"))
	})

	It("defers to a custom inspect implementation", func() {
		Expect(schema.Inspect(customInspectValue{})).Should(Equal("<custom>"))
	})
})
