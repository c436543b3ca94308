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

// Coercing is the behavior strategy attached to a scalar. This package
// stores and hands the strategy back without ever invoking it; coercion
// semantics belong to whoever defines the scalar. A scalar cannot be built
// without one.
type Coercing interface {
	// CoerceResultValue coerces a value produced by the application into a
	// value representable in the scalar type.
	CoerceResultValue(value interface{}) (interface{}, error)

	// CoerceInputValue coerces a value supplied as input into an eligible Go
	// value for the scalar.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoercingFuncs is an adapter to create a Coercing from function values. A
// nil function coerces by returning the value unchanged.
type CoercingFuncs struct {
	CoerceResultValueFunc func(value interface{}) (interface{}, error)
	CoerceInputValueFunc  func(value interface{}) (interface{}, error)
}

// CoerceResultValue calls f.CoerceResultValueFunc(value).
func (f CoercingFuncs) CoerceResultValue(value interface{}) (interface{}, error) {
	if f.CoerceResultValueFunc == nil {
		return value, nil
	}
	return f.CoerceResultValueFunc(value)
}

// CoerceInputValue calls f.CoerceInputValueFunc(value).
func (f CoercingFuncs) CoerceInputValue(value interface{}) (interface{}, error) {
	if f.CoerceInputValueFunc == nil {
		return value, nil
	}
	return f.CoerceInputValueFunc(value)
}

// CoercingFuncs implements Coercing.
var _ Coercing = CoercingFuncs{}
