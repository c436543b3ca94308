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

// Package ast carries the source-definition references an element keeps for
// diagnostics. Parsing schema source text into these values is the job of an
// external parser; this package only defines the shapes elements store.
package ast

// SourceLocation points into the schema source text a definition came from.
type SourceLocation struct {
	// Both line and column are positive numbers starting from 1.
	Line   uint
	Column uint
}

// ScalarDefinition references the source definition a scalar was built from,
// when it was built from source at all.
type ScalarDefinition struct {
	// Name given in the source text
	Name string

	// Description given in the source text
	Description string

	// Location of the definition
	Location SourceLocation
}

// ScalarExtension references one "extend scalar" fragment applied to a
// scalar definition. A scalar keeps its extension fragments in the order
// they appeared.
type ScalarExtension struct {
	// Name of the scalar being extended
	Name string

	// Location of the extension fragment
	Location SourceLocation
}
