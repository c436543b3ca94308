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

// Package schema implements the immutable element model underlying a
// type-system graph such as the one built by a GraphQL schema.
//
// Every element is an immutable value created once by a builder and never
// changed afterwards. A "change" produces a brand-new element via Transform,
// leaving the original reachable and untouched, which makes unsynchronized
// concurrent reads safe without locking. Elements carry identity semantics:
// two separately built elements compare unequal even when every field
// matches, so graph-rewrite passes can tell an original apart from a
// freshly rebuilt but content-identical replacement.
//
// Cross-element references that would form cycles (types referencing types,
// including themselves transitively) are represented by named TypeReference
// placeholders and resolved against a TypeMap in a separate pass; element
// values themselves never hold cyclic ownership references.
package schema
