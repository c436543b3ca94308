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
	"bytes"
	"fmt"
	"log"
	"runtime"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as
// "schema.ScalarBuilder.Build".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther               ErrKind = iota // Unclassified error. This value is omitted from marshaled output.
	ErrKindInvalidName                        // A name fails the identifier grammar.
	ErrKindMissingField                       // A required field or collaborator was absent at build time.
	ErrKindDuplicateName                      // A name is registered more than once in a TypeMap.
	ErrKindUnresolvedReference                // A TypeReference names an element absent from the TypeMap.
	ErrKindInternal                           // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindInvalidName:
		return "invalid name"
	case ErrKindMissingField:
		return "missing required field"
	case ErrKindDuplicateName:
		return "duplicate name"
	case ErrKindUnresolvedReference:
		return "unresolved type reference"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// Error is the error value produced by builders and rewrite passes in this
// package. Accessors and traversal never fail; errors surface only from
// Build, Transform, WithNewChildren and TypeMap operations, and are expected
// to propagate to whoever drives schema construction.
type Error struct {
	// Message describes what went wrong.
	Message string

	// Op is the operation being performed, usually the name of the method
	// being invoked.
	Op Op

	// Kind is the class of error.
	Kind ErrKind

	// Err is the underlying error that triggered this one, if any.
	Err error
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of
// upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		case error:
			e.Err = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Inherit the kind from the underlying error when one is not given.
	if e.Kind == ErrKindOther {
		if prev, ok := e.Err.(*Error); ok {
			e.Kind = prev.Kind
		}
	}

	return e
}

// Error implements error.
func (e *Error) Error() string {
	var buf bytes.Buffer
	if len(e.Op) > 0 {
		buf.WriteString(string(e.Op))
		buf.WriteString(": ")
	}
	buf.WriteString(e.Message)
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler so errors can be carried verbatim in
// tooling responses.
func (e *Error) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	stream := jsoniter.ConfigDefault.BorrowStream(&buf)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(e.Message)
	if len(e.Op) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("op")
		stream.WriteString(string(e.Op))
	}
	if e.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(e.Kind.String())
	}
	stream.WriteObjectEnd()

	if err := stream.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errKindOf extracts the ErrKind from an error produced by this package,
// following the chain of underlying errors.
func errKindOf(err error) ErrKind {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return ErrKindOther
		}
		if e.Kind != ErrKindOther {
			return e.Kind
		}
		err = e.Err
	}
	return ErrKindOther
}

// IsInvalidNameError returns true if the given error was caused by a name
// failing the identifier grammar.
func IsInvalidNameError(err error) bool {
	return errKindOf(err) == ErrKindInvalidName
}

// IsMissingFieldError returns true if the given error was caused by an
// absent required field.
func IsMissingFieldError(err error) bool {
	return errKindOf(err) == ErrKindMissingField
}

// IsDuplicateNameError returns true if the given error was caused by
// registering a name twice in a TypeMap.
func IsDuplicateNameError(err error) bool {
	return errKindOf(err) == ErrKindDuplicateName
}

// IsUnresolvedReferenceError returns true if the given error was caused by a
// TypeReference that named an unregistered element.
func IsUnresolvedReferenceError(err error) bool {
	return errKindOf(err) == ErrKindUnresolvedReference
}
