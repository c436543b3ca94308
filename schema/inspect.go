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
	"io"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// ValueWithCustomInspect provides custom inspect function to serialize value
// in Inspect.
type ValueWithCustomInspect interface {
	Inspect(out io.Writer) error
}

// InspectTo prints the Go value v to the given out in a compact, stable
// notation. It is used to render opaque values such as applied-directive
// arguments when stringifying elements. Strings are JSON-quoted; sequences
// and maps recurse element-wise. Errors returned from out.Write are ignored.
func InspectTo(out io.Writer, v interface{}) error {
	if v, ok := v.(ValueWithCustomInspect); ok {
		return v.Inspect(out)
	}
	if v == nil {
		out.Write([]byte("null"))
		return nil
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String:
		stream := jsoniter.ConfigDefault.BorrowStream(out)
		defer jsoniter.ConfigDefault.ReturnStream(stream)
		stream.WriteString(value.String())
		if err := stream.Flush(); err != nil {
			return err
		}

	case reflect.Array, reflect.Slice:
		out.Write([]byte{'['})
		size := value.Len()
		for i := 0; i < size; i++ {
			if i > 0 {
				out.Write([]byte{',', ' '})
			}
			if err := InspectTo(out, value.Index(i).Interface()); err != nil {
				return err
			}
		}
		out.Write([]byte{']'})

	case reflect.Map:
		size := value.Len()
		if size == 0 {
			out.Write([]byte{'{', '}'})
			return nil
		}
		out.Write([]byte{'{', ' '})
		keys := value.MapKeys()
		for i, key := range keys {
			if i > 0 {
				out.Write([]byte{',', ' '})
			}
			if err := InspectTo(out, key.Interface()); err != nil {
				return err
			}
			out.Write([]byte{':', ' '})
			if err := InspectTo(out, value.MapIndex(key).Interface()); err != nil {
				return err
			}
		}
		out.Write([]byte{' ', '}'})

	default:
		fmt.Fprintf(out, "%v", v)
	}

	return nil
}

// Inspect is the string-returning convenience form of InspectTo.
func Inspect(v interface{}) string {
	var buf bytes.Buffer
	if err := InspectTo(&buf, v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return buf.String()
}
