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
)

// DirectiveArgument is one named argument value in a directive application.
// The value is opaque to this package.
type DirectiveArgument struct {
	// Name of the argument
	Name string

	// Value supplied for the argument
	Value interface{}
}

// AppliedDirectiveConfig provides definition for creating an
// AppliedDirective.
type AppliedDirectiveConfig struct {
	// Name of the directive being applied
	Name string

	// Args supplied with the application, in source order
	Args []DirectiveArgument
}

// AppliedDirective records one concrete attachment of a directive to an
// element: the directive's name plus the argument values supplied at the
// application site. Like Directive, it is itself a leaf element.
type AppliedDirective interface {
	Element
	NamedElement
	fmt.Stringer

	// Args returns the argument values supplied with the application, in
	// source order.
	Args() []DirectiveArgument

	// Arg returns the argument with the given name, or nil if the application
	// does not supply it.
	Arg(name string) *DirectiveArgument

	// schemaAppliedDirective puts a special mark for an AppliedDirective.
	schemaAppliedDirective()
}

// appliedDirective is the built-in implementation for AppliedDirective.
type appliedDirective struct {
	elementIdentity

	name string
	args []DirectiveArgument
}

var _ AppliedDirective = (*appliedDirective)(nil)

// NewAppliedDirective creates an AppliedDirective from an
// AppliedDirectiveConfig.
func NewAppliedDirective(config *AppliedDirectiveConfig) (AppliedDirective, error) {
	const op = Op("schema.NewAppliedDirective")
	if err := ValidateName(config.Name); err != nil {
		return nil, NewError("cannot apply directive", op, err)
	}

	var args []DirectiveArgument
	if len(config.Args) > 0 {
		args = make([]DirectiveArgument, len(config.Args))
		copy(args, config.Args)
	}

	return &appliedDirective{
		elementIdentity: newElementIdentity(),
		name:            config.Name,
		args:            args,
	}, nil
}

// MustNewAppliedDirective is a convenience function equivalent to
// NewAppliedDirective but panics on failure instead of returning an error.
func MustNewAppliedDirective(config *AppliedDirectiveConfig) AppliedDirective {
	d, err := NewAppliedDirective(config)
	if err != nil {
		panic(err)
	}
	return d
}

// Name implements NamedElement.
func (d *appliedDirective) Name() string {
	return d.name
}

// Args implements AppliedDirective.
func (d *appliedDirective) Args() []DirectiveArgument {
	return d.args
}

// Arg implements AppliedDirective.
func (d *appliedDirective) Arg(name string) *DirectiveArgument {
	for i := range d.args {
		if d.args[i].Name == name {
			return &d.args[i]
		}
	}
	return nil
}

// String implements fmt.Stringer. Argument values are rendered with Inspect.
func (d *appliedDirective) String() string {
	var buf bytes.Buffer
	buf.WriteByte('@')
	buf.WriteString(d.name)
	if len(d.args) > 0 {
		buf.WriteByte('(')
		for i, arg := range d.args {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(arg.Name)
			buf.WriteString(": ")
			InspectTo(&buf, arg.Value)
		}
		buf.WriteByte(')')
	}
	return buf.String()
}

// Kind implements Element.
func (d *appliedDirective) Kind() ElementKind {
	return ElementKindAppliedDirective
}

// Accept implements Element.
func (d *appliedDirective) Accept(ctx *TraverserContext, visitor Visitor) TraversalControl {
	return visitor.VisitAppliedDirective(d, ctx)
}

// Children implements Element. A directive application is a leaf.
func (d *appliedDirective) Children() []Element {
	return nil
}

// ChildrenWithTypeReferences implements Element.
func (d *appliedDirective) ChildrenWithTypeReferences() ChildrenContainer {
	return NewChildrenContainer().Build()
}

// WithNewChildren implements Element. No child roles are recognized.
func (d *appliedDirective) WithNewChildren(children ChildrenContainer) (Element, error) {
	return d.Copy(), nil
}

// Copy implements Element.
func (d *appliedDirective) Copy() Element {
	clone := *d
	clone.elementIdentity = newElementIdentity()
	return &clone
}

// schemaAppliedDirective implements AppliedDirective.
func (*appliedDirective) schemaAppliedDirective() {}
