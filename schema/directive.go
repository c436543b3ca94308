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
	"fmt"
)

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
const (
	// Executable directive location
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation                             = "MUTATION"
	DirectiveLocationSubscription                         = "SUBSCRIPTION"
	DirectiveLocationField                                = "FIELD"
	DirectiveLocationFragmentDefinition                   = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread                       = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment                       = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition                   = "VARIABLE_DEFINITION"

	// Type system directive location
	DirectiveLocationSchema               = "SCHEMA"
	DirectiveLocationScalar               = "SCALAR"
	DirectiveLocationObject               = "OBJECT"
	DirectiveLocationFieldDefinition      = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            = "INTERFACE"
	DirectiveLocationUnion                = "UNION"
	DirectiveLocationEnum                 = "ENUM"
	DirectiveLocationEnumValue            = "ENUM_VALUE"
	DirectiveLocationInputObject          = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition = "INPUT_FIELD_DEFINITION"
)

// ArgumentDef declares one argument accepted by a directive.
type ArgumentDef struct {
	// Name of the argument
	Name string

	// Description of the argument
	Description string

	// DefaultValue assigned to the argument when an application omits it. The
	// value is opaque to this package.
	DefaultValue interface{}
}

// DirectiveConfig provides definition for creating a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Repeatable is true if the directive may be applied more than once to
	// the same element.
	Repeatable bool

	// Locations in the schema where the defining directive can appear
	Locations []DirectiveLocation

	// Args to be provided when applying the directive
	Args []ArgumentDef
}

// DeepCopy makes a copy of receiver.
func (config *DirectiveConfig) DeepCopy() *DirectiveConfig {
	if config == nil {
		return nil
	}
	out := new(DirectiveConfig)
	*out = *config

	if len(config.Locations) == 0 {
		out.Locations = nil
	} else {
		out.Locations = make([]DirectiveLocation, len(config.Locations))
		copy(out.Locations, config.Locations)
	}
	if len(config.Args) == 0 {
		out.Args = nil
	} else {
		out.Args = make([]ArgumentDef, len(config.Args))
		copy(out.Args, config.Args)
	}
	return out
}

// Directive declares an annotation kind that can be attached to elements of
// the type-system graph. The declaration itself is an element: it carries
// identity and participates in traversal, though it has no children of its
// own.
type Directive interface {
	Element
	NamedElement
	ElementWithDescription
	fmt.Stringer

	// Repeatable is true when the directive may be applied several times to
	// one element.
	Repeatable() bool

	// Locations specifies the places where the directive must only be used.
	Locations() []DirectiveLocation

	// Args indicates the arguments taken by the directive.
	Args() []ArgumentDef

	// schemaDirective puts a special mark for a Directive.
	schemaDirective()
}

// directive is the built-in implementation for Directive created from a
// DirectiveConfig.
type directive struct {
	elementIdentity

	config DirectiveConfig
	// notation is cached value for returning from String() and is initialized
	// in constructor.
	notation string
}

var _ Directive = (*directive)(nil)

// NewDirective creates a Directive from a DirectiveConfig.
func NewDirective(config *DirectiveConfig) (Directive, error) {
	const op = Op("schema.NewDirective")
	if err := ValidateName(config.Name); err != nil {
		return nil, NewError("cannot define directive", op, err)
	}
	for _, arg := range config.Args {
		if err := ValidateName(arg.Name); err != nil {
			return nil, NewError(
				fmt.Sprintf("cannot define argument of directive %q", config.Name), op, err)
		}
	}

	return &directive{
		elementIdentity: newElementIdentity(),
		config:          *config.DeepCopy(),
		notation:        fmt.Sprintf("@%s", config.Name),
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but
// panics on failure instead of returning an error.
func MustNewDirective(config *DirectiveConfig) Directive {
	d, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return d
}

// Name implements NamedElement.
func (d *directive) Name() string {
	return d.config.Name
}

// Description implements ElementWithDescription.
func (d *directive) Description() string {
	return d.config.Description
}

// Repeatable implements Directive.
func (d *directive) Repeatable() bool {
	return d.config.Repeatable
}

// Locations implements Directive.
func (d *directive) Locations() []DirectiveLocation {
	return d.config.Locations
}

// Args implements Directive.
func (d *directive) Args() []ArgumentDef {
	return d.config.Args
}

// String implements fmt.Stringer.
func (d *directive) String() string {
	return d.notation
}

// Kind implements Element.
func (d *directive) Kind() ElementKind {
	return ElementKindDirective
}

// Accept implements Element.
func (d *directive) Accept(ctx *TraverserContext, visitor Visitor) TraversalControl {
	return visitor.VisitDirective(d, ctx)
}

// Children implements Element. A directive declaration is a leaf.
func (d *directive) Children() []Element {
	return nil
}

// ChildrenWithTypeReferences implements Element.
func (d *directive) ChildrenWithTypeReferences() ChildrenContainer {
	return NewChildrenContainer().Build()
}

// WithNewChildren implements Element. A directive recognizes no child roles,
// so every key in the container is ignored and the result is a fresh copy.
func (d *directive) WithNewChildren(children ChildrenContainer) (Element, error) {
	return d.Copy(), nil
}

// Copy implements Element.
func (d *directive) Copy() Element {
	clone := *d
	clone.elementIdentity = newElementIdentity()
	return &clone
}

// schemaDirective implements Directive.
func (*directive) schemaDirective() {}
