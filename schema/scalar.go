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

	"github.com/typegraph/typegraph/schema/ast"
)

// Scalar is the leaf node kind of the type-system graph: a named type whose
// values are opaque to the graph and coerced by an injected strategy. It is
// the minimal concrete element carrying the full capability set: directive
// container, role-keyed children rewrite, and copy-on-transform.
type Scalar interface {
	Element
	NamedElement
	ElementWithDescription
	DirectiveContainer
	fmt.Stringer

	// Coercing returns the behavior strategy the scalar was built with. Never
	// nil.
	Coercing() Coercing

	// Definition returns the source definition the scalar was built from, or
	// nil when it was built programmatically.
	Definition() *ast.ScalarDefinition

	// ExtensionDefinitions returns the extension fragments applied to the
	// scalar, in order.
	ExtensionDefinitions() []*ast.ScalarExtension

	// SpecifiedByURL returns the URL pointing at the scalar's behavior
	// specification, or the empty string.
	SpecifiedByURL() string

	// Transform seeds a builder from the scalar's current state, hands it to
	// fn and builds a new scalar from the result. The receiver is never
	// touched.
	Transform(fn func(*ScalarBuilder)) (Scalar, error)

	// schemaScalar puts a special mark for a Scalar.
	schemaScalar()
}

// scalar is the built-in implementation for Scalar. Instances are created
// only by ScalarBuilder.Build and never mutated afterwards.
type scalar struct {
	elementIdentity

	name           string
	description    string
	coercing       Coercing
	directives     *DirectivesHolder
	definition     *ast.ScalarDefinition
	extensions     []*ast.ScalarExtension
	specifiedByURL string
}

var _ Scalar = (*scalar)(nil)

// newScalar freezes the given fields into a scalar. It is the single
// construction path shared by Build and therefore by Transform, Copy and
// WithNewChildren.
func newScalar(
	op Op,
	name string,
	description string,
	coercing Coercing,
	directives []Directive,
	appliedDirectives []AppliedDirective,
	definition *ast.ScalarDefinition,
	extensions []*ast.ScalarExtension,
	specifiedByURL string) (Scalar, error) {

	if err := ValidateName(name); err != nil {
		return nil, NewError("cannot build scalar", op, err)
	}
	if coercing == nil {
		return nil, NewError(
			fmt.Sprintf("must provide Coercing for scalar %q", name), op, ErrKindMissingField)
	}
	if directives == nil && appliedDirectives == nil {
		return nil, NewError(
			fmt.Sprintf("must provide directive sequences for scalar %q (empty is allowed, absent is not)", name),
			op, ErrKindMissingField)
	}

	var extensionsCopy []*ast.ScalarExtension
	if len(extensions) > 0 {
		extensionsCopy = make([]*ast.ScalarExtension, len(extensions))
		copy(extensionsCopy, extensions)
	}

	return &scalar{
		elementIdentity: newElementIdentity(),
		name:            name,
		description:     description,
		coercing:        coercing,
		directives:      NewDirectivesHolder(directives, appliedDirectives),
		definition:      definition,
		extensions:      extensionsCopy,
		specifiedByURL:  specifiedByURL,
	}, nil
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.name
}

// Name implements NamedElement.
func (s *scalar) Name() string {
	return s.name
}

// Description implements ElementWithDescription.
func (s *scalar) Description() string {
	return s.description
}

// Coercing implements Scalar.
func (s *scalar) Coercing() Coercing {
	return s.coercing
}

// Definition implements Scalar.
func (s *scalar) Definition() *ast.ScalarDefinition {
	return s.definition
}

// ExtensionDefinitions implements Scalar.
func (s *scalar) ExtensionDefinitions() []*ast.ScalarExtension {
	return s.extensions
}

// SpecifiedByURL implements Scalar.
func (s *scalar) SpecifiedByURL() string {
	return s.specifiedByURL
}

// Directives implements DirectiveContainer.
func (s *scalar) Directives() []Directive {
	return s.directives.Directives()
}

// DirectivesByName implements DirectiveContainer.
func (s *scalar) DirectivesByName() map[string]Directive {
	return s.directives.DirectivesByName()
}

// AllDirectivesByName implements DirectiveContainer.
func (s *scalar) AllDirectivesByName() map[string][]Directive {
	return s.directives.AllDirectivesByName()
}

// Directive implements DirectiveContainer.
func (s *scalar) Directive(name string) Directive {
	return s.directives.Directive(name)
}

// AppliedDirectives implements DirectiveContainer.
func (s *scalar) AppliedDirectives() []AppliedDirective {
	return s.directives.AppliedDirectives()
}

// AppliedDirectivesByName implements DirectiveContainer.
func (s *scalar) AppliedDirectivesByName() map[string]AppliedDirective {
	return s.directives.AppliedDirectivesByName()
}

// AllAppliedDirectivesByName implements DirectiveContainer.
func (s *scalar) AllAppliedDirectivesByName() map[string][]AppliedDirective {
	return s.directives.AllAppliedDirectivesByName()
}

// AppliedDirective implements DirectiveContainer.
func (s *scalar) AppliedDirective(name string) AppliedDirective {
	return s.directives.AppliedDirective(name)
}

// Kind implements Element.
func (s *scalar) Kind() ElementKind {
	return ElementKindScalar
}

// Accept implements Element.
func (s *scalar) Accept(ctx *TraverserContext, visitor Visitor) TraversalControl {
	return visitor.VisitScalar(s, ctx)
}

// Children implements Element: directives followed by applied directives, in
// declaration order.
func (s *scalar) Children() []Element {
	directives := s.directives.Directives()
	applied := s.directives.AppliedDirectives()
	children := make([]Element, 0, len(directives)+len(applied))
	for _, d := range directives {
		children = append(children, d)
	}
	for _, d := range applied {
		children = append(children, d)
	}
	return children
}

// ChildrenWithTypeReferences implements Element.
func (s *scalar) ChildrenWithTypeReferences() ChildrenContainer {
	return NewChildrenContainer().
		WithChildren(ChildDirectives, directivesToElements(s.directives.Directives())).
		WithChildren(ChildAppliedDirectives, appliedDirectivesToElements(s.directives.AppliedDirectives())).
		Build()
}

// WithNewChildren implements Element. The sequences at the two recognized
// role keys replace the scalar's directive sequences; any other key is
// silently ignored and every remaining attribute carries over.
func (s *scalar) WithNewChildren(children ChildrenContainer) (Element, error) {
	const op = Op("schema.Scalar.WithNewChildren")

	directives, err := directivesFromElements(op, children.Children(ChildDirectives))
	if err != nil {
		return nil, err
	}
	applied, err := appliedDirectivesFromElements(op, children.Children(ChildAppliedDirectives))
	if err != nil {
		return nil, err
	}

	return s.Transform(func(b *ScalarBuilder) {
		b.ReplaceDirectives(directives)
		b.ReplaceAppliedDirectives(applied)
	})
}

// Transform implements Scalar.
func (s *scalar) Transform(fn func(*ScalarBuilder)) (Scalar, error) {
	b := NewScalarBuilderFrom(s)
	fn(b)
	return b.Build()
}

// Copy implements Element. The copy shares the (immutable) directive values
// with the receiver but carries a fresh identity.
func (s *scalar) Copy() Element {
	copied, err := s.Transform(func(*ScalarBuilder) {})
	if err != nil {
		// The receiver already passed validation with the very same fields.
		panic(NewError("copying a valid scalar failed", Op("schema.Scalar.Copy"), ErrKindInternal, err))
	}
	return copied
}

// schemaScalar implements Scalar.
func (*scalar) schemaScalar() {}

// ScalarBuilder is the mutable staging value a scalar is built or
// transformed through. Mutators are fluent and touch only the builder's own
// fields. A builder is not safe for concurrent use; allocate a fresh,
// privately-owned builder per operation (Transform always does).
type ScalarBuilder struct {
	name               string
	description        string
	coercing           Coercing
	directives         []Directive
	appliedDirectives  []AppliedDirective
	definition         *ast.ScalarDefinition
	extensions         []*ast.ScalarExtension
	specifiedByURL     string
	comparatorRegistry ComparatorRegistry
}

// NewScalarBuilder starts an empty builder: empty collections, absent
// optional fields.
func NewScalarBuilder() *ScalarBuilder {
	return &ScalarBuilder{}
}

// NewScalarBuilderFrom starts a builder seeded with every field of an
// existing scalar. The copy is shallow: the individual directive values are
// shared, not cloned, which is safe because they are immutable.
func NewScalarBuilderFrom(existing Scalar) *ScalarBuilder {
	return &ScalarBuilder{
		name:              existing.Name(),
		description:       existing.Description(),
		coercing:          existing.Coercing(),
		directives:        existing.Directives(),
		appliedDirectives: existing.AppliedDirectives(),
		definition:        existing.Definition(),
		extensions:        existing.ExtensionDefinitions(),
		specifiedByURL:    existing.SpecifiedByURL(),
	}
}

// Name sets the scalar's name.
func (b *ScalarBuilder) Name(name string) *ScalarBuilder {
	b.name = name
	return b
}

// Description sets the scalar's description.
func (b *ScalarBuilder) Description(description string) *ScalarBuilder {
	b.description = description
	return b
}

// Coercing sets the scalar's behavior strategy. Build fails without one.
func (b *ScalarBuilder) Coercing(coercing Coercing) *ScalarBuilder {
	b.coercing = coercing
	return b
}

// Directives appends directive declarations.
func (b *ScalarBuilder) Directives(directives ...Directive) *ScalarBuilder {
	b.directives = append(b.directives, directives...)
	return b
}

// ReplaceDirectives discards the staged directive declarations in favor of
// the given sequence.
func (b *ScalarBuilder) ReplaceDirectives(directives []Directive) *ScalarBuilder {
	b.directives = directives
	return b
}

// AppliedDirectives appends directive applications.
func (b *ScalarBuilder) AppliedDirectives(applied ...AppliedDirective) *ScalarBuilder {
	b.appliedDirectives = append(b.appliedDirectives, applied...)
	return b
}

// ReplaceAppliedDirectives discards the staged directive applications in
// favor of the given sequence.
func (b *ScalarBuilder) ReplaceAppliedDirectives(applied []AppliedDirective) *ScalarBuilder {
	b.appliedDirectives = applied
	return b
}

// Definition sets the source-definition reference.
func (b *ScalarBuilder) Definition(definition *ast.ScalarDefinition) *ScalarBuilder {
	b.definition = definition
	return b
}

// ExtensionDefinitions sets the extension fragments.
func (b *ScalarBuilder) ExtensionDefinitions(extensions []*ast.ScalarExtension) *ScalarBuilder {
	b.extensions = extensions
	return b
}

// SpecifiedByURL sets the URL pointing at the scalar's behavior
// specification.
func (b *ScalarBuilder) SpecifiedByURL(url string) *ScalarBuilder {
	b.specifiedByURL = url
	return b
}

// ComparatorRegistry sets the registry whose comparator orders the directive
// sequences before freezing. The default preserves declaration order.
func (b *ScalarBuilder) ComparatorRegistry(registry ComparatorRegistry) *ScalarBuilder {
	b.comparatorRegistry = registry
	return b
}

// Build validates the staged fields and freezes them into a new immutable
// Scalar. The directive sequences pass through the comparator registry
// first, so two builds fed the same logical content in different input
// order converge on the same frozen order.
func (b *ScalarBuilder) Build() (Scalar, error) {
	const op = Op("schema.ScalarBuilder.Build")

	registry := b.comparatorRegistry
	if registry == nil {
		registry = DefaultComparatorRegistry()
	}

	directives := sortDirectives(registry, ElementKindScalar, b.directives)
	applied := sortAppliedDirectives(registry, ElementKindScalar, b.appliedDirectives)

	// A builder stages "empty" rather than "absent" collections.
	if directives == nil {
		directives = []Directive{}
	}
	if applied == nil {
		applied = []AppliedDirective{}
	}

	return newScalar(
		op,
		b.name,
		b.description,
		b.coercing,
		directives,
		applied,
		b.definition,
		b.extensions,
		b.specifiedByURL)
}

// MustBuild is a convenience function equivalent to Build but panics on
// failure instead of returning an error.
func (b *ScalarBuilder) MustBuild() Scalar {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
