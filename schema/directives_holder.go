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

// DirectiveContainer is implemented by elements that carry directive
// declarations and directive applications.
type DirectiveContainer interface {
	// Directives returns the directive declarations in declaration order.
	Directives() []Directive

	// DirectivesByName maps each name to its first-declared directive.
	DirectivesByName() map[string]Directive

	// AllDirectivesByName maps each name to every directive sharing it,
	// preserving declaration order among same-name entries.
	AllDirectivesByName() map[string][]Directive

	// Directive returns the first-declared directive with the given name, or
	// nil if there is none.
	Directive(name string) Directive

	// AppliedDirectives returns the directive applications in declaration
	// order.
	AppliedDirectives() []AppliedDirective

	// AppliedDirectivesByName maps each name to its first-declared
	// application.
	AppliedDirectivesByName() map[string]AppliedDirective

	// AllAppliedDirectivesByName maps each name to every application sharing
	// it, preserving declaration order among same-name entries. A repeatable
	// directive applied several times yields several entries.
	AllAppliedDirectivesByName() map[string][]AppliedDirective

	// AppliedDirective returns the first-declared application with the given
	// name, or nil if there is none.
	AppliedDirective(name string) AppliedDirective
}

// DirectivesHolder aggregates and indexes an element's directives and
// applied directives. It is built once, owns private copies of the backing
// sequences and is never mutated afterwards; the derived name indexes are
// rebuilt at construction so they can never drift from the sequences.
type DirectivesHolder struct {
	directives        []Directive
	appliedDirectives []AppliedDirective

	directivesByName           map[string]Directive
	allDirectivesByName        map[string][]Directive
	appliedDirectivesByName    map[string]AppliedDirective
	allAppliedDirectivesByName map[string][]AppliedDirective
}

var _ DirectiveContainer = (*DirectivesHolder)(nil)

// NewDirectivesHolder builds a holder from the two sequences, copying both.
// Either sequence may be empty.
func NewDirectivesHolder(directives []Directive, appliedDirectives []AppliedDirective) *DirectivesHolder {
	holder := &DirectivesHolder{
		directivesByName:           map[string]Directive{},
		allDirectivesByName:        map[string][]Directive{},
		appliedDirectivesByName:    map[string]AppliedDirective{},
		allAppliedDirectivesByName: map[string][]AppliedDirective{},
	}

	if len(directives) > 0 {
		holder.directives = make([]Directive, len(directives))
		copy(holder.directives, directives)
	}
	if len(appliedDirectives) > 0 {
		holder.appliedDirectives = make([]AppliedDirective, len(appliedDirectives))
		copy(holder.appliedDirectives, appliedDirectives)
	}

	for _, d := range holder.directives {
		name := d.Name()
		if _, exists := holder.directivesByName[name]; !exists {
			holder.directivesByName[name] = d
		}
		holder.allDirectivesByName[name] = append(holder.allDirectivesByName[name], d)
	}
	for _, d := range holder.appliedDirectives {
		name := d.Name()
		if _, exists := holder.appliedDirectivesByName[name]; !exists {
			holder.appliedDirectivesByName[name] = d
		}
		holder.allAppliedDirectivesByName[name] = append(holder.allAppliedDirectivesByName[name], d)
	}

	return holder
}

// Directives implements DirectiveContainer.
func (h *DirectivesHolder) Directives() []Directive {
	return h.directives
}

// DirectivesByName implements DirectiveContainer.
func (h *DirectivesHolder) DirectivesByName() map[string]Directive {
	return h.directivesByName
}

// AllDirectivesByName implements DirectiveContainer.
func (h *DirectivesHolder) AllDirectivesByName() map[string][]Directive {
	return h.allDirectivesByName
}

// Directive implements DirectiveContainer.
func (h *DirectivesHolder) Directive(name string) Directive {
	return h.directivesByName[name]
}

// AppliedDirectives implements DirectiveContainer.
func (h *DirectivesHolder) AppliedDirectives() []AppliedDirective {
	return h.appliedDirectives
}

// AppliedDirectivesByName implements DirectiveContainer.
func (h *DirectivesHolder) AppliedDirectivesByName() map[string]AppliedDirective {
	return h.appliedDirectivesByName
}

// AllAppliedDirectivesByName implements DirectiveContainer.
func (h *DirectivesHolder) AllAppliedDirectivesByName() map[string][]AppliedDirective {
	return h.allAppliedDirectivesByName
}

// AppliedDirective implements DirectiveContainer.
func (h *DirectivesHolder) AppliedDirective(name string) AppliedDirective {
	return h.appliedDirectivesByName[name]
}
