// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subrange

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/jba/omap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrReservedName reports an annotation key that collides with a name
// the subrange itself supplies to templates.
var ErrReservedName = errors.New("reserved attribute name")

// reservedNames are supplied by the subrange or the template itself:
// "min", "max", and "value" resolve to the bounds, "str_spec" to the
// template. An annotation with one of these names would make template
// substitution ambiguous.
var reservedNames = map[string]bool{
	"min":      true,
	"max":      true,
	"value":    true,
	"str_spec": true,
}

// An Annotated is a [Subrange] with named attributes and a default
// template. For membership, iteration, length, comparisons, hashing,
// and numeric formatting it behaves exactly like its embedded
// Subrange; only the default string conversion (driven by the
// template) and attribute access differ.
type Annotated struct {
	Subrange
	strSpec string
	str     string
	attrs   *omap.Map[string, any]
}

// NewAnnotated returns the subrange [min, max] annotated with attrs
// and rendered by the template strSpec. The bounds are validated
// exactly as [New] validates them. An empty strSpec means the plain
// subrange rendering ("{value}").
//
// The template is rendered once here, so a strSpec referencing an
// undefined name fails immediately with [ErrUnknownField], and an
// attribute named after a reserved field ("min", "max", "value",
// "str_spec") fails with [ErrReservedName]. On any failure no
// instance exists.
//
//	f, err := subrange.NewAnnotated(0, 127, "0x{value:02X} {id!r}", map[string]any{
//		"id":    "ASCII_CHARSET",
//		"brief": "ASCII character codes",
//	})
//	fmt.Println(f)  // 0x00..7F "ASCII_CHARSET"
func NewAnnotated(min, max int, strSpec string, attrs map[string]any) (Annotated, error) {
	r, err := New(min, max)
	if err != nil {
		return Annotated{}, err
	}
	m := &omap.Map[string, any]{}
	for name, v := range attrs {
		if reservedNames[name] {
			return Annotated{}, errors.Wrapf(ErrReservedName, "%q", name)
		}
		m.Set(name, v)
	}
	if strSpec == "" {
		strSpec = "{value}"
	}
	a := Annotated{Subrange: r, strSpec: strSpec, attrs: m}
	s, err := expand(strSpec, a.field)
	if err != nil {
		return Annotated{}, errors.Wrapf(err, "str_spec %q", strSpec)
	}
	a.str = s
	return a, nil
}

// field resolves a template name to its value.
func (a Annotated) field(name string) (any, bool) {
	switch name {
	case "min":
		return a.Min(), true
	case "max":
		return a.Max(), true
	case "value":
		return a.Subrange, true
	case "str_spec":
		return a.strSpec, true
	}
	return a.Attr(name)
}

// StrSpec returns the default template.
func (a Annotated) StrSpec() string { return a.strSpec }

// Attr returns the annotation stored under name.
func (a Annotated) Attr(name string) (any, bool) {
	if a.attrs == nil {
		return nil, false
	}
	return a.attrs.Get(name)
}

// Attrs returns an iterator over the annotations in name order.
func (a Annotated) Attrs() iter.Seq2[string, any] {
	if a.attrs == nil {
		return func(func(string, any) bool) {}
	}
	return a.attrs.All()
}

// Fields returns the full template namespace as a fresh map: "min",
// "max", "value", "str_spec", and every annotation. It is meant for
// external formatting calls and introspection; mutating it does not
// affect a.
func (a Annotated) Fields() map[string]any {
	fields := make(map[string]any, 4)
	for name, v := range a.Attrs() {
		fields[name] = v
	}
	return lo.Assign(fields, map[string]any{
		"min":      a.Min(),
		"max":      a.Max(),
		"value":    a.Subrange,
		"str_spec": a.strSpec,
	})
}

// Expand renders an arbitrary template against a's fields:
//
//	out, err := f.Expand("{brief}: {min} to {max}")
func (a Annotated) Expand(tmpl string) (string, error) {
	return expand(tmpl, a.field)
}

// String returns the rendering of the default template, produced at
// construction time.
func (a Annotated) String() string {
	if a.str == "" && a.strSpec == "" {
		// zero value, never rendered
		return a.Subrange.String()
	}
	return a.str
}

// Format implements [fmt.Formatter]. %v and %s produce the default
// template rendering; every numeric verb delegates to the embedded
// [Subrange].
func (a Annotated) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, a.GoString())
			return
		}
		io.WriteString(f, a.String())
	case 's':
		io.WriteString(f, a.String())
	case 'q':
		io.WriteString(f, strconv.Quote(a.String()))
	default:
		a.Subrange.Format(f, verb)
	}
}
