// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subrange

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jba/subrange/fmtspec"
)

func TestNewAnnotatedDefaults(t *testing.T) {
	a, err := NewAnnotated(10, 20, "", nil)
	require.NoError(t, err)
	require.Equal(t, "10..20", a.String())
	require.Equal(t, "{value}", a.StrSpec())

	// Single-item subranges collapse in the default rendering too.
	a, err = NewAnnotated(10, 10, "", nil)
	require.NoError(t, err)
	require.Equal(t, "10", a.String())
}

func TestNewAnnotatedTemplates(t *testing.T) {
	for _, test := range []struct {
		min, max int
		strSpec  string
		attrs    map[string]any
		want     string
	}{
		{10, 10, "{min}..{max}", nil, "10..10"},
		{10, 20, "0x{value:04X}", nil, "0x000A..0014"},
		{10, 10, "0x{value:04X}", nil, "0x000A"},
		{10, 20, "{value} {brief!r}", map[string]any{"brief": "my subrange"}, `10..20 "my subrange"`},
		{10, 20, "0b{value:06b} <{id}> -- {comm}",
			map[string]any{"id": "VALID_RNG", "comm": "valid range"},
			"0b001010..010100 <VALID_RNG> -- valid range"},
		{0, 127, "0x{value:02X} {id!r}", map[string]any{"id": "ASCII_CHARSET"}, `0x00..7F "ASCII_CHARSET"`},
		{1, 5, "{{{value}}}", nil, "{1..5}"},
		{1, 5, "{count} items", map[string]any{"count": 5}, "5 items"},
		{1, 5, "{value!r}", nil, "Subrange(1, 5)"},
		{1, 5, "{str_spec!s}", nil, "{str_spec!s}"},
	} {
		a, err := NewAnnotated(test.min, test.max, test.strSpec, test.attrs)
		require.NoError(t, err, "str_spec %q", test.strSpec)
		require.Equal(t, test.want, a.String(), "str_spec %q", test.strSpec)
	}
}

func TestNewAnnotatedErrors(t *testing.T) {
	_, err := NewAnnotated(5, 1, "", nil)
	require.ErrorIs(t, err, ErrInvalidRange)

	for _, name := range []string{"min", "max", "value", "str_spec"} {
		_, err := NewAnnotated(0, 10, "", map[string]any{name: "x"})
		require.ErrorIs(t, err, ErrReservedName, "attribute %q", name)
	}

	// Template problems surface at construction.
	_, err = NewAnnotated(0, 10, "{nope}", nil)
	require.ErrorIs(t, err, ErrUnknownField)
	require.ErrorContains(t, err, `"nope"`)

	_, err = NewAnnotated(0, 10, "{min:.2d}", nil)
	require.ErrorIs(t, err, fmtspec.ErrBadSpec)

	_, err = NewAnnotated(0, 10, "{min!z}", nil)
	require.ErrorIs(t, err, ErrBadTemplate)

	_, err = NewAnnotated(0, 10, "{min", nil)
	require.ErrorIs(t, err, ErrBadTemplate)

	_, err = NewAnnotated(0, 10, "min}", nil)
	require.ErrorIs(t, err, ErrBadTemplate)
}

func TestAnnotatedDelegation(t *testing.T) {
	a, err := NewAnnotated(10, 20, "0x{value:04X}", map[string]any{"id": "VALID_RNG"})
	require.NoError(t, err)
	r := mustNew(t, 10, 20)

	require.Equal(t, r, a.Subrange)
	require.Equal(t, 10, a.Min())
	require.Equal(t, 20, a.Max())
	require.Equal(t, 11, a.Len())
	require.True(t, a.Contains(15))
	require.False(t, a.Contains(21))
	require.Equal(t, slices.Collect(r.All()), slices.Collect(a.All()))
	require.Equal(t, 0, a.Compare(r))
	require.True(t, a.Before(21))
	require.Equal(t, r.Hash(), a.Hash())
	require.Equal(t, 12, a.At(2))

	// Numeric formatting ignores the template.
	require.Equal(t, "000A..0014", fmt.Sprintf("%04X", a))
	require.Equal(t, "a..14", fmt.Sprintf("%x", a))
	// %v and %s use it.
	require.Equal(t, "0x000A..0014", fmt.Sprintf("%v", a))
	require.Equal(t, "0x000A..0014", fmt.Sprintf("%s", a))
	require.Equal(t, `"0x000A..0014"`, fmt.Sprintf("%q", a))
	require.Equal(t, "Subrange(10, 20)", fmt.Sprintf("%#v", a))
}

func TestAnnotatedAttrs(t *testing.T) {
	a, err := NewAnnotated(10, 20, "{value}", map[string]any{
		"id":    "VALID_RNG",
		"comm":  "valid range",
		"brief": "ten to twenty",
	})
	require.NoError(t, err)

	v, ok := a.Attr("id")
	require.True(t, ok)
	require.Equal(t, "VALID_RNG", v)
	_, ok = a.Attr("missing")
	require.False(t, ok)

	// Attrs iterates in name order.
	var names []string
	for name := range a.Attrs() {
		names = append(names, name)
	}
	require.Equal(t, []string{"brief", "comm", "id"}, names)

	require.Equal(t, map[string]any{
		"min":      10,
		"max":      20,
		"value":    Must(New(10, 20)),
		"str_spec": "{value}",
		"id":       "VALID_RNG",
		"comm":     "valid range",
		"brief":    "ten to twenty",
	}, a.Fields())
}

func TestAnnotatedExpand(t *testing.T) {
	a, err := NewAnnotated(10, 20, "{value}", map[string]any{
		"id":   "VALID_RNG",
		"comm": "valid range",
	})
	require.NoError(t, err)

	for _, test := range []struct {
		tmpl, want string
	}{
		{"{comm}: {min} to {max}", "valid range: 10 to 20"},
		{"{id}: 0x{value:04X}", "VALID_RNG: 0x000A..0014"},
		{"{id} = {value!r}", "VALID_RNG = Subrange(10, 20)"},
		{"{id:>12}", "   VALID_RNG"},
		{"{min:#x}..{max:#x}", "0xa..0x14"},
	} {
		got, err := a.Expand(test.tmpl)
		require.NoError(t, err, "template %q", test.tmpl)
		require.Equal(t, test.want, got, "template %q", test.tmpl)
	}

	_, err = a.Expand("{unknown}")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestAnnotatedZeroValue(t *testing.T) {
	var a Annotated
	require.Equal(t, "0", a.String())
	_, ok := a.Attr("id")
	require.False(t, ok)
	n := 0
	for range a.Attrs() {
		n++
	}
	require.Zero(t, n)
}
