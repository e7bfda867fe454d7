// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jba/subrange/fmtspec"
)

var (
	// ErrUnknownField reports a template referencing a name that is
	// neither a bound nor a stored annotation.
	ErrUnknownField = errors.New("unknown field")

	// ErrBadTemplate reports a syntactically malformed template.
	ErrBadTemplate = errors.New("malformed template")
)

// expand renders a template, substituting each replacement field
// through lookup. Fields follow the "{name}", "{name!conv}", and
// "{name:spec}" forms; "{{" and "}}" are brace literals.
func expand(tmpl string, lookup func(string) (any, bool)) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		switch c := tmpl[i]; {
		case c == '{' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '}':
			return "", errors.Wrap(ErrBadTemplate, "single '}' outside a replacement field")
		case c == '{':
			j := strings.IndexByte(tmpl[i:], '}')
			if j < 0 {
				return "", errors.Wrap(ErrBadTemplate, "unterminated replacement field")
			}
			s, err := expandField(tmpl[i+1:i+j], lookup)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			i += j + 1
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// expandField renders one "name[!conv][:spec]" field.
func expandField(field string, lookup func(string) (any, bool)) (string, error) {
	name, spec, _ := strings.Cut(field, ":")
	name, conv, _ := strings.Cut(name, "!")
	v, ok := lookup(name)
	if !ok {
		return "", errors.Wrapf(ErrUnknownField, "%q", name)
	}
	switch conv {
	case "":
	case "r":
		v = reprOf(v)
	case "s":
		v = fmt.Sprint(v)
	default:
		return "", errors.Wrapf(ErrBadTemplate, "unknown conversion %q in field %q", conv, name)
	}
	s, err := formatValue(v, spec)
	if err != nil {
		return "", errors.Wrapf(err, "field %q", name)
	}
	return s, nil
}

// formatValue applies a spec string to one value. Integers and
// subranges get the numeric treatment; everything else is rendered as
// a string first.
func formatValue(v any, spec string) (string, error) {
	sp, err := fmtspec.Parse(spec)
	if err != nil {
		return "", err
	}
	switch vv := v.(type) {
	case int:
		return sp.Format(vv)
	case Subrange:
		return vv.formatWith(sp)
	case Annotated:
		return vv.Subrange.formatWith(sp)
	default:
		return sp.FormatString(fmt.Sprint(vv))
	}
}

// reprOf renders the debug form of a value: quoted strings, the
// Subrange(min, max) form for subranges.
func reprOf(v any) string {
	switch vv := v.(type) {
	case string:
		return strconv.Quote(vv)
	case fmt.GoStringer:
		return vv.GoString()
	default:
		return fmt.Sprintf("%#v", vv)
	}
}
