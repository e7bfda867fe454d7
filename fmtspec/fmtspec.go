// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fmtspec parses and applies a numeric format mini-language.
//
// A spec follows the grammar
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// with align one of "< > ^ =", sign one of "+ - space", and type one
// of "b c d o x X s". Specs format one value at a time; callers that
// render several values with the same presentation parse once and
// apply the [Spec] to each value.
package fmtspec

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrBadSpec reports a malformed or unsupported format spec.
var ErrBadSpec = errors.New("bad format spec")

// A Spec is a parsed format spec.
type Spec struct {
	Fill  rune // padding rune, ' ' unless set
	Align byte // '<', '>', '^', '=', or 0 for the type's default
	Sign  byte // '+', '-', ' ', or 0
	Alt   bool // '#': alternate form with base prefix
	Width int  // minimum field width in runes
	Prec  int  // maximum string length; -1 when absent
	Verb  byte // presentation type, 0 for the default
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

// Parse parses a format spec. The empty spec is valid and formats
// integers in their plain decimal form.
func Parse(s string) (Spec, error) {
	spec := Spec{Fill: ' ', Prec: -1}
	rs := []rune(s)
	i := 0
	switch {
	case len(rs) >= 2 && isAlign(rs[1]):
		spec.Fill, spec.Align = rs[0], byte(rs[1])
		i = 2
	case len(rs) >= 1 && isAlign(rs[0]):
		spec.Align = byte(rs[0])
		i = 1
	}
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		spec.Sign = byte(rs[i])
		i++
	}
	if i < len(rs) && rs[i] == '#' {
		spec.Alt = true
		i++
	}
	if i < len(rs) && rs[i] == '0' {
		if spec.Align == 0 {
			spec.Align = '='
			spec.Fill = '0'
		}
		i++
	}
	start := i
	for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
		i++
	}
	if i > start {
		spec.Width, _ = strconv.Atoi(string(rs[start:i]))
	}
	if i < len(rs) && (rs[i] == ',' || rs[i] == '_') {
		return Spec{}, errors.Wrapf(ErrBadSpec, "grouping option %q is not supported", rs[i])
	}
	if i < len(rs) && rs[i] == '.' {
		i++
		start = i
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			i++
		}
		if i == start {
			return Spec{}, errors.Wrap(ErrBadSpec, "missing precision")
		}
		spec.Prec, _ = strconv.Atoi(string(rs[start:i]))
	}
	if i < len(rs) {
		switch v := rs[i]; v {
		case 'b', 'c', 'd', 'o', 'x', 'X', 's':
			spec.Verb = byte(v)
			i++
		default:
			return Spec{}, errors.Wrapf(ErrBadSpec, "unknown presentation type %q", v)
		}
	}
	if i != len(rs) {
		return Spec{}, errors.Wrapf(ErrBadSpec, "unexpected %q", string(rs[i:]))
	}
	return spec, nil
}

// Format renders a single integer per the spec, exactly as a native
// numeric formatter would. The default type is decimal.
func (s Spec) Format(v int) (string, error) {
	if s.Verb == 's' {
		return "", errors.Wrap(ErrBadSpec, "string type applied to an integer")
	}
	if s.Prec >= 0 {
		return "", errors.Wrap(ErrBadSpec, "precision not allowed for integers")
	}
	if s.Verb == 'c' {
		if s.Sign != 0 {
			return "", errors.Wrap(ErrBadSpec, "sign not allowed with 'c'")
		}
		if s.Alt {
			return "", errors.Wrap(ErrBadSpec, "alternate form not allowed with 'c'")
		}
		return s.pad("", "", string(rune(v))), nil
	}
	base := 10
	switch s.Verb {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	}
	digits := strconv.FormatInt(int64(v), base)
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if s.Verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Sign == '+':
		sign = "+"
	case s.Sign == ' ':
		sign = " "
	}
	var prefix string
	if s.Alt {
		switch s.Verb {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0o"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	return s.pad(sign, prefix, digits), nil
}

// FormatString renders a string per the spec: fill, align, width, and
// precision (as a maximum length) apply; numeric options do not.
func (s Spec) FormatString(v string) (string, error) {
	if s.Verb != 0 && s.Verb != 's' {
		return "", errors.Wrapf(ErrBadSpec, "type %q applied to a string", s.Verb)
	}
	if s.Sign != 0 {
		return "", errors.Wrap(ErrBadSpec, "sign not allowed for strings")
	}
	if s.Alt {
		return "", errors.Wrap(ErrBadSpec, "alternate form not allowed for strings")
	}
	if s.Align == '=' {
		return "", errors.Wrap(ErrBadSpec, "'=' alignment not allowed for strings")
	}
	if s.Prec >= 0 && utf8.RuneCountInString(v) > s.Prec {
		v = string([]rune(v)[:s.Prec])
	}
	if s.Align == 0 {
		s.Align = '<'
	}
	return s.pad("", "", v), nil
}

// pad aligns sign+prefix+body within s.Width.
// '=' alignment inserts the padding between the prefix and the body.
func (s Spec) pad(sign, prefix, body string) string {
	out := sign + prefix + body
	n := s.Width - utf8.RuneCountInString(out)
	if n <= 0 {
		return out
	}
	fill := string(s.Fill)
	switch s.Align {
	case '<':
		return out + strings.Repeat(fill, n)
	case '^':
		left := n / 2
		return strings.Repeat(fill, left) + out + strings.Repeat(fill, n-left)
	case '=':
		return sign + prefix + strings.Repeat(fill, n) + body
	default:
		return strings.Repeat(fill, n) + out
	}
}
