// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subrange

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jba/subrange/fmtspec"
)

// Format implements [fmt.Formatter]. The numeric verbs d, b, o, x, X,
// and c apply the fill, width, and flags to each bound independently
// and join the rendered bounds with "..":
//
//	fmt.Sprintf("%04b", subrange.Must(subrange.New(1, 5)))  // "0001..0101"
//
// A single-item subrange renders as one bound. %v and %s produce the
// plain form, %#v the debug form, and %q the quoted plain form.
func (r Subrange) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, r.GoString())
			return
		}
		io.WriteString(f, r.String())
	case 's':
		io.WriteString(f, r.String())
	case 'q':
		io.WriteString(f, strconv.Quote(r.String()))
	case 'd', 'b', 'o', 'x', 'X', 'c':
		spec, ok := specFromState(f, byte(verb))
		if !ok {
			r.badVerb(f, verb)
			return
		}
		s, err := r.formatWith(spec)
		if err != nil {
			r.badVerb(f, verb)
			return
		}
		io.WriteString(f, s)
	default:
		r.badVerb(f, verb)
	}
}

func (r Subrange) badVerb(f fmt.State, verb rune) {
	fmt.Fprintf(f, "%%!%c(subrange.Subrange=%s)", verb, r.String())
}

// specFromState translates fmt flags and width into a spec.
// Precision has no integer meaning here, so it is refused.
func specFromState(f fmt.State, verb byte) (fmtspec.Spec, bool) {
	if _, ok := f.Precision(); ok {
		return fmtspec.Spec{}, false
	}
	spec := fmtspec.Spec{Fill: ' ', Prec: -1, Verb: verb}
	if w, ok := f.Width(); ok {
		spec.Width = w
	}
	switch {
	case f.Flag('-'):
		spec.Align = '<'
	case f.Flag('0'):
		spec.Align = '='
		spec.Fill = '0'
	}
	if f.Flag('+') {
		spec.Sign = '+'
	} else if f.Flag(' ') {
		spec.Sign = ' '
	}
	spec.Alt = f.Flag('#')
	return spec, true
}

// formatWith renders each bound with the same spec and joins the two
// with "..". A single-item subrange renders as one bound.
func (r Subrange) formatWith(spec fmtspec.Spec) (string, error) {
	lo, err := spec.Format(r.min)
	if err != nil {
		return "", err
	}
	if r.min == r.max {
		return lo, nil
	}
	hi, err := spec.Format(r.max)
	if err != nil {
		return "", err
	}
	return lo + ".." + hi, nil
}
