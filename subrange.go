// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subrange provides immutable closed intervals of integers.
//
// A [Subrange] represents every integer from Min to Max inclusively.
// Subranges are values: they are comparable, hashable, ordered, and
// never change after construction, so they may be shared freely.
// [Annotated] attaches named attributes and a default template to a
// Subrange for richer rendering.
package subrange

import (
	"cmp"
	"hash/maphash"
	"iter"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange reports construction with reversed limits.
	ErrInvalidRange = errors.New("reversed limits")

	// ErrNotSingle reports a conversion that requires a single-item subrange.
	ErrNotSingle = errors.New("subrange contains more than one item")
)

// A Subrange is a closed interval of integers [Min, Max].
// The zero Subrange is the single-item interval [0, 0].
type Subrange struct {
	min, max int
}

// New returns the subrange [min, max].
// It fails with [ErrInvalidRange] if min > max; reversed and empty
// subranges do not exist.
func New(min, max int) (Subrange, error) {
	if min > max {
		return Subrange{}, errors.Wrapf(ErrInvalidRange, "min=%d, max=%d", min, max)
	}
	return Subrange{min: min, max: max}, nil
}

// Single returns the single-item subrange [v, v].
func Single(v int) Subrange {
	return Subrange{min: v, max: v}
}

// Must returns r if err is nil and panics otherwise.
// It is intended for package-level subrange constants:
//
//	var ascii = subrange.Must(subrange.New(0, 127))
func Must(r Subrange, err error) Subrange {
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r Subrange) Min() int { return r.min }

// Max returns the upper bound.
func (r Subrange) Max() int { return r.max }

// Len returns the number of integers in r.
func (r Subrange) Len() int { return r.max - r.min + 1 }

// Contains reports whether v lies within r's bounds.
func (r Subrange) Contains(v int) bool {
	return r.min <= v && v <= r.max
}

// ContainsFloat64 reports whether v lies within r's bounds.
// The test is the same inequality Contains uses; no rounding is
// performed, so 3.75 is contained by [3, 5].
func (r Subrange) ContainsFloat64(v float64) bool {
	return float64(r.min) <= v && v <= float64(r.max)
}

// All returns an iterator over every integer in r in ascending order.
// Each call produces a fresh sequence starting at Min.
func (r Subrange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := r.min; ; v++ {
			if !yield(v) || v == r.max {
				return
			}
		}
	}
}

// Backward returns an iterator over every integer in r in descending order.
func (r Subrange) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := r.max; ; v-- {
			if !yield(v) || v == r.min {
				return
			}
		}
	}
}

// At returns the i-th integer in r, counting from Min.
// A negative i counts back from Max, so At(-1) == Max().
// At panics if the index is out of range.
func (r Subrange) At(i int) int {
	j := i
	if j < 0 {
		j += r.Len()
	}
	if j < 0 || j > r.max-r.min {
		panic("subrange: index " + strconv.Itoa(i) + " out of range for " + r.String())
	}
	return r.min + j
}

// Int returns the sole value of a single-item subrange.
// It fails with [ErrNotSingle] if r holds more than one integer.
func (r Subrange) Int() (int, error) {
	if r.min != r.max {
		return 0, errors.Wrapf(ErrNotSingle, "%s cannot be converted to int", r)
	}
	return r.min, nil
}

// Equal reports whether r and o have the same bounds.
// Subrange is a comparable struct, so == is equivalent.
func (r Subrange) Equal(o Subrange) bool { return r == o }

// Is reports whether r is the single-item subrange holding exactly n.
func (r Subrange) Is(n int) bool { return r.min == n && r.max == n }

// Compare orders subranges lexicographically by (Min, Max).
// It returns -1, 0, or +1 and is suitable for [slices.SortFunc].
func (r Subrange) Compare(o Subrange) int {
	if c := cmp.Compare(r.min, o.min); c != 0 {
		return c
	}
	return cmp.Compare(r.max, o.max)
}

// Before reports whether the whole interval lies below n, that is,
// Max < n. Note the boundary: [1, 5] is not before 5.
func (r Subrange) Before(n int) bool { return r.max < n }

// After reports whether the whole interval lies above n, that is,
// Min > n.
func (r Subrange) After(n int) bool { return r.min > n }

// Precedes reports whether every integer in r is less than every
// integer in o. Overlapping or touching subranges precede nothing.
func (r Subrange) Precedes(o Subrange) bool { return r.max < o.min }

// Follows reports whether every integer in r is greater than every
// integer in o.
func (r Subrange) Follows(o Subrange) bool { return r.min > o.max }

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of r's bounds. Equal subranges hash identically
// within a process.
func (r Subrange) Hash() uint64 {
	return maphash.Comparable(hashSeed, r)
}

// String renders r as "min..max", or as the bare value for a
// single-item subrange.
func (r Subrange) String() string {
	if r.min == r.max {
		return strconv.Itoa(r.min)
	}
	return strconv.Itoa(r.min) + ".." + strconv.Itoa(r.max)
}

// GoString renders the debug form "Subrange(min, max)".
func (r Subrange) GoString() string {
	return "Subrange(" + strconv.Itoa(r.min) + ", " + strconv.Itoa(r.max) + ")"
}
