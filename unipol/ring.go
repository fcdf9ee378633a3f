// Package unipol implements the monomial valuation ring R = F[t]_(t) and
// the R-module computations built on its Smith normal form: kernels,
// cokernels, kernel destroyers and the relative cohomology pipeline.
//
// Ring elements are single monomials c·t^n. Sums of monomials of distinct
// nonzero degrees do not exist in this representation; the pipeline is
// structured so that additions only meet equal degrees or zero, and any
// other addition panics.
package unipol

import (
	"fmt"
	"strconv"
	"strings"

	"DVR-Cohomology/ring"
)

// Elem is the monomial c·t^n over the coefficient field with element type
// FE. An element is zero iff its coefficient is zero; the degree of a zero
// element carries no meaning.
type Elem[FE any] struct {
	C FE
	N uint16
}

// Ring is the arithmetic descriptor for F[t]_(t) over the field F.
type Ring[FE any] struct {
	F ring.Field[FE]
}

// New returns the monomial-ring descriptor over the given field.
func New[FE any](f ring.Field[FE]) Ring[FE] {
	return Ring[FE]{F: f}
}

func (r Ring[FE]) Zero() Elem[FE] { return Elem[FE]{C: r.F.Zero()} }
func (r Ring[FE]) One() Elem[FE]  { return Elem[FE]{C: r.F.One()} }

// T returns the monomial t^n.
func (r Ring[FE]) T(n uint16) Elem[FE] { return Elem[FE]{C: r.F.One(), N: n} }

// Mono returns c·t^n.
func (r Ring[FE]) Mono(c FE, n uint16) Elem[FE] { return Elem[FE]{C: c, N: n} }

// Add is defined when both operands share a degree or one is zero; any
// other input would need a multi-term polynomial and panics.
func (r Ring[FE]) Add(a, b Elem[FE]) Elem[FE] {
	if a.N == b.N {
		return Elem[FE]{C: r.F.Add(a.C, b.C), N: a.N}
	}
	if r.F.IsZero(a.C) {
		return b
	}
	if r.F.IsZero(b.C) {
		return a
	}
	panic("unipol: cannot add monomials of different degree")
}

func (r Ring[FE]) Sub(a, b Elem[FE]) Elem[FE] { return r.Add(a, r.Neg(b)) }

func (r Ring[FE]) Neg(a Elem[FE]) Elem[FE] { return Elem[FE]{C: r.F.Neg(a.C), N: a.N} }

func (r Ring[FE]) Mul(a, b Elem[FE]) Elem[FE] {
	n := uint32(a.N) + uint32(b.N)
	if n > 1<<16-1 {
		panic("unipol: monomial degree overflow")
	}
	return Elem[FE]{C: r.F.Mul(a.C, b.C), N: uint16(n)}
}

// Eq treats all zero elements as equal regardless of stored degree.
func (r Ring[FE]) Eq(a, b Elem[FE]) bool {
	if r.IsZero(a) && r.IsZero(b) {
		return true
	}
	return r.F.Eq(a.C, b.C) && a.N == b.N
}

func (r Ring[FE]) IsZero(a Elem[FE]) bool { return r.F.IsZero(a.C) }

func (r Ring[FE]) IsUnit(a Elem[FE]) bool { return r.F.IsUnit(a.C) && a.N == 0 }

func (r Ring[FE]) TryInverse(a Elem[FE]) (Elem[FE], bool) {
	if a.N > 0 {
		return r.Zero(), false
	}
	inv, ok := r.F.Inv(a.C)
	if !ok {
		return r.Zero(), false
	}
	return Elem[FE]{C: inv}, true
}

// Divides reports a | b: for nonzero a, b zero or val(a) ≤ val(b).
// Zero divides only zero.
func (r Ring[FE]) Divides(a, b Elem[FE]) bool {
	if r.IsZero(a) {
		return r.IsZero(b)
	}
	return r.IsZero(b) || a.N <= b.N
}

// UnsafeDivide returns a/b. b must be nonzero with val(b) ≤ val(a).
func (r Ring[FE]) UnsafeDivide(a, b Elem[FE]) Elem[FE] {
	inv, ok := r.F.Inv(b.C)
	if !ok {
		panic("unipol: division by zero")
	}
	if b.N > a.N {
		panic("unipol: degree underflow in division")
	}
	return Elem[FE]{C: r.F.Mul(a.C, inv), N: a.N - b.N}
}

// UnitPart returns the coefficient of a as a degree-zero element.
func (r Ring[FE]) UnitPart(a Elem[FE]) Elem[FE] { return Elem[FE]{C: a.C} }

// Parse accepts "", "c", "t", "ct", "ct^k", trimmed of whitespace.
func (r Ring[FE]) Parse(s string) (Elem[FE], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return r.Zero(), nil
	}
	lhs, rest, found := strings.Cut(s, "t")
	if !found {
		c, err := r.F.Parse(s)
		if err != nil {
			return r.Zero(), err
		}
		return Elem[FE]{C: c}, nil
	}

	c := r.F.One()
	if lhs != "" {
		var err error
		c, err = r.F.Parse(lhs)
		if err != nil {
			return r.Zero(), err
		}
	}

	if rest == "" {
		return Elem[FE]{C: c, N: 1}, nil
	}
	_, power, caret := strings.Cut(rest, "^")
	if !caret {
		return r.Zero(), fmt.Errorf("unipol: %q could not be parsed", s)
	}
	n, err := strconv.ParseUint(power, 10, 16)
	if err != nil {
		return r.Zero(), fmt.Errorf("unipol: %q is not a valid exponent", power)
	}
	return Elem[FE]{C: c, N: uint16(n)}, nil
}

// Format renders 0, c, t^n or ct^n.
func (r Ring[FE]) Format(a Elem[FE]) string {
	if r.IsZero(a) {
		return "0"
	}
	cs := r.F.Format(a.C)
	if a.N == 0 {
		return cs
	}
	var b strings.Builder
	if !r.F.Eq(a.C, r.F.One()) {
		b.WriteString(cs)
	}
	b.WriteByte('t')
	if a.N > 1 {
		b.WriteByte('^')
		b.WriteString(strconv.FormatUint(uint64(a.N), 10))
	}
	return b.String()
}

var _ ring.ValuationRing[Elem[struct{}]] = Ring[struct{}]{}
