// Package snf computes the Smith normal form of a dense matrix over a
// valuation ring: S = U·A·V with S diagonal and consecutive diagonal
// entries forming a divisibility chain. Over a valuation ring the entry of
// smallest valuation divides every other entry of the remaining submatrix,
// so a single pivot search per step suffices and no gcd cascade is needed.
package snf

import (
	"DVR-Cohomology/matrix"
	"DVR-Cohomology/ring"
)

// Decompose returns (U, S, V) with S = U·A·V. A is not modified.
func Decompose[E any](a *matrix.Flat[E]) (u, s, v *matrix.Flat[E]) {
	u, s, v, _, _ = run(a, false)
	return
}

// DecomposeFull additionally maintains U⁻¹ and V⁻¹ by mirroring the
// inverse of every elementary operation.
func DecomposeFull[E any](a *matrix.Flat[E]) (u, s, v, uinv, vinv *matrix.Flat[E]) {
	return run(a, true)
}

func valuationRing[E any](a *matrix.Flat[E]) ring.ValuationRing[E] {
	vr, ok := a.R.(ring.ValuationRing[E])
	if !ok {
		panic("snf: ring descriptor is not a valuation ring")
	}
	return vr
}

// searchPivot finds the entry of smallest valuation in the submatrix at or
// after (p, p), ties broken by row then column order. Returns false when
// the submatrix is zero.
func searchPivot[E any](s *matrix.Flat[E], vr ring.ValuationRing[E], p int) (col, row int, ok bool) {
	var best E
	for i := p; i < s.Codom(); i++ {
		for j := p; j < s.Dom(); j++ {
			el := s.Get(j, i)
			if vr.IsZero(el) {
				continue
			}
			if !ok || (vr.Divides(el, best) && !vr.Divides(best, el)) {
				best, col, row, ok = el, j, i, true
			}
		}
	}
	return
}

func run[E any](a *matrix.Flat[E], full bool) (u, s, v, uinv, vinv *matrix.Flat[E]) {
	vr := valuationRing(a)

	s = a.Clone()
	u = matrix.Identity(a.R, a.Codom())
	v = matrix.Identity(a.R, a.Dom())
	if full {
		uinv = matrix.Identity(a.R, a.Codom())
		vinv = matrix.Identity(a.R, a.Dom())
	}

	steps := a.Dom()
	if a.Codom() < steps {
		steps = a.Codom()
	}

	for p := 0; p < steps; p++ {
		col, row, ok := searchPivot(s, vr, p)
		if !ok {
			break
		}

		s.SwapRows(p, row)
		u.SwapRows(p, row)
		if full {
			uinv.SwapCols(p, row)
		}
		s.SwapCols(p, col)
		v.SwapCols(p, col)
		if full {
			vinv.SwapRows(p, col)
		}

		// Normalize the pivot to its valuation representative by
		// scaling away the unit part.
		pivot := s.Get(p, p)
		unit := vr.UnitPart(pivot)
		unitInv, invertible := vr.TryInverse(unit)
		if !invertible {
			panic("snf: pivot unit part not invertible")
		}
		s.ScaleRow(p, unitInv)
		u.ScaleRow(p, unitInv)
		if full {
			uinv.ScaleColumn(p, unit)
		}
		pivot = s.Get(p, p)

		// Clear column p. Every remaining entry is divisible by the
		// pivot by minimality of its valuation.
		for i := 0; i < s.Codom(); i++ {
			if i == p {
				continue
			}
			el := s.Get(p, i)
			if vr.IsZero(el) {
				continue
			}
			if !vr.Divides(pivot, el) {
				panic("snf: pivot does not divide column entry")
			}
			q := vr.UnsafeDivide(el, pivot)
			nq := vr.Neg(q)
			s.AddRowMultiple(i, p, nq)
			u.AddRowMultiple(i, p, nq)
			if full {
				uinv.AddColMultiple(p, i, q)
			}
		}

		// Clear row p symmetrically with column operations.
		for j := 0; j < s.Dom(); j++ {
			if j == p {
				continue
			}
			el := s.Get(j, p)
			if vr.IsZero(el) {
				continue
			}
			if !vr.Divides(pivot, el) {
				panic("snf: pivot does not divide row entry")
			}
			q := vr.UnsafeDivide(el, pivot)
			nq := vr.Neg(q)
			s.AddColMultiple(j, p, nq)
			v.AddColMultiple(j, p, nq)
			if full {
				vinv.AddRowMultiple(p, j, q)
			}
		}
	}

	return
}

// Diagonal returns the diagonal entries of an SNF result, one per row up
// to the shorter dimension.
func Diagonal[E any](s *matrix.Flat[E]) []E {
	n := s.Dom()
	if s.Codom() < n {
		n = s.Codom()
	}
	out := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = s.Get(i, i)
	}
	return out
}
