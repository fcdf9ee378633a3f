package unipol

import (
	"DVR-Cohomology/matrix"
	"DVR-Cohomology/snf"
)

// Cokernel computes codomain/im(a) for a morphism into the module
// described by codomain. It returns the projection onto the cokernel
// generators, representative vectors splitting the projection, and the
// cokernel's structure vector.
func Cokernel[FE any](
	a *matrix.Flat[Elem[FE]], codomain Module,
) (*matrix.Flat[Elem[FE]], *matrix.Flat[Elem[FE]], Module) {
	if len(codomain) != a.Codom() {
		panic("unipol: cokernel structure length mismatch")
	}
	r := ringOf(a)

	// Present the quotient by the image and the codomain torsion at once:
	// the relation columns are the columns of a plus one −t^k column per
	// torsion generator.
	aug := matrix.Zero(a.R, a.Dom()+a.Codom(), a.Codom())
	for i := 0; i < a.Codom(); i++ {
		aug.SetRow(i, a.Row(i))
		if o := codomain[i]; !o.IsFree() {
			aug.Set(a.Dom()+i, i, r.Neg(r.T(o.Power())))
		}
	}

	u, s, _, uinv, _ := snf.DecomposeFull(aug)

	// In the basis given by the rows of U the relations are diagonal:
	// generator i survives as R/(t^k) for a diagonal t^k, as a free
	// generator for a zero diagonal, and dies for a unit.
	var kept []int
	var module Module
	for i := 0; i < s.Codom(); i++ {
		el := s.Get(i, i)
		if r.IsUnit(el) {
			continue
		}
		kept = append(kept, i)
		if r.IsZero(el) {
			module = append(module, Free)
		} else {
			module = append(module, Torsion(el.N))
		}
	}

	coker := matrix.Zero(a.R, a.Codom(), len(kept))
	repr := matrix.Zero(a.R, len(kept), a.Codom())
	for id, i := range kept {
		coker.SetRow(id, u.Row(i))
		repr.SetColumn(id, uinv.Column(i))
	}

	if debugChecks && !coker.Compose(repr).IsUnit() {
		panic("unipol: cokernel representatives do not split the projection")
	}
	return coker, repr, module
}
