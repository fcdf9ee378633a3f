package unipol

import "DVR-Cohomology/matrix"

func ringOf[FE any](m *matrix.Flat[Elem[FE]]) Ring[FE] {
	r, ok := m.R.(Ring[FE])
	if !ok {
		panic("unipol: matrix ring descriptor is not the monomial ring")
	}
	return r
}

// Reduce zeroes every entry whose degree meets the torsion order of its
// codomain generator: in row i with structure R/(t^k), t^k and above are
// zero. The structure vector must match the codomain.
func Reduce[FE any](m *matrix.Flat[Elem[FE]], codomain Module) {
	if len(codomain) != m.Codom() {
		panic("unipol: reduce structure length mismatch")
	}
	r := ringOf(m)
	for i, o := range codomain {
		if o.IsFree() {
			continue
		}
		k := o.Power()
		for j := 0; j < m.Dom(); j++ {
			el := m.Get(j, i)
			if !r.IsZero(el) && el.N >= k {
				m.Set(j, i, r.Zero())
			}
		}
	}
}

// Compose returns f∘g reduced modulo the torsion of the composite's
// codomain (the codomain of f).
func Compose[FE any](f, g *matrix.Flat[Elem[FE]], fCodomain Module) *matrix.Flat[Elem[FE]] {
	h := f.Compose(g)
	Reduce(h, fCodomain)
	return h
}
