package unipol

import (
	"DVR-Cohomology/matrix"
	"DVR-Cohomology/snf"
)

// augmentedKernel computes generators of ker(a mod codomain torsion) as a
// submodule of the free cover R^dom. The torsion relations of the codomain
// are encoded as extra slack columns carrying −t^k, so the kernel of the
// augmented matrix projected to the first dom coordinates is the kernel of
// a acting on the quotient.
func augmentedKernel[FE any](a *matrix.Flat[Elem[FE]], codomain Module) *matrix.Flat[Elem[FE]] {
	r := ringOf(a)

	aug := matrix.Zero(a.R, a.Dom()+a.Codom(), a.Codom())
	for i := 0; i < a.Codom(); i++ {
		aug.SetRow(i, a.Row(i))
		if o := codomain[i]; !o.IsFree() {
			aug.Set(a.Dom()+i, i, r.Neg(r.T(o.Power())))
		}
	}

	_, s, v := snf.Decompose(aug)

	// The diagonal carries its nonzero entries first; everything from the
	// first zero on spans the kernel.
	startZeros := s.Codom()
	for i := 0; i < s.Codom(); i++ {
		if r.IsZero(s.Get(i, i)) {
			startZeros = i
			break
		}
	}

	kerSize := s.Dom() - startZeros
	gKer := matrix.Zero(a.R, kerSize, a.Dom())
	for i := 0; i < a.Dom(); i++ {
		gKer.SetRow(i, v.Row(i)[startZeros:s.Dom()])
	}
	return gKer
}

// torsionClosure turns raw kernel generators into the true kernel module
// inside R^dom with structure vector domain: each surviving generator's
// torsion order is the largest order any of its support coordinates
// requires, and generators of order zero span nothing and are dropped.
func torsionClosure[FE any](
	gKer *matrix.Flat[Elem[FE]], domain Module,
) (*matrix.Flat[Elem[FE]], Module) {
	r := ringOf(gKer)

	_, sK, _, uinvK, _ := snf.DecomposeFull(gKer)

	nonZero := 0
	for i := 0; i < sK.Codom(); i++ {
		if r.IsZero(sK.Get(i, i)) {
			break
		}
		nonZero++
	}

	var vecs [][]Elem[FE]
	var module Module
	for i := 0; i < nonZero; i++ {
		d := sK.Get(i, i)
		vec := uinvK.Column(i)
		for y := range vec {
			vec[y] = r.Mul(d, vec[y])
		}

		order := Torsion(0)
		for y, el := range vec {
			if r.IsZero(el) {
				continue
			}
			o := domain[y]
			if o.IsFree() {
				order = Free
				break
			}
			k := o.Power()
			// A coordinate at or past its torsion order is zero in the
			// quotient and contributes nothing.
			if el.N >= k {
				continue
			}
			if p := Torsion(k - el.N); p > order {
				order = p
			}
		}

		if order == 0 {
			continue
		}
		vecs = append(vecs, vec)
		module = append(module, order)
	}

	realKer := matrix.Zero(gKer.R, len(vecs), gKer.Codom())
	for id, col := range vecs {
		realKer.SetColumn(id, col)
	}
	return realKer, module
}

// Kernel returns a matrix whose columns generate ker(a) as a submodule of
// the domain module, together with the kernel's structure vector.
func Kernel[FE any](
	a *matrix.Flat[Elem[FE]], domain, codomain Module,
) (*matrix.Flat[Elem[FE]], Module) {
	if len(domain) != a.Dom() || len(codomain) != a.Codom() {
		panic("unipol: kernel structure length mismatch")
	}
	return torsionClosure(augmentedKernel(a, codomain), domain)
}

// KernelDestroyers returns domain indices, strictly ascending, whose
// zeroing kills the kernel: after each generator is found, its leading
// coordinate is pinned by a fresh free relation row and the search
// repeats.
func KernelDestroyers[FE any](
	a *matrix.Flat[Elem[FE]], domain, codomain Module,
) []int {
	r := ringOf(a)
	mat := a.Clone()
	cod := codomain.Clone()

	var pivots []int
	for {
		ker, _ := Kernel(mat, domain, cod)
		_, coord, ok := ker.FirstNonZeroEntry()
		if !ok {
			break
		}
		if n := len(pivots); n > 0 && pivots[n-1] >= coord {
			panic("unipol: kernel destroyers out of order")
		}
		pivots = append(pivots, coord)

		row := mat.Codom()
		mat.ExtendOneRow()
		mat.Set(coord, row, r.One())
		cod = append(cod, Free)
	}
	return pivots
}
