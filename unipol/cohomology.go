package unipol

import (
	"os"

	"DVR-Cohomology/matrix"
	"DVR-Cohomology/snf"
)

// Cohomology computes H = ker(g)/im(f) for a pair M -f> N -g> Q of
// morphisms of finitely generated R-modules, with n and q the structure
// vectors of N and Q. It returns a map H -> N whose columns are
// representatives of the cohomology generators, and H's structure vector.
// g∘f ≡ 0 mod q is a precondition.
func Cohomology[FE any](
	f, g *matrix.Flat[Elem[FE]], n, q Module,
) (*matrix.Flat[Elem[FE]], Module) {
	if f.Codom() != g.Dom() {
		panic("unipol: cohomology pair shape mismatch")
	}
	if len(n) != g.Dom() || len(q) != g.Codom() {
		panic("unipol: cohomology structure length mismatch")
	}
	r := ringOf(g)

	if debugChecks {
		comp := g.Compose(f)
		Reduce(comp, q)
		for x := 0; x < comp.Dom(); x++ {
			for y := 0; y < comp.Codom(); y++ {
				if !r.IsZero(comp.Get(x, y)) {
					panic("unipol: cohomology input does not compose to zero")
				}
			}
		}
	}

	origG, origQ := g, q
	f, g, n, q, transInv := orderMaps(f, g, n, q)

	// Kernel of g modulo the torsion of Q, as raw generators in R^dom(g),
	// then closed up into the true kernel module inside N.
	gKer := augmentedKernel(g, q)
	realGKer, kerModule := torsionClosure(gKer, n)

	if debugChecks {
		dbg(os.Stderr, "[Cohomology] kernel gens=%d module=%s\n", realGKer.Dom(), kerModule)
		for a := 0; a < realGKer.Dom(); a++ {
			eval := g.EvalVector(realGKer.Column(a))
			for id, el := range eval {
				ok := r.IsZero(el) || (!q[id].IsFree() && el.N >= q[id].Power())
				if !ok {
					panic("unipol: kernel generator not killed by g")
				}
			}
		}
	}

	// Express f inside the kernel's generator basis.
	uRealKer, sRealKer, _ := snf.Decompose(realGKer)
	fInKernel := uRealKer.Compose(f)

	// Solve f = S·z column by column; the divisions are exact because S
	// is the kernel's Smith form. Then adjoin the kernel's own torsion
	// relations.
	sol := matrix.Zero(f.R, f.Dom()+len(kerModule), realGKer.Dom())
	for x := 0; x < f.Dom(); x++ {
		for y := 0; y < sol.Codom(); y++ {
			el := fInKernel.Get(x, y)
			if r.IsZero(el) {
				continue
			}
			d := sRealKer.Get(y, y)
			sol.Set(x, y, r.UnsafeDivide(el, d))
		}
	}
	for i, o := range kerModule {
		if !o.IsFree() {
			sol.Set(f.Dom()+i, i, r.Neg(r.T(o.Power())))
		}
	}

	_, sSol, _, uinvSol, _ := snf.DecomposeFull(sol)

	var module Module
	var columns [][]Elem[FE]
	for i := 0; i < sSol.Codom(); i++ {
		el := sSol.Get(i, i)
		if r.IsUnit(el) {
			continue
		}
		if r.IsZero(el) {
			module = append(module, Free)
		} else {
			module = append(module, Torsion(el.N))
		}
		columns = append(columns, uinvSol.Column(i))
	}

	cohomToKer := matrix.Zero(f.R, len(module), realGKer.Dom())
	for id, col := range columns {
		cohomToKer.SetColumn(id, col)
	}

	kerToN := transInv.Compose(realGKer)
	h := kerToN.Compose(cohomToKer)

	if debugChecks {
		for a := 0; a < h.Dom(); a++ {
			for id, el := range origG.EvalVector(h.Column(a)) {
				if !r.IsZero(el) && (origQ[id].IsFree() || el.N < origQ[id].Power()) {
					panic("unipol: cohomology representative not killed by g")
				}
			}
		}
	}
	return h, module
}
