package unipol

import (
	"sort"

	"DVR-Cohomology/matrix"
)

// Canonical generator order for the cohomology pipeline: free generators
// first, then torsion generators by decreasing order, stable on the
// original index. This keeps the zero diagonal entries of the augmented
// SNF contiguous at the tail, which the kernel extraction assumes.

func sortedIndices(m Module) []int {
	idx := make([]int, len(m))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		oa, ob := m[idx[a]], m[idx[b]]
		if oa.IsFree() != ob.IsFree() {
			return oa.IsFree()
		}
		if oa.IsFree() {
			return false
		}
		return oa > ob
	})
	return idx
}

// orderMaps permutes N and Q generators of the pair M -f> N -g> Q into
// canonical order and returns the reordered maps and structures together
// with the inverse transform on N, which lifts answers back into the
// caller's basis.
func orderMaps[FE any](
	f, g *matrix.Flat[Elem[FE]], n, q Module,
) (nf, ng *matrix.Flat[Elem[FE]], nn, nq Module, transInv *matrix.Flat[Elem[FE]]) {
	r := ringOf(g)
	permN := sortedIndices(n)
	permQ := sortedIndices(q)

	nf = matrix.Zero(f.R, f.Dom(), f.Codom())
	for i := 0; i < f.Codom(); i++ {
		nf.SetRow(i, f.Row(permN[i]))
	}

	ng = matrix.Zero(g.R, g.Dom(), g.Codom())
	for i := 0; i < g.Codom(); i++ {
		for j := 0; j < g.Dom(); j++ {
			ng.Set(j, i, g.Get(permN[j], permQ[i]))
		}
	}

	nn = make(Module, len(n))
	for i, p := range permN {
		nn[i] = n[p]
	}
	nq = make(Module, len(q))
	for i, p := range permQ {
		nq[i] = q[p]
	}

	transInv = matrix.Zero(g.R, len(n), len(n))
	for i, p := range permN {
		transInv.Set(i, p, r.One())
	}
	return
}
