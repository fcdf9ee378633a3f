package matrix

import "DVR-Cohomology/ring"

// Field linear algebra on Flat: Gauss–Jordan reduction and the kernel,
// cokernel and kernel-destroyer constructions built on it. The matrix's
// ring descriptor must be a field; hitting these paths over a non-field
// ring is a caller error.

func (m *Flat[E]) field() ring.Field[E] {
	f, ok := m.R.(ring.Field[E])
	if !ok {
		panic("matrix: ring descriptor is not a field")
	}
	return f
}

// RREF reduces m in place to reduced row echelon form with partial-search
// pivoting: the first nonzero entry at or below the current row in the
// current pivot column is swapped up, normalized to 1 and eliminated above
// and below.
func (m *Flat[E]) RREF() {
	F := m.field()
	lead := 0

	for r := 0; r < m.codom; r++ {
		if lead >= m.dom {
			break
		}

		i := r
		for F.IsZero(m.Get(lead, i)) {
			i++
			if i == m.codom {
				i = r
				lead++
				if lead == m.dom {
					return
				}
			}
		}
		m.SwapRows(r, i)

		pivot := m.Get(lead, r)
		if !F.IsZero(pivot) {
			inv, ok := F.Inv(pivot)
			if !ok {
				panic("matrix: pivot not invertible")
			}
			m.ScaleRow(r, inv)
		}

		for i := 0; i < m.codom; i++ {
			if i == r {
				continue
			}
			factor := m.Get(lead, i)
			if F.IsZero(factor) {
				continue
			}
			for j := 0; j < m.dom; j++ {
				idx := i*m.dom + j
				m.data[idx] = F.Sub(m.data[idx], F.Mul(factor, m.Get(j, r)))
			}
		}

		lead++
	}
}

// Pivots scans an echelonized matrix row by row and returns the
// (pivotCol, pivotRow) pairs; pivot columns advance monotonically.
func (m *Flat[E]) Pivots() [][2]int {
	var pivots [][2]int
	dom := 0
	for codom := 0; codom < m.codom; codom++ {
		for dom < m.dom {
			if !m.R.IsZero(m.Get(dom, codom)) {
				pivots = append(pivots, [2]int{dom, codom})
				dom++
				break
			}
			dom++
		}
	}
	return pivots
}

// rrefKernel reads the free-variable basis off an RREF matrix: one
// generator row per non-pivot column, with 1 at the free column and the
// negated pivot-column entries at the pivot positions.
func (m *Flat[E]) rrefKernel() *Flat[E] {
	F := m.field()

	pivotDoms := make(map[int]int)
	for _, p := range m.Pivots() {
		pivotDoms[p[0]] = p[1]
	}
	var freeVars []int
	for j := 0; j < m.dom; j++ {
		if _, ok := pivotDoms[j]; !ok {
			freeVars = append(freeVars, j)
		}
	}

	kernel := Zero(m.R, m.dom, len(freeVars))
	for i, freeVar := range freeVars {
		kernel.Set(freeVar, i, F.One())
		for pivotDom, codom := range pivotDoms {
			kernel.Set(pivotDom, i, F.Neg(m.Get(freeVar, codom)))
		}
	}
	return kernel
}

// Kernel returns a matrix whose rows form an RREF basis of ker(m).
func (m *Flat[E]) Kernel() *Flat[E] {
	clone := m.Clone()
	clone.RREF()
	kernel := clone.rrefKernel()
	kernel.RREF()
	return kernel
}

// Cokernel returns the cokernel projection together with representative
// vectors satisfying coker ∘ repr = identity on the cokernel.
func (m *Flat[E]) Cokernel() (*Flat[E], *Flat[E]) {
	F := m.field()
	coker := m.Transpose().Kernel()

	repr := Zero(m.R, coker.codom, coker.dom)
	for _, p := range coker.Pivots() {
		repr.Set(p[1], p[0], F.One())
	}

	if debugChecks && !coker.Compose(repr).IsUnit() {
		panic("matrix: cokernel representatives do not split the projection")
	}
	return coker, repr
}

// kernelFindSingleGenerator returns the leading column of one kernel
// generator, or false when the kernel is trivial.
func (m *Flat[E]) kernelFindSingleGenerator() (int, bool) {
	kernel := m.Kernel()
	x, _, ok := kernel.FirstNonZeroEntry()
	return x, ok
}

// KernelDestroyers returns domain indices whose zeroing kills the kernel.
// Each found generator is killed by extending the matrix with a row that
// pins its leading column, so the returned list is strictly ascending.
func (m *Flat[E]) KernelDestroyers() []int {
	F := m.field()
	var pivots []int
	mat := m.Clone()
	for {
		pivot, ok := mat.kernelFindSingleGenerator()
		if !ok {
			break
		}
		pivots = append(pivots, pivot)
		codom := mat.codom
		mat.ExtendOneRow()
		mat.Set(pivot, codom, F.One())
	}
	return pivots
}
