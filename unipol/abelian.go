package unipol

import (
	"DVR-Cohomology/matrix"
	"DVR-Cohomology/ring"
)

// Ops packages the module operations of this package behind the Abelian
// contract, with generators described by their torsion Order.
type Ops[FE any] struct{}

var _ ring.Abelian[*matrix.Flat[Elem[struct{}]], Order] = Ops[struct{}]{}

func (Ops[FE]) Kernel(a *matrix.Flat[Elem[FE]], domain, codomain []Order) (*matrix.Flat[Elem[FE]], []Order) {
	k, m := Kernel(a, Module(domain), Module(codomain))
	return k, m
}

func (Ops[FE]) Cokernel(a *matrix.Flat[Elem[FE]], codomain []Order) (*matrix.Flat[Elem[FE]], *matrix.Flat[Elem[FE]], []Order) {
	c, repr, m := Cokernel(a, Module(codomain))
	return c, repr, m
}

func (Ops[FE]) KernelDestroyers(a *matrix.Flat[Elem[FE]], domain, codomain []Order) []int {
	return KernelDestroyers(a, Module(domain), Module(codomain))
}

// Compose reduces the composite modulo the torsion of its codomain, the
// codomain of f.
func (Ops[FE]) Compose(f, g *matrix.Flat[Elem[FE]], codomain []Order) *matrix.Flat[Elem[FE]] {
	return Compose(f, g, Module(codomain))
}

func (Ops[FE]) Cohomology(f, g *matrix.Flat[Elem[FE]], n, q []Order) (*matrix.Flat[Elem[FE]], []Order) {
	h, m := Cohomology(f, g, Module(n), Module(q))
	return h, m
}
