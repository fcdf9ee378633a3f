package matrix

import "DVR-Cohomology/ring"

// FieldOps packages the field linear algebra behind the Abelian contract.
// Every generator over a field is free, so the generator type is empty.
type FieldOps[E any] struct{}

var _ ring.Abelian[*Flat[struct{}], struct{}] = FieldOps[struct{}]{}

func (FieldOps[E]) Kernel(a *Flat[E], _, _ []struct{}) (*Flat[E], []struct{}) {
	k := a.Kernel()
	return k, make([]struct{}, k.Codom())
}

func (FieldOps[E]) Cokernel(a *Flat[E], _ []struct{}) (*Flat[E], *Flat[E], []struct{}) {
	c, repr := a.Cokernel()
	return c, repr, make([]struct{}, c.Codom())
}

func (FieldOps[E]) KernelDestroyers(a *Flat[E], _, _ []struct{}) []int {
	return a.KernelDestroyers()
}

func (FieldOps[E]) Compose(f, g *Flat[E], _ []struct{}) *Flat[E] {
	return f.Compose(g)
}

// Cohomology over a field reduces to kernel and image dimensions; the
// torsion pipeline has nothing to add, and no caller needs it here.
func (FieldOps[E]) Cohomology(_, _ *Flat[E], _, _ []struct{}) (*Flat[E], []struct{}) {
	panic("matrix: field cohomology is not provided by this backend")
}
