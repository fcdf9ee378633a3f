package matrix

// Matrix is the backend contract consumed by upstream collaborators. Both
// backends satisfy it: Flat for any coefficient ring (E is the ring
// element) and F2Mat for packed F_2 (E = bool). Row-level access and the
// echelonization routines stay on the concrete types, where their
// representation-specific cost is visible.
type Matrix[E any] interface {
	Dom() int
	Codom() int

	Get(dom, codom int) E
	Set(dom, codom int, v E)
	AddAt(dom, codom int, v E)

	SwapRows(codom1, codom2 int)
	SwapCols(dom1, dom2 int)
	ExtendOneRow()

	IsUnit() bool
}

var _ Matrix[struct{}] = (*Flat[struct{}])(nil)
