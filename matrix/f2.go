package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// F2Mat is a bit-packed matrix over F_2. Each row is stored as
// ceil(dom/64) words; bit 0 of word 0 is column 0. Echelonize fills the
// pivots table mapping columns to their pivot rows.
type F2Mat struct {
	data  []uint64
	wpr   int
	dom   int
	codom int

	// pivots[c] is the pivot row of column c after echelonization, or -1.
	pivots []int32
}

var _ Matrix[bool] = (*F2Mat)(nil)

// NewF2 returns the (dom × codom) zero matrix over F_2.
func NewF2(dom, codom int) *F2Mat {
	if dom < 0 || codom < 0 {
		panic("matrix: negative dimension")
	}
	wpr := (dom + wordBits - 1) / wordBits
	return &F2Mat{
		data:  make([]uint64, wpr*codom),
		wpr:   wpr,
		dom:   dom,
		codom: codom,
	}
}

// F2Identity returns the d × d identity.
func F2Identity(d int) *F2Mat {
	m := NewF2(d, d)
	for i := 0; i < d; i++ {
		m.Set(i, i, true)
	}
	return m
}

func (m *F2Mat) Dom() int   { return m.dom }
func (m *F2Mat) Codom() int { return m.codom }

// WordsPerRow exposes the packed row width for benchmarks.
func (m *F2Mat) WordsPerRow() int { return m.wpr }

func (m *F2Mat) check(dom, codom int) {
	if dom < 0 || dom >= m.dom || codom < 0 || codom >= m.codom {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of %dx%d", dom, codom, m.dom, m.codom))
	}
}

func (m *F2Mat) Get(dom, codom int) bool {
	m.check(dom, codom)
	return m.data[codom*m.wpr+dom/wordBits]>>(uint(dom)%wordBits)&1 == 1
}

func (m *F2Mat) Set(dom, codom int, v bool) {
	m.check(dom, codom)
	mask := uint64(1) << (uint(dom) % wordBits)
	idx := codom*m.wpr + dom/wordBits
	if v {
		m.data[idx] |= mask
	} else {
		m.data[idx] &^= mask
	}
}

// AddAt adds v to the entry, which over F_2 is a conditional flip.
func (m *F2Mat) AddAt(dom, codom int, v bool) {
	if !v {
		return
	}
	m.check(dom, codom)
	m.data[codom*m.wpr+dom/wordBits] ^= 1 << (uint(dom) % wordBits)
}

// Row returns the packed words of row codom.
func (m *F2Mat) Row(codom int) []uint64 {
	start := codom * m.wpr
	return m.data[start : start+m.wpr]
}

// SetRowWords overwrites row codom with the given packed words.
func (m *F2Mat) SetRowWords(codom int, words []uint64) {
	if len(words) != m.wpr {
		panic("matrix: packed row width mismatch")
	}
	copy(m.Row(codom), words)
}

// XorRowFromWord XORs row source into row target, starting at the given
// word index. Words before it are known equal (or zero) at call sites.
func (m *F2Mat) XorRowFromWord(target, source, word int) {
	dst := m.Row(target)
	src := m.Row(source)
	for i := word; i < m.wpr; i++ {
		dst[i] ^= src[i]
	}
}

// FirstOneInRow returns the column of the lowest set bit of row r.
func (m *F2Mat) FirstOneInRow(r int) (int, bool) {
	for w, word := range m.Row(r) {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word), true
		}
	}
	return 0, false
}

func (m *F2Mat) SwapRows(codom1, codom2 int) {
	if codom1 == codom2 {
		return
	}
	r1, r2 := m.Row(codom1), m.Row(codom2)
	for i := range r1 {
		r1[i], r2[i] = r2[i], r1[i]
	}
}

func (m *F2Mat) SwapCols(dom1, dom2 int) {
	if dom1 == dom2 {
		return
	}
	for i := 0; i < m.codom; i++ {
		a, b := m.Get(dom1, i), m.Get(dom2, i)
		m.Set(dom1, i, b)
		m.Set(dom2, i, a)
	}
}

// ExtendOneRow appends one zero row.
func (m *F2Mat) ExtendOneRow() {
	m.data = append(m.data, make([]uint64, m.wpr)...)
	m.codom++
	if m.pivots != nil {
		m.pivots = nil
	}
}

// VStack appends the rows of other below m. Domains must agree.
func (m *F2Mat) VStack(other *F2Mat) {
	if m.dom != other.dom {
		panic("matrix: vstack domain mismatch")
	}
	m.data = append(m.data, other.data...)
	m.codom += other.codom
	m.pivots = nil
}

// BlockSum places other diagonally below-right of m.
func (m *F2Mat) BlockSum(other *F2Mat) {
	out := NewF2(m.dom+other.dom, m.codom+other.codom)
	for i := 0; i < m.codom; i++ {
		for j := 0; j < m.dom; j++ {
			out.Set(j, i, m.Get(j, i))
		}
	}
	for i := 0; i < other.codom; i++ {
		for j := 0; j < other.dom; j++ {
			out.Set(m.dom+j, m.codom+i, other.Get(j, i))
		}
	}
	*m = *out
}

func (m *F2Mat) Transpose() *F2Mat {
	out := NewF2(m.codom, m.dom)
	for i := 0; i < m.codom; i++ {
		for j := 0; j < m.dom; j++ {
			if m.Get(j, i) {
				out.Set(i, j, true)
			}
		}
	}
	return out
}

// Compose returns m∘rhs. Row i of the result is the XOR of the rows of rhs
// selected by the set bits of row i of m, which keeps the product at word
// granularity.
func (m *F2Mat) Compose(rhs *F2Mat) *F2Mat {
	if m.dom != rhs.codom {
		panic("matrix: compose shape mismatch")
	}
	out := NewF2(rhs.dom, m.codom)
	for i := 0; i < m.codom; i++ {
		dst := out.Row(i)
		row := m.Row(i)
		for w, word := range row {
			for word != 0 {
				k := w*wordBits + bits.TrailingZeros64(word)
				word &= word - 1
				src := rhs.Row(k)
				for t := range dst {
					dst[t] ^= src[t]
				}
			}
		}
	}
	return out
}

// EvalVector applies the map to a domain bit vector.
func (m *F2Mat) EvalVector(v []bool) []bool {
	if len(v) != m.dom {
		panic("matrix: eval vector length mismatch")
	}
	out := make([]bool, m.codom)
	for i := 0; i < m.codom; i++ {
		row := m.Row(i)
		acc := uint64(0)
		for j, set := range v {
			if set && row[j/wordBits]>>(uint(j)%wordBits)&1 == 1 {
				acc ^= 1
			}
		}
		out[i] = acc == 1
	}
	return out
}

// IsUnit reports whether m is exactly the identity map.
func (m *F2Mat) IsUnit() bool {
	if m.dom != m.codom {
		return false
	}
	for i := 0; i < m.codom; i++ {
		for j := 0; j < m.dom; j++ {
			if m.Get(j, i) != (i == j) {
				return false
			}
		}
	}
	return true
}

func (m *F2Mat) Equal(other *F2Mat) bool {
	if m.dom != other.dom || m.codom != other.codom {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (m *F2Mat) Clone() *F2Mat {
	out := &F2Mat{
		data:  make([]uint64, len(m.data)),
		wpr:   m.wpr,
		dom:   m.dom,
		codom: m.codom,
	}
	copy(out.data, m.data)
	if m.pivots != nil {
		out.pivots = make([]int32, len(m.pivots))
		copy(out.pivots, m.pivots)
	}
	return out
}

// PivotRow returns the pivot row of column c after echelonization, or
// false when the column has no pivot.
func (m *F2Mat) PivotRow(c int) (int, bool) {
	if m.pivots == nil || c < 0 || c >= len(m.pivots) {
		return 0, false
	}
	if m.pivots[c] < 0 {
		return 0, false
	}
	return int(m.pivots[c]), true
}

func (m *F2Mat) String() string {
	var b strings.Builder
	for i := 0; i < m.codom; i++ {
		for j := 0; j < m.dom; j++ {
			if m.Get(j, i) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
