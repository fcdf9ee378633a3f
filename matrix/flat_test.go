package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DVR-Cohomology/field"
)

func f5() field.Prime { return field.MustPrime(5) }

// mustFlat builds a matrix from rows of parsed entries.
func mustFlat(t *testing.T, F field.Prime, rows [][]string) *Flat[field.El] {
	t.Helper()
	codom := len(rows)
	dom := 0
	if codom > 0 {
		dom = len(rows[0])
	}
	m := Zero[field.El](F, dom, codom)
	for i, row := range rows {
		require.Len(t, row, dom)
		for j, s := range row {
			e, err := F.Parse(s)
			require.NoError(t, err)
			m.Set(j, i, e)
		}
	}
	return m
}

func TestZeroAndIdentity(t *testing.T) {
	F := f5()

	z := Zero[field.El](F, 2, 3)
	assert.Equal(t, 2, z.Dom())
	assert.Equal(t, 3, z.Codom())
	for j := 0; j < 2; j++ {
		for i := 0; i < 3; i++ {
			assert.True(t, F.IsZero(z.Get(j, i)))
		}
	}

	id := Identity[field.El](F, 3)
	assert.True(t, id.IsUnit())
	assert.False(t, z.IsUnit())
}

func TestGetSetAddAt(t *testing.T) {
	F := f5()
	m := Zero[field.El](F, 2, 2)

	m.Set(0, 1, 3)
	assert.Equal(t, field.El(3), m.Get(0, 1))
	m.AddAt(0, 1, 4)
	assert.Equal(t, field.El(2), m.Get(0, 1)) // 3 + 4 mod 5

	assert.Panics(t, func() { m.Get(2, 0) })
	assert.Panics(t, func() { m.Set(0, 2, 1) })
}

func TestRowAndColumnAccess(t *testing.T) {
	F := f5()
	m := mustFlat(t, F, [][]string{
		{"1", "2"},
		{"3", "4"},
	})

	assert.Equal(t, []field.El{1, 2}, m.Row(0))
	assert.Equal(t, []field.El{2, 4}, m.Column(1))

	m.SetRow(1, []field.El{0, 1})
	assert.Equal(t, []field.El{0, 1}, m.Row(1))
	m.SetColumn(0, []field.El{4, 4})
	assert.Equal(t, []field.El{4, 4}, m.Column(0))

	assert.True(t, m.IsRowNonZero(0))
	m.SetRowZero(0)
	assert.False(t, m.IsRowNonZero(0))
}

func TestSwapAndScale(t *testing.T) {
	F := f5()
	m := mustFlat(t, F, [][]string{
		{"1", "2"},
		{"3", "4"},
	})

	m.SwapRows(0, 1)
	assert.Equal(t, []field.El{3, 4}, m.Row(0))
	m.SwapCols(0, 1)
	assert.Equal(t, []field.El{4, 3}, m.Row(0))

	m.ScaleRow(0, 2)
	assert.Equal(t, []field.El{3, 1}, m.Row(0)) // (8, 6) mod 5
	m.ScaleColumn(1, 0)
	assert.Equal(t, field.El(0), m.Get(1, 0))
	assert.Equal(t, field.El(0), m.Get(1, 1))
}

func TestAddMultiples(t *testing.T) {
	F := f5()
	m := mustFlat(t, F, [][]string{
		{"1", "0"},
		{"2", "1"},
	})

	m.AddRowMultiple(1, 0, 3)
	assert.Equal(t, []field.El{0, 1}, m.Row(1)) // (2+3, 1+0) mod 5

	m.AddColMultiple(1, 0, 1)
	assert.Equal(t, field.El(1), m.Get(1, 0))
	assert.Equal(t, field.El(1), m.Get(1, 1))
}

func TestCompose(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{
		{"1", "2"},
		{"3", "4"},
	})
	b := mustFlat(t, F, [][]string{
		{"0", "1"},
		{"1", "0"},
	})

	// a∘b swaps b's columns into a.
	c := a.Compose(b)
	assert.Equal(t, []field.El{2, 1}, c.Row(0))
	assert.Equal(t, []field.El{4, 3}, c.Row(1))

	// Composing with the identity is a no-op either way.
	id := Identity[field.El](F, 2)
	assert.True(t, a.Compose(id).Equal(a))
	assert.True(t, id.Compose(a).Equal(a))

	assert.Panics(t, func() { a.Compose(Zero[field.El](F, 2, 3)) })
}

func TestEvalVector(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{
		{"1", "2"},
		{"3", "4"},
	})
	got := a.EvalVector([]field.El{1, 1})
	assert.Equal(t, []field.El{3, 2}, got) // (1+2, 3+4) mod 5
}

func TestTransposeInvolution(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{
		{"1", "2", "0"},
		{"3", "4", "1"},
	})
	tr := a.Transpose()
	assert.Equal(t, 3, tr.Codom())
	assert.Equal(t, 2, tr.Dom())
	assert.Equal(t, field.El(2), tr.Get(0, 1))
	assert.True(t, tr.Transpose().Equal(a))
}

func TestVStack(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{{"1", "2"}})
	b := mustFlat(t, F, [][]string{{"3", "4"}})

	a.VStack(b)
	assert.Equal(t, 2, a.Codom())
	assert.Equal(t, []field.El{3, 4}, a.Row(1))

	c := mustFlat(t, F, [][]string{{"1", "2", "3"}})
	assert.Panics(t, func() { a.VStack(c) })
}

func TestBlockSum(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{{"1", "2"}})
	b := mustFlat(t, F, [][]string{
		{"3"},
		{"4"},
	})

	a.BlockSum(b)
	assert.Equal(t, 3, a.Dom())
	assert.Equal(t, 3, a.Codom())
	assert.Equal(t, []field.El{1, 2, 0}, a.Row(0))
	assert.Equal(t, []field.El{0, 0, 3}, a.Row(1))
	assert.Equal(t, []field.El{0, 0, 4}, a.Row(2))
}

func TestExtendOneRow(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{{"1", "2"}})
	a.ExtendOneRow()
	assert.Equal(t, 2, a.Codom())
	assert.False(t, a.IsRowNonZero(1))
}

func TestFirstNonZeroEntry(t *testing.T) {
	F := f5()
	m := Zero[field.El](F, 2, 2)
	_, _, ok := m.FirstNonZeroEntry()
	assert.False(t, ok)

	m.Set(1, 0, 2)
	j, i, ok := m.FirstNonZeroEntry()
	require.True(t, ok)
	assert.Equal(t, 1, j)
	assert.Equal(t, 0, i)
}

func TestFlatDTORoundTrip(t *testing.T) {
	F := f5()
	a := mustFlat(t, F, [][]string{
		{"1", "2", "0"},
		{"3", "4", "1"},
	})
	back, err := FromDTO[field.El](F, a.DTO())
	require.NoError(t, err)
	assert.True(t, a.Equal(back))

	_, err = FromDTO[field.El](F, FlatJSON{Dom: 2, Codom: 2, Data: []string{"1"}})
	assert.Error(t, err)
}
