package unipol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"DVR-Cohomology/field"
	"DVR-Cohomology/matrix"
)

type f2Elem = Elem[field.El]

func f2Mat(dom, codom int) *matrix.Flat[f2Elem] {
	return matrix.Zero[f2Elem](f2Ring(), dom, codom)
}

// mustMat builds a matrix over F2[t] from parsed rows.
func mustMat(t *testing.T, rows [][]string) *matrix.Flat[f2Elem] {
	t.Helper()
	R := f2Ring()
	codom := len(rows)
	dom := 0
	if codom > 0 {
		dom = len(rows[0])
	}
	m := f2Mat(dom, codom)
	for i, row := range rows {
		require.Len(t, row, dom)
		for j, s := range row {
			e, err := R.Parse(s)
			require.NoError(t, err)
			m.Set(j, i, e)
		}
	}
	return m
}
