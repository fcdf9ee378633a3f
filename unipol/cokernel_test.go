package unipol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCokernelOfZeroMap(t *testing.T) {
	a := f2Mat(1, 1)
	coker, _, module := Cokernel(a, Module{Free})

	require.Len(t, module, 1)
	assert.True(t, module[0].IsFree())
	assert.Equal(t, 1, coker.Codom())
}

func TestCokernelOfIdentityIsZero(t *testing.T) {
	a := mustMat(t, [][]string{{"1"}})
	_, _, module := Cokernel(a, Module{Free})
	assert.Empty(t, module)
}

func TestCokernelOfMultiplicationByT(t *testing.T) {
	// R --t--> R has cokernel R/(t).
	a := mustMat(t, [][]string{{"t"}})
	_, _, module := Cokernel(a, Module{Free})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(1), module[0])
}

func TestCokernelKeepsCodomainTorsion(t *testing.T) {
	// The zero map into R/(t^2) leaves the full torsion generator.
	a := f2Mat(1, 1)
	_, _, module := Cokernel(a, Module{Torsion(2)})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(2), module[0])
}

func TestCokernelShrinksTorsion(t *testing.T) {
	// t into R/(t^3): the quotient is R/(t).
	a := mustMat(t, [][]string{{"t"}})
	_, _, module := Cokernel(a, Module{Torsion(3)})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(1), module[0])
}

func TestCokernelRepresentativesSplit(t *testing.T) {
	a := mustMat(t, [][]string{
		{"t", ""},
		{"", "1"},
	})
	coker, repr, module := Cokernel(a, Module{Free, Free})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(1), module[0])
	assert.True(t, coker.Compose(repr).IsUnit())
}

func TestCokernelMixedDiagonal(t *testing.T) {
	a := mustMat(t, [][]string{
		{"t^2", ""},
		{"", ""},
	})
	_, _, module := Cokernel(a, Module{Free, Free})

	require.Len(t, module, 2)
	assert.Equal(t, Torsion(2), module[0])
	assert.True(t, module[1].IsFree())
}
