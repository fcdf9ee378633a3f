package unipol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelOfZeroMapIsDomain(t *testing.T) {
	a := f2Mat(1, 1)
	k, module := Kernel(a, Module{Free}, Module{Free})

	require.Len(t, module, 1)
	assert.True(t, module[0].IsFree())
	assert.Equal(t, 1, k.Dom())
	assert.Equal(t, 1, k.Codom())
}

func TestKernelOfIdentityIsTrivial(t *testing.T) {
	a := mustMat(t, [][]string{{"1"}})
	_, module := Kernel(a, Module{Free}, Module{Free})
	assert.Empty(t, module)
}

func TestKernelTorsionIdentityIsTrivial(t *testing.T) {
	a := mustMat(t, [][]string{{"1"}})
	_, module := Kernel(a, Module{Torsion(1)}, Module{Torsion(1)})
	assert.Empty(t, module)
}

func TestKernelOfMultiplicationByT(t *testing.T) {
	// t: R/(t^3) -> R/(t^3) has kernel generated by t^2, of order 1.
	a := mustMat(t, [][]string{{"t"}})
	k, module := Kernel(a, Module{Torsion(3)}, Module{Torsion(3)})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(1), module[0])
	require.Equal(t, 1, k.Dom())
	assert.Equal(t, uint16(2), k.Get(0, 0).N)
}

func TestKernelRespectsCodomainTorsion(t *testing.T) {
	// t^2 into R/(t^2) is the zero map, so the kernel is all of R/(t^4).
	a := mustMat(t, [][]string{{"t^2"}})
	_, module := Kernel(a, Module{Torsion(4)}, Module{Torsion(2)})

	require.Len(t, module, 1)
	assert.Equal(t, Torsion(4), module[0])
}

func TestKernelGeneratorsAnnihilate(t *testing.T) {
	R := f2Ring()
	a := mustMat(t, [][]string{
		{"1", "t", ""},
		{"", "t^2", "t"},
	})
	domain := Module{Torsion(3), Torsion(3), Torsion(2)}
	codomain := Module{Torsion(3), Torsion(3)}

	k, module := Kernel(a, domain, codomain)
	require.Equal(t, len(module), k.Dom())

	for g := 0; g < k.Dom(); g++ {
		image := a.EvalVector(k.Column(g))
		for id, el := range image {
			ok := R.IsZero(el) ||
				(!codomain[id].IsFree() && el.N >= codomain[id].Power())
			assert.True(t, ok, "generator %d row %d", g, id)
		}
	}
}

func TestKernelDestroyersFreeRankOne(t *testing.T) {
	a := mustMat(t, [][]string{
		{"1", ""},
		{"", ""},
	})
	got := KernelDestroyers(a, FreeModule(2), FreeModule(2))
	assert.Equal(t, []int{1}, got)
}

func TestKernelDestroyersInjective(t *testing.T) {
	a := mustMat(t, [][]string{{"1"}})
	assert.Empty(t, KernelDestroyers(a, FreeModule(1), FreeModule(1)))
}

func TestKernelDestroyersTorsionIdentity(t *testing.T) {
	a := mustMat(t, [][]string{{"1"}})
	got := KernelDestroyers(a, Module{Torsion(1)}, Module{Torsion(1)})
	assert.Empty(t, got)
}

func TestKernelDestroyersEmptyCodomain(t *testing.T) {
	a := f2Mat(1, 0)
	got := KernelDestroyers(a, FreeModule(1), Module{})
	assert.Equal(t, []int{0}, got)
}

func TestKernelDestroyersAscendingAndEffective(t *testing.T) {
	a := mustMat(t, [][]string{
		{"", "", ""},
		{"", "", ""},
	})
	domain := FreeModule(3)
	codomain := FreeModule(2)

	got := KernelDestroyers(a, domain, codomain)
	assert.Equal(t, []int{0, 1, 2}, got)

	// Pinning each destroyer coordinate to zero with a free relation row
	// leaves no kernel.
	killed := a.Clone()
	cod := codomain.Clone()
	R := f2Ring()
	for _, d := range got {
		row := killed.Codom()
		killed.ExtendOneRow()
		killed.Set(d, row, R.One())
		cod = append(cod, Free)
	}
	_, module := Kernel(killed, domain, cod)
	assert.Empty(t, module)
}
