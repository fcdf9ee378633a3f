package unipol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleCreation(t *testing.T) {
	m := Module{Free, Torsion(3), Torsion(2)}

	assert.Len(t, m, 3)
	assert.True(t, m[0].IsFree())
	assert.Equal(t, uint16(3), m[1].Power())
	assert.Equal(t, uint16(2), m[2].Power())

	assert.Empty(t, Module{})
}

func TestFreeModule(t *testing.T) {
	m := FreeModule(4)
	assert.Len(t, m, 4)
	for _, o := range m {
		assert.True(t, o.IsFree())
	}
	assert.Empty(t, FreeModule(0))
}

func TestOrderAccessors(t *testing.T) {
	assert.True(t, Free.IsFree())
	assert.False(t, Torsion(0).IsFree())
	assert.Equal(t, uint16(7), Torsion(7).Power())
	assert.Panics(t, func() { Free.Power() })
}

func TestOrderStrings(t *testing.T) {
	assert.Equal(t, "∞", Free.String())
	assert.Equal(t, "4", Torsion(4).String())
	assert.Equal(t, "[∞ 1 10]", Module{Free, Torsion(1), Torsion(10)}.String())
}

func TestModuleJSONRoundTrip(t *testing.T) {
	m := Module{Free, Torsion(1), Torsion(4), Free, Torsion(10)}

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 1, 4, null, 10]`, string(raw))

	var back Module
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
}

func TestModuleClone(t *testing.T) {
	m := Module{Free, Torsion(2)}
	c := m.Clone()
	c[0] = Torsion(9)
	assert.True(t, m[0].IsFree())
}
