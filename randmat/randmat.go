// Package randmat provides deterministic, label-derived random matrices
// and module structures for tests and benchmarks. A SHAKE-128 expansion of
// the caller's label keys the PRNG, so two runs with the same label see
// the same data on every platform.
package randmat

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"

	"DVR-Cohomology/field"
	"DVR-Cohomology/matrix"
	"DVR-Cohomology/ring"
	"DVR-Cohomology/unipol"
)

const seedBytes = 32

// Seed expands a label and optional payload parts into a PRNG key.
func Seed(label string, parts ...[]byte) []byte {
	h := sha3.NewShake128()
	if _, err := h.Write([]byte(label)); err != nil {
		panic(fmt.Errorf("randmat: write label: %w", err))
	}
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("randmat: write payload: %w", err))
		}
	}
	out := make([]byte, seedBytes)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("randmat: read seed: %w", err))
	}
	return out
}

// NewSource returns a keyed PRNG for the given label.
func NewSource(label string) utils.PRNG {
	prng, err := utils.NewKeyedPRNG(Seed(label))
	if err != nil {
		panic(fmt.Errorf("randmat: keyed prng: %w", err))
	}
	return prng
}

func randUint64(prng utils.PRNG) uint64 {
	var buf [8]byte
	if _, err := prng.Read(buf[:]); err != nil {
		panic(fmt.Errorf("randmat: prng read: %w", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// F2Matrix returns a uniformly random packed F_2 matrix.
func F2Matrix(label string, dom, codom int) *matrix.F2Mat {
	prng := NewSource(label)
	m := matrix.NewF2(dom, codom)
	tail := uint(dom % 64)
	for i := 0; i < codom; i++ {
		row := m.Row(i)
		for w := range row {
			row[w] = randUint64(prng)
		}
		if tail != 0 && len(row) > 0 {
			row[len(row)-1] &= 1<<tail - 1
		}
	}
	return m
}

// Flat returns a random dense matrix over R using the sampler for single
// entries.
func Flat[E any](label string, R ring.Ring[E], dom, codom int, sample func(prng utils.PRNG) E) *matrix.Flat[E] {
	prng := NewSource(label)
	m := matrix.Zero(R, dom, codom)
	for i := 0; i < codom; i++ {
		for j := 0; j < dom; j++ {
			m.Set(j, i, sample(prng))
		}
	}
	return m
}

// PrimeMatrix returns a random dense matrix over F_p.
func PrimeMatrix(label string, F field.Prime, dom, codom int) *matrix.Flat[field.El] {
	p := F.Characteristic()
	return Flat[field.El](label, F, dom, codom, func(prng utils.PRNG) field.El {
		return field.El(randUint64(prng) % p)
	})
}

// UniPolMatrix returns a random matrix of monomials over F[t]_(t) with
// degrees below maxDeg; roughly one entry in zeroOneIn is zero.
func UniPolMatrix[FE any](
	label string, R unipol.Ring[FE], dom, codom int,
	maxDeg uint16, zeroOneIn uint64, coeff func(prng utils.PRNG) FE,
) *matrix.Flat[unipol.Elem[FE]] {
	return Flat[unipol.Elem[FE]](label, R, dom, codom,
		func(prng utils.PRNG) unipol.Elem[FE] {
			if zeroOneIn > 0 && randUint64(prng)%zeroOneIn == 0 {
				return R.Zero()
			}
			n := uint16(0)
			if maxDeg > 0 {
				n = uint16(randUint64(prng) % uint64(maxDeg))
			}
			return R.Mono(coeff(prng), n)
		})
}

// ModuleStructure returns a random structure vector with the given free
// generator share (out of 100) and torsion orders in [1, maxOrder].
func ModuleStructure(label string, n int, freePercent, maxOrder uint64) unipol.Module {
	prng := NewSource(label)
	m := make(unipol.Module, n)
	for i := range m {
		if randUint64(prng)%100 < freePercent {
			m[i] = unipol.Free
		} else {
			m[i] = unipol.Torsion(uint16(1 + randUint64(prng)%maxOrder))
		}
	}
	return m
}
