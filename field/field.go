// Package field implements the prime-field coefficient kernels F_p and F_2.
// A descriptor carries the modulus; elements are bare residues so matrices
// over large shapes stay compact.
package field

import (
	"fmt"
	"strconv"
	"strings"

	latring "github.com/tuneinsight/lattigo/v4/ring"

	"DVR-Cohomology/ring"
)

// El is a residue in [0, p). The descriptor owning the element defines p.
type El uint16

// Prime is the arithmetic descriptor for F_p, p an odd prime or 2, p < 2^16.
type Prime struct {
	p uint64
}

var _ ring.Field[El] = Prime{}

// NewPrime constructs the F_p descriptor. p must be prime and fit the
// element representation.
func NewPrime(p uint64) (Prime, error) {
	if p < 2 || p > 1<<16-1 {
		return Prime{}, fmt.Errorf("field: modulus %d out of range", p)
	}
	if !isPrime(p) {
		return Prime{}, fmt.Errorf("field: modulus %d is not prime", p)
	}
	return Prime{p: p}, nil
}

// MustPrime is NewPrime for known-good moduli in tests and presets.
func MustPrime(p uint64) Prime {
	f, err := NewPrime(p)
	if err != nil {
		panic(err)
	}
	return f
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func (f Prime) Characteristic() uint64 { return f.p }

func (f Prime) Zero() El { return 0 }
func (f Prime) One() El  { return El(1 % f.p) }

func (f Prime) Add(a, b El) El { return El((uint64(a) + uint64(b)) % f.p) }
func (f Prime) Sub(a, b El) El { return El((f.p + uint64(a) - uint64(b)) % f.p) }
func (f Prime) Neg(a El) El    { return El((f.p - uint64(a)) % f.p) }
func (f Prime) Mul(a, b El) El { return El(uint64(a) * uint64(b) % f.p) }

func (f Prime) Eq(a, b El) bool   { return a == b }
func (f Prime) IsZero(a El) bool  { return a == 0 }
func (f Prime) IsUnit(a El) bool  { return a != 0 }

// Inv returns a^-1, or false for zero. For p in {2, 3} every nonzero
// element is its own inverse; otherwise Fermat via square-and-multiply.
func (f Prime) Inv(a El) (El, bool) {
	if a == 0 {
		return 0, false
	}
	if f.p == 2 || f.p == 3 {
		return a, true
	}
	return El(latring.ModExp(uint64(a), f.p-2, f.p)), true
}

func (f Prime) TryInverse(a El) (El, bool) { return f.Inv(a) }

// Parse reads a decimal residue, reduced mod p. Whitespace is trimmed and
// the empty string is zero.
func (f Prime) Parse(s string) (El, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field: %q could not be parsed", s)
	}
	m := int64(f.p)
	return El(((v % m) + m) % m), nil
}

func (f Prime) Format(a El) string { return strconv.FormatUint(uint64(a), 10) }
