package field

import (
	"fmt"
	"strconv"
	"strings"

	"DVR-Cohomology/ring"
)

// F2 is the two-element field with addition as XOR and product as AND.
// It shares the El element type with Prime so matrices can switch kernels
// without converting data.
type F2 struct{}

var _ ring.Field[El] = F2{}

func (F2) Characteristic() uint64 { return 2 }

func (F2) Zero() El { return 0 }
func (F2) One() El  { return 1 }

func (F2) Add(a, b El) El { return (a ^ b) & 1 }
func (F2) Sub(a, b El) El { return (a ^ b) & 1 }
func (F2) Neg(a El) El    { return a & 1 }
func (F2) Mul(a, b El) El { return a & b & 1 }

func (F2) Eq(a, b El) bool  { return a&1 == b&1 }
func (F2) IsZero(a El) bool { return a&1 == 0 }
func (F2) IsUnit(a El) bool { return a&1 == 1 }

func (F2) Inv(a El) (El, bool) {
	if a&1 == 0 {
		return 0, false
	}
	return 1, true
}

func (f F2) TryInverse(a El) (El, bool) { return f.Inv(a) }

func (F2) Parse(s string) (El, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field: %q could not be parsed", s)
	}
	return El(v & 1), nil
}

func (F2) Format(a El) string { return strconv.FormatUint(uint64(a&1), 10) }
