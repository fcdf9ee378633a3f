package unipol

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Order is the torsion order of a single module generator: the generator
// spans R/(t^k) for a finite order k, or a free copy of R.
type Order int32

// Free marks a free generator.
const Free Order = -1

// Torsion returns the order tag for R/(t^k).
func Torsion(k uint16) Order { return Order(k) }

func (o Order) IsFree() bool { return o < 0 }

// Power returns the finite torsion exponent. The order must not be free.
func (o Order) Power() uint16 {
	if o.IsFree() {
		panic("unipol: free generator has no torsion power")
	}
	return uint16(o)
}

func (o Order) String() string {
	if o.IsFree() {
		return "∞"
	}
	return strconv.FormatInt(int64(o), 10)
}

// MarshalJSON encodes a free generator as null and torsion as its power.
func (o Order) MarshalJSON() ([]byte, error) {
	if o.IsFree() {
		return []byte("null"), nil
	}
	return json.Marshal(int64(o))
}

func (o *Order) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Free
		return nil
	}
	var k uint16
	if err := json.Unmarshal(b, &k); err != nil {
		return err
	}
	*o = Order(k)
	return nil
}

// Module describes a finitely generated R-module as the ordered list of
// its generators' torsion orders. A zero module is the empty list.
type Module []Order

// FreeModule returns the structure vector of R^n.
func FreeModule(n int) Module {
	m := make(Module, n)
	for i := range m {
		m[i] = Free
	}
	return m
}

func (m Module) Clone() Module {
	out := make(Module, len(m))
	copy(out, m)
	return out
}

func (m Module) String() string {
	parts := make([]string, len(m))
	for i, o := range m {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
