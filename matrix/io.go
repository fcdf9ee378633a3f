package matrix

import (
	"fmt"
	"strings"

	"DVR-Cohomology/ring"
)

// JSON-friendly DTO forms. Element parsing needs a ring descriptor, so
// deserialization is a free function taking one rather than a method.

// FlatJSON is the serialized form of a Flat matrix: formatted entries in
// row-major order.
type FlatJSON struct {
	Dom   int      `json:"dom"`
	Codom int      `json:"codom"`
	Data  []string `json:"data"`
}

// DTO renders the matrix for serialization.
func (m *Flat[E]) DTO() FlatJSON {
	data := make([]string, len(m.data))
	for i, e := range m.data {
		data[i] = m.R.Format(e)
	}
	return FlatJSON{Dom: m.dom, Codom: m.codom, Data: data}
}

// FromDTO rebuilds a Flat matrix over R from its serialized form.
func FromDTO[E any](R ring.Ring[E], d FlatJSON) (*Flat[E], error) {
	if d.Dom < 0 || d.Codom < 0 || len(d.Data) != d.Dom*d.Codom {
		return nil, fmt.Errorf("matrix: malformed %dx%d serialized matrix", d.Dom, d.Codom)
	}
	m := Zero(R, d.Dom, d.Codom)
	for i, s := range d.Data {
		e, err := R.Parse(s)
		if err != nil {
			return nil, err
		}
		m.data[i] = e
	}
	return m, nil
}

// F2JSON is the serialized form of an F2Mat: one "0"/"1" string per row.
type F2JSON struct {
	Dom   int      `json:"dom"`
	Codom int      `json:"codom"`
	Rows  []string `json:"rows"`
}

// DTO renders the packed matrix for serialization.
func (m *F2Mat) DTO() F2JSON {
	rows := make([]string, m.codom)
	var b strings.Builder
	for i := 0; i < m.codom; i++ {
		b.Reset()
		for j := 0; j < m.dom; j++ {
			if m.Get(j, i) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[i] = b.String()
	}
	return F2JSON{Dom: m.dom, Codom: m.codom, Rows: rows}
}

// F2FromDTO rebuilds a packed matrix from its serialized form.
func F2FromDTO(d F2JSON) (*F2Mat, error) {
	if d.Dom < 0 || d.Codom < 0 || len(d.Rows) != d.Codom {
		return nil, fmt.Errorf("matrix: malformed %dx%d serialized matrix", d.Dom, d.Codom)
	}
	m := NewF2(d.Dom, d.Codom)
	for i, row := range d.Rows {
		if len(row) != d.Dom {
			return nil, fmt.Errorf("matrix: row %d has %d of %d columns", i, len(row), d.Dom)
		}
		for j := 0; j < d.Dom; j++ {
			switch row[j] {
			case '1':
				m.Set(j, i, true)
			case '0':
			default:
				return nil, fmt.Errorf("matrix: row %d holds %q", i, row[j])
			}
		}
	}
	return m, nil
}
