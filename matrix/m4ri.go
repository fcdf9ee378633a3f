package matrix

// Method of Four Russians echelonization for F2Mat. Pivot rows found since
// the last table build form a block of at most k rows; the table holds all
// 2^k−1 nonzero XOR combinations of the block so every other row is
// reduced with a single table lookup and one word-aligned XOR.

// DefaultM4RIWidth is the table width used by Echelonize. Six keeps the
// table inside L1 for the shapes this engine sees; cmd/m4ri_sweep retunes
// it per machine.
const DefaultM4RIWidth = 6

type m4riTable struct {
	rows    []int    // pivot row indices in the current block
	cols    []int    // pivot columns, same order as rows
	data    []uint64 // flattened table, (2^k − 1) rows of wpr words
	minWord int      // smallest word index among pivot columns
	wpr     int
}

func newM4riTable(k, wpr int) *m4riTable {
	return &m4riTable{
		rows:    make([]int, 0, k),
		cols:    make([]int, 0, k),
		data:    make([]uint64, 0, ((1<<k)-1)*wpr),
		minWord: int(^uint(0) >> 1),
		wpr:     wpr,
	}
}

func (t *m4riTable) len() int      { return len(t.cols) }
func (t *m4riTable) isEmpty() bool { return len(t.cols) == 0 }

func (t *m4riTable) clear() {
	t.rows = t.rows[:0]
	t.cols = t.cols[:0]
	t.data = t.data[:0]
	t.minWord = int(^uint(0) >> 1)
}

func (t *m4riTable) add(pivotCol, row int) {
	t.cols = append(t.cols, pivotCol)
	t.rows = append(t.rows, row)
}

func xorFromWord(dst, src []uint64, startWord int) {
	for i := startWord; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// generate builds the combination table by doubling: at step n the first
// 2^n − 1 rows are duplicated, then pivot row n is XORed into the copy.
// Table row m−1 holds the combination for block bitmask m.
func (t *m4riTable) generate(m *F2Mat) {
	if t.wpr != m.wpr {
		panic("matrix: m4ri table width mismatch")
	}
	wpr := t.wpr

	for n := range t.cols {
		c, r := t.cols[n], t.rows[n]
		rowWords := m.Row(r)
		oldLen := len(t.data)

		t.data = append(t.data, rowWords...)
		t.data = append(t.data, t.data[:oldLen]...)

		start := 1 << n
		end := 1<<(n+1) - 1
		startWord := c / wordBits

		for idx := start; idx < end; idx++ {
			xorFromWord(t.data[idx*wpr:(idx+1)*wpr], rowWords, startWord)
		}

		if startWord < t.minWord {
			t.minWord = startWord
		}
	}
}

// reduce clears the block's pivot columns from row using one table lookup.
// The bitmask is read at the pivot columns in reverse order so that bit 0
// of the index corresponds to the first pivot of the block.
func (t *m4riTable) reduce(row []uint64) {
	index := 0
	for n := len(t.cols) - 1; n >= 0; n-- {
		c := t.cols[n]
		index <<= 1
		index |= int(row[c/wordBits] >> (uint(c) % wordBits) & 1)
	}
	if index != 0 {
		base := (index - 1) * t.wpr
		xorFromWord(row, t.data[base:base+t.wpr], t.minWord)
	}
}

// reduceNaive clears the block's pivot columns from matrix row target by
// direct row XORs; used on the row currently being scanned, before the
// block's table exists.
func (t *m4riTable) reduceNaive(m *F2Mat, target int) {
	for n := range t.rows {
		r, c := t.rows[n], t.cols[n]
		if r == target {
			panic("matrix: m4ri pivot row reduced against itself")
		}
		word := c / wordBits
		mask := uint64(1) << (uint(c) % wordBits)
		if m.data[target*t.wpr+word]&mask != 0 {
			m.XorRowFromWord(target, r, word)
		}
	}
}

// Echelonize reduces m to RREF over F_2 with the default table width.
func (m *F2Mat) Echelonize() {
	m.EchelonizeK(DefaultM4RIWidth)
}

// EchelonizeK is Echelonize with an explicit table width k in [1, 16].
func (m *F2Mat) EchelonizeK(k int) {
	if k < 1 || k > 16 {
		panic("matrix: m4ri width out of range")
	}
	rows, cols, wpr := m.codom, m.dom, m.wpr

	m.pivots = make([]int32, cols)
	for c := range m.pivots {
		m.pivots[c] = -1
	}
	if rows == 0 || cols == 0 {
		return
	}

	table := newM4riTable(k, wpr)

	for i := 0; i < rows; i++ {
		table.reduceNaive(m, i)

		c, ok := m.FirstOneInRow(i)
		if !ok {
			continue
		}
		if m.pivots[c] >= 0 {
			panic("matrix: m4ri recorded the same pivot column twice")
		}
		m.pivots[c] = int32(i)

		// Gauss–Jordan half-step: clear column c from the block's
		// earlier pivot rows before the new pivot joins the block.
		word := c / wordBits
		mask := uint64(1) << (uint(c) % wordBits)
		for _, r := range table.rows {
			if m.Row(r)[word]&mask != 0 {
				m.XorRowFromWord(r, i, word)
			}
		}

		table.add(c, i)

		if table.len() == k {
			table.generate(m)

			first := table.rows[0]
			for j := 0; j < first; j++ {
				table.reduce(m.Row(j))
			}
			for j := i + 1; j < rows; j++ {
				table.reduce(m.Row(j))
			}

			table.clear()
		}
	}

	// Flush the residual block: rows below the last scanned row are
	// already covered, rows above the block's first pivot are not.
	if !table.isEmpty() {
		table.generate(m)
		first := table.rows[0]
		for j := 0; j < first; j++ {
			table.reduce(m.Row(j))
		}
		table.clear()
	}
}
