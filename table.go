package safer

// Table holds the exponentiation and logarithm S-boxes shared by the key
// schedule and the round function. It is immutable after NewTable returns.
type Table struct {
	exp [256]byte
	log [256]byte
}

// NewTable computes exp[i] = 45^i mod 257 (with 256 stored as 0) and its
// inverse log table. Since 45 generates the multiplicative group mod 257,
// exp is a permutation of the byte values.
func NewTable() *Table {
	t := &Table{}
	e := 1
	for i := 0; i < 256; i++ {
		v := byte(e) // 256 truncates to 0
		t.exp[i] = v
		t.log[v] = byte(i)
		e = (45 * e) % 257
	}
	return t
}

// Exp returns 45^idx mod 257, truncated to a byte. idx is reduced mod 256.
func (t *Table) Exp(idx int) byte {
	return t.exp[idx&0xff]
}

// Log returns the discrete logarithm of idx, the inverse of Exp.
func (t *Table) Log(idx int) byte {
	return t.log[idx&0xff]
}

// ExpTable returns a copy of the exponentiation table.
func (t *Table) ExpTable() [256]byte { return t.exp }

// LogTable returns a copy of the logarithm table.
func (t *Table) LogTable() [256]byte { return t.log }
