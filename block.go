package safer

// Block is a single 8-byte SAFER block, plaintext or ciphertext.
type Block [BlockSize]byte

// pht is the pseudo-Hadamard transform (x, y) -> (2x+y, x+y) mod 256.
func pht(x, y *byte) {
	*y += *x
	*x += *y
}

// ipht inverts pht.
func ipht(x, y *byte) {
	*x -= *y
	*y -= *x
}

// EncryptBlock encrypts src under ks and returns the ciphertext.
func EncryptBlock(t *Table, ks *KeySchedule, src Block) Block {
	a, b, c, d := src[0], src[1], src[2], src[3]
	e, f, g, h := src[4], src[5], src[6], src[7]
	k := &ks.subkeys

	idx := 0
	for r := 0; r < ks.rounds; r++ {
		a = t.exp[a^k[idx+0]] + k[idx+8]
		b = t.log[b+k[idx+1]] ^ k[idx+9]
		c = t.log[c+k[idx+2]] ^ k[idx+10]
		d = t.exp[d^k[idx+3]] + k[idx+11]
		e = t.exp[e^k[idx+4]] + k[idx+12]
		f = t.log[f+k[idx+5]] ^ k[idx+13]
		g = t.log[g+k[idx+6]] ^ k[idx+14]
		h = t.exp[h^k[idx+7]] + k[idx+15]

		pht(&a, &b)
		pht(&c, &d)
		pht(&e, &f)
		pht(&g, &h)

		pht(&a, &c)
		pht(&e, &g)
		pht(&b, &d)
		pht(&f, &h)

		pht(&a, &e)
		pht(&b, &f)
		pht(&c, &g)
		pht(&d, &h)

		b, e, c = e, c, b
		d, f, g = f, g, d

		idx += 16
	}

	return Block{
		a ^ k[idx+0],
		b + k[idx+1],
		c + k[idx+2],
		d ^ k[idx+3],
		e ^ k[idx+4],
		f + k[idx+5],
		g + k[idx+6],
		h ^ k[idx+7],
	}
}

// DecryptBlock decrypts src under ks and returns the plaintext. Subkeys are
// consumed from the end of the schedule.
func DecryptBlock(t *Table, ks *KeySchedule, src Block) Block {
	k := &ks.subkeys
	idx := ks.Len() - 1

	h := src[7] ^ k[idx-0]
	g := src[6] - k[idx-1]
	f := src[5] - k[idx-2]
	e := src[4] ^ k[idx-3]
	d := src[3] ^ k[idx-4]
	c := src[2] - k[idx-5]
	b := src[1] - k[idx-6]
	a := src[0] ^ k[idx-7]
	idx -= 8

	for r := 0; r < ks.rounds; r++ {
		e, b, c = b, c, e
		f, d, g = d, g, f

		ipht(&a, &e)
		ipht(&b, &f)
		ipht(&c, &g)
		ipht(&d, &h)

		ipht(&a, &c)
		ipht(&e, &g)
		ipht(&b, &d)
		ipht(&f, &h)

		ipht(&a, &b)
		ipht(&c, &d)
		ipht(&e, &f)
		ipht(&g, &h)

		h = t.log[h-k[idx-0]] ^ k[idx-8]
		g = t.exp[g^k[idx-1]] - k[idx-9]
		f = t.exp[f^k[idx-2]] - k[idx-10]
		e = t.log[e-k[idx-3]] ^ k[idx-11]
		d = t.log[d-k[idx-4]] ^ k[idx-12]
		c = t.exp[c^k[idx-5]] - k[idx-13]
		b = t.exp[b^k[idx-6]] - k[idx-14]
		a = t.log[a-k[idx-7]] ^ k[idx-15]

		idx -= 16
	}

	return Block{a, b, c, d, e, f, g, h}
}
