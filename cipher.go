package safer

import "crypto/cipher"

// Cipher is a SAFER SK block cipher bound to one key. It implements
// cipher.Block and is safe for concurrent use.
type Cipher struct {
	table Table
	key   KeySchedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates a SAFER SK cipher with the default round count for the
// key length: SK-64 with 8 rounds for keys of up to 8 bytes, SK-128 with 10
// rounds otherwise.
func NewCipher(key []byte) (*Cipher, error) {
	return NewCipherWithRounds(key, defaultRounds(key))
}

// NewCipherWithRounds creates a SAFER SK cipher with an explicit round count.
// Counts above MaxRounds are clamped.
func NewCipherWithRounds(key []byte, rounds int) (*Cipher, error) {
	c := &Cipher{table: *NewTable()}
	ks, err := ExpandKeyRounds(&c.table, key, rounds)
	if err != nil {
		return nil, err
	}
	c.key = *ks
	clear(ks.subkeys[:])
	return c, nil
}

// BlockSize returns the SAFER block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Rounds returns the number of rounds the cipher runs.
func (c *Cipher) Rounds() int {
	c.check()
	return c.key.rounds
}

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.check()
	if len(src) < BlockSize {
		panic("safer: input not full block")
	}
	if len(dst) < BlockSize {
		panic("safer: output not full block")
	}
	out := EncryptBlock(&c.table, &c.key, Block(src[:BlockSize]))
	copy(dst, out[:])
}

// Decrypt decrypts the first block of src into dst. dst and src may overlap
// entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.check()
	if len(src) < BlockSize {
		panic("safer: input not full block")
	}
	if len(dst) < BlockSize {
		panic("safer: output not full block")
	}
	out := DecryptBlock(&c.table, &c.key, Block(src[:BlockSize]))
	copy(dst, out[:])
}

func (c *Cipher) check() {
	if c == nil {
		panic(ErrNilCipher.Error())
	}
}
