// Package safer implements the SAFER SK-64 and SAFER SK-128 block ciphers
// (Secure And Fast Encryption Routine, strengthened key schedule).
//
// SAFER is a byte-oriented substitution-permutation network operating on
// 8-byte blocks. Each round mixes the eight lanes through exponentiation and
// logarithm tables built from the primitive root 45 modulo 257, diffuses them
// through three layers of pseudo-Hadamard transforms, and permutes the lanes.
// An output transform with a final subkey block follows the last round.
//
// # Key Sizes and Rounds
//
// Keys of up to 8 bytes select SK-64 (8 rounds by default); longer keys select
// SK-128 (10 rounds by default). Short keys are zero-padded, keys longer than
// 16 bytes are truncated to 16 bytes. An explicit round count may be supplied;
// values above MaxRounds are clamped to 13 and values below 1 are rejected with
// ErrInvalidRoundCount.
//
// # Basic Usage
//
// The low-level API keeps every piece of state explicit:
//
//	table := safer.NewTable()
//	ks, err := safer.ExpandKeyRounds(table, key, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct := safer.EncryptBlock(table, ks, safer.Block{1, 2, 3, 4, 5, 6, 7, 8})
//	pt := safer.DecryptBlock(table, ks, ct)
//
// Cipher bundles both into a crypto/cipher.Block, so the standard library
// modes of operation can be layered on top:
//
//	c, err := safer.NewCipher(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mode := cipher.NewCBCEncrypter(c, iv)
//
// This package implements only the block transform. Modes, padding and key
// derivation are left to the caller.
//
// # Security
//
// SAFER SK is a legacy design from the 1990s with a 64-bit block. It is
// provided for interoperability with existing data, not for new protocols.
// The round function uses table lookups and is not hardened against cache
// timing attacks. Intermediate key material is cleared after key expansion on
// a best-effort basis.
//
// # Thread Safety
//
// Table, KeySchedule and Cipher are immutable once constructed and safe for
// concurrent use by multiple goroutines.
package safer
