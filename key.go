package safer

import (
	"fmt"
	"math/bits"
)

// KeySchedule is an expanded SAFER SK key. Only the first Len() bytes of the
// backing array are meaningful. A KeySchedule is immutable once built and may
// be copied by value.
type KeySchedule struct {
	rounds  int
	subkeys [ScheduleSize]byte
}

// ExpandKey expands key with the default round count: SK64DefaultRounds for
// keys of up to 8 bytes, SK128DefaultRounds otherwise.
func ExpandKey(t *Table, key []byte) (*KeySchedule, error) {
	return ExpandKeyRounds(t, key, defaultRounds(key))
}

func defaultRounds(key []byte) int {
	if len(key) > BlockSize {
		return SK128DefaultRounds
	}
	return SK64DefaultRounds
}

// ExpandKeyRounds expands key for the given number of rounds. Round counts
// above MaxRounds are clamped; counts below 1 return ErrInvalidRoundCount.
func ExpandKeyRounds(t *Table, key []byte, rounds int) (*KeySchedule, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("expand key with %d rounds: %w", rounds, ErrInvalidRoundCount)
	}
	ks := &KeySchedule{rounds: min(rounds, MaxRounds)}

	var k1, k2 [BlockSize]byte
	defer clear(k1[:])
	defer clear(k2[:])
	splitKey(&k1, &k2, key)

	ks.expand(t, &k1, &k2)
	return ks, nil
}

// splitKey derives the two key blocks. Keys of up to 8 bytes are zero-padded
// and duplicated; longer keys fill both blocks in order, zero-padded or
// truncated to 16 bytes.
func splitKey(k1, k2 *[BlockSize]byte, key []byte) {
	if len(key) <= BlockSize {
		copy(k1[:], key)
		*k2 = *k1
		return
	}
	n := copy(k1[:], key)
	copy(k2[:], key[n:])
}

// expand fills the subkey array from the two key blocks. ka and kb carry a
// ninth lane holding the XOR of the other eight.
func (ks *KeySchedule) expand(t *Table, k1, k2 *[BlockSize]byte) {
	var ka, kb [BlockSize + 1]byte
	defer clear(ka[:])
	defer clear(kb[:])

	idx := 0
	for i := 0; i < BlockSize; i++ {
		ka[i] = bits.RotateLeft8(k1[i], 5)
		ka[BlockSize] ^= ka[i]

		kb[i] = k2[i]
		kb[BlockSize] ^= kb[i]
		ks.subkeys[idx] = k2[i]
		idx++
	}

	for r := 1; r <= ks.rounds; r++ {
		for j := range ka {
			ka[j] = bits.RotateLeft8(ka[j], 6)
			kb[j] = bits.RotateLeft8(kb[j], 6)
		}
		for j := 0; j < BlockSize; j++ {
			ks.subkeys[idx] = ka[(j+2*r-1)%len(ka)] + t.Exp(int(t.Exp(18*r+j+1)))
			idx++
		}
		for j := 0; j < BlockSize; j++ {
			ks.subkeys[idx] = kb[(j+2*r)%len(kb)] + t.Exp(int(t.Exp(18*r+j+10)))
			idx++
		}
	}
}

// Rounds returns the resolved round count.
func (ks *KeySchedule) Rounds() int { return ks.rounds }

// Len returns the number of subkey bytes in use, 8 + 16*Rounds().
func (ks *KeySchedule) Len() int { return BlockSize * (1 + 2*ks.rounds) }

// At returns subkey byte i. It panics if i is outside [0, Len()).
func (ks *KeySchedule) At(i int) byte {
	if i < 0 || i >= ks.Len() {
		panic(fmt.Sprintf("safer: subkey index %d out of range [0, %d)", i, ks.Len()))
	}
	return ks.subkeys[i]
}

// Bytes returns a copy of the subkeys in use.
func (ks *KeySchedule) Bytes() []byte {
	out := make([]byte, ks.Len())
	copy(out, ks.subkeys[:])
	return out
}
