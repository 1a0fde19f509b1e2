package safer

import "errors"

var (
	// ErrInvalidRoundCount is returned when a key schedule is requested with
	// zero or a negative number of rounds.
	ErrInvalidRoundCount = errors.New("safer: invalid round count, must be at least 1")

	// ErrNilCipher is reported when a nil cipher instance is used.
	ErrNilCipher = errors.New("safer: cipher instance is nil")
)

const (
	// BlockSize is the SAFER block size in bytes.
	BlockSize = 8

	// MaxRounds is the largest supported round count. Larger requests are
	// clamped to this value.
	MaxRounds = 13

	// SK64DefaultRounds is the default round count for keys of up to 8 bytes.
	SK64DefaultRounds = 8

	// SK128DefaultRounds is the default round count for keys longer than 8 bytes.
	SK128DefaultRounds = 10

	// ScheduleSize is the capacity of an expanded key: one output block plus
	// two subkey blocks per round at MaxRounds.
	ScheduleSize = BlockSize * (1 + 2*MaxRounds)
)
