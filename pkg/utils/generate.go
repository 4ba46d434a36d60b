package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateResetCode creates a numeric code of the given length.
func GenerateResetCode(length int) string {
	if length <= 0 {
		length = 6
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits)
}
