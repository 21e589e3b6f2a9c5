package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/aidarkhanov/nanoid/v2"
)

const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const ID_LENGTH = 21

// NewID generates a record id
func NewID() (string, error) {
	return nanoid.GenerateString(VALID_NANOID_CHAR, ID_LENGTH)
}

// RandomTokenString generates random hex token
func RandomTokenString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Timestamp formats now as the stored timestamp representation
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp parses a stored timestamp; zero time on malformed input so
// damaged records sort first instead of failing the request
func ParseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
