package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 when v7 generation fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
