package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for stored records.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a canonical UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil && len(s) == 36
}
