package system

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

type UUIDv7Generator struct{}

func (g *UUIDv7Generator) New() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("UUIDv7Generator.New: %w", err)
	}

	return id, nil
}

// CodeGenerator produces numeric verification codes of fixed length.
type CodeGenerator struct{}

func (g *CodeGenerator) New(digits int) (string, error) {
	if digits <= 0 {
		return "", fmt.Errorf("CodeGenerator.New: digits must be positive")
	}
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("CodeGenerator.New: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

type TimeGenerator struct{}

func (g *TimeGenerator) Now() time.Time {
	return time.Now().UTC()
}
