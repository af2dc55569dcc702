package services

import (
	"golang.org/x/crypto/bcrypt"
)

// VerificationResult is the outcome of checking a password against a
// stored hash.
type VerificationResult int

const (
	// VerificationFailed covers both a wrong password and a malformed
	// stored hash. Callers must not be able to tell the two apart.
	VerificationFailed VerificationResult = iota
	VerificationSuccess
	// VerificationNeedsRehash means the password matched but the stored
	// hash was produced with a lower cost than currently configured.
	VerificationNeedsRehash
)

// PasswordService hashes plaintext passwords for storage and verifies
// login attempts. Plaintext is never persisted or logged.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) VerificationResult
}

type passwordService struct {
	cost int
}

// NewPasswordService creates a bcrypt-backed password service. Costs
// outside bcrypt's supported range fall back to the library default.
func NewPasswordService(cost int) PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordService{cost: cost}
}

// Hash produces a salted hash. Two calls with the same input yield
// different strings; both verify.
func (s *passwordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *passwordService) Verify(hash, password string) VerificationResult {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return VerificationFailed
	}
	storedCost, err := bcrypt.Cost([]byte(hash))
	if err == nil && storedCost < s.cost {
		return VerificationNeedsRehash
	}
	return VerificationSuccess
}
