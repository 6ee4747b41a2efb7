package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the shortest password accepted at registration and
// reset.
const MinPasswordLen = 6

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)

// CheckPassword enforces the length bounds bcrypt can honor.
func CheckPassword(plain string) error {
	switch {
	case len(plain) < MinPasswordLen:
		return ErrPasswordTooShort
	case len(plain) > 72:
		return ErrPasswordTooLong
	}
	return nil
}

// HashPassword returns the bcrypt hash of plain.  Costs outside bcrypt's
// range fall back to the default.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash with a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
