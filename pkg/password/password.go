package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is enforced by callers before hashing.
const MinLength = 6

// Cost matches the salt rounds the records system has always used.
const Cost = 10

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plain matches hashed. A malformed hash counts as a
// mismatch; other failures are returned.
func Compare(hashed, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrHashTooShort):
		return false, nil
	default:
		return false, err
	}
}
