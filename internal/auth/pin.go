package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PINLength is the required number of digits in an account PIN.
const PINLength = 5

// ErrInvalidPIN reports a PIN that fails the format check.
var ErrInvalidPIN = errors.New("PIN must be a 5 digit number")

// ValidatePIN checks the raw PIN string: exactly five decimal digits.
// The check runs on the string as supplied, so leading zeros are legal.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return ErrInvalidPIN
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

// HashPIN hashes a plaintext PIN with the configured bcrypt cost.
func HashPIN(pin string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePIN verifies a plaintext PIN against its stored hash.
func ComparePIN(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
