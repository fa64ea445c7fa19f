package passwords

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
)

// Password is an argon2id hash in its encoded form.
type Password string

var (
	params = &argon2id.Params{
		Memory:      128 * 1024,
		Iterations:  4,
		Parallelism: uint8(4),
		SaltLength:  32,
		KeyLength:   64,
	}
)

const (
	// MinPasswordLength is the minimum password length
	MinPasswordLength = 8
	// MaxPasswordLength is the maximum password length
	MaxPasswordLength = 512
)

var ErrNotArgonEncoded = errors.New("password hash is not argon2id encoded")

// PasswordInput is a struct for validating password inputs
type PasswordInput struct {
	Password string `validate:"required,min=8,max=512"`
}

// NewPassword hashes a plaintext admin password after checking its length.
func NewPassword(input PasswordInput) (Password, error) {
	if err := validator.New().Struct(input); err != nil {
		return "", err
	}

	hash, err := argon2id.CreateHash(input.Password, params)
	if err != nil {
		return "", err
	}

	return Password(hash), nil
}

// ParsePassword accepts an encoded hash read from configuration.
func ParsePassword(encoded string) (Password, error) {
	encoded = strings.TrimSpace(encoded)
	if !IsArgonEncoded(encoded) {
		return "", ErrNotArgonEncoded
	}
	if _, _, _, err := argon2id.DecodeHash(encoded); err != nil {
		return "", err
	}
	return Password(encoded), nil
}

// ComparePasswordAndHash compares the input to the password hash
func (p Password) ComparePasswordAndHash(input PasswordInput) (bool, error) {
	return argon2id.ComparePasswordAndHash(input.Password, string(p))
}

// String returns the encoded hash.
func (p Password) String() string {
	return string(p)
}

// IsArgonEncoded returns true if the input is an argon2id hash
func IsArgonEncoded(input string) bool {
	return strings.HasPrefix(input, "$argon2id$")
}
