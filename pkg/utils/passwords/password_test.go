package passwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	plaintext := "password123"
	pass, err := NewPassword(PasswordInput{Password: plaintext})
	require.NoError(t, err)
	require.True(t, IsArgonEncoded(pass.String()))

	match, err := pass.ComparePasswordAndHash(PasswordInput{Password: plaintext})
	require.NoError(t, err)
	require.True(t, match)

	match, err = pass.ComparePasswordAndHash(PasswordInput{Password: strings.ToUpper(plaintext)})
	require.NoError(t, err)
	require.False(t, match)
}

func TestNewPassword_TooShort(t *testing.T) {
	t.Parallel()
	_, err := NewPassword(PasswordInput{Password: "short"})
	require.Error(t, err)
}

func TestIsArgonEncoded(t *testing.T) {
	t.Parallel()

	require.True(t, IsArgonEncoded("$argon2id$v=19$m=65536,t=3,p=2$abc$def"))
	require.False(t, IsArgonEncoded(""))
	require.False(t, IsArgonEncoded("$argon2i$v=19$m=65536,t=3,p=2$abc$def"))
	require.False(t, IsArgonEncoded("bcrypt:$2a$10$..."))
}

func TestParsePassword(t *testing.T) {
	t.Parallel()

	pass, err := NewPassword(PasswordInput{Password: "correct horse"})
	require.NoError(t, err)

	parsed, err := ParsePassword("  " + pass.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, pass, parsed)

	_, err = ParsePassword("plaintext")
	require.ErrorIs(t, err, ErrNotArgonEncoded)

	_, err = ParsePassword("$argon2id$garbage")
	require.Error(t, err)
}
