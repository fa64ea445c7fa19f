package auth

import (
	"crypto/subtle"
	"log/slog"

	"thirdcoast.systems/videomarkup/pkg/utils/passwords"
)

// Admin is the single account allowed into the admin surface.
type Admin struct {
	Username string
	Password passwords.Password
}

// Verify checks a login attempt. The password hash is compared even when the
// username is wrong so both failures take the same time.
func (a Admin) Verify(username, password string) bool {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	matches, err := a.Password.ComparePasswordAndHash(passwords.PasswordInput{Password: password})
	if err != nil {
		slog.Error("admin password hash is unusable", "error", err)
		return false
	}
	return nameOK && matches
}
