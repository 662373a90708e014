package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Match compares the username exactly and the password in constant time.
// A configured bcrypt hash is checked with bcrypt instead.
func (c Credentials) Match(username, password string) bool {
	if !c.Configured() {
		return false
	}

	usernameOK := ConstantTimeEqual([]byte(username), []byte(c.Username))

	var passwordOK bool
	if isBcryptHash(c.Password) {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
	} else {
		passwordOK = ConstantTimeEqual([]byte(password), []byte(c.Password))
	}

	return usernameOK && passwordOK
}

func isBcryptHash(s string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}
