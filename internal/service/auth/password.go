package auth

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KamylovMurad/API-hotel/internal/domain"
)

const minPasswordLength = 8

// ValidatePassword applies the registration password policy: minimum
// length, not entirely numeric, not too similar to the username.
func ValidatePassword(password, username string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must contain at least %d characters", domain.ErrWeakPassword, minPasswordLength)
	}
	if isNumeric(password) {
		return fmt.Errorf("%w: must not be entirely numeric", domain.ErrWeakPassword)
	}
	if len(username) >= 3 && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return fmt.Errorf("%w: must not contain the username", domain.ErrWeakPassword)
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
