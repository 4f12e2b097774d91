// Package identity derives the storage-safe key that addresses all per-user
// state in the document store.
package identity

import (
	"regexp"
	"strings"

	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// Key is a normalized identity. It is the sole identity used for storage
// paths and is never reversed back into the original email.
type Key string

func (k Key) String() string { return string(k) }

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Normalize derives a Key from an email address: trimmed, lowercased, with
// every '.' and '@' replaced by '-'. Normalization is deterministic; inputs
// that are not email-shaped are rejected rather than silently keyed.
func Normalize(email string) (Key, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return "", errors.ErrInvalidIdentity
	}

	safe := strings.ReplaceAll(email, ".", "-")
	safe = strings.ReplaceAll(safe, "@", "-")
	return Key(safe), nil
}

// ProfilePicFileName mirrors the storage naming used for profile pictures.
func (k Key) ProfilePicFileName() string {
	return string(k) + "_profile_pic.png"
}
