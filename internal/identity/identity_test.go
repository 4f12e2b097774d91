package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("replaces dots and at signs", func(t *testing.T) {
		key, err := Normalize("mahmoudyf96@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, Key("mahmoudyf96-gmail-com"), key)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := Normalize("a.b@c.com")
		require.NoError(t, err)
		b, err := Normalize("a.b@c.com")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		a, err := Normalize("  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, Key("alice-example-com"), a)
	})

	t.Run("pre-sanitized lookalike is rejected as input", func(t *testing.T) {
		key, err := Normalize("a.b@c.com")
		require.NoError(t, err)
		assert.Equal(t, Key("a-b-c-com"), key)

		// the bare key shape is not an email, so nobody can claim an
		// existing key by submitting it directly
		_, err = Normalize("a-b-c-com")
		assert.Error(t, err)
	})

	t.Run("rejects non-email input", func(t *testing.T) {
		for _, in := range []string{"", "no-at-sign", "two@@signs.com", "spaces in@mail.com"} {
			_, err := Normalize(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestProfilePicFileName(t *testing.T) {
	key, err := Normalize("bob@mail.org")
	require.NoError(t, err)
	assert.Equal(t, "bob-mail-org_profile_pic.png", key.ProfilePicFileName())
}
