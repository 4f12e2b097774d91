package model

import (
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

// User is the account document stored at the identity root path.
type User struct {
	// Username is the display handle shown in chats and on the leaderboard.
	Username string `json:"username"`

	// Email holds the normalized identity key, never the raw address.
	Email identity.Key `json:"email"`

	PasswordHash  string `json:"password_hash"`
	HighScore     int    `json:"high_score"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
