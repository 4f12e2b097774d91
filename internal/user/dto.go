package user

import "github.com/Mahmoudyf96/EliteQuiz/internal/identity"

// NOTE: commands travel from handler to usecase

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

// UserDTO travels from usecase to handler; it never carries the hash.
type UserDTO struct {
	Username      string       `json:"username"`
	Email         identity.Key `json:"email"`
	HighScore     int          `json:"high_score"`
	ProfilePicURL string       `json:"profile_pic_url,omitempty"`
}
