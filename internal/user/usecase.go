package user

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

type UserUsecase interface {
	// Register creates the account with a freshly normalized identity key
	// and a bcrypt password hash.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Login verifies the password against the stored hash.
	Login(ctx context.Context, cmd LoginCommand) (*UserDTO, error)

	GetProfile(ctx context.Context, key identity.Key) (*UserDTO, error)

	SetProfilePicURL(ctx context.Context, key identity.Key, url string) error
}
