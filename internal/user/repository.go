package user

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user/model"
)

type UserRepository interface {
	// CreateUser writes the account document at the identity root path.
	// An existing document fails with ErrEmailTaken.
	CreateUser(ctx context.Context, user *model.User) error

	GetUser(ctx context.Context, key identity.Key) (*model.User, error)
	UserExists(ctx context.Context, key identity.Key) (bool, error)

	// UpdateHighScore stores newScore only if it beats the current one and
	// returns the effective high score either way.
	UpdateHighScore(ctx context.Context, key identity.Key, newScore int) (int, error)

	UpdateProfilePicURL(ctx context.Context, key identity.Key, url string) error
}
