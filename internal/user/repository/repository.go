package repository

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/internal/store"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user/model"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// UserRepo keeps each account as one document at the bare identity path,
// alongside that user's "{identity}/conversations" subtree.
type UserRepo struct {
	store  store.DocumentStore
	logger *logger.Logger
}

func NewUserRepo(store store.DocumentStore, logger *logger.Logger) *UserRepo {
	return &UserRepo{store: store, logger: logger}
}

func userPath(key identity.Key) string { return string(key) }

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if _, err := store.SwapJSON(ctx, r.store, userPath(user.Email), user, 0); err != nil {
		if appErrors.CodeOf(err) == appErrors.CodeAborted {
			return appErrors.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepo) GetUser(ctx context.Context, key identity.Key) (*model.User, error) {
	user := new(model.User)
	if _, err := store.GetJSON(ctx, r.store, userPath(key), user, false); err != nil {
		if appErrors.CodeOf(err) == appErrors.CodeNotFound {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) UserExists(ctx context.Context, key identity.Key) (bool, error) {
	_, err := r.store.Get(ctx, userPath(key))
	if err != nil {
		if appErrors.CodeOf(err) == appErrors.CodeNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *UserRepo) UpdateHighScore(ctx context.Context, key identity.Key, newScore int) (int, error) {
	for {
		user := new(model.User)
		version, err := store.GetJSON(ctx, r.store, userPath(key), user, false)
		if err != nil {
			if appErrors.CodeOf(err) == appErrors.CodeNotFound {
				return 0, appErrors.ErrUserNotFound
			}
			return 0, err
		}

		if newScore <= user.HighScore {
			return user.HighScore, nil
		}

		user.HighScore = newScore
		if _, err := store.SwapJSON(ctx, r.store, userPath(key), user, version); err != nil {
			if appErrors.CodeOf(err) == appErrors.CodeAborted {
				// another device updated the score, re-read and re-compare
				continue
			}
			return 0, err
		}
		return newScore, nil
	}
}

func (r *UserRepo) UpdateProfilePicURL(ctx context.Context, key identity.Key, url string) error {
	for {
		user := new(model.User)
		version, err := store.GetJSON(ctx, r.store, userPath(key), user, false)
		if err != nil {
			if appErrors.CodeOf(err) == appErrors.CodeNotFound {
				return appErrors.ErrUserNotFound
			}
			return err
		}

		user.ProfilePicURL = url
		if _, err := store.SwapJSON(ctx, r.store, userPath(key), user, version); err != nil {
			if appErrors.CodeOf(err) == appErrors.CodeAborted {
				continue
			}
			return err
		}
		return nil
	}
}
