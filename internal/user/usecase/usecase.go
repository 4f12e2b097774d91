package usecase

import (
	"context"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user/model"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger}
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if len(cmd.Password) < 8 {
		return nil, errors.InvalidArg("password must be at least 8 characters")
	}

	key, err := identity.Normalize(cmd.Email)
	if err != nil {
		return nil, err
	}

	if exists, err := uc.repo.UserExists(ctx, key); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.Internal("internal server error")
	}

	u := &model.User{
		Username:     cmd.Username,
		Email:        key,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			return nil, errors.ErrEmailTaken
		}
		uc.logger.Errorf("error while saving user: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return toDTO(u), nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.UserDTO, error) {
	key, err := identity.Normalize(cmd.Email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	u, err := uc.repo.GetUser(ctx, key)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return toDTO(u), nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, key identity.Key) (*user.UserDTO, error) {
	u, err := uc.repo.GetUser(ctx, key)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (uc *UserUsecase) SetProfilePicURL(ctx context.Context, key identity.Key, url string) error {
	if url == "" {
		return errors.InvalidArg("profile picture url is required")
	}
	return uc.repo.UpdateProfilePicURL(ctx, key, url)
}

func toDTO(u *model.User) *user.UserDTO {
	return &user.UserDTO{
		Username:      u.Username,
		Email:         u.Email,
		HighScore:     u.HighScore,
		ProfilePicURL: u.ProfilePicURL,
	}
}
