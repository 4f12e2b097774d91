package quiz

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/internal/quiz/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// QuizUsecase serves quiz batches and applies finished-game scores to the
// account document and the leaderboard.
type QuizUsecase struct {
	client *Client
	users  user.UserRepository
	board  *Leaderboard
	logger logger.Logger
}

func NewQuizUsecase(client *Client, users user.UserRepository, board *Leaderboard, logger logger.Logger) *QuizUsecase {
	return &QuizUsecase{client: client, users: users, board: board, logger: logger}
}

func (uc *QuizUsecase) FetchQuizzes(ctx context.Context, amount int, difficulty string) ([]model.Quiz, error) {
	return uc.client.Fetch(ctx, amount, difficulty)
}

// SubmitScore returns the effective high score after the game. The account
// document is authoritative; the leaderboard is best-effort.
func (uc *QuizUsecase) SubmitScore(ctx context.Context, key identity.Key, username string, score int) (int, error) {
	high, err := uc.users.UpdateHighScore(ctx, key, score)
	if err != nil {
		return 0, err
	}

	if uc.board != nil {
		if err := uc.board.Record(ctx, username, high); err != nil {
			uc.logger.Warn("leaderboard update failed", "username", username, "err", err)
		}
	}
	return high, nil
}

func (uc *QuizUsecase) Leaderboard(ctx context.Context, n int64) ([]model.LeaderboardEntry, error) {
	if uc.board == nil {
		return []model.LeaderboardEntry{}, nil
	}
	return uc.board.Top(ctx, n)
}
