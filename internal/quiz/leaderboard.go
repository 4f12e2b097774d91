package quiz

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Mahmoudyf96/EliteQuiz/internal/quiz/model"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

const leaderboardKey = "quiz:leaderboard"

// Leaderboard keeps the global high scores in a redis sorted set.
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

// Record stores the score if it beats the member's current one (ZADD GT).
func (l *Leaderboard) Record(ctx context.Context, username string, score int) error {
	err := l.rdb.ZAddGT(ctx, leaderboardKey, redis.Z{
		Score:  float64(score),
		Member: username,
	}).Err()
	if err != nil {
		return appErrors.Wrap(appErrors.CodeUnavailable, "failed to record score", err)
	}
	return nil
}

// Top returns the n best scores, highest first.
func (l *Leaderboard) Top(ctx context.Context, n int64) ([]model.LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, appErrors.Wrap(appErrors.CodeUnavailable, "failed to read leaderboard", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		name, _ := row.Member.(string)
		entries = append(entries, model.LeaderboardEntry{Username: name, Score: int(row.Score)})
	}
	return entries, nil
}
