// Package quiz fetches trivia content and maintains high scores.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/internal/quiz/model"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// maxBatch is the largest amount the trivia API serves per request.
const maxBatch = 1000

// Client fetches quiz batches from an opentdb-compatible API.
type Client struct {
	httpClient *http.Client
	cfg        config.QuizConfig
	logger     *logger.Logger
}

func NewClient(cfg config.QuizConfig, logger *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
		logger:     logger,
	}
}

// Fetch returns up to amount multiple-choice questions. Amounts outside
// 1..1000 are clamped to the API limit.
func (c *Client) Fetch(ctx context.Context, amount int, difficulty string) ([]model.Quiz, error) {
	if amount <= 0 || amount > maxBatch {
		amount = maxBatch
	}
	if difficulty == "" {
		difficulty = c.cfg.Difficulty
	}

	q := url.Values{}
	q.Set("amount", strconv.Itoa(amount))
	q.Set("difficulty", difficulty)
	q.Set("type", "multiple")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.ErrQuizFetchFailed(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrQuizFetchFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ErrQuizFetchFailed(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload model.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.ErrQuizFetchFailed(err)
	}
	if payload.ResponseCode != 0 {
		return nil, errors.ErrQuizFetchFailed(fmt.Errorf("api response code %d", payload.ResponseCode))
	}

	return payload.Results, nil
}
