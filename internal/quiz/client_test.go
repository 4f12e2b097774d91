package quiz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	l, err := logger.NewLogger(&config.Config{})
	require.NoError(t, err)

	return NewClient(config.QuizConfig{BaseURL: srv.URL, Amount: 1000, Difficulty: "easy"}, l), srv
}

func TestClient_Fetch(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var gotQuery map[string][]string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"response_code": 0,
				"results": [{
					"category": "General Knowledge",
					"type": "multiple",
					"difficulty": "easy",
					"question": "What is the capital of Canada?",
					"correct_answer": "Ottawa",
					"incorrect_answers": ["Toronto", "Vancouver", "Montreal"]
				}]
			}`))
		})

		quizzes, err := client.Fetch(context.Background(), 50, "easy")
		require.NoError(t, err)
		require.Len(t, quizzes, 1)
		assert.Equal(t, "Ottawa", quizzes[0].CorrectAnswer)
		assert.Len(t, quizzes[0].IncorrectAnswers, 3)

		assert.Equal(t, []string{"50"}, gotQuery["amount"])
		assert.Equal(t, []string{"easy"}, gotQuery["difficulty"])
		assert.Equal(t, []string{"multiple"}, gotQuery["type"])
	})

	t.Run("amount clamped to api limit", func(t *testing.T) {
		var gotAmount string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAmount = r.URL.Query().Get("amount")
			w.Write([]byte(`{"response_code": 0, "results": []}`))
		})

		_, err := client.Fetch(context.Background(), 5000, "easy")
		require.NoError(t, err)
		assert.Equal(t, "1000", gotAmount)
	})

	t.Run("sad path - api error code", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response_code": 2, "results": []}`))
		})

		_, err := client.Fetch(context.Background(), 10, "easy")
		assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
	})

	t.Run("sad path - http failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.Fetch(context.Background(), 10, "easy")
		assert.Equal(t, appErrors.CodeUnavailable, appErrors.CodeOf(err))
	})
}
