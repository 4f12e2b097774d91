package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/store"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// MessageRepo keeps the ordered record list of one conversation as a single
// document at "{conversationID}/messages". The backing store has no native
// append, so Append is read-all + compare-and-set write-all; the version
// token turns the historical lost-update hazard into a retryable conflict.
type MessageRepo struct {
	store  store.DocumentStore
	logger *logger.Logger
	cfg    config.SyncConfig
}

func NewMessageRepo(store store.DocumentStore, logger *logger.Logger, cfg config.SyncConfig) *MessageRepo {
	return &MessageRepo{store: store, logger: logger, cfg: cfg}
}

func messagesPath(conversationID string) string {
	return conversationID + "/messages"
}

func (r *MessageRepo) Append(ctx context.Context, conversationID string, msg model.Message) error {
	rec, err := chat.EncodeMessage(msg)
	if err != nil {
		return err
	}
	path := messagesPath(conversationID)

	return casRetry(ctx, r.cfg.MaxRetries, func() error {
		var records []model.Record
		version, err := store.GetJSON(ctx, r.store, path, &records, true)
		if err != nil {
			return err
		}

		for _, existing := range records {
			if existing.ID == msg.ID {
				// redelivery of an already committed message
				return nil
			}
		}
		records = append(records, rec)

		_, err = store.SwapJSON(ctx, r.store, path, records, version)
		return err
	})
}

func (r *MessageRepo) ListAll(ctx context.Context, conversationID string) ([]model.Message, error) {
	var records []model.Record
	if _, err := store.GetJSON(ctx, r.store, messagesPath(conversationID), &records, true); err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(records))
	for _, rec := range records {
		msg, err := chat.DecodeMessage(rec)
		if err != nil {
			// a malformed record is data loss the caller must see
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// casRetry runs op until it succeeds, fails terminally, or exhausts the
// retry budget. Only write conflicts are retried; the op re-reads the
// document on every attempt.
func casRetry(ctx context.Context, maxRetries uint64, op func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 10 * time.Millisecond
	exp.MaxInterval = 500 * time.Millisecond
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, maxRetries), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if appErrors.CodeOf(err) == appErrors.CodeAborted {
			return err
		}
		return backoff.Permanent(err)
	}, bo)
}

func decodeJSON(raw json.RawMessage, out any) error {
	return json.Unmarshal(raw, out)
}
