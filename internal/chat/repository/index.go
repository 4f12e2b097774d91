package repository

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/internal/store"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// ConversationIndexRepo keeps each user's conversation summaries as one
// document at "{identity}/conversations". Every mutation is a read plus a
// versioned compare-and-set, retried on conflict, so concurrent writers
// cannot overwrite each other's entries.
type ConversationIndexRepo struct {
	store  store.DocumentStore
	logger *logger.Logger
	cfg    config.SyncConfig
}

func NewConversationIndexRepo(store store.DocumentStore, logger *logger.Logger, cfg config.SyncConfig) *ConversationIndexRepo {
	return &ConversationIndexRepo{store: store, logger: logger, cfg: cfg}
}

func indexPath(owner identity.Key) string {
	return string(owner) + "/conversations"
}

func (r *ConversationIndexRepo) Upsert(ctx context.Context, owner identity.Key, convo model.Conversation) error {
	path := indexPath(owner)

	return casRetry(ctx, r.cfg.MaxRetries, func() error {
		var list []model.Conversation
		version, err := store.GetJSON(ctx, r.store, path, &list, true)
		if err != nil {
			return err
		}

		for _, existing := range list {
			if existing.ID == convo.ID {
				// already created; keep the possibly newer entry
				return nil
			}
		}
		list = append(list, convo)

		_, err = store.SwapJSON(ctx, r.store, path, list, version)
		return err
	})
}

func (r *ConversationIndexRepo) UpdateLatestMessage(ctx context.Context, owner identity.Key, conversationID string, latest model.LatestMessage) error {
	path := indexPath(owner)

	return casRetry(ctx, r.cfg.MaxRetries, func() error {
		var list []model.Conversation
		version, err := store.GetJSON(ctx, r.store, path, &list, true)
		if err != nil {
			return err
		}

		found := false
		for i := range list {
			if list[i].ID == conversationID {
				list[i].Latest = latest
				found = true
				break
			}
		}
		if !found {
			return appErrors.ErrConversationNotFound
		}

		_, err = store.SwapJSON(ctx, r.store, path, list, version)
		return err
	})
}

func (r *ConversationIndexRepo) ListAll(ctx context.Context, owner identity.Key) ([]model.Conversation, error) {
	var list []model.Conversation
	if _, err := store.GetJSON(ctx, r.store, indexPath(owner), &list, true); err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Conversation{}
	}
	return list, nil
}

func (r *ConversationIndexRepo) Watch(ctx context.Context, owner identity.Key) (<-chan []model.Conversation, error) {
	events, err := r.store.Watch(ctx, indexPath(owner))
	if err != nil {
		return nil, err
	}

	out := make(chan []model.Conversation, 8)
	go func() {
		defer close(out)
		for ev := range events {
			var list []model.Conversation
			if err := decodeJSON(ev.Value, &list); err != nil {
				r.logger.Error("corrupt conversation index event", "path", ev.Path, "err", err)
				continue
			}
			select {
			case out <- list:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
