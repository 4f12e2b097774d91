package chat

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

// ConversationIndex is one user's denormalized list of conversation
// summaries, stored at "{identity}/conversations".
type ConversationIndex interface {
	// Upsert adds the conversation or replaces the entry with the same id.
	// Keying on id is what makes conversation creation idempotent.
	Upsert(ctx context.Context, owner identity.Key, convo model.Conversation) error

	// UpdateLatestMessage replaces the preview on the entry with the given
	// id. A missing entry is ErrConversationNotFound, never a silent no-op.
	UpdateLatestMessage(ctx context.Context, owner identity.Key, conversationID string, latest model.LatestMessage) error

	ListAll(ctx context.Context, owner identity.Key) ([]model.Conversation, error)

	// Watch streams the owner's full index after every committed change.
	Watch(ctx context.Context, owner identity.Key) (<-chan []model.Conversation, error)
}

// MessageStore is the per-conversation ordered message list, stored at
// "{conversationID}/messages". Append-only.
type MessageStore interface {
	// Append stores the message at the end of the collection. Appending an
	// id already present is a no-op success so retries stay safe.
	Append(ctx context.Context, conversationID string, msg model.Message) error

	ListAll(ctx context.Context, conversationID string) ([]model.Message, error)
}
