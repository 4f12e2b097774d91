package chat

import (
	"context"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

// ChatUsecase is the synchronization coordinator: the only component that
// upholds the cross-entity invariant that both participants' latest-message
// previews reflect the same underlying message after any send.
type ChatUsecase interface {
	// CreateConversation appends the first message and writes both
	// participants' index entries. Idempotent on the first message id:
	// calling twice yields the same conversation id and no duplicates.
	CreateConversation(ctx context.Context, cmd CreateConversationCommand) (conversationID string, err error)

	// SendMessage appends and then updates the sender's and counterpart's
	// previews, in that order, aborting before any stage that follows a
	// failure. A counterpart failure after the sender preview committed is
	// surfaced as PartialSyncError{Retryable: true}.
	SendMessage(ctx context.Context, sender identity.Key, cmd SendMessageCommand) error

	// RedriveCounterpartIndex re-drives only the counterpart preview update
	// after a retryable partial sync.
	RedriveCounterpartIndex(ctx context.Context, cmd SendMessageCommand) error

	ListConversations(ctx context.Context, owner identity.Key) ([]model.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)

	WatchConversations(ctx context.Context, owner identity.Key) (<-chan []model.Conversation, error)
}
