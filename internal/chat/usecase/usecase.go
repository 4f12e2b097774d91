package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

// ChatUsecase coordinates message appends with the two denormalized
// conversation-index updates every send fans out into.
//
// Send state machine: Pending -> MessageAppended -> SenderIndexUpdated ->
// Complete, with Failed(stage) reachable from every non-terminal state.
type ChatUsecase struct {
	index    chat.ConversationIndex
	messages chat.MessageStore
	logger   logger.Logger
	cfg      config.SyncConfig
}

func NewChatUsecase(index chat.ConversationIndex, messages chat.MessageStore, logger logger.Logger, cfg config.SyncConfig) *ChatUsecase {
	return &ChatUsecase{index: index, messages: messages, logger: logger, cfg: cfg}
}

func (uc *ChatUsecase) CreateConversation(ctx context.Context, cmd chat.CreateConversationCommand) (string, error) {
	if cmd.Initiator == "" || cmd.Counterpart == "" {
		return "", errors.ErrInvalidIdentity
	}
	if cmd.Initiator == cmd.Counterpart {
		return "", errors.ErrSelfConversation
	}

	msg, err := uc.prepare(cmd.FirstMessage, cmd.Initiator)
	if err != nil {
		return "", err
	}

	conversationID := model.ConversationID(msg.ID)
	latest := model.Snapshot(msg)

	if err := uc.runStage(ctx, chat.StageMessageAppend, func(c context.Context) error {
		return uc.messages.Append(c, conversationID, msg)
	}); err != nil {
		return "", err
	}

	// the message is committed; a caller cancel must not leave the two
	// indices diverged half-way
	detached := context.WithoutCancel(ctx)

	initiatorView := model.Conversation{
		ID:          conversationID,
		Counterpart: cmd.Counterpart,
		DisplayName: cmd.CounterpartName,
		Latest:      latest,
	}
	if err := uc.runStage(detached, chat.StageSenderIndex, func(c context.Context) error {
		return uc.index.Upsert(c, cmd.Initiator, initiatorView)
	}); err != nil {
		return conversationID, errors.PartialSync(chat.StageSenderIndex, uc.retryable(err), err)
	}

	counterpartView := model.Conversation{
		ID:          conversationID,
		Counterpart: cmd.Initiator,
		DisplayName: cmd.InitiatorName,
		Latest:      latest,
	}
	if err := uc.runStage(detached, chat.StageCounterpartIndex, func(c context.Context) error {
		return uc.index.Upsert(c, cmd.Counterpart, counterpartView)
	}); err != nil {
		return conversationID, errors.PartialSync(chat.StageCounterpartIndex, uc.retryable(err), err)
	}

	return conversationID, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, sender identity.Key, cmd chat.SendMessageCommand) error {
	if sender == "" || cmd.Counterpart == "" {
		return errors.ErrInvalidIdentity
	}
	if cmd.ConversationID == "" {
		return errors.InvalidArg("conversation id is required")
	}

	msg, err := uc.prepare(cmd.Message, sender)
	if err != nil {
		return err
	}

	// cancellation is honoured up to the moment the append commits
	if err := ctx.Err(); err != nil {
		return errors.ErrSendCancelled
	}

	if err := uc.runStage(ctx, chat.StageMessageAppend, func(c context.Context) error {
		return uc.messages.Append(c, cmd.ConversationID, msg)
	}); err != nil {
		return err
	}

	detached := context.WithoutCancel(ctx)
	latest := model.Snapshot(msg)

	if err := uc.runStage(detached, chat.StageSenderIndex, func(c context.Context) error {
		return uc.index.UpdateLatestMessage(c, sender, cmd.ConversationID, latest)
	}); err != nil {
		return errors.PartialSync(chat.StageSenderIndex, uc.retryable(err), err)
	}

	if err := uc.runStage(detached, chat.StageCounterpartIndex, func(c context.Context) error {
		return uc.index.UpdateLatestMessage(c, cmd.Counterpart, cmd.ConversationID, latest)
	}); err != nil {
		return errors.PartialSync(chat.StageCounterpartIndex, uc.retryable(err), err)
	}

	return nil
}

func (uc *ChatUsecase) RedriveCounterpartIndex(ctx context.Context, cmd chat.SendMessageCommand) error {
	if cmd.ConversationID == "" || cmd.Counterpart == "" {
		return errors.InvalidArg("conversation id and counterpart are required")
	}

	// the committed log, not the caller, decides what the preview shows
	msg := cmd.Message
	if msg.ID == "" {
		opCtx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
		msgs, err := uc.messages.ListAll(opCtx, cmd.ConversationID)
		cancel()
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return errors.ErrConversationNotFound
		}
		msg = msgs[len(msgs)-1]
	}

	latest := model.Snapshot(msg)
	if err := uc.runStage(ctx, chat.StageCounterpartIndex, func(c context.Context) error {
		return uc.index.UpdateLatestMessage(c, cmd.Counterpart, cmd.ConversationID, latest)
	}); err != nil {
		return errors.PartialSync(chat.StageCounterpartIndex, uc.retryable(err), err)
	}
	return nil
}

func (uc *ChatUsecase) ListConversations(ctx context.Context, owner identity.Key) ([]model.Conversation, error) {
	opCtx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()
	return uc.index.ListAll(opCtx, owner)
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	opCtx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()
	return uc.messages.ListAll(opCtx, conversationID)
}

func (uc *ChatUsecase) WatchConversations(ctx context.Context, owner identity.Key) (<-chan []model.Conversation, error) {
	return uc.index.Watch(ctx, owner)
}

// prepare validates the outgoing message and fills in the generated fields.
func (uc *ChatUsecase) prepare(msg model.Message, sender identity.Key) (model.Message, error) {
	if msg.Sender == "" {
		msg.Sender = sender
	}
	if !model.SupportedKind(msg.Kind) {
		return model.Message{}, errors.ErrUnsupportedMessageKind
	}
	if msg.Kind == model.KindText && strings.TrimSpace(msg.Text) == "" {
		return model.Message{}, errors.ErrEmptyMessage
	}
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}
	if msg.ID == "" {
		msg.ID = model.NewMessageID(msg.Sender, msg.SentAt)
	}
	return msg, nil
}

// runStage applies the per-operation timeout and retries retryable failures
// with exponential backoff before giving up.
func (uc *ChatUsecase) runStage(ctx context.Context, stage string, op func(context.Context) error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 50 * time.Millisecond
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, uc.cfg.MaxRetries), ctx)

	err := backoff.Retry(func() error {
		opCtx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
		defer cancel()

		err := op(opCtx)
		if err == nil {
			return nil
		}
		if uc.retryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}, bo)

	if err != nil {
		uc.logger.Error("sync stage failed", "stage", stage, "err", err)
	}
	return err
}

func (uc *ChatUsecase) retryable(err error) bool {
	switch errors.CodeOf(err) {
	case errors.CodeDeadlineExceeded, errors.CodeUnavailable, errors.CodeAborted, errors.CodeUnknown:
		return true
	}
	return false
}
