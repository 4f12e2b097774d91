package chat

import (
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

// NOTE: commands travel from handler to usecase

type CreateConversationCommand struct {
	Initiator       identity.Key
	InitiatorName   string
	Counterpart     identity.Key
	CounterpartName string
	FirstMessage    model.Message
}

type SendMessageCommand struct {
	ConversationID string
	Counterpart    identity.Key
	Message        model.Message
}

// Send stages, reported through PartialSyncError when a later stage fails
// after an earlier one committed.
const (
	StageMessageAppend    = "message_append"
	StageSenderIndex      = "sender_index"
	StageCounterpartIndex = "counterpart_index"
)
