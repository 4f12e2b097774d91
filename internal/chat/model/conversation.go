package model

import (
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

// LatestMessage is the denormalized preview of the most recent message,
// duplicated into both participants' index entries on every send.
type LatestMessage struct {
	SentAt time.Time   `json:"sent_at"`
	Kind   MessageKind `json:"kind"`
	Text   string      `json:"text"`
	IsRead bool        `json:"is_read"`
}

// Conversation is one participant's view of a thread. Each of the two
// participants holds its own copy inside its conversation index; keeping the
// two LatestMessage copies in agreement is the coordinator's job.
type Conversation struct {
	ID          string       `json:"id"`
	Counterpart identity.Key `json:"counterpart"`
	DisplayName string       `json:"display_name"`
	Latest      LatestMessage `json:"latest_message"`
}

// ConversationID derives the shared thread id from the first message.
// Creation keyed on this id is what makes the operation idempotent.
func ConversationID(firstMessageID string) string {
	return "conversation_" + firstMessageID
}

// Snapshot projects a message into the index preview.
func Snapshot(m Message) LatestMessage {
	return LatestMessage{
		SentAt: m.SentAt,
		Kind:   m.Kind,
		Text:   m.Summary(),
		IsRead: m.IsRead,
	}
}
