package model

import (
	"strings"
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindPhoto MessageKind = "photo"
	KindVideo MessageKind = "video"
)

// SupportedKind reports membership in the closed kind set. Anything else is
// rejected at encode time instead of being silently dropped.
func SupportedKind(k MessageKind) bool {
	switch k {
	case KindText, KindPhoto, KindVideo:
		return true
	}
	return false
}

// Media is owned by the message that references it; it has no independent
// lifecycle.
type Media struct {
	RemoteURL string
	Width     float64
	Height    float64
}

type Message struct {
	ID     string
	Sender identity.Key
	SentAt time.Time
	Kind   MessageKind

	Text  string // kind == text
	Media *Media // kind == photo || kind == video

	IsRead bool
}

// Summary renders the one-line preview stored on conversation index entries.
// Non-text kinds keep a type tag instead of collapsing to "".
func (m Message) Summary() string {
	switch m.Kind {
	case KindPhoto:
		return "Photo"
	case KindVideo:
		return "Video"
	default:
		return m.Text
	}
}

// NewMessageID builds a sender-scoped, time-sortable id. The uuid suffix
// keeps rapid sends from the same sender collision-free; the bare
// sender+timestamp scheme collides within timestamp resolution.
func NewMessageID(sender identity.Key, sentAt time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return string(sender) + "_" + sentAt.UTC().Format(time.RFC3339Nano) + "_" + suffix
}
