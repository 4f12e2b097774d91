// Package chat defines the conversation/message domain: the record codec,
// the repository contracts and the synchronization usecase contract.
package chat

import (
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// timestamps are stored in one canonical, round-trippable, sortable format
const timeLayout = time.RFC3339Nano

// EncodeMessage converts a message into its storage record. Kinds outside
// the closed set fail with ErrUnsupportedMessageKind rather than producing
// an empty record.
func EncodeMessage(m model.Message) (model.Record, error) {
	if !model.SupportedKind(m.Kind) {
		return model.Record{}, errors.ErrUnsupportedMessageKind
	}
	if m.ID == "" {
		return model.Record{}, errors.InvalidArg("message id is required")
	}
	if m.Sender == "" {
		return model.Record{}, errors.InvalidArg("message sender is required")
	}
	if m.SentAt.IsZero() {
		return model.Record{}, errors.InvalidArg("message timestamp is required")
	}

	r := model.Record{
		Schema: model.RecordSchemaVersion,
		ID:     m.ID,
		Type:   string(m.Kind),
		SentAt: m.SentAt.UTC().Format(timeLayout),
		Sender: string(m.Sender),
		IsRead: m.IsRead,
	}

	switch m.Kind {
	case model.KindText:
		r.Content = m.Text
	case model.KindPhoto, model.KindVideo:
		if m.Media == nil || m.Media.RemoteURL == "" {
			return model.Record{}, errors.InvalidArg("media message requires a remote url")
		}
		r.Content = m.Media.RemoteURL
		r.Width = m.Media.Width
		r.Height = m.Media.Height
	}

	return r, nil
}

// DecodeMessage validates every required field and names the first bad one.
// A malformed record is an error the caller sees, never a silently skipped
// entry.
func DecodeMessage(r model.Record) (model.Message, error) {
	if r.Schema != model.RecordSchemaVersion {
		return model.Message{}, errors.MalformedRecord("schema")
	}
	if r.ID == "" {
		return model.Message{}, errors.MalformedRecord("id")
	}
	kind := model.MessageKind(r.Type)
	if !model.SupportedKind(kind) {
		return model.Message{}, errors.MalformedRecord("type")
	}
	if r.Sender == "" {
		return model.Message{}, errors.MalformedRecord("sender")
	}
	sentAt, err := time.Parse(timeLayout, r.SentAt)
	if err != nil {
		return model.Message{}, errors.MalformedRecord("sent_at")
	}

	m := model.Message{
		ID:     r.ID,
		Sender: identity.Key(r.Sender),
		SentAt: sentAt,
		Kind:   kind,
		IsRead: r.IsRead,
	}

	switch kind {
	case model.KindText:
		m.Text = r.Content
	case model.KindPhoto, model.KindVideo:
		if r.Content == "" {
			return model.Message{}, errors.MalformedRecord("content")
		}
		m.Media = &model.Media{RemoteURL: r.Content, Width: r.Width, Height: r.Height}
	}

	return m, nil
}
