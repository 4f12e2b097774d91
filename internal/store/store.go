// Package store provides the document-tree backing store used by every
// repository: slash-delimited paths, whole-value reads and writes, and a
// subscribe variant for continuous reads.
package store

import (
	"context"
	"encoding/json"

	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// Document is one stored value plus its version token. Versions start at 1
// and increase by one on every write to the same path.
type Document struct {
	Path    string
	Value   json.RawMessage
	Version int64
}

// Event is delivered to watchers after a committed write.
type Event struct {
	Path    string
	Value   json.RawMessage
	Version int64
}

// DocumentStore is the backing store contract.
//
// Requirements:
//   - Get is a one-shot point read; absence is ErrDocumentNotFound
//   - Set is a whole-value write (no partial merge)
//   - CompareAndSet only writes when the stored version still equals
//     expected; expected == 0 means "create, path must be absent". A stale
//     expected fails with ErrWriteConflict so callers can re-read and retry
//     instead of losing a concurrent writer's update
//   - Watch streams committed writes under a path prefix until ctx ends
type DocumentStore interface {
	Get(ctx context.Context, path string) (*Document, error)
	Set(ctx context.Context, path string, value json.RawMessage) error
	CompareAndSet(ctx context.Context, path string, value json.RawMessage, expected int64) (int64, error)
	Watch(ctx context.Context, prefix string) (<-chan Event, error)
}

// GetJSON reads path and unmarshals it into out, returning the version token
// for a later CompareAndSet. A missing document returns version 0 and no
// error when absentOK is true.
func GetJSON(ctx context.Context, s DocumentStore, path string, out any, absentOK bool) (int64, error) {
	doc, err := s.Get(ctx, path)
	if err != nil {
		if absentOK && errors.CodeOf(err) == errors.CodeNotFound {
			return 0, nil
		}
		return 0, err
	}
	if err := json.Unmarshal(doc.Value, out); err != nil {
		return 0, errors.Wrap(errors.CodeInternal, "corrupt document at "+path, err)
	}
	return doc.Version, nil
}

// SwapJSON marshals v and writes it with CompareAndSet.
func SwapJSON(ctx context.Context, s DocumentStore, path string, v any, expected int64) (int64, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0, errors.Wrap(errors.CodeInternal, "failed to marshal document for "+path, err)
	}
	return s.CompareAndSet(ctx, path, raw, expected)
}
