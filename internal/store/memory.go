package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// MemoryStore is an in-process DocumentStore used by tests and local
// development. It honours the same version-token semantics as the Postgres
// implementation.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]*Document
	notifier *notifier
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]*Document),
		notifier: newNotifier(),
	}
}

func (m *MemoryStore) Get(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeDeadlineExceeded, "get "+path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[path]
	if !ok {
		return nil, errors.ErrDocumentNotFound
	}
	cp := *doc
	cp.Value = append(json.RawMessage(nil), doc.Value...)
	return &cp, nil
}

func (m *MemoryStore) Set(ctx context.Context, path string, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.CodeDeadlineExceeded, "set "+path, err)
	}

	m.mu.Lock()
	var version int64 = 1
	if prev, ok := m.docs[path]; ok {
		version = prev.Version + 1
	}
	doc := &Document{Path: path, Value: append(json.RawMessage(nil), value...), Version: version}
	m.docs[path] = doc
	m.mu.Unlock()

	m.notifier.publish(Event{Path: path, Value: doc.Value, Version: version})
	return nil
}

func (m *MemoryStore) CompareAndSet(ctx context.Context, path string, value json.RawMessage, expected int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(errors.CodeDeadlineExceeded, "cas "+path, err)
	}

	m.mu.Lock()
	prev, ok := m.docs[path]
	var current int64
	if ok {
		current = prev.Version
	}
	if current != expected {
		m.mu.Unlock()
		return 0, errors.ErrWriteConflict
	}
	doc := &Document{Path: path, Value: append(json.RawMessage(nil), value...), Version: current + 1}
	m.docs[path] = doc
	m.mu.Unlock()

	m.notifier.publish(Event{Path: path, Value: doc.Value, Version: doc.Version})
	return doc.Version, nil
}

func (m *MemoryStore) Watch(ctx context.Context, prefix string) (<-chan Event, error) {
	return m.notifier.watch(ctx, prefix), nil
}
