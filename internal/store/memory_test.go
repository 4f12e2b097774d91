package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "alice-mail-com/conversations")
	assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))

	require.NoError(t, s.Set(ctx, "alice-mail-com/conversations", json.RawMessage(`["a"]`)))

	doc, err := s.Get(ctx, "alice-mail-com/conversations")
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)
	assert.JSONEq(t, `["a"]`, string(doc.Value))

	require.NoError(t, s.Set(ctx, "alice-mail-com/conversations", json.RawMessage(`["a","b"]`)))
	doc, err = s.Get(ctx, "alice-mail-com/conversations")
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.Version)
}

func TestMemoryStore_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("create requires absence", func(t *testing.T) {
		v, err := s.CompareAndSet(ctx, "doc", json.RawMessage(`1`), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)

		_, err = s.CompareAndSet(ctx, "doc", json.RawMessage(`2`), 0)
		assert.ErrorIs(t, err, appErrors.ErrWriteConflict)
	})

	t.Run("stale version rejected", func(t *testing.T) {
		v, err := s.CompareAndSet(ctx, "doc", json.RawMessage(`2`), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)

		// a writer still holding version 1 must not clobber version 2
		_, err = s.CompareAndSet(ctx, "doc", json.RawMessage(`9`), 1)
		assert.ErrorIs(t, err, appErrors.ErrWriteConflict)

		doc, err := s.Get(ctx, "doc")
		require.NoError(t, err)
		assert.JSONEq(t, `2`, string(doc.Value))
	})
}

func TestMemoryStore_Watch(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx, "bob-mail-com/")
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "bob-mail-com/conversations", json.RawMessage(`[]`)))
	require.NoError(t, s.Set(context.Background(), "alice-mail-com/conversations", json.RawMessage(`[]`)))

	select {
	case ev := <-events:
		assert.Equal(t, "bob-mail-com/conversations", ev.Path)
		assert.Equal(t, int64(1), ev.Version)
	case <-time.After(time.Second):
		t.Fatal("expected a watch event")
	}

	// the alice write must not leak into bob's subscription
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for %s", ev.Path)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "doc")
	assert.Equal(t, appErrors.CodeDeadlineExceeded, appErrors.CodeOf(err))

	err = s.Set(ctx, "doc", json.RawMessage(`1`))
	assert.Equal(t, appErrors.CodeDeadlineExceeded, appErrors.CodeOf(err))
}
