package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

var (
	testDB     *bun.DB
	testLogger *logger.Logger
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("elitequiz"),
		postgres.WithUsername("elitequiz"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	testLogger, _ = logger.NewLogger(&config.Config{})

	code := m.Run()
	os.Exit(code)
}

func newTestBunStore(t *testing.T) *BunStore {
	t.Helper()
	s := NewBunStore(testDB, testLogger)
	require.NoError(t, s.Init(context.Background()))

	_, err := testDB.NewTruncateTable().Model((*documentRow)(nil)).Exec(context.Background())
	require.NoError(t, err)
	return s
}

func TestBunStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestBunStore(t)

	_, err := s.Get(ctx, "alice-mail-com")
	assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))

	require.NoError(t, s.Set(ctx, "alice-mail-com", json.RawMessage(`{"username":"alice"}`)))

	doc, err := s.Get(ctx, "alice-mail-com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)
	assert.JSONEq(t, `{"username":"alice"}`, string(doc.Value))

	require.NoError(t, s.Set(ctx, "alice-mail-com", json.RawMessage(`{"username":"alice2"}`)))
	doc, err = s.Get(ctx, "alice-mail-com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.Version)
}

func TestBunStore_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := newTestBunStore(t)

	v, err := s.CompareAndSet(ctx, "conversation_m1/messages", json.RawMessage(`["m1"]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// second create against the same path loses
	_, err = s.CompareAndSet(ctx, "conversation_m1/messages", json.RawMessage(`["other"]`), 0)
	assert.ErrorIs(t, err, appErrors.ErrWriteConflict)

	v, err = s.CompareAndSet(ctx, "conversation_m1/messages", json.RawMessage(`["m1","m2"]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	// stale token after the update above
	_, err = s.CompareAndSet(ctx, "conversation_m1/messages", json.RawMessage(`["stale"]`), 1)
	assert.ErrorIs(t, err, appErrors.ErrWriteConflict)

	doc, err := s.Get(ctx, "conversation_m1/messages")
	require.NoError(t, err)
	assert.JSONEq(t, `["m1","m2"]`, string(doc.Value))
}
