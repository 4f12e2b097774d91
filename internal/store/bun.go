package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"

	appErrors "github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type documentRow struct {
	bun.BaseModel `bun:"table:documents,alias:d"`

	Path      string          `bun:",pk"`
	Value     json.RawMessage `bun:"value,type:jsonb,notnull"`
	Version   int64           `bun:",notnull"`
	UpdatedAt time.Time       `bun:",nullzero,notnull,default:current_timestamp"`
}

// BunStore keeps the document tree in a single Postgres table keyed by path.
// Version tokens are enforced with guarded updates, so a stale writer fails
// instead of overwriting a concurrent change.
//
// Watch is in-process only; cross-instance fanout is layered on top (redis
// pub/sub in the ws hub).
type BunStore struct {
	db       *bun.DB
	logger   *logger.Logger
	notifier *notifier
}

func NewBunStore(db *bun.DB, logger *logger.Logger) *BunStore {
	return &BunStore{
		db:       db,
		logger:   logger,
		notifier: newNotifier(),
	}
}

// Init creates the documents table if missing.
func (s *BunStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*documentRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "docStore.Init.CreateTable: ")
	}
	return nil
}

func (s *BunStore) Get(ctx context.Context, path string) (*Document, error) {
	row := new(documentRow)
	err := s.db.NewSelect().Model(row).Where("path = ?", path).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrDocumentNotFound
		}
		return nil, errors.Wrap(err, "docStore.Get.Scan: ")
	}
	return &Document{Path: row.Path, Value: row.Value, Version: row.Version}, nil
}

func (s *BunStore) Set(ctx context.Context, path string, value json.RawMessage) error {
	row := &documentRow{Path: path, Value: value, Version: 1, UpdatedAt: time.Now()}

	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (path) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("version = d.version + 1").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "docStore.Set.Upsert: ")
	}

	s.notifier.publish(Event{Path: path, Value: row.Value, Version: row.Version})
	return nil
}

func (s *BunStore) CompareAndSet(ctx context.Context, path string, value json.RawMessage, expected int64) (int64, error) {
	if expected == 0 {
		row := &documentRow{Path: path, Value: value, Version: 1, UpdatedAt: time.Now()}
		res, err := s.db.NewInsert().
			Model(row).
			On("CONFLICT (path) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "docStore.CompareAndSet.Insert: ")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return 0, appErrors.ErrWriteConflict
		}
		s.notifier.publish(Event{Path: path, Value: value, Version: 1})
		return 1, nil
	}

	res, err := s.db.NewUpdate().
		Model((*documentRow)(nil)).
		Set("value = ?", value).
		Set("version = version + 1").
		Set("updated_at = current_timestamp").
		Where("path = ? AND version = ?", path, expected).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "docStore.CompareAndSet.Update: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, appErrors.ErrWriteConflict
	}

	version := expected + 1
	s.notifier.publish(Event{Path: path, Value: value, Version: version})
	return version, nil
}

func (s *BunStore) Watch(ctx context.Context, prefix string) (<-chan Event, error) {
	return s.notifier.watch(ctx, prefix), nil
}
