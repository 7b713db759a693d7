package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/recordstore"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type RecordStore interface {
	Find(ctx context.Context, name entity.Name, selector string) ([]entity.Record, error)
	Add(ctx context.Context, name entity.Name, rows ...entity.Record) error
	Edit(ctx context.Context, name entity.Name, rows ...entity.Record) error
	Delete(ctx context.Context, name entity.Name, keys ...entity.Record) error
}

type ImageHost interface {
	Upload(ctx context.Context, f upload.File) (upload.Result, error)
}

type Allocator interface {
	Next(ctx context.Context, category string, existing []string) (string, error)
}

type Producer interface {
	RecordMutated(ctx context.Context, mutation entity.Mutation) error
}

type Repository interface {
	SaveMutation(ctx context.Context, mutation entity.Mutation) error
	Mutations(ctx context.Context, filter entity.JournalFilter) ([]entity.Mutation, int, error)
}

type Mailer interface {
	SendOverdueDigest(ctx context.Context, items []entity.OverdueCare) error
}

type Service struct {
	store    RecordStore
	images   ImageHost
	codes    Allocator
	producer Producer
	repo     Repository
	mailer   Mailer
	now      func() time.Time
	randN    func(n int) int
}

// New wires the service. A nil producer writes mutations straight to the
// journal, a nil mailer disables the overdue digest.
func New(
	store RecordStore,
	images ImageHost,
	codes Allocator,
	producer Producer,
	repo Repository,
	mailer Mailer,
) *Service {
	return &Service{
		store:    store,
		images:   images,
		codes:    codes,
		producer: producer,
		repo:     repo,
		mailer:   mailer,
		now:      time.Now,
		randN:    rand.IntN,
	}
}

// WithClock replaces the time source and the random suffix source used for new ids.
func (s *Service) WithClock(now func() time.Time, randN func(n int) int) *Service {
	s.now = now
	s.randN = randN

	return s
}

// load fetches every row of schema together with the lookups of the
// entities it references, all requests in parallel.
func (s *Service) load(ctx context.Context, schema entity.Schema) ([]entity.Record, entity.Lookups, error) {
	refs := schema.Refs()
	refRows := make([][]entity.Record, len(refs))

	var rows []entity.Record

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		rows, err = s.store.Find(gCtx, schema.Name, recordstore.All())
		if err != nil {
			return fmt.Errorf("find %s: %w", schema.Name, err)
		}

		return nil
	})

	for i, ref := range refs {
		g.Go(func() error {
			found, err := s.store.Find(gCtx, ref, recordstore.All())
			if err != nil {
				return fmt.Errorf("find %s: %w", ref, err)
			}

			refRows[i] = found

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, nil, err
	}

	lookups := make(entity.Lookups, len(refs))
	for i, ref := range refs {
		lookups[ref] = entity.NewLookup(entity.MustSchema(ref), refRows[i])
	}

	return rows, lookups, nil
}

func (s *Service) findOne(ctx context.Context, schema entity.Schema, key string) (entity.Record, error) {
	rows, err := s.store.Find(ctx, schema.Name, recordstore.Where(schema.Name, schema.Key, key))
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", schema.Name, key, err)
	}

	for _, row := range rows {
		if row.String(schema.Key) == key {
			return row, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", entity.ErrNotFound, schema.Name, key)
}

// publish records a successful write. The write already happened, so a
// failure here is logged and not returned.
func (s *Service) publish(ctx context.Context, schema entity.Schema, action entity.Action, key string, payload entity.Record) {
	m := entity.Mutation{
		ID:        uuid.Must(uuid.NewV4()),
		Entity:    schema.Name,
		Key:       key,
		Action:    action,
		Actor:     entity.ActorFromContext(ctx),
		Payload:   payload,
		CreatedAt: s.now().UTC(),
	}

	var err error

	if s.producer != nil {
		err = s.producer.RecordMutated(ctx, m)
	} else {
		err = s.repo.SaveMutation(ctx, m)
	}

	if err != nil {
		slog.ErrorContext(ctx, "journal record mutation", "entity", schema.Name, "key", key, "action", action, "err", err)
	}
}
