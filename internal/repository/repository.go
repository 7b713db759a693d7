package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

const defaultJournalLimit = 50

var journalColumns = []string{
	"id",
	"entity",
	"record_key",
	"action",
	"actor",
	"payload",
	"created_at",
}

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// SaveMutation appends m to the journal. Redelivered events are ignored.
func (r *Repository) SaveMutation(ctx context.Context, m entity.Mutation) error {
	payload := m.Payload
	if payload == nil {
		payload = entity.Record{}
	}

	stmt := sq.Insert("record_journal").
		Columns(journalColumns...).
		Values(m.ID, m.Entity, m.Key, m.Action, m.Actor, payload, m.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("insert mutation: %w", err)
	}

	return nil
}

func (r *Repository) MutationByID(ctx context.Context, id uuid.UUID) (entity.Mutation, error) {
	sqlQuery, args, err := sq.Select(journalColumns...).
		From("record_journal").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Mutation{}, err
	}

	m, err := scanMutation(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Mutation{}, entity.ErrNotFound
		}

		return entity.Mutation{}, err
	}

	return m, nil
}

// Mutations returns one page of the journal, newest first, and the total
// number of entries matching filter.
func (r *Repository) Mutations(ctx context.Context, filter entity.JournalFilter) ([]entity.Mutation, int, error) {
	stmt := applyJournalFilter(sq.Select("count(*)").From("record_journal"), filter).PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, fmt.Errorf("count mutations: %w", err)
	}

	if count == 0 {
		return []entity.Mutation{}, 0, nil
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultJournalLimit
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}

	stmt = applyJournalFilter(sq.Select(journalColumns...).From("record_journal"), filter).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset((page - 1) * limit).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query mutations: %w", err)
	}
	defer rows.Close()

	mutations := make([]entity.Mutation, 0, limit)

	for rows.Next() {
		m, err := scanMutation(rows)
		if err != nil {
			return nil, 0, err
		}

		mutations = append(mutations, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return mutations, count, nil
}

func applyJournalFilter(stmt sq.SelectBuilder, filter entity.JournalFilter) sq.SelectBuilder {
	if filter.Entity != "" {
		stmt = stmt.Where(sq.Eq{"entity": filter.Entity})
	}

	if filter.Key != "" {
		stmt = stmt.Where(sq.Eq{"record_key": filter.Key})
	}

	if filter.Action != "" {
		stmt = stmt.Where(sq.Eq{"action": filter.Action})
	}

	return stmt
}

func scanMutation(row pgx.Row) (entity.Mutation, error) {
	var m entity.Mutation

	err := row.Scan(
		&m.ID,
		&m.Entity,
		&m.Key,
		&m.Action,
		&m.Actor,
		&m.Payload,
		&m.CreatedAt,
	)
	if err != nil {
		return entity.Mutation{}, err
	}

	return m, nil
}
