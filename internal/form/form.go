package form

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/catalog"
	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

// Store is the write side of the record store client.
type Store interface {
	Add(ctx context.Context, name entity.Name, rows ...entity.Record) error
	Edit(ctx context.Context, name entity.Name, rows ...entity.Record) error
	Delete(ctx context.Context, name entity.Name, keys ...entity.Record) error
}

type ImageUploader interface {
	Upload(ctx context.Context, f upload.File) (upload.Result, error)
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeSuccess NoticeLevel = "success"
)

// Notice is the single user facing message of the last action.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
	Details []string    `json:"details,omitempty"`
}

// Session is the state of one create/edit modal.
type Session struct {
	Schema           entity.Schema `json:"-"`
	Mode             Mode          `json:"mode"`
	Draft            entity.Record `json:"draft"`
	OriginalKey      string        `json:"originalKey,omitempty"`
	Preview          string        `json:"preview,omitempty"`
	Open             bool          `json:"open"`
	Submitting       bool          `json:"submitting"`
	Deleting         bool          `json:"deleting"`
	ConfirmingDelete bool          `json:"confirmingDelete"`
	Notice           *Notice       `json:"notice,omitempty"`

	pending *upload.File
}

// NewCreate opens a modal seeded with the defaults of schema.
func NewCreate(schema entity.Schema, now time.Time, randN func(n int) int) *Session {
	return &Session{
		Schema: schema,
		Mode:   ModeCreate,
		Draft:  seedDefaults(schema, now, randN),
		Open:   true,
	}
}

// NewEdit opens a modal seeded from record with dates in canonical form.
func NewEdit(schema entity.Schema, record entity.Record) *Session {
	draft := record.Clone()
	normalizeDates(schema, draft)

	return &Session{
		Schema:      schema,
		Mode:        ModeEdit,
		Draft:       draft,
		OriginalKey: record.String(schema.Key),
		Preview:     record.String(schema.ImageField),
		Open:        true,
	}
}

// Set updates one draft field. The key is read only while editing.
func (s *Session) Set(field string, value any) error {
	if s.Mode == ModeEdit && field == s.Schema.Key && fmt.Sprint(value) != s.OriginalKey {
		return fmt.Errorf("%w: %s", entity.ErrImmutableKey, s.OriginalKey)
	}

	s.Draft[field] = value

	return nil
}

// Merge applies every field of values through Set.
func (s *Session) Merge(values entity.Record) error {
	for k, v := range values {
		err := s.Set(k, v)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate reports every missing required field at once.
func (s *Session) Validate() error {
	violations := make([]string, 0)

	for _, f := range s.Schema.RequiredFields() {
		if !s.Draft.Has(f.Name) {
			violations = append(violations, fmt.Sprintf("Vui lòng nhập %s", strings.ToLower(f.Label)))
		}
	}

	if len(violations) > 0 {
		return &entity.ValidationError{Violations: violations}
	}

	return nil
}

// AttachImage validates f and keeps it pending with an immediate preview.
func (s *Session) AttachImage(f upload.File) error {
	if s.Schema.ImageField == "" {
		return fmt.Errorf("%w: %s has no image field", entity.ErrInvalidImage, s.Schema.Name)
	}

	v := upload.Validate(f)
	if !v.IsValid {
		s.notify(NoticeError, "Ảnh không hợp lệ", v.Errors...)
		return &entity.ValidationError{Violations: v.Errors}
	}

	s.pending = &f
	s.Preview = "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)

	return nil
}

func (s *Session) HasPendingImage() bool {
	return s.pending != nil
}

// ClearImage drops the pending file and the stored image url.
func (s *Session) ClearImage() error {
	if s.Schema.ImageField == "" {
		return fmt.Errorf("%w: %s has no image", entity.ErrInvalidImage, s.Schema.Name)
	}

	s.pending = nil
	s.Preview = ""
	s.Draft[s.Schema.ImageField] = ""

	return nil
}

// ChangeCategory sets the category and, in create mode, replaces the code
// with the next one of the new category unless the user typed a code of
// their own under the previous category.
func (s *Session) ChangeCategory(category string, codes []string) error {
	field := s.Schema.CategoryField
	if field == "" {
		return fmt.Errorf("%w: %s", entity.ErrNoCategoryCode, s.Schema.Name)
	}

	prev := s.Draft.String(field)
	s.Draft[field] = category

	if s.Mode != ModeCreate || category == "" {
		return nil
	}

	code := s.Draft.String(s.Schema.Key)
	if code == "" || catalog.IsAutoCode(code, prev) {
		s.Draft[s.Schema.Key] = catalog.NextCode(codes, category)
	}

	return nil
}

// Submit validates, uploads a pending image and only then writes the record.
// A failed step leaves the modal open with a notice and no record written.
// An upload followed by a failed write leaves the image orphaned.
func (s *Session) Submit(ctx context.Context, store Store, images ImageUploader) (entity.Record, error) {
	if s.Submitting {
		return nil, entity.ErrSubmitInProgress
	}

	s.Submitting = true
	s.Notice = nil

	defer func() {
		s.Submitting = false
	}()

	err := s.Validate()
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			s.notify(NoticeError, "Thiếu thông tin bắt buộc", vErr.Violations...)
		}

		return nil, err
	}

	uploaded := ""

	if s.pending != nil {
		res, err := images.Upload(ctx, *s.pending)
		if err == nil && !res.Success {
			err = entity.ErrUpload
		}

		if err != nil {
			s.pending = nil
			s.Preview = ""
			s.notify(NoticeError, "Tải ảnh lên thất bại, bản ghi chưa được lưu")

			if !errors.Is(err, entity.ErrUpload) {
				err = fmt.Errorf("%w: %w", entity.ErrUpload, err)
			}

			return nil, err
		}

		uploaded = res.URL
		s.Draft[s.Schema.ImageField] = res.URL
		s.pending = nil
		s.Preview = res.URL
	}

	row := s.Draft.Clone()

	switch s.Mode {
	case ModeEdit:
		row[s.Schema.Key] = s.OriginalKey
		err = store.Edit(ctx, s.Schema.Name, row)
	default:
		err = store.Add(ctx, s.Schema.Name, row)
	}

	if err != nil {
		if uploaded != "" {
			slog.WarnContext(ctx, "uploaded image left without record", "entity", s.Schema.Name, "url", uploaded)
		}

		s.notify(NoticeError, "Lưu bản ghi thất bại")

		return nil, fmt.Errorf("save %s: %w", s.Schema.Name, err)
	}

	s.Open = false
	s.notify(NoticeSuccess, "Đã lưu bản ghi")

	return row, nil
}

// RequestDelete asks for confirmation; only saved records can be deleted.
func (s *Session) RequestDelete() error {
	if s.Mode != ModeEdit || s.OriginalKey == "" {
		return fmt.Errorf("%w: record is not saved", entity.ErrInvalidArgument)
	}

	s.ConfirmingDelete = true

	return nil
}

func (s *Session) CancelDelete() {
	s.ConfirmingDelete = false
}

// ConfirmDelete removes the record by key.
func (s *Session) ConfirmDelete(ctx context.Context, store Store) error {
	if !s.ConfirmingDelete {
		return entity.ErrNothingToDelete
	}

	s.Deleting = true
	s.Notice = nil

	defer func() {
		s.Deleting = false
		s.ConfirmingDelete = false
	}()

	err := store.Delete(ctx, s.Schema.Name, entity.Record{s.Schema.Key: s.OriginalKey})
	if err != nil {
		s.notify(NoticeError, "Xóa bản ghi thất bại")
		return fmt.Errorf("delete %s %s: %w", s.Schema.Name, s.OriginalKey, err)
	}

	s.Open = false
	s.notify(NoticeSuccess, "Đã xóa bản ghi")

	return nil
}

func (s *Session) notify(level NoticeLevel, msg string, details ...string) {
	s.Notice = &Notice{Level: level, Message: msg, Details: details}
}
