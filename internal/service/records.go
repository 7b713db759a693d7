package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/export"
	"github.com/samandr77/microservices/backoffice/internal/form"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/recordstore"
	"github.com/samandr77/microservices/backoffice/internal/listview"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

// List loads the entity and derives the visible page for state.
func (s *Service) List(ctx context.Context, name string, state listview.State) (listview.Page, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return listview.Page{}, err
	}

	rows, lookups, err := s.load(ctx, schema)
	if err != nil {
		return listview.Page{}, err
	}

	return listview.Derive(rows, schema, lookups, state), nil
}

// Export writes every row matching state, in display order, as XLSX.
func (s *Service) Export(ctx context.Context, w io.Writer, name string, state listview.State) error {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return err
	}

	rows, lookups, err := s.load(ctx, schema)
	if err != nil {
		return err
	}

	rows = listview.FilterRows(rows, schema, lookups, state.Search, state.Filter)
	rows = listview.SortRows(rows, schema, lookups, state.SortKey, state.SortDesc)

	slog.InfoContext(ctx, "export list", "entity", schema.Name, "rows", len(rows))

	return export.Write(w, schema, lookups, rows)
}

// Draft opens a create form with generated id and defaults.
func (s *Service) Draft(_ context.Context, name string) (*form.Session, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return nil, err
	}

	return form.NewCreate(schema, s.now(), s.randN), nil
}

// EditDraft opens an edit form for the stored record.
func (s *Service) EditDraft(ctx context.Context, name, key string) (*form.Session, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return nil, err
	}

	record, err := s.findOne(ctx, schema, key)
	if err != nil {
		return nil, err
	}

	return form.NewEdit(schema, record), nil
}

// SaveRequest is one submit of the form. An empty Key creates a record.
type SaveRequest struct {
	Entity string
	Key    string
	Values entity.Record
	Image  *upload.File
	// ClearImage removes the stored image before any new one is attached.
	ClearImage bool
}

// Save runs the submit of a form and answers with the reloaded list.
// Nothing is written when validation or the image upload fails.
func (s *Service) Save(ctx context.Context, req SaveRequest) (listview.Page, error) {
	schema, err := entity.SchemaByName(req.Entity)
	if err != nil {
		return listview.Page{}, err
	}

	session, err := s.session(ctx, schema, req)
	if err != nil {
		return listview.Page{}, err
	}

	if req.ClearImage {
		err = session.ClearImage()
		if err != nil {
			return listview.Page{}, err
		}
	}

	if req.Image != nil {
		err = session.AttachImage(*req.Image)
		if err != nil {
			return listview.Page{}, err
		}
	}

	if session.Mode == form.ModeCreate && schema.CategoryField != "" {
		err = s.allocateCode(ctx, schema, session)
		if err != nil {
			return listview.Page{}, err
		}
	}

	row, err := session.Submit(ctx, s.store, s.images)
	if err != nil {
		return listview.Page{}, err
	}

	action := entity.ActionAdd
	if session.Mode == form.ModeEdit {
		action = entity.ActionEdit
	}

	key := row.String(schema.Key)

	slog.InfoContext(ctx, "record saved", "entity", schema.Name, "key", key, "action", action)
	s.publish(ctx, schema, action, key, row)

	return s.List(ctx, req.Entity, listview.NewState())
}

func (s *Service) session(ctx context.Context, schema entity.Schema, req SaveRequest) (*form.Session, error) {
	if req.Key == "" {
		session := form.NewCreate(schema, s.now(), s.randN)

		err := session.Merge(req.Values)
		if err != nil {
			return nil, err
		}

		return session, nil
	}

	record, err := s.findOne(ctx, schema, req.Key)
	if err != nil {
		return nil, err
	}

	session := form.NewEdit(schema, record)

	err = session.Merge(req.Values)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// allocateCode fills an empty goods code from the allocator. A code the user
// entered is saved as is.
func (s *Service) allocateCode(ctx context.Context, schema entity.Schema, session *form.Session) error {
	category := session.Draft.String(schema.CategoryField)

	if category == "" || session.Draft.Has(schema.Key) {
		return nil
	}

	rows, err := s.store.Find(ctx, schema.Name, recordstore.All())
	if err != nil {
		return fmt.Errorf("find %s: %w", schema.Name, err)
	}

	code, err := s.codes.Next(ctx, category, entity.Keys(rows, schema.Key))
	if err != nil {
		return fmt.Errorf("allocate code: %w", err)
	}

	return session.Set(schema.Key, code)
}

// Delete removes the record by key and answers with the reloaded list.
func (s *Service) Delete(ctx context.Context, name, key string) (listview.Page, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return listview.Page{}, err
	}

	if key == "" {
		return listview.Page{}, fmt.Errorf("%w: empty key", entity.ErrInvalidArgument)
	}

	session := form.NewEdit(schema, entity.Record{schema.Key: key})

	err = session.RequestDelete()
	if err != nil {
		return listview.Page{}, err
	}

	err = session.ConfirmDelete(ctx, s.store)
	if err != nil {
		return listview.Page{}, err
	}

	slog.InfoContext(ctx, "record deleted", "entity", schema.Name, "key", key)
	s.publish(ctx, schema, entity.ActionDelete, key, nil)

	return s.List(ctx, name, listview.NewState())
}

// NextCode previews the code a create form shows after switching from
// previous to category while current is in the code field.
func (s *Service) NextCode(ctx context.Context, name, category, current, previous string) (string, error) {
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return "", err
	}

	if schema.CategoryField == "" {
		return "", fmt.Errorf("%w: %s", entity.ErrNoCategoryCode, schema.Name)
	}

	rows, err := s.store.Find(ctx, schema.Name, recordstore.All())
	if err != nil {
		return "", fmt.Errorf("find %s: %w", schema.Name, err)
	}

	session := form.NewCreate(schema, s.now(), s.randN)
	session.Draft[schema.CategoryField] = previous
	session.Draft[schema.Key] = current

	err = session.ChangeCategory(category, entity.Keys(rows, schema.Key))
	if err != nil {
		return "", err
	}

	return session.Draft.String(schema.Key), nil
}

func (s *Service) ValidateImage(f upload.File) upload.Validation {
	return upload.Validate(f)
}

// UploadImage validates f before it is sent to the image host.
func (s *Service) UploadImage(ctx context.Context, f upload.File) (upload.Result, error) {
	v := upload.Validate(f)
	if !v.IsValid {
		return upload.Result{}, &entity.ValidationError{Violations: v.Errors}
	}

	res, err := s.images.Upload(ctx, f)
	if err != nil {
		return upload.Result{}, err
	}

	return res, nil
}
