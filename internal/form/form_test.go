package form_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/form"
	"github.com/samandr77/microservices/backoffice/internal/mocks"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func fixedRand(n int) func(int) int {
	return func(int) int { return n }
}

func validCare(t *testing.T, s *form.Session) {
	t.Helper()

	require.NoError(t, s.Merge(entity.Record{
		entity.CareCompany: "KH001",
		entity.CareType:    "Gọi điện",
	}))
}

func TestGenerateID(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC)

	require.Equal(t, "CS240305007", form.GenerateID("CS", now, fixedRand(7)))
	require.Equal(t, "KH240305999", form.GenerateID("KH", now, fixedRand(999)))

	id := form.GenerateID("NV", now, nil)
	require.Len(t, id, len("NV240305")+3)
	require.True(t, strings.HasPrefix(id, "NV240305"))
}

func TestNewCreate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.February, 26, 9, 30, 0, 0, time.UTC)

	t.Run("care activity", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.CareActivities), now, fixedRand(42))

		require.Equal(t, form.ModeCreate, s.Mode)
		require.True(t, s.Open)
		require.Equal(t, "CS240226042", s.Draft.String(entity.CareID))
		require.Equal(t, "2024-02-26", s.Draft.String(entity.CarePlanned))
		require.Equal(t, "2024-03-04", s.Draft.String(entity.CareDue))
		require.Equal(t, entity.CareStatusPlanned, s.Draft.String(entity.CareStatus))
	})

	t.Run("quote", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.Quotes), now, fixedRand(1))

		require.Equal(t, "BG240226001", s.Draft.String(entity.QuoteID))
		require.Equal(t, "2024-02-26", s.Draft.String(entity.QuoteDate))
		require.Equal(t, entity.QuoteStatusDraft, s.Draft.String(entity.QuoteStatus))
	})

	t.Run("goods have no generated code", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.Goods), now, fixedRand(1))

		require.Empty(t, s.Draft.String(entity.GoodsCode))
	})
}

func TestNewEdit(t *testing.T) {
	t.Parallel()

	record := entity.Record{
		entity.CareID:      "CS001",
		entity.CarePlanned: "3/9/2024",
		entity.CareActual:  "2024-03-10T08:00:00Z",
		entity.CareDue:     "not a date",
		entity.CareImage:   "https://img.example.com/a.png",
	}

	s := form.NewEdit(entity.MustSchema(entity.CareActivities), record)

	require.Equal(t, form.ModeEdit, s.Mode)
	require.Equal(t, "CS001", s.OriginalKey)
	require.Equal(t, "2024-03-09", s.Draft.String(entity.CarePlanned))
	require.Equal(t, "2024-03-10", s.Draft.String(entity.CareActual))
	require.Empty(t, s.Draft.String(entity.CareDue))
	require.Equal(t, "https://img.example.com/a.png", s.Preview)
	require.Equal(t, "3/9/2024", record.String(entity.CarePlanned))

	err := s.Set(entity.CareID, "CS999")
	require.ErrorIs(t, err, entity.ErrImmutableKey)

	require.NoError(t, s.Set(entity.CareID, "CS001"))
}

func TestSession_Validate(t *testing.T) {
	t.Parallel()

	s := form.NewCreate(entity.MustSchema(entity.CareActivities), time.Now(), nil)

	err := s.Validate()
	require.ErrorIs(t, err, entity.ErrValidation)

	var vErr *entity.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, []string{"Vui lòng nhập công ty", "Vui lòng nhập loại chăm sóc"}, vErr.Violations)

	validCare(t, s)
	require.NoError(t, s.Validate())
}

func TestSession_ChangeCategory(t *testing.T) {
	t.Parallel()

	codes := []string{"A_001", "A_002", "B_001"}

	t.Run("create mode follows category", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.Goods), time.Now(), nil)

		require.NoError(t, s.ChangeCategory("A", codes))
		require.Equal(t, "A_003", s.Draft.String(entity.GoodsCode))

		require.NoError(t, s.ChangeCategory("B", codes))
		require.Equal(t, "B_002", s.Draft.String(entity.GoodsCode))

		require.NoError(t, s.ChangeCategory("C", codes))
		require.Equal(t, "C_001", s.Draft.String(entity.GoodsCode))
	})

	t.Run("custom code is kept", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.Goods), time.Now(), nil)
		require.NoError(t, s.Set(entity.GoodsCode, "SPECIAL"))

		require.NoError(t, s.ChangeCategory("A", codes))
		require.Equal(t, "SPECIAL", s.Draft.String(entity.GoodsCode))
		require.Equal(t, "A", s.Draft.String(entity.GoodsCategory))
	})

	t.Run("edit mode keeps code", func(t *testing.T) {
		t.Parallel()

		s := form.NewEdit(entity.MustSchema(entity.Goods), entity.Record{
			entity.GoodsCode:     "A_001",
			entity.GoodsCategory: "A",
		})

		require.NoError(t, s.ChangeCategory("B", codes))
		require.Equal(t, "A_001", s.Draft.String(entity.GoodsCode))
	})

	t.Run("entity without categories", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(entity.MustSchema(entity.Staff), time.Now(), nil)

		require.ErrorIs(t, s.ChangeCategory("A", codes), entity.ErrNoCategoryCode)
	})
}

func TestSession_AttachImage(t *testing.T) {
	t.Parallel()

	s := form.NewCreate(entity.MustSchema(entity.CareActivities), time.Now(), nil)

	err := s.AttachImage(upload.File{Name: "a.txt", ContentType: "text/plain", Data: []byte("hello")})
	require.ErrorIs(t, err, entity.ErrValidation)
	require.False(t, s.HasPendingImage())
	require.NotNil(t, s.Notice)

	err = s.AttachImage(upload.File{Name: "a.png", ContentType: "image/png", Data: pngHeader})
	require.NoError(t, err)
	require.True(t, s.HasPendingImage())
	require.True(t, strings.HasPrefix(s.Preview, "data:image/png;base64,"))

	staff := form.NewCreate(entity.MustSchema(entity.Staff), time.Now(), nil)
	require.ErrorIs(t, staff.AttachImage(upload.File{ContentType: "image/png", Data: pngHeader}), entity.ErrInvalidImage)
}

func TestSession_ClearImage(t *testing.T) {
	t.Parallel()

	s := form.NewEdit(entity.MustSchema(entity.Goods), entity.Record{
		entity.GoodsCode:  "A_001",
		entity.GoodsImage: "https://img.example.com/a.png",
	})
	require.NoError(t, s.AttachImage(upload.File{Name: "b.png", ContentType: "image/png", Data: pngHeader}))

	require.NoError(t, s.ClearImage())
	require.False(t, s.HasPendingImage())
	require.Empty(t, s.Preview)
	require.Empty(t, s.Draft.String(entity.GoodsImage))

	staff := form.NewEdit(entity.MustSchema(entity.Staff), entity.Record{entity.StaffID: "NV001"})
	require.ErrorIs(t, staff.ClearImage(), entity.ErrInvalidImage)
}

func TestSession_Submit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	care := entity.MustSchema(entity.CareActivities)
	png := upload.File{Name: "a.png", ContentType: "image/png", Data: pngHeader}

	t.Run("upload failure keeps modal open and writes nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)
		images := mocks.NewMockImageHost(ctrl)

		s := form.NewCreate(care, time.Now(), nil)
		validCare(t, s)
		require.NoError(t, s.AttachImage(png))

		images.EXPECT().Upload(ctx, png).Return(upload.Result{}, errors.New("connection reset"))

		_, err := s.Submit(ctx, store, images)
		require.ErrorIs(t, err, entity.ErrUpload)
		require.True(t, s.Open)
		require.False(t, s.Submitting)
		require.False(t, s.HasPendingImage())
		require.Empty(t, s.Preview)
		require.NotNil(t, s.Notice)
		require.Equal(t, form.NoticeError, s.Notice.Level)
	})

	t.Run("unsuccessful upload response", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)
		images := mocks.NewMockImageHost(ctrl)

		s := form.NewCreate(care, time.Now(), nil)
		validCare(t, s)
		require.NoError(t, s.AttachImage(png))

		images.EXPECT().Upload(ctx, png).Return(upload.Result{Success: false}, nil)

		_, err := s.Submit(ctx, store, images)
		require.ErrorIs(t, err, entity.ErrUpload)
		require.True(t, s.Open)
	})

	t.Run("upload then add", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)
		images := mocks.NewMockImageHost(ctrl)

		s := form.NewCreate(care, time.Now(), nil)
		validCare(t, s)
		require.NoError(t, s.AttachImage(png))

		gomock.InOrder(
			images.EXPECT().Upload(ctx, png).Return(upload.Result{Success: true, URL: "https://img/1.png"}, nil),
			store.EXPECT().Add(ctx, entity.CareActivities, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ entity.Name, rows ...entity.Record) error {
					require.Len(t, rows, 1)
					require.Equal(t, "https://img/1.png", rows[0].String(entity.CareImage))
					return nil
				}),
		)

		row, err := s.Submit(ctx, store, images)
		require.NoError(t, err)
		require.Equal(t, "https://img/1.png", row.String(entity.CareImage))
		require.False(t, s.Open)
		require.False(t, s.Submitting)
		require.Equal(t, form.NoticeSuccess, s.Notice.Level)
	})

	t.Run("validation failure calls nothing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)
		images := mocks.NewMockImageHost(ctrl)

		s := form.NewCreate(care, time.Now(), nil)

		_, err := s.Submit(ctx, store, images)
		require.ErrorIs(t, err, entity.ErrValidation)
		require.True(t, s.Open)
		require.Len(t, s.Notice.Details, 2)
	})

	t.Run("edit sends whole record with original key", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)

		s := form.NewEdit(care, entity.Record{
			entity.CareID:      "CS001",
			entity.CareCompany: "KH001",
			entity.CareType:    "Gặp mặt",
			entity.CarePlanned: "2024-03-09",
			entity.CareStatus:  entity.CareStatusPlanned,
		})
		require.NoError(t, s.Set(entity.CareStatus, entity.CareStatusCompleted))

		store.EXPECT().Edit(ctx, entity.CareActivities, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entity.Name, rows ...entity.Record) error {
				require.Equal(t, "CS001", rows[0].String(entity.CareID))
				require.Equal(t, "Gặp mặt", rows[0].String(entity.CareType))
				require.Equal(t, entity.CareStatusCompleted, rows[0].String(entity.CareStatus))
				return nil
			})

		_, err := s.Submit(ctx, store, nil)
		require.NoError(t, err)
		require.False(t, s.Open)
	})

	t.Run("store failure keeps modal open", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)

		s := form.NewCreate(care, time.Now(), nil)
		validCare(t, s)

		store.EXPECT().Add(ctx, entity.CareActivities, gomock.Any()).Return(entity.ErrRemote)

		_, err := s.Submit(ctx, store, nil)
		require.ErrorIs(t, err, entity.ErrRemote)
		require.True(t, s.Open)
		require.False(t, s.Submitting)
	})
}

func TestSession_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	staff := entity.MustSchema(entity.Staff)
	record := entity.Record{entity.StaffID: "NV001", entity.StaffName: "Lan"}

	t.Run("cancel issues no call", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)

		s := form.NewEdit(staff, record)
		require.NoError(t, s.RequestDelete())
		require.True(t, s.ConfirmingDelete)

		s.CancelDelete()
		require.False(t, s.ConfirmingDelete)
		require.True(t, s.Open)

		require.ErrorIs(t, s.ConfirmDelete(ctx, store), entity.ErrNothingToDelete)
	})

	t.Run("confirm deletes by key", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := mocks.NewMockRecordStore(ctrl)

		s := form.NewEdit(staff, record)
		require.NoError(t, s.RequestDelete())

		store.EXPECT().Delete(ctx, entity.Staff, entity.Record{entity.StaffID: "NV001"}).Return(nil)

		require.NoError(t, s.ConfirmDelete(ctx, store))
		require.False(t, s.Open)
		require.False(t, s.Deleting)
		require.False(t, s.ConfirmingDelete)
	})

	t.Run("create mode cannot delete", func(t *testing.T) {
		t.Parallel()

		s := form.NewCreate(staff, time.Now(), nil)
		require.ErrorIs(t, s.RequestDelete(), entity.ErrInvalidArgument)
	})
}
