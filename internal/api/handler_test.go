package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/backoffice/internal/api"
	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/export"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/recordstore"
	"github.com/samandr77/microservices/backoffice/internal/listview"
	"github.com/samandr77/microservices/backoffice/internal/mocks"
	"github.com/samandr77/microservices/backoffice/internal/service"
	"github.com/samandr77/microservices/backoffice/internal/upload"
	"github.com/samandr77/microservices/backoffice/pkg/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

var staffRows = []entity.Record{
	{entity.StaffID: "NV001", entity.StaffName: "Lan", entity.StaffPosition: "Kế toán"},
	{entity.StaffID: "NV002", entity.StaffName: "Đức", entity.StaffPosition: "Kinh doanh"},
}

type ClientAPI struct {
	store    *mocks.MockRecordStore
	images   *mocks.MockImageHost
	producer *mocks.MockProducer
	repo     *mocks.MockRepository
	router   http.Handler
}

func NewClientAPI(t *testing.T, cfg config.HTTP) *ClientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	c := &ClientAPI{
		store:    mocks.NewMockRecordStore(ctrl),
		images:   mocks.NewMockImageHost(ctrl),
		producer: mocks.NewMockProducer(ctrl),
		repo:     mocks.NewMockRepository(ctrl),
	}

	s := service.New(c.store, c.images, mocks.NewMockAllocator(ctrl), c.producer, c.repo, nil)
	c.router = api.NewRouter(api.NewHandler(s), api.NewMiddleware(cfg))

	return c
}

func (c *ClientAPI) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func token(t *testing.T, subject string) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return signed
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})
	c.store.EXPECT().Find(gomock.Any(), entity.Staff, recordstore.All()).Return(staffRows, nil)

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/entities/dsnv/rows?search=duc&pageSize=20", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[listview.Page](t, rec)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "NV002", page.Rows[0].String(entity.StaffID))
	require.Equal(t, 20, page.State.PageSize)
}

func TestHandler_List_BadRequest(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	tests := []struct {
		name string
		url  string
		code int
	}{
		{name: "page size", url: "/api/entities/DSNV/rows?pageSize=15", code: http.StatusBadRequest},
		{name: "sort field", url: "/api/entities/DSNV/rows?sortBy=nope", code: http.StatusBadRequest},
		{name: "order", url: "/api/entities/DSNV/rows?sortBy=HO_TEN&order=up", code: http.StatusBadRequest},
		{name: "entity", url: "/api/entities/XYZ/rows", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := c.do(t, httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.Equal(t, tt.code, rec.Code)
			require.NotEmpty(t, decode[api.ResponseError](t, rec).Message)
		})
	}
}

func TestHandler_List_RemoteFailure(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})
	c.store.EXPECT().Find(gomock.Any(), entity.Staff, recordstore.All()).Return(nil, entity.ErrRemote)

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/entities/DSNV/rows", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_Export(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})
	c.store.EXPECT().Find(gomock.Any(), entity.Staff, recordstore.All()).Return(staffRows, nil)

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/entities/DSNV/export?sortBy=HO_TEN", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "DSNV.xlsx")
	require.NotZero(t, rec.Body.Len())
}

func TestHandler_Create_Validation(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	req := httptest.NewRequest(http.MethodPost, "/api/entities/CSKH/records", strings.NewReader(`{"LOAI_CHAM_SOC":"Gọi điện"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := c.do(t, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[api.ResponseError](t, rec)
	require.Equal(t, []string{"Vui lòng nhập công ty"}, resp.Details)
}

func multipartRecord(t *testing.T, record string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("record", record))

	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="a.png"`)
		h.Set("Content-Type", "image/png")

		part, err := mw.CreatePart(h)
		require.NoError(t, err)

		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func TestHandler_Create_UploadFailure(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})
	c.images.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(upload.Result{}, errors.New("host down"))

	body, contentType := multipartRecord(t, `{"ID_CTY":"KH001","LOAI_CHAM_SOC":"Gọi điện"}`, pngHeader)

	req := httptest.NewRequest(http.MethodPost, "/api/entities/CSKH/records", body)
	req.Header.Set("Content-Type", contentType)

	rec := c.do(t, req)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "Tải ảnh lên thất bại, bản ghi chưa được lưu", decode[api.ResponseError](t, rec).Message)
}

func TestHandler_Create_WithActor(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{RequireToken: true})

	c.store.EXPECT().Add(gomock.Any(), entity.Staff, gomock.Any()).Return(nil)
	c.producer.EXPECT().RecordMutated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m entity.Mutation) error {
			require.Equal(t, "lan@example.com", m.Actor)
			require.Equal(t, entity.ActionAdd, m.Action)
			return nil
		})
	c.store.EXPECT().Find(gomock.Any(), entity.Staff, recordstore.All()).Return(staffRows, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/entities/DSNV/records", strings.NewReader(`{"HO_TEN":"Minh"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t, "lan@example.com"))

	rec := c.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 2, decode[listview.Page](t, rec).Total)
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{RequireToken: true})

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/entities/DSNV/rows", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/entities/DSNV/rows", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rec = c.do(t, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	c.store.EXPECT().Delete(gomock.Any(), entity.Staff, entity.Record{entity.StaffID: "NV002"}).Return(nil)
	c.producer.EXPECT().RecordMutated(gomock.Any(), gomock.Any()).Return(nil)
	c.store.EXPECT().Find(gomock.Any(), entity.Staff, recordstore.All()).Return(staffRows[:1], nil)

	rec := c.do(t, httptest.NewRequest(http.MethodDelete, "/api/entities/DSNV/records/NV002", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, decode[listview.Page](t, rec).Total)
}

func TestHandler_Update_ClearImage(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	req := httptest.NewRequest(http.MethodPut, "/api/entities/DSNV/records/NV001?clearImage=maybe", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := c.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c.store.EXPECT().
		Find(gomock.Any(), entity.Staff, recordstore.Where(entity.Staff, entity.StaffID, "NV001")).
		Return(staffRows[:1], nil)

	req = httptest.NewRequest(http.MethodPut, "/api/entities/DSNV/records/NV001?clearImage=true", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec = c.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CompanyDetail_NotFound(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})
	c.store.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entity.Record{}, nil).Times(3)

	rec := c.do(t, httptest.NewRequest(http.MethodGet, "/api/companies/KH404", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, entity.DetailNotFound, decode[entity.CompanyDetail](t, rec).State)
}

func TestHandler_ValidateImage(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	body, contentType := multipartRecord(t, "", pngHeader)

	req := httptest.NewRequest(http.MethodPost, "/api/images/validate", body)
	req.Header.Set("Content-Type", contentType)

	rec := c.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[struct {
		IsValid bool `json:"isValid"`
	}](t, rec).IsValid)

	body, contentType = multipartRecord(t, "", nil)

	req = httptest.NewRequest(http.MethodPost, "/api/images/validate", body)
	req.Header.Set("Content-Type", contentType)

	rec = c.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CalendarAndJournal_BadRequest(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t, config.HTTP{})

	for _, url := range []string{
		"/api/calendar/care?month=12&year=2024",
		"/api/calendar/companies?month=x",
		"/api/journal?action=rename",
		"/api/journal?limit=1000",
	} {
		rec := c.do(t, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, url)
	}
}
