package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/backoffice/internal/calendar"
	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/export"
	"github.com/samandr77/microservices/backoffice/internal/form"
	"github.com/samandr77/microservices/backoffice/internal/listview"
	"github.com/samandr77/microservices/backoffice/internal/service"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

const maxFormMemory = upload.MaxImageSize + 1<<20

type Service interface {
	List(ctx context.Context, name string, state listview.State) (listview.Page, error)
	Export(ctx context.Context, w io.Writer, name string, state listview.State) error
	Draft(ctx context.Context, name string) (*form.Session, error)
	EditDraft(ctx context.Context, name, key string) (*form.Session, error)
	Save(ctx context.Context, req service.SaveRequest) (listview.Page, error)
	Delete(ctx context.Context, name, key string) (listview.Page, error)
	NextCode(ctx context.Context, name, category, current, previous string) (string, error)
	ValidateImage(f upload.File) upload.Validation
	UploadImage(ctx context.Context, f upload.File) (upload.Result, error)
	CareCalendar(ctx context.Context, month, year int) (calendar.CareCalendar, error)
	CompanyCalendar(ctx context.Context, month, year int) (calendar.CompanyCalendar, error)
	CompanyDetail(ctx context.Context, id string) (entity.CompanyDetail, error)
	RelatedRecord(ctx context.Context, companyID, name, key string) (entity.Record, error)
	Journal(ctx context.Context, filter entity.JournalFilter) ([]entity.Mutation, int, error)
}

// @title Back office API
// @version 1.0
// @description Danh mục khách hàng, chăm sóc khách hàng, hàng hóa, nhân viên và báo giá.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Kiểm tra trạng thái dịch vụ
// @Tags         health
// @Success      200 {string} string "Dịch vụ đang hoạt động!"
// @Failure      500 {object} ResponseError
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Dịch vụ đang hoạt động!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Dịch vụ không hoạt động!")
	}
}

func listParams(r *http.Request) service.ListParams {
	q := r.URL.Query()

	return service.ListParams{
		Search:   q.Get("search"),
		Filter:   q.Get("filter"),
		SortBy:   q.Get("sortBy"),
		Order:    q.Get("order"),
		Page:     q.Get("page"),
		PageSize: q.Get("pageSize"),
	}
}

// List godoc
// @Summary      Danh sách bản ghi
// @Description  Tải toàn bộ bản ghi rồi lọc, sắp xếp và phân trang
// @Tags         records
// @Produce      json
// @Param        entity path string true "Danh mục" Enums(KHTN, CSKH, DMHH, DSNV, PO)
// @Param        search query string false "Từ khóa, không phân biệt dấu"
// @Param        filter query string false "Giá trị lọc, ALL để bỏ lọc"
// @Param        sortBy query string false "Trường sắp xếp"
// @Param        order query string false "Chiều sắp xếp" Enums(asc, desc)
// @Param        page query int false "Trang, bắt đầu từ 1"
// @Param        pageSize query int false "Số dòng mỗi trang" Enums(10, 20, 50, 100)
// @Success      200 {object} listview.Page
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/rows [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "entity")

	state, err := service.ValidateListParams(name, listParams(r))
	if err != nil {
		SendServiceErr(ctx, w, err, "Tham số không hợp lệ")
		return
	}

	page, err := h.s.List(ctx, name, state)
	if err != nil {
		SendServiceErr(ctx, w, err, "Không tải được danh sách")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}

// Export godoc
// @Summary      Xuất danh sách ra Excel
// @Description  Xuất mọi dòng khớp bộ lọc theo thứ tự đang hiển thị
// @Tags         records
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        entity path string true "Danh mục"
// @Param        search query string false "Từ khóa"
// @Param        filter query string false "Giá trị lọc"
// @Param        sortBy query string false "Trường sắp xếp"
// @Param        order query string false "Chiều sắp xếp" Enums(asc, desc)
// @Success      200 {file} file
// @Failure      400 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "entity")

	schema, err := entity.SchemaByName(name)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	state, err := service.ValidateListParams(name, listParams(r))
	if err != nil {
		SendServiceErr(ctx, w, err, "Tham số không hợp lệ")
		return
	}

	var buf bytes.Buffer

	err = h.s.Export(ctx, &buf, name, state)
	if err != nil {
		SendServiceErr(ctx, w, err, "Không xuất được danh sách")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(schema)))
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(buf.Bytes())
}

// Draft godoc
// @Summary      Mở form thêm mới
// @Description  Mã, ngày và giá trị mặc định đã được điền sẵn
// @Tags         records
// @Produce      json
// @Param        entity path string true "Danh mục"
// @Success      200 {object} form.Session
// @Failure      404 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/draft [get]
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.s.Draft(ctx, chi.URLParam(r, "entity"))
	if err != nil {
		SendServiceErr(ctx, w, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, session)
}

// EditDraft godoc
// @Summary      Mở form chỉnh sửa
// @Tags         records
// @Produce      json
// @Param        entity path string true "Danh mục"
// @Param        key path string true "Mã bản ghi"
// @Success      200 {object} form.Session
// @Failure      404 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/records/{key}/draft [get]
func (h *Handler) EditDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.s.EditDraft(ctx, chi.URLParam(r, "entity"), chi.URLParam(r, "key"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Không tải được bản ghi")
		return
	}

	SendJSON(ctx, w, http.StatusOK, session)
}

type NextCodeResponse struct {
	Code string `json:"code"`
}

// NextCode godoc
// @Summary      Mã hàng hóa tiếp theo
// @Description  Mã tự sinh theo phân loại; mã do người dùng nhập được giữ nguyên
// @Tags         records
// @Produce      json
// @Param        entity path string true "Danh mục" Enums(DMHH)
// @Param        category query string true "Phân loại mới"
// @Param        current query string false "Mã đang nhập"
// @Param        previous query string false "Phân loại trước đó"
// @Success      200 {object} NextCodeResponse
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/next-code [get]
func (h *Handler) NextCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if q.Get("category") == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidArgument, "Thiếu phân loại")
		return
	}

	code, err := h.s.NextCode(ctx, chi.URLParam(r, "entity"), q.Get("category"), q.Get("current"), q.Get("previous"))
	if err != nil {
		SendServiceErr(ctx, w, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, NextCodeResponse{Code: code})
}

// decodeSave reads a record either as a JSON body or as a multipart form
// with a JSON "record" part and an optional "image" file.
func decodeSave(r *http.Request) (entity.Record, *upload.File, error) {
	values := entity.Record{}

	if !isMultipart(r) {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()

		err := dec.Decode(&values)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: decode record: %w", entity.ErrInvalidArgument, err)
		}

		return values, nil, nil
	}

	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse form: %w", entity.ErrInvalidArgument, err)
	}

	if raw := r.FormValue("record"); raw != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
		dec.UseNumber()

		err = dec.Decode(&values)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: decode record: %w", entity.ErrInvalidArgument, err)
		}
	}

	image, err := readImage(r, "image")
	if err != nil {
		return nil, nil, err
	}

	return values, image, nil
}

// Create godoc
// @Summary      Thêm bản ghi
// @Description  Ảnh đính kèm được tải lên trước; nếu tải ảnh thất bại bản ghi không được lưu
// @Tags         records
// @Accept       json,mpfd
// @Produce      json
// @Param        entity path string true "Danh mục"
// @Param        record formData string false "Bản ghi dạng JSON"
// @Param        image formData file false "Ảnh đính kèm"
// @Success      201 {object} listview.Page "Danh sách sau khi tải lại"
// @Failure      400 {object} ResponseError
// @Failure      422 {object} ResponseError "Thiếu thông tin bắt buộc"
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/records [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

// Update godoc
// @Summary      Cập nhật bản ghi
// @Description  Gửi lại toàn bộ bản ghi; mã bản ghi không được thay đổi
// @Tags         records
// @Accept       json,mpfd
// @Produce      json
// @Param        entity path string true "Danh mục"
// @Param        key path string true "Mã bản ghi"
// @Param        clearImage query bool false "Xóa ảnh đang lưu"
// @Success      200 {object} listview.Page "Danh sách sau khi tải lại"
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/records/{key} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "key"), http.StatusOK)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, key string, code int) {
	ctx := r.Context()

	values, image, err := decodeSave(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Dữ liệu gửi lên không hợp lệ")
		return
	}

	clearImage, err := optionalBool(r.URL.Query().Get("clearImage"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Tham số clearImage không hợp lệ")
		return
	}

	page, err := h.s.Save(ctx, service.SaveRequest{
		Entity:     chi.URLParam(r, "entity"),
		Key:        key,
		Values:     values,
		Image:      image,
		ClearImage: clearImage,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Lưu bản ghi thất bại")
		return
	}

	SendJSON(ctx, w, code, page)
}

func optionalBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a bool", entity.ErrInvalidArgument, raw)
	}

	return v, nil
}

// Delete godoc
// @Summary      Xóa bản ghi
// @Tags         records
// @Produce      json
// @Param        entity path string true "Danh mục"
// @Param        key path string true "Mã bản ghi"
// @Success      200 {object} listview.Page "Danh sách sau khi tải lại"
// @Failure      404 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /entities/{entity}/records/{key} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.s.Delete(ctx, chi.URLParam(r, "entity"), chi.URLParam(r, "key"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Xóa bản ghi thất bại")
		return
	}

	SendJSON(ctx, w, http.StatusOK, page)
}
