package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/service"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

// ValidateImage godoc
// @Summary      Kiểm tra ảnh
// @Description  Kiểm tra định dạng và dung lượng, không gửi ảnh đi
// @Tags         images
// @Accept       mpfd
// @Produce      json
// @Param        image formData file true "Ảnh"
// @Success      200 {object} upload.Validation
// @Failure      400 {object} ResponseError
// @Router       /images/validate [post]
func (h *Handler) ValidateImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	image, err := formImage(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Thiếu tệp ảnh")
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.s.ValidateImage(*image))
}

// UploadImage godoc
// @Summary      Tải ảnh lên
// @Tags         images
// @Accept       mpfd
// @Produce      json
// @Param        image formData file true "Ảnh"
// @Success      200 {object} upload.Result
// @Failure      400 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /images [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	image, err := formImage(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Thiếu tệp ảnh")
		return
	}

	res, err := h.s.UploadImage(ctx, *image)
	if err != nil {
		SendServiceErr(ctx, w, err, "Tải ảnh lên thất bại")
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

func formImage(r *http.Request) (*upload.File, error) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		return nil, err
	}

	image, err := readImage(r, "image")
	if err != nil {
		return nil, err
	}

	if image == nil {
		return nil, http.ErrMissingFile
	}

	return image, nil
}

func monthParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	return service.ValidateMonthParams(q.Get("month"), q.Get("year"), time.Now())
}

// CareCalendar godoc
// @Summary      Lịch chăm sóc khách hàng
// @Description  Ngày dự kiến và ngày thực tế trên lưới tháng, tuần bắt đầu từ thứ Hai
// @Tags         calendar
// @Produce      json
// @Param        month query int false "Tháng, 0 là tháng Một"
// @Param        year query int false "Năm"
// @Success      200 {object} calendar.CareCalendar
// @Failure      400 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /calendar/care [get]
func (h *Handler) CareCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := monthParams(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	cal, err := h.s.CareCalendar(ctx, month, year)
	if err != nil {
		SendServiceErr(ctx, w, err, "Không tải được lịch")
		return
	}

	SendJSON(ctx, w, http.StatusOK, cal)
}

// CompanyCalendar godoc
// @Summary      Lịch sinh nhật và ngày thành lập
// @Tags         calendar
// @Produce      json
// @Param        month query int false "Tháng, 0 là tháng Một"
// @Param        year query int false "Năm"
// @Success      200 {object} calendar.CompanyCalendar
// @Failure      400 {object} ResponseError
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /calendar/companies [get]
func (h *Handler) CompanyCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := monthParams(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	cal, err := h.s.CompanyCalendar(ctx, month, year)
	if err != nil {
		SendServiceErr(ctx, w, err, "Không tải được lịch")
		return
	}

	SendJSON(ctx, w, http.StatusOK, cal)
}

// CompanyDetail godoc
// @Summary      Chi tiết khách hàng
// @Description  Thông tin công ty cùng các hoạt động chăm sóc và báo giá liên quan
// @Tags         companies
// @Produce      json
// @Param        id path string true "Mã công ty"
// @Success      200 {object} entity.CompanyDetail
// @Failure      404 {object} entity.CompanyDetail "state = not_found"
// @Failure      502 {object} ResponseError
// @Security     BearerAuth
// @Router       /companies/{id} [get]
func (h *Handler) CompanyDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.s.CompanyDetail(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err, "Không tải được thông tin khách hàng")
		return
	}

	if detail.State == entity.DetailNotFound {
		SendJSON(ctx, w, http.StatusNotFound, detail)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detail)
}

// RelatedRecord godoc
// @Summary      Bản ghi liên quan của khách hàng
// @Tags         companies
// @Produce      json
// @Param        id path string true "Mã công ty"
// @Param        entity path string true "Danh mục" Enums(CSKH, PO)
// @Param        key path string true "Mã bản ghi"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Security     BearerAuth
// @Router       /companies/{id}/related/{entity}/{key} [get]
func (h *Handler) RelatedRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	record, err := h.s.RelatedRecord(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "entity"), chi.URLParam(r, "key"))
	if err != nil {
		SendServiceErr(ctx, w, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, record)
}

type JournalResponse struct {
	Total     int               `json:"total"`
	Mutations []entity.Mutation `json:"mutations"`
}

// Journal godoc
// @Summary      Nhật ký thay đổi
// @Tags         journal
// @Produce      json
// @Param        entity query string false "Danh mục"
// @Param        key query string false "Mã bản ghi"
// @Param        action query string false "Thao tác" Enums(add, edit, delete)
// @Param        page query int false "Trang"
// @Param        limit query int false "Số dòng, tối đa 100"
// @Success      200 {object} JournalResponse
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     BearerAuth
// @Router       /journal [get]
func (h *Handler) Journal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter, err := service.ValidateJournalParams(q.Get("entity"), q.Get("key"), q.Get("action"), q.Get("page"), q.Get("limit"))
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	mutations, total, err := h.s.Journal(ctx, filter)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		SendServiceErr(ctx, w, err, "Không tải được nhật ký")
		return
	}

	SendJSON(ctx, w, http.StatusOK, JournalResponse{Total: total, Mutations: mutations})
}
