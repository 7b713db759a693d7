package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/upload"
)

const errInternalText = "Lỗi hệ thống"

type ResponseError struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string, details ...string) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error(), Details: details})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps service errors to a status and the single user facing
// message of the failed action. msg is used for unexpected errors.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) { //nolint:cyclop
	var vErr *entity.ValidationError

	switch {
	case errors.As(err, &vErr):
		SendErr(ctx, w, http.StatusUnprocessableEntity, err, "Dữ liệu không hợp lệ", vErr.Violations...)
	case errors.Is(err, entity.ErrUnknownEntity):
		SendErr(ctx, w, http.StatusNotFound, err, "Không tìm thấy danh mục")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Không tìm thấy bản ghi")
	case errors.Is(err, entity.ErrImmutableKey):
		SendErr(ctx, w, http.StatusBadRequest, err, "Không được thay đổi mã bản ghi")
	case errors.Is(err, entity.ErrNoCategoryCode):
		SendErr(ctx, w, http.StatusBadRequest, err, "Danh mục không hỗ trợ mã theo phân loại")
	case errors.Is(err, entity.ErrInvalidArgument), errors.Is(err, entity.ErrInvalidImage):
		SendErr(ctx, w, http.StatusBadRequest, err, "Tham số không hợp lệ")
	case errors.Is(err, entity.ErrUpload):
		SendErr(ctx, w, http.StatusBadGateway, err, "Tải ảnh lên thất bại, bản ghi chưa được lưu")
	case errors.Is(err, entity.ErrRemote):
		SendErr(ctx, w, http.StatusBadGateway, err, "Không thể kết nối tới kho dữ liệu")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

// readImage reads the optional image part of a multipart form. Reading stops
// one byte past the size limit so oversized files still fail validation.
func readImage(r *http.Request, field string) (*upload.File, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entity.ErrInvalidArgument, field, err)
	}
	defer file.Close()

	return fileFromPart(file, header)
}

func fileFromPart(file multipart.File, header *multipart.FileHeader) (*upload.File, error) {
	data, err := io.ReadAll(io.LimitReader(file, upload.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read image: %w", entity.ErrInvalidArgument, err)
	}

	return &upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
