package upload

import (
	"fmt"
	"net/http"
	"strings"
)

// MaxImageSize is the largest attachment accepted before any network call.
const MaxImageSize = 5 << 20

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// File is an image held in memory between selection and upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f File) Size() int {
	return len(f.Data)
}

type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type Result struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// Validate checks type and size of f. Messages are user facing.
func Validate(f File) Validation {
	errs := make([]string, 0)

	if f.Size() == 0 {
		errs = append(errs, "Tệp ảnh rỗng")
	}

	if f.Size() > MaxImageSize {
		errs = append(errs, fmt.Sprintf("Kích thước ảnh vượt quá %d MB", MaxImageSize>>20))
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(f.ContentType, ";")[0]))
	if !allowedTypes[declared] {
		errs = append(errs, "Chỉ chấp nhận ảnh JPEG, PNG, GIF hoặc WEBP")
	} else if f.Size() > 0 {
		sniffed := http.DetectContentType(f.Data)
		if !allowedTypes[sniffed] {
			errs = append(errs, "Nội dung tệp không phải là ảnh hợp lệ")
		}
	}

	return Validation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
