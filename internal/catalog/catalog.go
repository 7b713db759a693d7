package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Allocator hands out the next goods code of a category.
type Allocator interface {
	Next(ctx context.Context, category string, existing []string) (string, error)
}

func codePattern(category string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(category) + `_(\d+)$`)
}

// MaxSequence is the highest sequence among codes of category, 0 when none.
func MaxSequence(codes []string, category string) int {
	re := codePattern(category)
	maxSeq := 0

	for _, code := range codes {
		m := re.FindStringSubmatch(strings.TrimSpace(code))
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err == nil && n > maxSeq {
			maxSeq = n
		}
	}

	return maxSeq
}

func Format(category string, seq int) string {
	return fmt.Sprintf("%s_%03d", category, seq)
}

// NextCode is max existing sequence of category plus one.
func NextCode(codes []string, category string) string {
	return Format(category, MaxSequence(codes, category)+1)
}

// IsAutoCode reports whether code looks generated for category.
func IsAutoCode(code, category string) bool {
	if category == "" {
		return false
	}

	return regexp.MustCompile(`^` + regexp.QuoteMeta(category) + `_\d{3,}$`).MatchString(code)
}

// SnapshotAllocator derives the code from the list the caller loaded. Two
// clients working from the same snapshot receive the same code.
type SnapshotAllocator struct{}

func (SnapshotAllocator) Next(_ context.Context, category string, existing []string) (string, error) {
	return NextCode(existing, category), nil
}
