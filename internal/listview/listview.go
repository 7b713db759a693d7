package listview

import (
	"sort"
	"strings"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/pkg/textnorm"
)

type Page struct {
	Rows       []entity.Record `json:"rows"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
	State      State           `json:"state"`
	Filters    []string        `json:"filters"`
	Lookups    entity.Lookups  `json:"lookups,omitempty"`
}

// FilterRows keeps the rows that match search on any searchable field and
// whose filter field equals filter (FilterAll disables the latter).
func FilterRows(rows []entity.Record, schema entity.Schema, lookups entity.Lookups, search, filter string) []entity.Record {
	needle := textnorm.Normalize(strings.TrimSpace(search))
	fields := schema.SearchFields()

	filtered := make([]entity.Record, 0, len(rows))

	for _, row := range rows {
		if !matchesFilter(row, schema, filter) {
			continue
		}

		if needle != "" && !matchesSearch(row, fields, lookups, needle) {
			continue
		}

		filtered = append(filtered, row)
	}

	return filtered
}

func matchesFilter(row entity.Record, schema entity.Schema, filter string) bool {
	if filter == "" || filter == entity.FilterAll || schema.FilterField == "" {
		return true
	}

	return row.String(schema.FilterField) == filter
}

func matchesSearch(row entity.Record, fields []entity.Field, lookups entity.Lookups, needle string) bool {
	for _, f := range fields {
		if textnorm.Contains(lookups.Display(f, row), needle) {
			return true
		}
	}

	return false
}

// SortRows returns a stably sorted copy. Values compare lexically, foreign
// keys by their resolved display name, missing values as "".
func SortRows(rows []entity.Record, schema entity.Schema, lookups entity.Lookups, key string, desc bool) []entity.Record {
	sorted := make([]entity.Record, len(rows))
	copy(sorted, rows)

	if key == "" {
		return sorted
	}

	f, ok := schema.Field(key)
	if !ok {
		f = entity.Field{Name: key}
	}

	values := make([]string, len(sorted))
	idx := make([]int, len(sorted))

	for i, row := range sorted {
		idx[i] = i
		values[i] = lookups.Display(f, row)
	}

	sort.SliceStable(idx, func(a, b int) bool {
		if desc {
			return values[idx[a]] > values[idx[b]]
		}

		return values[idx[a]] < values[idx[b]]
	})

	out := make([]entity.Record, len(sorted))
	for i, j := range idx {
		out[i] = sorted[j]
	}

	return out
}

// TotalPages is ceil(total/size); zero rows make zero pages.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}

	return (total + size - 1) / size
}

// Paginate returns the 1-based page of rows; out of range pages are empty.
func Paginate(rows []entity.Record, page, size int) []entity.Record {
	if size <= 0 || page < 1 {
		return []entity.Record{}
	}

	start := (page - 1) * size
	if start >= len(rows) {
		return []entity.Record{}
	}

	end := min(start+size, len(rows))

	return rows[start:end]
}

// Derive runs filter, sort and slice over the full loaded set.
func Derive(rows []entity.Record, schema entity.Schema, lookups entity.Lookups, state State) Page {
	if !ValidPageSize(state.PageSize) {
		state.PageSize = DefaultPageSize
	}

	if state.Page < 1 {
		state.Page = 1
	}

	if state.Filter == "" {
		state.Filter = entity.FilterAll
	}

	filtered := FilterRows(rows, schema, lookups, state.Search, state.Filter)
	sorted := SortRows(filtered, schema, lookups, state.SortKey, state.SortDesc)

	return Page{
		Rows:       Paginate(sorted, state.Page, state.PageSize),
		Total:      len(sorted),
		TotalPages: TotalPages(len(sorted), state.PageSize),
		State:      state,
		Filters:    FilterOptions(rows, schema),
		Lookups:    lookups,
	}
}

// FilterOptions lists the distinct non-empty filter values in first-seen order.
func FilterOptions(rows []entity.Record, schema entity.Schema) []string {
	options := []string{entity.FilterAll}
	if schema.FilterField == "" {
		return options
	}

	seen := make(map[string]bool)

	for _, row := range rows {
		v := row.String(schema.FilterField)
		if v == "" || seen[v] {
			continue
		}

		seen[v] = true
		options = append(options, v)
	}

	return options
}
