package listview_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/listview"
)

func careFixture() ([]entity.Record, entity.Schema, entity.Lookups) {
	schema := entity.MustSchema(entity.CareActivities)

	rows := []entity.Record{
		{entity.CareID: "CS1", entity.CareCompany: "KH2", entity.CareType: "Gọi điện", entity.CareStatus: entity.CareStatusPlanned},
		{entity.CareID: "CS2", entity.CareCompany: "KH1", entity.CareType: "Gặp mặt", entity.CareStatus: entity.CareStatusCompleted},
		{entity.CareID: "CS3", entity.CareCompany: "KH9", entity.CareType: "Email", entity.CareStatus: entity.CareStatusPlanned},
		{entity.CareID: "CS4", entity.CareCompany: "KH1", entity.CareType: "Gọi điện", entity.CareStatus: entity.CareStatusPlanned},
		{entity.CareID: "CS5", entity.CareType: "Tặng quà", entity.CareStatus: nil},
	}

	lookups := entity.Lookups{
		entity.Companies: {"KH1": "Công ty Đà Nẵng", "KH2": "An Phát"},
		entity.Staff:     {},
	}

	return rows, schema, lookups
}

func TestFilterRows(t *testing.T) {
	t.Parallel()

	rows, schema, lookups := careFixture()

	tests := []struct {
		name   string
		search string
		filter string
		want   []string
	}{
		{"identity", "", entity.FilterAll, []string{"CS1", "CS2", "CS3", "CS4", "CS5"}},
		{"empty filter means all", "", "", []string{"CS1", "CS2", "CS3", "CS4", "CS5"}},
		{"diacritic insensitive on resolved company", "da nang", entity.FilterAll, []string{"CS2", "CS4"}},
		{"dangling reference searchable as unknown", "khong xac dinh", entity.FilterAll, []string{"CS3"}},
		{"case insensitive", "GOI DIEN", entity.FilterAll, []string{"CS1", "CS4"}},
		{"filter only", "", entity.CareStatusCompleted, []string{"CS2"}},
		{"search and filter", "goi", entity.CareStatusPlanned, []string{"CS1", "CS4"}},
		{"no match", "zzz", entity.FilterAll, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := listview.FilterRows(rows, schema, lookups, tt.search, tt.filter)
			require.Equal(t, tt.want, entity.Keys(got, schema.Key))

			for _, row := range got {
				require.True(t, slices.ContainsFunc(rows, func(r entity.Record) bool {
					return r.String(schema.Key) == row.String(schema.Key)
				}))
			}
		})
	}
}

func TestSortRows(t *testing.T) {
	t.Parallel()

	rows, schema, lookups := careFixture()

	tests := []struct {
		name string
		key  string
		desc bool
		want []string
	}{
		{"no key keeps order", "", false, []string{"CS1", "CS2", "CS3", "CS4", "CS5"}},
		{"raw field asc, stable ties", entity.CareType, false, []string{"CS3", "CS2", "CS1", "CS4", "CS5"}},
		{"raw field desc, stable ties", entity.CareType, true, []string{"CS5", "CS1", "CS4", "CS2", "CS3"}},
		{"foreign key by display name, missing first", entity.CareCompany, false, []string{"CS5", "CS1", "CS2", "CS4", "CS3"}},
		{"nulls sort first", entity.CareStatus, false, []string{"CS5", "CS2", "CS1", "CS3", "CS4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := listview.SortRows(rows, schema, lookups, tt.key, tt.desc)
			require.Equal(t, tt.want, entity.Keys(got, schema.Key))

			again := listview.SortRows(got, schema, lookups, tt.key, tt.desc)
			require.Equal(t, got, again)
		})
	}

	require.Equal(t, "CS1", rows[0].String(schema.Key), "input must not be reordered")
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	rows := make([]entity.Record, 0, 23)
	for i := range 23 {
		rows = append(rows, entity.Record{"n": float64(i)})
	}

	for _, size := range listview.PageSizes {
		n := listview.TotalPages(len(rows), size)

		var all []entity.Record
		for p := 1; p <= n; p++ {
			all = append(all, listview.Paginate(rows, p, size)...)
		}

		require.Equal(t, rows, all, "size %d", size)
	}

	require.Equal(t, 3, listview.TotalPages(23, 10))
	require.Equal(t, 1, listview.TotalPages(23, 50))
	require.Equal(t, 0, listview.TotalPages(0, 10))
	require.Len(t, listview.Paginate(rows, 1, 50), 23)
	require.Empty(t, listview.Paginate(rows, 4, 10))
	require.Empty(t, listview.Paginate(rows, 0, 10))
}

func TestState(t *testing.T) {
	t.Parallel()

	s := listview.NewState().SetPage(3)
	require.Equal(t, entity.FilterAll, s.Filter)
	require.Equal(t, 3, s.Page)

	s = s.ToggleSort(entity.CareType)
	require.Equal(t, 3, s.Page, "sorting keeps the page")
	require.False(t, s.SortDesc)

	s = s.ToggleSort(entity.CareType)
	require.True(t, s.SortDesc)

	s = s.ToggleSort(entity.CareStatus)
	require.Equal(t, entity.CareStatus, s.SortKey)
	require.False(t, s.SortDesc)

	require.Equal(t, 1, s.SetSearch("x").Page)
	require.Equal(t, 1, s.SetFilter(entity.CareStatusPlanned).Page)
	require.Equal(t, entity.FilterAll, s.SetFilter("").Filter)

	sized := s.SetPageSize(50)
	require.Equal(t, 50, sized.PageSize)
	require.Equal(t, 1, sized.Page)

	require.Equal(t, s, s.SetPageSize(7), "unsupported size is ignored")
	require.Equal(t, 1, s.SetPage(-2).Page)
}

func TestDerive(t *testing.T) {
	t.Parallel()

	rows, schema, lookups := careFixture()

	state := listview.NewState().SetFilter(entity.CareStatusPlanned).ToggleSort(entity.CareCompany)

	page := listview.Derive(rows, schema, lookups, state)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, []string{"CS1", "CS4", "CS3"}, entity.Keys(page.Rows, schema.Key))
	require.Equal(t, []string{entity.FilterAll, entity.CareStatusPlanned, entity.CareStatusCompleted}, page.Filters)

	require.Equal(t, page, listview.Derive(rows, schema, lookups, state))

	state.PageSize = 3
	page = listview.Derive(rows, schema, lookups, state)
	require.Equal(t, listview.DefaultPageSize, page.State.PageSize)
}
