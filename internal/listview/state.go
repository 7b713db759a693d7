package listview

import (
	"strings"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

const DefaultPageSize = 10

var PageSizes = []int{10, 20, 50, 100}

// State is the user controlled part of a table: search, filter, sort and
// paging. Transitions follow the console: anything that changes the row set
// returns to the first page, sorting keeps the current page.
type State struct {
	Search   string `json:"search"`
	Filter   string `json:"filter"`
	SortKey  string `json:"sortBy"`
	SortDesc bool   `json:"sortDesc"`
	PageSize int    `json:"pageSize"`
	Page     int    `json:"page"`
}

func NewState() State {
	return State{
		Filter:   entity.FilterAll,
		PageSize: DefaultPageSize,
		Page:     1,
	}
}

func (s State) SetSearch(search string) State {
	s.Search = search
	s.Page = 1

	return s
}

func (s State) SetFilter(filter string) State {
	if strings.TrimSpace(filter) == "" {
		filter = entity.FilterAll
	}

	s.Filter = filter
	s.Page = 1

	return s
}

// SetPageSize ignores sizes outside PageSizes.
func (s State) SetPageSize(size int) State {
	if !ValidPageSize(size) {
		return s
	}

	s.PageSize = size
	s.Page = 1

	return s
}

// ToggleSort flips the direction when key is already active, otherwise sorts
// ascending by key.
func (s State) ToggleSort(key string) State {
	if s.SortKey == key {
		s.SortDesc = !s.SortDesc
		return s
	}

	s.SortKey = key
	s.SortDesc = false

	return s
}

func (s State) SetPage(page int) State {
	if page < 1 {
		page = 1
	}

	s.Page = page

	return s
}

func ValidPageSize(size int) bool {
	for _, v := range PageSizes {
		if v == size {
			return true
		}
	}

	return false
}
