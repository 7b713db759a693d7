package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/listview"
)

const maxJournalLimit = 100

type ListParams struct {
	Search   string
	Filter   string
	SortBy   string
	Order    string
	Page     string
	PageSize string
}

func ValidateListParams(name string, p ListParams) (listview.State, error) { //nolint:cyclop
	schema, err := entity.SchemaByName(name)
	if err != nil {
		return listview.State{}, err
	}

	state := listview.NewState().SetSearch(p.Search).SetFilter(p.Filter)

	if p.PageSize != "" {
		size, err := strconv.Atoi(p.PageSize)
		if err != nil || !listview.ValidPageSize(size) {
			return listview.State{}, fmt.Errorf("%w: invalid pageSize param: %s", entity.ErrInvalidArgument, p.PageSize)
		}

		state = state.SetPageSize(size)
	}

	if p.SortBy != "" {
		if _, ok := schema.Field(p.SortBy); !ok {
			return listview.State{}, fmt.Errorf("%w: invalid sortBy param: %s", entity.ErrInvalidArgument, p.SortBy)
		}

		state = state.ToggleSort(p.SortBy)
	}

	switch strings.ToLower(p.Order) {
	case "", "asc":
	case "desc":
		if p.SortBy == "" {
			return listview.State{}, fmt.Errorf("%w: order without sortBy", entity.ErrInvalidArgument)
		}

		state = state.ToggleSort(p.SortBy)
	default:
		return listview.State{}, fmt.Errorf("%w: invalid order param: %s", entity.ErrInvalidArgument, p.Order)
	}

	if p.Page != "" {
		page, err := strconv.Atoi(p.Page)
		if err != nil || page < 1 {
			return listview.State{}, fmt.Errorf("%w: invalid page param: %s", entity.ErrInvalidArgument, p.Page)
		}

		state = state.SetPage(page)
	}

	return state, nil
}

// ValidateMonthParams parses a zero based month and a year, defaulting to
// the month of now.
func ValidateMonthParams(month, year string, now time.Time) (int, int, error) {
	m := int(now.Month()) - 1
	y := now.Year()

	var err error

	if month != "" {
		m, err = strconv.Atoi(month)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid month param: %s", entity.ErrInvalidArgument, month)
		}
	}

	if year != "" {
		y, err = strconv.Atoi(year)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid year param: %s", entity.ErrInvalidArgument, year)
		}
	}

	return m, y, nil
}

func ValidateJournalParams(name, key, action, page, limit string) (entity.JournalFilter, error) {
	filter := entity.JournalFilter{Key: key, Page: 1, Limit: 20}

	if name != "" {
		schema, err := entity.SchemaByName(name)
		if err != nil {
			return entity.JournalFilter{}, err
		}

		filter.Entity = schema.Name
	}

	if action != "" {
		filter.Action = entity.Action(action)
		if !filter.Action.IsValid() {
			return entity.JournalFilter{}, fmt.Errorf("%w: invalid action param: %s", entity.ErrInvalidArgument, action)
		}
	}

	if page != "" {
		p, err := strconv.ParseUint(page, 10, 64)
		if err != nil || p == 0 {
			return entity.JournalFilter{}, fmt.Errorf("%w: invalid page param: %s", entity.ErrInvalidArgument, page)
		}

		filter.Page = p
	}

	if limit != "" {
		l, err := strconv.ParseUint(limit, 10, 64)
		if err != nil || l == 0 || l > maxJournalLimit {
			return entity.JournalFilter{}, fmt.Errorf("%w: invalid limit param: %s", entity.ErrInvalidArgument, limit)
		}

		filter.Limit = l
	}

	return filter, nil
}
