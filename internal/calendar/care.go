package calendar

import (
	"log/slog"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

type CareCounters struct {
	Total     int `json:"total"`
	Planned   int `json:"planned"`
	Completed int `json:"completed"`
}

type CareCalendar struct {
	Grid     Grid         `json:"grid"`
	Counters CareCounters `json:"counters"`
}

// ProjectCare places the planned and actual dates of care activities on the
// month grid. A record showing up twice on the same day is kept once, the
// planned entry wins. Counters are per record with any event in the month.
func ProjectCare(records []entity.Record, lookups entity.Lookups, month, year int) CareCalendar {
	grid := NewGrid(month, year)
	counters := CareCounters{}

	companyField := entity.Field{Name: entity.CareCompany, Kind: entity.KindRef, Ref: entity.Companies}

	for _, r := range records {
		key := r.String(entity.CareID)
		title := r.String(entity.CareType)

		if company := lookups.Display(companyField, r); company != "" {
			title = company + " - " + title
		}

		seenDays := make(map[int]bool, 2)

		for _, src := range []struct {
			field string
			kind  EventKind
		}{
			{entity.CarePlanned, KindPlanned},
			{entity.CareActual, KindActual},
		} {
			raw := r.String(src.field)
			if raw == "" {
				continue
			}

			t, err := entity.ParseDate(raw)
			if err != nil {
				slog.Warn("skip unparseable care date", "key", key, "field", src.field, "value", raw)
				continue
			}

			if !inMonth(t, month, year) || seenDays[t.Day()] {
				continue
			}

			seenDays[t.Day()] = true

			grid.add(t.Day(), Event{
				Key:    key,
				Kind:   src.kind,
				Title:  title,
				Date:   t.Format(entity.DateLayout),
				Record: r,
			})
		}

		if len(seenDays) == 0 {
			continue
		}

		counters.Total++

		if r.String(entity.CareStatus) == entity.CareStatusCompleted {
			counters.Completed++
		} else {
			counters.Planned++
		}
	}

	return CareCalendar{Grid: grid, Counters: counters}
}
