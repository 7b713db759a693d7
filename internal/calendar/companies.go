package calendar

import (
	"log/slog"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

type CompanyCounters struct {
	Birthdays     int `json:"birthdays"`
	Anniversaries int `json:"anniversaries"`
}

type CompanyCalendar struct {
	Grid     Grid            `json:"grid"`
	Counters CompanyCounters `json:"counters"`
}

// ProjectCompanies re-projects contact birthdays and founding dates onto the
// target year. Years is the age or the number of years since founding.
func ProjectCompanies(records []entity.Record, month, year int) CompanyCalendar {
	grid := NewGrid(month, year)
	counters := CompanyCounters{}

	for _, r := range records {
		key := r.String(entity.CompanyID)

		for _, src := range []struct {
			field string
			kind  EventKind
			title string
		}{
			{entity.CompanyBirthday, KindBirthday, r.String(entity.CompanyContact)},
			{entity.CompanyFounded, KindAnniversary, r.String(entity.CompanyName)},
		} {
			raw := r.String(src.field)
			if raw == "" {
				continue
			}

			orig, err := entity.ParseDate(raw)
			if err != nil {
				slog.Warn("skip unparseable company date", "key", key, "field", src.field, "value", raw)
				continue
			}

			if int(orig.Month()) != month+1 {
				continue
			}

			day := reproject(orig, year)

			title := src.title
			if title == "" {
				title = r.String(entity.CompanyName)
			}

			grid.add(day.Day(), Event{
				Key:    key,
				Kind:   src.kind,
				Title:  title,
				Date:   day.Format(entity.DateLayout),
				Years:  year - orig.Year(),
				Record: r,
			})

			if src.kind == KindBirthday {
				counters.Birthdays++
			} else {
				counters.Anniversaries++
			}
		}
	}

	return CompanyCalendar{Grid: grid, Counters: counters}
}

// reproject moves orig to year keeping month and day; 29 February becomes
// 28 February in non-leap years.
func reproject(orig time.Time, year int) time.Time {
	day := orig.Day()
	if last := DaysIn(int(orig.Month())-1, year); day > last {
		day = last
	}

	return time.Date(year, orig.Month(), day, 0, 0, 0, 0, time.UTC)
}
