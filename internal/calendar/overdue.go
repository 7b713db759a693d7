package calendar

import (
	"log/slog"
	"sort"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

// Overdue lists care activities that are not completed and whose due date,
// or planned date when no due date is set, lies before today. Oldest first.
func Overdue(records []entity.Record, lookups entity.Lookups, today time.Time) []entity.OverdueCare {
	today = entity.Today(today)
	items := make([]entity.OverdueCare, 0)

	care := entity.MustSchema(entity.CareActivities)
	company, _ := care.Field(entity.CareCompany)
	staff, _ := care.Field(entity.CareStaff)

	for _, r := range records {
		if r.String(entity.CareStatus) == entity.CareStatusCompleted {
			continue
		}

		raw := r.String(entity.CareDue)
		if raw == "" {
			raw = r.String(entity.CarePlanned)
		}

		if raw == "" {
			continue
		}

		due, err := entity.ParseDate(raw)
		if err != nil {
			slog.Warn("skip unparseable due date", "key", r.String(entity.CareID), "value", raw)
			continue
		}

		if !due.Before(today) {
			continue
		}

		items = append(items, entity.OverdueCare{
			Key:      r.String(entity.CareID),
			Company:  lookups.Display(company, r),
			Type:     r.String(entity.CareType),
			Staff:    lookups.Display(staff, r),
			Due:      due,
			DaysLate: int(today.Sub(due).Hours() / 24),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Due.Before(items[j].Due)
	})

	return items
}
