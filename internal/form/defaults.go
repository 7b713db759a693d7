package form

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

// CareDueAfter is the default window between planning a care activity and its due date.
const CareDueAfter = 7 * 24 * time.Hour

// GenerateID builds PREFIX+YYMMDD+NNN where NNN is a random three digit suffix.
func GenerateID(prefix string, now time.Time, randN func(n int) int) string {
	if randN == nil {
		randN = rand.IntN
	}

	return fmt.Sprintf("%s%s%03d", prefix, now.Format("060102"), randN(1000))
}

func seedDefaults(schema entity.Schema, now time.Time, randN func(n int) int) entity.Record {
	draft := make(entity.Record, len(schema.Fields))

	for _, f := range schema.Fields {
		draft[f.Name] = ""
	}

	for k, v := range schema.Defaults {
		draft[k] = v
	}

	if schema.IDPrefix != "" {
		draft[schema.Key] = GenerateID(schema.IDPrefix, now, randN)
	}

	today := entity.Today(now)

	switch schema.Name {
	case entity.CareActivities:
		draft[entity.CarePlanned] = today.Format(entity.DateLayout)
		draft[entity.CareDue] = today.Add(CareDueAfter).Format(entity.DateLayout)
	case entity.Quotes:
		draft[entity.QuoteDate] = today.Format(entity.DateLayout)
	}

	return draft
}

// normalizeDates rewrites every date field of the draft as YYYY-MM-DD.
func normalizeDates(schema entity.Schema, draft entity.Record) {
	for _, f := range schema.FieldsOfKind(entity.KindDate) {
		if _, ok := draft[f.Name]; !ok {
			continue
		}

		draft[f.Name] = entity.NormalizeDate(draft.String(f.Name))
	}
}
