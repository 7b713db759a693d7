package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one loosely typed row of the record store: field name to
// string, number, bool or nil.
type Record map[string]any

func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func (r Record) Has(field string) bool {
	return strings.TrimSpace(r.String(field)) != ""
}

func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}

	return c
}

// RelatedBy is the in-memory join of a foreign key: the rows whose field equals value.
func RelatedBy(rows []Record, field, value string) []Record {
	related := make([]Record, 0)

	for _, row := range rows {
		if row.String(field) == value {
			related = append(related, row)
		}
	}

	return related
}

// Keys returns the key column of every row in order.
func Keys(rows []Record, keyField string) []string {
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.String(keyField))
	}

	return keys
}
