package entity

// Lookups resolves foreign keys to display names, per referenced entity.
type Lookups map[Name]map[string]string

func NewLookup(schema Schema, rows []Record) map[string]string {
	l := make(map[string]string, len(rows))

	for _, row := range rows {
		key := row.String(schema.Key)
		if key == "" {
			continue
		}

		name := row.String(schema.DisplayField)
		if name == "" {
			name = key
		}

		l[key] = name
	}

	return l
}

// Display returns the resolved value of field in row: the display name for
// foreign keys (UnknownDisplay when dangling), the raw value otherwise.
func (l Lookups) Display(f Field, row Record) string {
	raw := row.String(f.Name)
	if f.Kind != KindRef {
		return raw
	}

	if raw == "" {
		return ""
	}

	name, ok := l[f.Ref][raw]
	if !ok {
		return UnknownDisplay
	}

	return name
}
