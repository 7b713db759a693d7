package calendar

import (
	"fmt"
	"time"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

type EventKind string

const (
	KindPlanned     EventKind = "planned"
	KindActual      EventKind = "actual"
	KindBirthday    EventKind = "birthday"
	KindAnniversary EventKind = "anniversary"
)

type Event struct {
	Key    string        `json:"key"`
	Kind   EventKind     `json:"kind"`
	Title  string        `json:"title"`
	Date   string        `json:"date"`
	Years  int           `json:"years,omitempty"`
	Record entity.Record `json:"record"`
}

// Cell is one day of the grid; Day is 0 for the leading blanks.
type Cell struct {
	Day    int     `json:"day"`
	Events []Event `json:"events"`
}

type Grid struct {
	Month int      `json:"month"`
	Year  int      `json:"year"`
	Weeks [][]Cell `json:"weeks"`
}

// ValidateMonth checks a zero based month index.
func ValidateMonth(month, year int) error {
	if month < 0 || month > 11 {
		return fmt.Errorf("%w: month %d out of range 0..11", entity.ErrInvalidArgument, month)
	}

	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", entity.ErrInvalidArgument, year)
	}

	return nil
}

func DaysIn(month, year int) int {
	return time.Date(year, time.Month(month+1)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// leadingBlanks is the column of the first day with Monday as column 0.
func leadingBlanks(month, year int) int {
	wd := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// gridWeeks fits any month: 6 leading blanks + 31 days need six rows.
const gridWeeks = 6

// NewGrid lays out the month in six rows of seven cells starting on Monday.
func NewGrid(month, year int) Grid {
	blanks := leadingBlanks(month, year)
	days := DaysIn(month, year)

	cells := make([]Cell, 0, gridWeeks*7)
	for range blanks {
		cells = append(cells, Cell{Events: []Event{}})
	}

	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Events: []Event{}})
	}

	for len(cells) < gridWeeks*7 {
		cells = append(cells, Cell{Events: []Event{}})
	}

	weeks := make([][]Cell, 0, gridWeeks)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return Grid{Month: month, Year: year, Weeks: weeks}
}

func (g *Grid) cell(day int) *Cell {
	idx := leadingBlanks(g.Month, g.Year) + day - 1
	return &g.Weeks[idx/7][idx%7]
}

func (g *Grid) add(day int, e Event) {
	c := g.cell(day)
	c.Events = append(c.Events, e)
}

// Day returns the events of one day of the month.
func (g Grid) Day(day int) []Event {
	if day < 1 || day > DaysIn(g.Month, g.Year) {
		return nil
	}

	return g.cell(day).Events
}

func inMonth(t time.Time, month, year int) bool {
	return t.Year() == year && int(t.Month()) == month+1
}
