package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type DetailState string

const (
	DetailReady    DetailState = "ready"
	DetailNotFound DetailState = "not_found"
)

// CompanyDetail is one company with the care activities and quotes that
// reference it.
type CompanyDetail struct {
	State   DetailState   `json:"state"`
	Company Record        `json:"company,omitempty"`
	Care    []Record      `json:"care,omitempty"`
	Quotes  []Record      `json:"quotes,omitempty"`
	Summary DetailSummary `json:"summary"`
}

type DetailSummary struct {
	CareCount  int             `json:"careCount"`
	QuoteCount int             `json:"quoteCount"`
	QuoteTotal decimal.Decimal `json:"quoteTotal"`
}

// OverdueCare is a care activity past its due date that is not completed.
type OverdueCare struct {
	Key      string    `json:"key"`
	Company  string    `json:"company"`
	Type     string    `json:"type"`
	Staff    string    `json:"staff"`
	Due      time.Time `json:"due"`
	DaysLate int       `json:"daysLate"`
}
