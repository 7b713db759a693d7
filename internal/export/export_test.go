package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/export"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	schema := entity.MustSchema(entity.Quotes)
	lookups := entity.Lookups{entity.Companies: {"KH001": "Công ty An Phát"}}

	rows := []entity.Record{
		{
			entity.QuoteID:      "BG001",
			entity.QuoteCompany: "KH001",
			entity.QuoteDate:    "3/9/2024",
			entity.QuoteTotal:   "1500000.50",
			entity.QuoteStatus:  entity.QuoteStatusDraft,
		},
		{
			entity.QuoteID:      "BG002",
			entity.QuoteCompany: "KH404",
			entity.QuoteDate:    "2024-03-10",
		},
	}

	var buf bytes.Buffer

	require.NoError(t, export.Write(&buf, schema, lookups, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{schema.Title}, f.GetSheetList())

	got, err := f.GetRows(schema.Title)
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "Mã báo giá", got[0][0])
	require.Equal(t, "Ghi chú", got[0][len(schema.Fields)-1])

	require.Equal(t, "BG001", got[1][0])
	require.Equal(t, "Công ty An Phát", got[1][1])
	require.Equal(t, "2024-03-09", got[1][2])
	require.Equal(t, "1500000.5", got[1][6])

	require.Equal(t, entity.UnknownDisplay, got[2][1])
}

func TestFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "DMHH.xlsx", export.Filename(entity.MustSchema(entity.Goods)))
}
