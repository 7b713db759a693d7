package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetName = 31

func Filename(schema entity.Schema) string {
	return fmt.Sprintf("%s.xlsx", schema.Name)
}

// Write renders rows as one sheet with a header of field labels. Foreign
// keys are written as display names, numbers as numeric cells.
func Write(w io.Writer, schema entity.Schema, lookups entity.Lookups, rows []entity.Record) error {
	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("close xlsx", "err", err)
		}
	}()

	sheet := sheetName(schema)

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	f.SetActiveSheet(index)

	if sheet != "Sheet1" {
		err = f.DeleteSheet("Sheet1")
		if err != nil {
			return fmt.Errorf("delete default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, field := range schema.Fields {
		err = setCell(f, sheet, i+1, 1, field.Label)
		if err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(schema.Fields), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}

	err = f.SetCellStyle(sheet, "A1", last, headerStyle)
	if err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	for r, row := range rows {
		for c, field := range schema.Fields {
			err = setCell(f, sheet, c+1, r+2, cellValue(field, lookups, row))
			if err != nil {
				return err
			}
		}
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	err = f.Write(w)
	if err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}

func cellValue(field entity.Field, lookups entity.Lookups, row entity.Record) any {
	switch field.Kind {
	case entity.KindNumber:
		raw := row.String(field.Name)
		if raw == "" {
			return ""
		}

		d, err := decimal.NewFromString(raw)
		if err != nil {
			return raw
		}

		return d.InexactFloat64()
	case entity.KindDate:
		return entity.NormalizeDate(row.String(field.Name))
	default:
		return lookups.Display(field, row)
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	err = f.SetCellValue(sheet, cell, value)
	if err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}

	return nil
}

func sheetName(schema entity.Schema) string {
	name := []rune(schema.Title)
	if len(name) == 0 {
		return string(schema.Name)
	}

	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}

	return string(name)
}
