// Package export writes bookings to spreadsheet files for operators.
package export

import (
	"fmt"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Bookings"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// Export writes a header row followed by one row per booking in record field order.
func (e *XLSXExporter) Export(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, domain.RecordHeader); err != nil {
		return nil, err
	}
	for i, b := range bookings {
		if err := setRow(f, i+2, b.Record()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err = f.SetSheetRow(SheetName, cell, &vals); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}
