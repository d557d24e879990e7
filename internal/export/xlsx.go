package export

import (
	"bytes"
	"fmt"
	"time"

	"stefan-booking/internal/models"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Buchungen"

var headers = []string{
	"Buchungs-ID", "Name", "Email", "Telefon", "Datum", "Uhrzeit",
	"Dauer (Std.)", "Gesamtpreis (€)", "Nachricht", "Erstellt am (UTC)",
}

// BookingsXLSX writes one header row and one row per booking, in the order given.
func BookingsXLSX(bookings []models.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			b.Name,
			b.Email,
			b.Phone,
			b.Date,
			b.Time,
			b.Duration,
			b.TotalEuros(),
			b.Message,
			b.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "J", 18); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
