// Package export renders the booking list and its monthly summary as an
// Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"villabook/internal/booking"
	"villabook/internal/dateutil"
	"villabook/internal/models"
)

const (
	sheetBookings = "Bookings"
	sheetSummary  = "Summary"
)

// Workbook builds a two-sheet report: every booking, then the (year, month)
// aggregation with years descending and months in calendar order.
func Workbook(bookings []models.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetBookings)

	if err := writeBookingsSheet(f, bookings); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, booking.AggregateStats(bookings)); err != nil {
		return nil, err
	}
	return f, nil
}

// Write streams the workbook to w and releases it.
func Write(w io.Writer, bookings []models.Booking) error {
	f, err := Workbook(bookings)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeBookingsSheet(f *excelize.File, bookings []models.Booking) error {
	header := []any{
		"Booking ID", "Customer", "Phone", "Check-in", "Check-out",
		"Nights", "Guests", "Type", "Total", "Advance", "Balance",
	}
	if err := writeRow(f, sheetBookings, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, sheetBookings, 1, len(header)); err != nil {
		return err
	}

	for i := range bookings {
		b := &bookings[i]
		row := []any{
			b.ID,
			b.CustomerName,
			b.CustomerPhone,
			b.CheckIn.Format(dateutil.FormatSlash),
			b.CheckOut.Format(dateutil.FormatSlash),
			b.Nights(),
			b.GuestCount,
			b.BookingType.Label(),
			b.TotalAmount,
			b.AdvanceAmount,
			b.BalanceAmount,
		}
		if err := writeRow(f, sheetBookings, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, stats models.Stats) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}

	header := []any{"Year", "Month", "Bookings", "Nights", "Revenue"}
	if err := writeRow(f, sheetSummary, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, sheetSummary, 1, len(header)); err != nil {
		return err
	}

	rowNum := 2
	for _, year := range stats.Years() {
		for _, month := range stats.MonthsOf(year) {
			b := stats.Bucket(year, month)
			row := []any{year, month.String(), b.Bookings, b.Nights, b.Revenue}
			if err := writeRow(f, sheetSummary, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
		total := stats.YearTotal(year)
		row := []any{year, "Total", total.Bookings, total.Nights, total.Revenue}
		if err := writeRow(f, sheetSummary, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, width int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	startCell, _ := excelize.CoordinatesToCellName(1, row)
	endCell, _ := excelize.CoordinatesToCellName(width, row)
	return f.SetCellStyle(sheet, startCell, endCell, style)
}
