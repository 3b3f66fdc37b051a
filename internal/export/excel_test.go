package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villabook/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkbook(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:            "BK12345601",
			CustomerName:  "Alice",
			CustomerPhone: "9876543210",
			CheckIn:       day(2025, time.July, 1),
			CheckOut:      day(2025, time.July, 4),
			GuestCount:    4,
			BookingType:   models.TypeFamily,
			TotalAmount:   9000,
			AdvanceAmount: 3000,
			BalanceAmount: 6000,
		},
		{
			ID:            "BK12345702",
			CustomerName:  "Bob",
			CustomerPhone: "9000011111",
			CheckIn:       day(2024, time.December, 30),
			CheckOut:      day(2025, time.January, 2),
			GuestCount:    2,
			BookingType:   models.TypeBachelors,
			TotalAmount:   8000,
			AdvanceAmount: 8000,
			BalanceAmount: 0,
		},
	}

	f, err := Workbook(bookings)
	require.NoError(t, err)
	defer f.Close()

	t.Run("BookingsSheet", func(t *testing.T) {
		got, err := f.GetCellValue("Bookings", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Booking ID", got)

		got, err = f.GetCellValue("Bookings", "A2")
		require.NoError(t, err)
		assert.Equal(t, "BK12345601", got)

		got, err = f.GetCellValue("Bookings", "D2")
		require.NoError(t, err)
		assert.Equal(t, "01/07/2025", got)

		got, err = f.GetCellValue("Bookings", "F2")
		require.NoError(t, err)
		assert.Equal(t, "3", got)

		got, err = f.GetCellValue("Bookings", "H3")
		require.NoError(t, err)
		assert.Equal(t, "Bachelor Party", got)
	})

	t.Run("SummarySheet", func(t *testing.T) {
		// Years descending: 2025 July first, then its total, then 2024.
		rows, err := f.GetRows("Summary")
		require.NoError(t, err)
		require.Len(t, rows, 5)

		assert.Equal(t, []string{"Year", "Month", "Bookings", "Nights", "Revenue"}, rows[0])
		assert.Equal(t, []string{"2025", "July", "1", "3", "9000"}, rows[1])
		assert.Equal(t, []string{"2025", "Total", "1", "3", "9000"}, rows[2])
		assert.Equal(t, []string{"2024", "December", "1", "3", "8000"}, rows[3])
		assert.Equal(t, []string{"2024", "Total", "1", "3", "8000"}, rows[4])
	})
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := Workbook(nil)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking ID", got)

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
