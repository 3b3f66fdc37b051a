package booking

import (
	"fmt"
	"strings"

	"villabook/internal/dateutil"
	"villabook/internal/models"
)

const houseRules = "Rules: 1. Unmarried couples not allowed. " +
	"2. Pets are not allowed. " +
	"3. Smoking inside villa not allowed. " +
	"4. Playing cards is strictly prohibited. " +
	"5. Extra head count ₹300/person will be charged beyond confirmed guest count. " +
	"6. No cancellation & no refund."

// Details renders the fixed plain-text booking summary used for clipboard
// export. The repeat-customer line appears only when the history has at least
// one other booking.
func Details(b models.Booking, history models.CustomerHistory) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Booking ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Customer: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Phone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn.Format(dateutil.FormatSlash))
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut.Format(dateutil.FormatSlash))
	fmt.Fprintf(&sb, "Nights: %d\n", b.Nights())
	fmt.Fprintf(&sb, "Guests: %d\n", b.GuestCount)
	fmt.Fprintf(&sb, "Type: %s\n", b.BookingType.Label())
	fmt.Fprintf(&sb, "Total Amount: ₹%d\n", b.TotalAmount)
	fmt.Fprintf(&sb, "Advance: ₹%d\n", b.AdvanceAmount)
	fmt.Fprintf(&sb, "Balance: ₹%d", b.BalanceAmount)

	if history.TotalBookings > 0 {
		fmt.Fprintf(&sb, "\nRepeat Customer: %d previous bookings, %d total nights",
			history.TotalBookings, history.TotalNights)
	}

	sb.WriteString("\n\n")
	sb.WriteString(houseRules)
	return sb.String()
}
