package booking

import (
	"regexp"
	"strings"
	"time"

	"villabook/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Params carries the raw fields of a candidate booking, before an id or
// balance is assigned.
type Params struct {
	CustomerName  string
	CustomerPhone string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int
	BookingType   models.BookingType
	TotalAmount   int64
	AdvanceAmount int64
}

// Validate checks every field and collects per-field messages. A nil return
// means the params are acceptable.
func Validate(p Params) FieldErrors {
	errs := make(FieldErrors)

	if strings.TrimSpace(p.CustomerName) == "" {
		errs["customer_name"] = "customer name is required"
	}

	if strings.TrimSpace(p.CustomerPhone) == "" {
		errs["customer_phone"] = "phone number is required"
	} else if !phonePattern.MatchString(strings.TrimSpace(p.CustomerPhone)) {
		errs["customer_phone"] = "phone number must be exactly 10 digits"
	}

	if p.CheckIn.IsZero() {
		errs["check_in"] = "check-in date is required"
	}

	if p.CheckOut.IsZero() {
		errs["check_out"] = "check-out date is required"
	} else if !p.CheckIn.IsZero() && !p.CheckOut.After(p.CheckIn) {
		errs["check_out"] = "check-out must be after check-in date"
	}

	if p.GuestCount < 1 {
		errs["guest_count"] = "guest count must be at least 1"
	}

	if !p.BookingType.Valid() {
		errs["booking_type"] = "booking type must be family or bachelors"
	}

	if p.TotalAmount <= 0 {
		errs["total_amount"] = "total amount must be greater than 0"
	}

	if p.AdvanceAmount < 0 || p.AdvanceAmount > p.TotalAmount {
		errs["advance_amount"] = "advance amount must be between 0 and total amount"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
