package models

import (
	"fmt"
	"strings"
)

// ValidationError describes caller-fixable bad input. It carries enough
// location detail (bill ID, 1-based item position, field) for the caller
// to find and correct the offending entry.
type ValidationError struct {
	// BillID is the offending bill's ID, empty for request-level errors.
	BillID string

	// Item is the 1-based position of the offending item within the bill,
	// zero when the error is bill- or request-level.
	Item int

	// Field is the name of the invalid field.
	Field string

	// Reason explains what is wrong with the field.
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.BillID != "" {
		fmt.Fprintf(&b, "bill %q", e.BillID)
	} else {
		b.WriteString("request")
	}
	if e.Item > 0 {
		fmt.Fprintf(&b, ", item %d", e.Item)
	}
	fmt.Fprintf(&b, ": %s %s", e.Field, e.Reason)
	return b.String()
}
