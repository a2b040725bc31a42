package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for session and
// payment dates.
const DateLayout = "2006-01-02"

// ParseDate validates an ISO-8601 calendar date and returns it in canonical
// form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return t.Format(DateLayout), nil
}
