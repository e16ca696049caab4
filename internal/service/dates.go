package service

import (
	"time"

	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

// DayLayout is the wire format for calendar dates.
const DayLayout = "2006-01-02"

func parseDay(field, raw string) (time.Time, error) {
	date, err := time.Parse(DayLayout, raw)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+field)
	}
	return date, nil
}

// DateRange bounds a history listing; nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange reads optional from/to query values.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		d, err := parseDay("from", from)
		if err != nil {
			return DateRange{}, err
		}
		r.From = &d
	}
	if to != "" {
		d, err := parseDay("to", to)
		if err != nil {
			return DateRange{}, err
		}
		r.To = &d
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return DateRange{}, appErrors.Validation("to must not be before from")
	}
	return r, nil
}
