package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/tahfidz-api/internal/models"
	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

// PeriodWindow is an inclusive range of calendar days.
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains compares by calendar day so a record stamped late on the last day still counts.
func (w PeriodWindow) Contains(t time.Time) bool {
	day := civilDate(t)
	return !day.Before(w.Start) && !day.After(w.End)
}

// ResolvePeriod maps "Y1/Y2" and a semester to its date range:
// odd runs Y1-07-01..Y1-12-31, even runs Y2-01-01..Y2-06-30.
func ResolvePeriod(academicYear string, semester models.Semester) (PeriodWindow, error) {
	first, second, err := ParseAcademicYear(academicYear)
	if err != nil {
		return PeriodWindow{}, err
	}
	switch semester {
	case models.SemesterOdd:
		return PeriodWindow{
			Start: time.Date(first, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(first, time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil
	case models.SemesterEven:
		return PeriodWindow{
			Start: time.Date(second, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(second, time.June, 30, 0, 0, 0, 0, time.UTC),
		}, nil
	default:
		return PeriodWindow{}, appErrors.Validation(fmt.Sprintf("invalid semester %q", semester))
	}
}

// ParseAcademicYear splits "2024/2025" into its two consecutive years.
func ParseAcademicYear(academicYear string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(academicYear), "/")
	if len(parts) != 2 {
		return 0, 0, appErrors.Validation(fmt.Sprintf("academic year %q must look like YYYY/YYYY", academicYear))
	}
	first, err := parseYear(parts[0])
	if err != nil {
		return 0, 0, appErrors.Validation(fmt.Sprintf("academic year %q: %v", academicYear, err))
	}
	second, err := parseYear(parts[1])
	if err != nil {
		return 0, 0, appErrors.Validation(fmt.Sprintf("academic year %q: %v", academicYear, err))
	}
	if second != first+1 {
		return 0, 0, appErrors.Validation(fmt.Sprintf("academic year %q must span consecutive years", academicYear))
	}
	return first, second, nil
}

// AcademicPeriodFor returns the academic year and semester a date falls in.
func AcademicPeriodFor(t time.Time) (string, models.Semester) {
	year := t.Year()
	if t.Month() >= time.July {
		return fmt.Sprintf("%d/%d", year, year+1), models.SemesterOdd
	}
	return fmt.Sprintf("%d/%d", year-1, year), models.SemesterEven
}

func parseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 4 {
		return 0, fmt.Errorf("year %q must have four digits", raw)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("year %q is not numeric", raw)
		}
	}
	return strconv.Atoi(raw)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
