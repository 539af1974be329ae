package forecast

import (
	"sort"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format forecast dates use in flat files.
const DateLayout = "2006-01-02"

// Record is one day of forecast data. Records are read-only once parsed;
// widgets consume them at construction time and never mutate them.
type Record struct {
	Date      time.Time
	Condition string
	High      float64
	Low       float64
}

// Validate enforces the record invariants: a date, a condition, and a high
// temperature that is not below the low.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.By(func(any) error {
			if r.Date.IsZero() {
				return validation.NewError("forecast_date_required", "date is required")
			}
			return nil
		})),
		validation.Field(&r.Condition, validation.Required.Error("condition is required")),
		validation.Field(&r.High, validation.By(func(any) error {
			if r.High < r.Low {
				return validation.NewError("forecast_range_invalid", "high must not be below low")
			}
			return nil
		})),
	)
}

// Day reports the record's date truncated to a calendar day in its location.
func (r Record) Day() time.Time {
	year, month, day := r.Date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, r.Date.Location())
}

// SameDay reports whether the record falls on the same calendar day as t.
func (r Record) SameDay(t time.Time) bool {
	ry, rm, rd := r.Date.Date()
	ty, tm, td := t.Date()
	return ry == ty && rm == tm && rd == td
}

// FormatTemp renders a temperature without trailing zeros, so 20.0 prints as
// "20" and 20.5 as "20.5".
func FormatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SortChronological orders records by ascending date in place.
func SortChronological(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
