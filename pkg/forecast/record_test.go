package forecast_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-weatherpage/pkg/forecast"
)

func TestRecordValidate(t *testing.T) {
	valid := forecast.Record{
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Condition: "Sunny",
		High:      28,
		Low:       19,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record failed validation: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*forecast.Record)
	}{
		{name: "zero date", mutate: func(r *forecast.Record) { r.Date = time.Time{} }},
		{name: "empty condition", mutate: func(r *forecast.Record) { r.Condition = "" }},
		{name: "high below low", mutate: func(r *forecast.Record) { r.High = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := valid
			tc.mutate(&record)
			if err := record.Validate(); err == nil {
				t.Fatal("expected validation to fail")
			}
		})
	}
}

func TestRecordSameDay(t *testing.T) {
	record := forecast.Record{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)}

	if !record.SameDay(time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)) {
		t.Fatal("expected same calendar day to match")
	}
	if record.SameDay(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("did not expect the next day to match")
	}
}

func TestFormatTemp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 20, want: "20"},
		{in: 20.5, want: "20.5"},
		{in: -3, want: "-3"},
		{in: 0, want: "0"},
	}

	for _, tc := range tests {
		if got := forecast.FormatTemp(tc.in); got != tc.want {
			t.Fatalf("FormatTemp(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSortChronological(t *testing.T) {
	records := []forecast.Record{
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Condition: "Cloudy", High: 24, Low: 17},
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Condition: "Sunny", High: 28, Low: 19},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Condition: "Showers", High: 25, Low: 18},
	}
	forecast.SortChronological(records)

	want := []string{"Sunny", "Showers", "Cloudy"}
	got := make([]string, 0, len(records))
	for _, record := range records {
		got = append(got, record.Condition)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}
