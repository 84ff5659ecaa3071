package datemath_test

import (
	"errors"
	"regexp"
	"testing"
	"time"
	_ "time/tzdata"

	"fahrplan/pkg/datemath"
)

var testVocab = datemath.Vocabulary{
	Now:      []string{"now", "right now", "immediately"},
	Noon:     []string{"noon"},
	Midnight: []string{"midnight"},
	Today:    []string{"today"},
	Tomorrow: []string{"tomorrow"},
	Weekdays: [7][]string{
		{"monday"}, {"tuesday"}, {"wednesday"}, {"thursday"},
		{"friday"}, {"saturday"}, {"sunday"},
	},
	At:     []string{"at"},
	InDays: regexp.MustCompile(`(?i)\bin (\d+) days?\b`),
}

func newTestParser(t *testing.T, now time.Time) *datemath.Parser {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	return parser.WithClock(func() time.Time { return now })
}

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Zurich")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name     string
		fragment string
		want     string
		wantErr  bool
	}{
		{name: "Colon", fragment: "18:30", want: "18:30"},
		{name: "Compact", fragment: "1945", want: "19:45"},
		{name: "Dot", fragment: "07.15", want: "07:15"},
		{name: "Single digit hour", fragment: "9:05", want: "09:05"},
		{name: "French h", fragment: "18h30", want: "18:30"},
		{name: "At prefix", fragment: "at 12:00", want: "12:00"},
		{name: "At noon", fragment: "at noon", want: "12:00"},
		{name: "Now", fragment: "now", want: "15:30"},
		{name: "Right now", fragment: "right now", want: "15:30"},
		{name: "Uppercase", fragment: "NOON", want: "12:00"},
		{name: "Midnight is last minute", fragment: "midnight", want: "23:59"},
		{name: "Date and time", fragment: "22/10 13:00", want: "13:00"},
		{name: "Full date and time", fragment: "22/10/2025 07:00", want: "07:00"},
		{name: "Tomorrow noon", fragment: "tomorrow noon", want: "12:00"},
		{name: "Trailing comma", fragment: "tomorrow, noon", want: "12:00"},
		{name: "At with comma", fragment: "at, midnight.", want: "23:59"},
		{name: "Space separator", fragment: "10 30", want: "10:30"},
		{name: "Separator beats space", fragment: "2 15:00", want: "15:00"},
		{name: "Compact single digit hour", fragment: "945", want: "09:45"},
		{name: "Date only", fragment: "22/10", wantErr: true},
		{name: "Out of range", fragment: "2575", wantErr: true},
		{name: "Garbage", fragment: "soonish", wantErr: true},
		{name: "Empty", fragment: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseTime(tt.fragment, testVocab, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseableTime) {
					t.Fatalf("ParseTime() error = %v, want ErrUnparseableTime", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseTime() got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	parser := newTestParser(t, now)

	tests := []struct {
		name     string
		fragment string
		want     string
		wantErr  bool
	}{
		{name: "No date", fragment: "18:00", want: ""},
		{name: "Today", fragment: "today 18:00", want: "2024/05/01"},
		{name: "Tomorrow", fragment: "tomorrow 13:00", want: "2024/05/02"},
		{name: "Monday (from Wed)", fragment: "monday", want: "2024/05/06"},
		{name: "Friday (from Wed)", fragment: "friday 08:00", want: "2024/05/03"},
		{name: "Wednesday (from Wed) is next week", fragment: "wednesday", want: "2024/05/08"},
		{name: "In 3 days", fragment: "in 3 days 10:00", want: "2024/05/04"},
		{name: "In 1 day", fragment: "in 1 day", want: "2024/05/02"},
		{name: "Day and month", fragment: "22/10 13:00", want: "2024/10/22"},
		{name: "Day month year", fragment: "3/1/2025 13:00", want: "2025/01/03"},
		{name: "Month rollover", fragment: "in 31 days", want: "2024/06/01"},
		{name: "Impossible date", fragment: "31/02 10:00", wantErr: true},
		{name: "Tomorrow with comma", fragment: "tomorrow, 13:00", want: "2024/05/02"},
		{name: "Weekday with comma", fragment: "monday, at 8:15", want: "2024/05/06"},
		{name: "In days with comma", fragment: "in 2 days, 9:00", want: "2024/05/03"},
		{name: "Two digit year", fragment: "22/10/25 13:00", want: "2025/10/22"},
		{name: "Truncated year", fragment: "22/10/2 13:00", wantErr: true},
		{name: "Three part year", fragment: "22/10/202 13:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.fragment, testVocab, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnparseableDate) {
					t.Fatalf("ParseDate() error = %v, want ErrUnparseableDate", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDate() got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDate_WeekdayWrapsAcrossWeekend(t *testing.T) {
	sunday := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	parser := newTestParser(t, sunday)

	got, err := parser.ParseDate("saturday", testVocab, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024/05/11" {
		t.Errorf("ParseDate() got = %q, want %q", got, "2024/05/11")
	}

	got, err = parser.ParseDate("sunday", testVocab, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024/05/12" {
		t.Errorf("ParseDate() got = %q, want %q", got, "2024/05/12")
	}
}

func TestNormalizeAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	parser := newTestParser(t, now)

	got, err := parser.NormalizeAt("at tomorrow 13:00", testVocab, parser.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := datemath.Result{Time: "13:00", Date: "2024/05/02"}
	if got != want {
		t.Errorf("NormalizeAt() got = %+v, want %+v", got, want)
	}

	_, err = parser.NormalizeAt("tomorrow", testVocab, now)
	if !errors.Is(err, datemath.ErrUnparseableTime) {
		t.Errorf("NormalizeAt() error = %v, want ErrUnparseableTime", err)
	}
}

func TestNormalizeAt_UsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Europe/Zurich")
	if err != nil {
		t.Fatalf("unexpected error creating parser: %v", err)
	}
	// 23:30 UTC is already the next day in Zurich.
	now := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	got, err := parser.NormalizeAt("today now", testVocab, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := datemath.Result{Time: "01:30", Date: "2024/05/02"}
	if got != want {
		t.Errorf("NormalizeAt() got = %+v, want %+v", got, want)
	}
}
