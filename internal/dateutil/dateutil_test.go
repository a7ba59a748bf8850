package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseStartDate(t *testing.T) {
	// Wednesday, January 15, 2025
	ref := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"today", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Monday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC)},
		{"2024-09-02", time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStartDate(tt.input, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseStartDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseStartDate("next-week", ref); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name   string
		input  time.Time
		monday time.Time
	}{
		{"wednesday", time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 1, 19, 23, 0, 0, 0, time.UTC), time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if !monday.Equal(tt.monday) {
				t.Errorf("monday = %v, want %v", monday, tt.monday)
			}
			if want := tt.monday.AddDate(0, 0, 6); !sunday.Equal(want) {
				t.Errorf("sunday = %v, want %v", sunday, want)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := TruncateToDay(input); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeeksSince(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before start", start.AddDate(0, 0, -3), 0},
		{"same instant", start, 0},
		{"six days later", start.AddDate(0, 0, 6), 0},
		{"exactly one week", start.AddDate(0, 0, 7), 1},
		{"twenty days", start.AddDate(0, 0, 20), 2},
		{"zero start", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeeksSince(start, tt.now); got != tt.want {
				t.Errorf("WeeksSince = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekNumber(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		date time.Time
		want int
	}{
		{start.AddDate(0, 0, -1), 0},
		{start, 1},
		{start.AddDate(0, 0, 6).Add(23 * time.Hour), 1},
		{start.AddDate(0, 0, 7), 2},
		{start.AddDate(0, 0, 70), 11},
	}

	for _, tt := range tests {
		if got := WeekNumber(tt.date, start); got != tt.want {
			t.Errorf("WeekNumber(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(time.Sunday); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
	if got := ISOWeekday(time.Monday); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	if got := WeekdayIndex(time.Sunday); got != 6 {
		t.Errorf("WeekdayIndex(Sunday) = %d, want 6", got)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"7", 7, false},
		{"monday", 1, false},
		{"Thu", 4, false},
		{" SUNDAY ", 7, false},
		{"satur", 6, false},
		{"0", 0, true},
		{"8", 0, true},
		{"mo", 0, true},
		{"funday", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
