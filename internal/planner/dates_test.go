package planner

import (
	"testing"
	"time"
)

func TestAddDays(t *testing.T) {
	testCases := []struct {
		name     string
		iso      string
		days     int
		expected string
	}{
		{name: "same day", iso: "2025-09-01", days: 0, expected: "2025-09-01"},
		{name: "within month", iso: "2025-09-01", days: 6, expected: "2025-09-07"},
		{name: "across month boundary", iso: "2025-09-29", days: 7, expected: "2025-10-06"},
		{name: "across year boundary", iso: "2025-12-29", days: 7, expected: "2026-01-05"},
		{name: "negative shift", iso: "2025-09-01", days: -1, expected: "2025-08-31"},
		{name: "unparseable input passes through", iso: "not-a-date", days: 3, expected: "not-a-date"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.iso, tt.days); got != tt.expected {
				t.Errorf("AddDays(%q, %d) = %q, expected %q", tt.iso, tt.days, got, tt.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween("2025-09-01", "2025-09-11"); got != 10 {
		t.Errorf("DaysBetween = %d, expected 10", got)
	}
	if got := DaysBetween("2025-09-11", "2025-09-01"); got != -10 {
		t.Errorf("DaysBetween = %d, expected -10", got)
	}
}

func TestWeekIndex(t *testing.T) {
	testCases := []struct {
		slotDate string
		expected int
	}{
		{slotDate: "2025-09-01", expected: 0},
		{slotDate: "2025-09-07", expected: 0},
		{slotDate: "2025-09-08", expected: 1},
		{slotDate: "2025-09-22", expected: 3},
		{slotDate: "2025-08-31", expected: -1},
	}

	for _, tt := range testCases {
		if got := WeekIndex("2025-09-01", tt.slotDate); got != tt.expected {
			t.Errorf("WeekIndex(2025-09-01, %s) = %d, expected %d", tt.slotDate, got, tt.expected)
		}
	}
}

func TestIsMonday(t *testing.T) {
	if !IsMonday("2025-09-01") {
		t.Error("2025-09-01 is a Monday")
	}
	if IsMonday("2025-09-02") {
		t.Error("2025-09-02 is not a Monday")
	}
	if IsMonday("garbage") {
		t.Error("unparseable dates are never Mondays")
	}
}

func TestNextMonday(t *testing.T) {
	wednesday := time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC)
	if got := NextMonday(wednesday); got != "2025-09-08" {
		t.Errorf("NextMonday(wed) = %s, expected 2025-09-08", got)
	}

	// A Monday rolls to the following Monday, never to itself.
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := NextMonday(monday); got != "2025-09-08" {
		t.Errorf("NextMonday(mon) = %s, expected 2025-09-08", got)
	}
}
