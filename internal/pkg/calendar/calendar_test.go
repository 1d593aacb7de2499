package calendar

import (
	"testing"
	"time"
)

func TestFromLocal_RoundTrip(t *testing.T) {
	cases := []struct {
		date, clock, zone string
	}{
		{"2026-01-12", "09:30", "Asia/Kolkata"},
		{"2026-06-15", "00:00", "Pacific/Auckland"},
		{"2026-02-28", "23:59", "America/Sao_Paulo"},
		{"2026-07-04", "12:00", "UTC"},
	}
	for _, c := range cases {
		instant, err := FromLocal(c.date, c.clock, c.zone)
		if err != nil {
			t.Fatalf("FromLocal(%s %s %s): %v", c.date, c.clock, c.zone, err)
		}
		parts, err := PartsIn(instant, c.zone)
		if err != nil {
			t.Fatalf("PartsIn: %v", err)
		}
		got := time.Date(parts.Year, parts.Month, parts.Day, parts.Hour, parts.Minute, 0, 0, time.UTC)
		want, _ := time.Parse("2006-01-02 15:04", c.date+" "+c.clock)
		if !got.Equal(want) {
			t.Errorf("round trip %s %s %s: got %v, want %v", c.date, c.clock, c.zone, got, want)
		}
	}
}

func TestFromLocal_Kolkata(t *testing.T) {
	instant, err := FromLocal("2026-01-12", "09:30", "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	parts, err := PartsIn(instant, "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	if parts.Year != 2026 || parts.Month != time.January || parts.Day != 12 ||
		parts.Hour != 9 || parts.Minute != 30 {
		t.Errorf("got %+v, want 2026-01-12 09:30", parts)
	}
}

func TestFromLocal_AcrossDSTTransition(t *testing.T) {
	// US Eastern springs forward on 2026-03-08; the day before and after
	// carry different offsets, and the guess needs exactly one correction.
	before, err := FromLocal("2026-03-07", "09:00", "America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	after, err := FromLocal("2026-03-09", "09:00", "America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	// 48 wall-clock hours minus the hour lost to the transition.
	if got := after.Sub(before); got != 47*time.Hour {
		t.Errorf("span across spring-forward = %v, want 47h", got)
	}
}

func TestDayKey_IgnoresServerZone(t *testing.T) {
	// 2026-01-12T20:00Z is already the 13th in Kolkata but still the 12th in UTC.
	instant := time.Date(2026, 1, 12, 20, 0, 0, 0, time.UTC)

	key, err := DayKey(instant, "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	if key != "2026-01-13" {
		t.Errorf("Kolkata day key = %s, want 2026-01-13", key)
	}

	key, err = DayKey(instant, "UTC")
	if err != nil {
		t.Fatal(err)
	}
	if key != "2026-01-12" {
		t.Errorf("UTC day key = %s, want 2026-01-12", key)
	}
}

func TestDaysBetween(t *testing.T) {
	days, err := DaysBetween("2026-01-30", "2026-02-02")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}

	if _, err := DaysBetween("2026-02-02", "2026-01-30"); err == nil {
		t.Error("expected error for reversed range")
	}
}

func TestDaysBetween_SingleDay(t *testing.T) {
	days, err := DaysBetween("2026-04-01", "2026-04-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 1 || days[0] != "2026-04-01" {
		t.Errorf("got %v, want [2026-04-01]", days)
	}
}

func TestMonthLength(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2028, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}
	for _, c := range cases {
		if got := MonthLength(c.year, c.month); got != c.want {
			t.Errorf("MonthLength(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestNextDayStart(t *testing.T) {
	end, err := NextDayStart("2026-01-12", "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	parts, err := PartsIn(end, "Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	if parts.Year != 2026 || parts.Month != time.January || parts.Day != 13 ||
		parts.Hour != 0 || parts.Minute != 0 {
		t.Errorf("got %+v, want 2026-01-13 00:00", parts)
	}
}
