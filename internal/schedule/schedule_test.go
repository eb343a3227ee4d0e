package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonths(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"6 tháng", 6},
		{"12 tháng", 12},
		{"  3 tháng  ", 3},
		{"", 0},
		{"tháng", 0},
		{"0 tháng", 0},
		{"-2 tháng", 0},
	}
	for _, c := range cases {
		if got := Months(c.in); got != c.want {
			t.Errorf("Months(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNextDue(t *testing.T) {
	due, ok := NextDue(date(2025, 5, 1), "6 tháng")
	if !ok {
		t.Fatal("NextDue returned ok=false for valid period")
	}
	if want := date(2025, 11, 1); !due.Equal(want) {
		t.Errorf("NextDue = %v, want %v", due, want)
	}

	if _, ok := NextDue(date(2025, 5, 1), ""); ok {
		t.Error("NextDue should fail for empty period")
	}
}

func TestAddMonthsClampedMonthEnd(t *testing.T) {
	// 31/01 + 1 tháng phải kẹp về cuối tháng 2, không tràn sang tháng 3.
	got := AddMonthsClamped(date(2025, 1, 31), 1)
	if want := date(2025, 2, 28); !got.Equal(want) {
		t.Errorf("AddMonthsClamped(31/01/2025, 1) = %v, want %v", got, want)
	}

	// Năm nhuận.
	got = AddMonthsClamped(date(2024, 1, 31), 1)
	if want := date(2024, 2, 29); !got.Equal(want) {
		t.Errorf("AddMonthsClamped(31/01/2024, 1) = %v, want %v", got, want)
	}

	// 31/08 + 6 tháng = 28/02 năm sau.
	got = AddMonthsClamped(date(2025, 8, 31), 6)
	if want := date(2026, 2, 28); !got.Equal(want) {
		t.Errorf("AddMonthsClamped(31/08/2025, 6) = %v, want %v", got, want)
	}
}

func TestClassify(t *testing.T) {
	today := date(2025, 11, 1)

	cases := []struct {
		due  time.Time
		want Status
	}{
		{date(2025, 10, 30), StatusOverdue},
		{date(2025, 11, 1), StatusDueSoon},
		{date(2025, 11, 10), StatusDueSoon},
		{date(2025, 11, 16), StatusDueSoon},
		{date(2025, 11, 17), StatusNormal},
		{date(2025, 12, 1), StatusNormal},
	}
	for _, c := range cases {
		if got := Classify(c.due, today); got != c.want {
			t.Errorf("Classify(%v, %v) = %q, want %q", c.due.Format("2006-01-02"), today.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestDaysUntilIgnoresClock(t *testing.T) {
	due := time.Date(2025, 11, 10, 2, 0, 0, 0, time.UTC)
	today := time.Date(2025, 11, 1, 23, 30, 0, 0, time.UTC)
	if got := DaysUntil(due, today); got != 9 {
		t.Errorf("DaysUntil = %d, want 9", got)
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityOf(StatusOverdue) != PriorityHigh {
		t.Error("overdue must map to high")
	}
	if PriorityOf(StatusDueSoon) != PriorityMedium {
		t.Error("due_soon must map to medium")
	}
	if PriorityOf(StatusNormal) != PriorityLow {
		t.Error("normal must map to low")
	}
	if !(Rank(PriorityHigh) < Rank(PriorityMedium) && Rank(PriorityMedium) < Rank(PriorityLow)) {
		t.Error("rank order must be high < medium < low")
	}
}
