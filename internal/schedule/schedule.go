// Package schedule tính toán chu kỳ kiểm tra tài sản: ngày đến hạn kế
// tiếp, phân loại quá hạn/sắp đến hạn và mức ưu tiên cảnh báo.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Status phân loại một mốc kiểm tra so với hôm nay.
type Status string

const (
	StatusOverdue Status = "overdue"
	StatusDueSoon Status = "due_soon"
	StatusNormal  Status = "normal"
)

// Priority là mức ưu tiên cảnh báo suy ra từ Status.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DueSoonWindowDays: còn 0..15 ngày thì coi là sắp đến hạn.
const DueSoonWindowDays = 15

// Months đọc số tháng từ chuỗi chu kỳ dạng "N tháng".
// Trả về 0 nếu chuỗi rỗng hoặc không đọc được.
func Months(dinhKy string) int {
	s := strings.TrimSpace(dinhKy)
	if s == "" {
		return 0
	}
	head, _, _ := strings.Cut(s, " ")
	n, err := strconv.Atoi(head)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// NextDue cộng chu kỳ vào ngày kiểm tra gần nhất. Cộng theo tháng lịch,
// ngày vượt quá cuối tháng đích thì kẹp về ngày cuối tháng (31/01 + 1
// tháng = 28/02 hoặc 29/02). Trả về ok=false khi chu kỳ không hợp lệ.
func NextDue(last time.Time, dinhKy string) (time.Time, bool) {
	months := Months(dinhKy)
	if months == 0 {
		return time.Time{}, false
	}
	return AddMonthsClamped(last, months), true
}

// AddMonthsClamped cộng tháng có kẹp ngày về cuối tháng đích.
// time.AddDate tràn sang tháng sau (31/01 + 1 tháng = 03/03) nên không
// dùng được ở đây.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

// DaysUntil đếm số ngày từ today đến due theo ngày lịch (bỏ giờ phút).
// Âm nghĩa là đã quá hạn.
func DaysUntil(due, today time.Time) int {
	d1 := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	d2 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d1.Sub(d2).Hours() / 24)
}

// Classify xếp mốc kiểm tra vào overdue / due_soon / normal.
func Classify(due, today time.Time) Status {
	days := DaysUntil(due, today)
	switch {
	case days < 0:
		return StatusOverdue
	case days <= DueSoonWindowDays:
		return StatusDueSoon
	default:
		return StatusNormal
	}
}

// PriorityOf ánh xạ trạng thái sang mức ưu tiên cảnh báo.
func PriorityOf(s Status) Priority {
	switch s {
	case StatusOverdue:
		return PriorityHigh
	case StatusDueSoon:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Rank cho thứ tự sắp xếp cảnh báo: high trước, low sau.
func Rank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
