package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel là phần chung của mọi bảng nghiệp vụ.
// Xoá mềm dùng cờ is_deleted thay vì gorm.DeletedAt: bản ghi đã xoá
// vẫn phải nhìn thấy được khi quét sinh mã tài sản và khi dọn STT trùng.
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDeleted bool      `json:"is_deleted" gorm:"not null;default:false;index"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

const dateLayout = "2006-01-02"

// Date là ngày thuần (không giờ), JSON dạng "2006-01-02".
// Chấp nhận thêm RFC3339 khi parse để tương thích dữ liệu cũ.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("ngày không hợp lệ %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		d.Time = parsed.Time
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("không scan được Date từ %T", value)
	}
	return nil
}

func (Date) GormDataType() string {
	return "date"
}

// DatePtr tiện cho các trường ngày nullable.
func DatePtr(t time.Time) *Date {
	d := NewDate(t)
	return &d
}

// SequenceCounter cấp số thứ tự tăng dần cho từng phạm vi (mã tài sản
// theo kỳ, STT tin báo, STT vụ án). Cấp số bằng một câu UPSERT duy nhất
// nên không có race kiểu đọc-max-rồi-ghi.
type SequenceCounter struct {
	Scope     string    `json:"scope" gorm:"type:varchar(100);primaryKey"`
	Value     int64     `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
