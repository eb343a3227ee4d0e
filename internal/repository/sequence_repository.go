package repository

import (
	"context"

	"gorm.io/gorm"
)

// SequenceRepository cấp số thứ tự tăng dần theo phạm vi.
// Mỗi lần cấp là một câu UPSERT nguyên tử trên bảng sequence_counters,
// tránh hẳn kiểu đọc-MAX-rồi-ghi bị đụng nhau khi hai người cùng lưu.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next cấp số kế tiếp cho scope. seed chỉ được gọi khi scope chưa có
// counter, dùng để mồi giá trị từ dữ liệu sẵn có (MAX của cột cũ).
func (r *SequenceRepository) Next(ctx context.Context, scope string, seed func(ctx context.Context) (int64, error)) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Table("sequence_counters").Where("scope = ?", scope).Count(&exists).Error; err != nil {
			return err
		}
		start := int64(0)
		if exists == 0 && seed != nil {
			s, err := seed(ctx)
			if err != nil {
				return err
			}
			start = s
		}
		return tx.Raw(`
			INSERT INTO sequence_counters (scope, value, updated_at)
			VALUES (?, ?, NOW())
			ON CONFLICT (scope)
			DO UPDATE SET value = sequence_counters.value + 1, updated_at = NOW()
			RETURNING value`,
			scope, start+1,
		).Scan(&value).Error
	})
	return value, err
}

// Raise nâng counter của scope lên ít nhất floor (không hạ xuống).
// Nhập Excel dùng để đẩy counter vượt qua các STT tự gán.
func (r *SequenceRepository) Raise(ctx context.Context, scope string, floor int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO sequence_counters (scope, value, updated_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (scope)
		DO UPDATE SET value = GREATEST(sequence_counters.value, EXCLUDED.value), updated_at = NOW()`,
		scope, floor,
	).Error
}
