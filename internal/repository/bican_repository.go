package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// BiCanRepository quản lý bị can. Mọi thao tác ghi đều đồng bộ lại
// tổng số và chuỗi tóm tắt bị can trên vụ án trong cùng giao dịch.
type BiCanRepository struct {
	db *gorm.DB
}

func NewBiCanRepository(db *gorm.DB) *BiCanRepository {
	return &BiCanRepository{db: db}
}

func (r *BiCanRepository) FindByID(ctx context.Context, id string) (*entity.BiCan, error) {
	var bc entity.BiCan
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&bc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bc, nil
}

// ListByVuAn trả về bị can của vụ án theo thứ tự thêm vào.
func (r *BiCanRepository) ListByVuAn(ctx context.Context, vuAnID string) ([]entity.BiCan, error) {
	var bcs []entity.BiCan
	err := r.db.WithContext(ctx).
		Where("vu_an_id = ? AND is_deleted = ?", vuAnID, false).
		Order("created_at ASC").
		Find(&bcs).Error
	return bcs, err
}

// syncVuAn tính lại tong_so_bi_can và thong_tin_bi_can từ danh sách
// bị can chưa xoá. Chuỗi tóm tắt dựng lại toàn bộ mỗi lần, dạng
// "Họ tên (năm sinh)" nối bằng dấu phẩy theo thứ tự thêm vào.
func syncVuAn(tx *gorm.DB, vuAnID string) error {
	var bcs []entity.BiCan
	if err := tx.
		Where("vu_an_id = ? AND is_deleted = ?", vuAnID, false).
		Order("created_at ASC").
		Find(&bcs).Error; err != nil {
		return err
	}
	parts := make([]string, 0, len(bcs))
	for _, bc := range bcs {
		parts = append(parts, fmt.Sprintf("%s (%d)", bc.HoTen, bc.NamSinh))
	}
	return tx.Model(&entity.VuAn{}).
		Where("id = ?", vuAnID).
		Updates(map[string]interface{}{
			"tong_so_bi_can":   len(bcs),
			"thong_tin_bi_can": strings.Join(parts, ", "),
		}).Error
}

// CreateWithDetention thêm bị can, kèm lệnh tạm giam tự tạo nếu có,
// rồi đồng bộ vụ án. Cả ba bước chung một giao dịch.
func (r *BiCanRepository) CreateWithDetention(ctx context.Context, bc *entity.BiCan, tg *entity.TamGiam) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bc).Error; err != nil {
			return err
		}
		if tg != nil {
			tg.BiCanID = bc.ID
			if err := tx.Create(tg).Error; err != nil {
				return err
			}
		}
		return syncVuAn(tx, bc.VuAnID)
	})
}

// SaveSynced lưu bị can đã chỉnh và dựng lại tóm tắt trên vụ án.
func (r *BiCanRepository) SaveSynced(ctx context.Context, bc *entity.BiCan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(bc).Error; err != nil {
			return err
		}
		return syncVuAn(tx, bc.VuAnID)
	})
}

// SoftDeleteSynced xoá mềm bị can và đồng bộ lại vụ án.
func (r *BiCanRepository) SoftDeleteSynced(ctx context.Context, bc *entity.BiCan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bc.IsDeleted = true
		if err := tx.Model(bc).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return syncVuAn(tx, bc.VuAnID)
	})
}

// SaveIndictment ghi khởi tố bị can: lưu bị can, cập nhật vụ án và
// tạo hoặc cập nhật lệnh tạm giam trong một giao dịch.
func (r *BiCanRepository) SaveIndictment(ctx context.Context, bc *entity.BiCan, va *entity.VuAn, newTG *entity.TamGiam, updTG *entity.TamGiam) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(bc).Error; err != nil {
			return err
		}
		if va != nil {
			if err := tx.Save(va).Error; err != nil {
				return err
			}
		}
		if newTG != nil {
			if err := tx.Create(newTG).Error; err != nil {
				return err
			}
		}
		if updTG != nil {
			if err := tx.Save(updTG).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
