package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// MaintenanceRepository quản lý sổ kiểm tra - bảo trì.
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*entity.LichSuKiemTraBaoTri, error) {
	var rec entity.LichSuKiemTraBaoTri
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListByAsset trả về lịch sử của một mã tài sản, mới nhất trước.
func (r *MaintenanceRepository) ListByAsset(ctx context.Context, maTaiSan string) ([]entity.LichSuKiemTraBaoTri, error) {
	var recs []entity.LichSuKiemTraBaoTri
	err := r.db.WithContext(ctx).
		Where("ma_tai_san = ?", maTaiSan).
		Order("ngay_thuc_hien DESC, created_at DESC").
		Find(&recs).Error
	return recs, err
}

func (r *MaintenanceRepository) Create(ctx context.Context, rec *entity.LichSuKiemTraBaoTri) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *MaintenanceRepository) Save(ctx context.Context, rec *entity.LichSuKiemTraBaoTri) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete xoá cứng một dòng sổ.
func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.LichSuKiemTraBaoTri{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumCost cộng tổng chi phí đã ghi sổ (phục vụ dashboard).
func (r *MaintenanceRepository) SumCost(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.LichSuKiemTraBaoTri{}).
		Select("COALESCE(SUM(chi_phi), 0)").
		Scan(&total).Error
	return total, err
}
