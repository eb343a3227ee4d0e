package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// TamGiamRepository quản lý lệnh tạm giam.
type TamGiamRepository struct {
	db *gorm.DB
}

func NewTamGiamRepository(db *gorm.DB) *TamGiamRepository {
	return &TamGiamRepository{db: db}
}

func (r *TamGiamRepository) FindByID(ctx context.Context, id string) (*entity.TamGiam, error) {
	var tg entity.TamGiam
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&tg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tg, nil
}

// List phân trang, lọc theo trạng thái giam và vụ án.
func (r *TamGiamRepository) List(ctx context.Context, page, pageSize int, trangThaiGiam, vuAnID string) ([]entity.TamGiam, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.TamGiam{}).Where("is_deleted = ?", false)
	if trangThaiGiam != "" {
		query = query.Where("trang_thai_giam = ?", trangThaiGiam)
	}
	if vuAnID != "" {
		query = query.Where("vu_an_id = ?", vuAnID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tgs []entity.TamGiam
	err := query.
		Order("ngay_bat_giam DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tgs).Error
	return tgs, total, err
}

// ListByVuAn trả về các lệnh giam của một vụ án.
func (r *TamGiamRepository) ListByVuAn(ctx context.Context, vuAnID string) ([]entity.TamGiam, error) {
	var tgs []entity.TamGiam
	err := r.db.WithContext(ctx).
		Where("vu_an_id = ? AND is_deleted = ?", vuAnID, false).
		Order("ngay_bat_giam DESC").
		Find(&tgs).Error
	return tgs, err
}

// FindActiveByBiCan tìm lệnh giam đang hiệu lực của một bị can.
func (r *TamGiamRepository) FindActiveByBiCan(ctx context.Context, biCanID string) (*entity.TamGiam, error) {
	var tg entity.TamGiam
	err := r.db.WithContext(ctx).
		Where("bi_can_id = ? AND trang_thai_giam = ? AND is_deleted = ?", biCanID, entity.TamGiamDangGiam, false).
		Order("ngay_bat_giam DESC").
		First(&tg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tg, nil
}

// ListExpiring trả về lệnh đang giam hết hạn trong vòng đến hạn ngày
// tới (tính cả lệnh đã quá hạn), gần hạn nhất trước.
func (r *TamGiamRepository) ListExpiring(ctx context.Context, until entity.Date) ([]entity.TamGiam, error) {
	var tgs []entity.TamGiam
	err := r.db.WithContext(ctx).
		Where("trang_thai_giam = ? AND is_deleted = ? AND ngay_het_han_giam <= ?", entity.TamGiamDangGiam, false, until).
		Order("ngay_het_han_giam ASC").
		Find(&tgs).Error
	return tgs, err
}

func (r *TamGiamRepository) Create(ctx context.Context, tg *entity.TamGiam) error {
	return r.db.WithContext(ctx).Create(tg).Error
}

func (r *TamGiamRepository) Save(ctx context.Context, tg *entity.TamGiam) error {
	return r.db.WithContext(ctx).Save(tg).Error
}

func (r *TamGiamRepository) SoftDelete(ctx context.Context, tg *entity.TamGiam) error {
	tg.IsDeleted = true
	return r.db.WithContext(ctx).Model(tg).Update("is_deleted", true).Error
}

// CountActive đếm lệnh đang giam.
func (r *TamGiamRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.TamGiam{}).
		Where("trang_thai_giam = ? AND is_deleted = ?", entity.TamGiamDangGiam, false).
		Count(&total).Error
	return total, err
}
