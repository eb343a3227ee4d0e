package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// VuAnRepository quản lý vụ án.
type VuAnRepository struct {
	db *gorm.DB
}

func NewVuAnRepository(db *gorm.DB) *VuAnRepository {
	return &VuAnRepository{db: db}
}

func (r *VuAnRepository) FindByID(ctx context.Context, id string) (*entity.VuAn, error) {
	var va entity.VuAn
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&va).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &va, nil
}

// List phân trang theo STT giảm dần.
func (r *VuAnRepository) List(ctx context.Context, page, pageSize int, search, trangThai, dieuTraVien string) ([]entity.VuAn, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.VuAn{}).Where("is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"dieu_luat LIKE ? OR toi_danh LIKE ? OR noi_xay_ra LIKE ? OR thong_tin_vu_an LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if trangThai != "" {
		query = query.Where("trang_thai = ?", trangThai)
	}
	if dieuTraVien != "" {
		query = query.Where("dieu_tra_vien = ?", dieuTraVien)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vas []entity.VuAn
	err := query.
		Order("stt DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&vas).Error
	return vas, total, err
}

func (r *VuAnRepository) Create(ctx context.Context, va *entity.VuAn) error {
	return r.db.WithContext(ctx).Create(va).Error
}

func (r *VuAnRepository) Save(ctx context.Context, va *entity.VuAn) error {
	return r.db.WithContext(ctx).Save(va).Error
}

func (r *VuAnRepository) SoftDelete(ctx context.Context, va *entity.VuAn) error {
	va.IsDeleted = true
	return r.db.WithContext(ctx).Model(va).Update("is_deleted", true).Error
}

// MaxSTT trên toàn bảng, kể cả bản ghi xoá mềm.
func (r *VuAnRepository) MaxSTT(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).Model(&entity.VuAn{}).
		Select("COALESCE(MAX(stt), 0)").
		Scan(&max).Error
	return max, err
}

// SoKhoiToVuAnExists kiểm tra số quyết định khởi tố vụ án đã dùng chưa.
func (r *VuAnRepository) SoKhoiToVuAnExists(ctx context.Context, so string, excludeID string) (bool, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.VuAn{}).
		Where("so_khoi_to_vu_an = ? AND is_deleted = ?", so, false)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&total).Error
	return total > 0, err
}

// CountByStatus đếm vụ án chưa xoá theo trạng thái.
func (r *VuAnRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		TrangThai string
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&entity.VuAn{}).
		Select("trang_thai, COUNT(*) AS total").
		Where("is_deleted = ?", false).
		Group("trang_thai").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.TrangThai] = row.Total
	}
	return out, nil
}
