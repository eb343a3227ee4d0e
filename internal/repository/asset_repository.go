package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// AssetRepository truy cập cả 5 bảng tài sản qua bảng tra biến thể.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) variant(t entity.AssetType) (*entity.AssetVariant, error) {
	v := entity.VariantOf(t)
	if v == nil {
		return nil, fmt.Errorf("loại tài sản không hợp lệ %q: %w", t, ErrNotFound)
	}
	return v, nil
}

// FindByID tìm tài sản chưa xoá theo id.
func (r *AssetRepository) FindByID(ctx context.Context, t entity.AssetType, id string) (entity.AssetRecord, error) {
	v, err := r.variant(t)
	if err != nil {
		return nil, err
	}
	rec := v.New()
	err = r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// FindByCode tìm tài sản chưa xoá theo mã tài sản.
func (r *AssetRepository) FindByCode(ctx context.Context, t entity.AssetType, code string) (entity.AssetRecord, error) {
	v, err := r.variant(t)
	if err != nil {
		return nil, err
	}
	rec := v.New()
	err = r.db.WithContext(ctx).
		Where("ma_tai_san = ? AND is_deleted = ?", code, false).
		First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// List phân trang theo created_at giảm dần, tìm kiếm mờ trên các cột
// của biến thể và lọc đẳng thức theo filters.
func (r *AssetRepository) List(ctx context.Context, t entity.AssetType, page, pageSize int, search string, filters map[string]string) ([]entity.AssetRecord, int64, error) {
	v, err := r.variant(t)
	if err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(v.New()).Where("is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		conds := make([]string, 0, len(v.SearchCols))
		args := make([]interface{}, 0, len(v.SearchCols))
		for _, col := range v.SearchCols {
			conds = append(conds, col+" LIKE ?")
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}
	for col, val := range filters {
		if val != "" {
			query = query.Where(col+" = ?", val)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	slice := v.NewSlice()
	err = query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(slice).Error
	if err != nil {
		return nil, 0, err
	}
	return v.Records(slice), total, nil
}

// ListActive trả về toàn bộ tài sản chưa xoá của một biến thể
// (phục vụ quét cảnh báo, xuất Excel và báo cáo).
func (r *AssetRepository) ListActive(ctx context.Context, t entity.AssetType) ([]entity.AssetRecord, error) {
	v, err := r.variant(t)
	if err != nil {
		return nil, err
	}
	slice := v.NewSlice()
	err = r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(slice).Error
	if err != nil {
		return nil, err
	}
	return v.Records(slice), nil
}

// Create ghi tài sản mới.
func (r *AssetRepository) Create(ctx context.Context, rec entity.AssetRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Save lưu toàn bộ record đã chỉnh.
func (r *AssetRepository) Save(ctx context.Context, rec entity.AssetRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// SoftDelete bật cờ is_deleted, bản ghi vẫn giữ chỗ mã tài sản.
func (r *AssetRepository) SoftDelete(ctx context.Context, rec entity.AssetRecord) error {
	rec.Base().IsDeleted = true
	return r.db.WithContext(ctx).Model(rec).Update("is_deleted", true).Error
}

// CountActive đếm tài sản chưa xoá của một biến thể.
func (r *AssetRepository) CountActive(ctx context.Context, t entity.AssetType) (int64, error) {
	v, err := r.variant(t)
	if err != nil {
		return 0, err
	}
	var total int64
	err = r.db.WithContext(ctx).Model(v.New()).
		Where("is_deleted = ?", false).
		Count(&total).Error
	return total, err
}

// MaxCodeSuffix đọc hậu tố lớn nhất của các mã tài sản bắt đầu bằng
// prefix trong kỳ, tính cả bản ghi đã xoá mềm để mã không bị cấp lại.
func (r *AssetRepository) MaxCodeSuffix(ctx context.Context, t entity.AssetType, prefix string) (int64, error) {
	v, err := r.variant(t)
	if err != nil {
		return 0, err
	}
	var max int64
	// Mã nhập tay có thể không kết thúc bằng 3 chữ số, lọc trước khi cast.
	err = r.db.WithContext(ctx).Model(v.New()).
		Select("COALESCE(MAX(CAST(RIGHT(ma_tai_san, 3) AS INTEGER)), 0)").
		Where("ma_tai_san LIKE ? AND ma_tai_san ~ '[0-9]{3}$'", prefix+"%").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// SumValues cộng nguyên giá và giá trị còn lại của biến thể.
// Biến thể không có cột gia_tri_con_lai trả về 0 cho phần còn lại.
func (r *AssetRepository) SumValues(ctx context.Context, t entity.AssetType) (nguyenGia, giaTriConLai float64, err error) {
	v, err := r.variant(t)
	if err != nil {
		return 0, 0, err
	}
	hasResidual := t == entity.AssetWeapons || t == entity.AssetTechnical || t == entity.AssetOffice

	sel := "COALESCE(SUM(nguyen_gia), 0) AS nguyen_gia"
	if hasResidual {
		sel += ", COALESCE(SUM(gia_tri_con_lai), 0) AS gia_tri_con_lai"
	}
	var row struct {
		NguyenGia    float64
		GiaTriConLai float64
	}
	err = r.db.WithContext(ctx).Model(v.New()).
		Select(sel).
		Where("is_deleted = ?", false).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.NguyenGia, row.GiaTriConLai, nil
}
