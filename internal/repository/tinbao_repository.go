package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// TinBaoRepository quản lý tin báo, tố giác tội phạm.
type TinBaoRepository struct {
	db *gorm.DB
}

func NewTinBaoRepository(db *gorm.DB) *TinBaoRepository {
	return &TinBaoRepository{db: db}
}

func (r *TinBaoRepository) FindByID(ctx context.Context, id string) (*entity.TinBao, error) {
	var tb entity.TinBao
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&tb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tb, nil
}

// List phân trang theo STT giảm dần, tìm mờ trên điều luật, nguồn tin,
// nơi xảy ra và nội dung.
func (r *TinBaoRepository) List(ctx context.Context, page, pageSize int, search, trangThai, congAnPhuTrach string) ([]entity.TinBao, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.TinBao{}).Where("is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"dieu_luat LIKE ? OR ten_nguon_tin LIKE ? OR noi_xay_ra LIKE ? OR noi_dung_nguon_tin LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if trangThai != "" {
		query = query.Where("trang_thai = ?", trangThai)
	}
	if congAnPhuTrach != "" {
		query = query.Where("cong_an_phu_trach = ?", congAnPhuTrach)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tbs []entity.TinBao
	err := query.
		Order("stt DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tbs).Error
	return tbs, total, err
}

func (r *TinBaoRepository) Create(ctx context.Context, tb *entity.TinBao) error {
	return r.db.WithContext(ctx).Create(tb).Error
}

func (r *TinBaoRepository) Save(ctx context.Context, tb *entity.TinBao) error {
	return r.db.WithContext(ctx).Save(tb).Error
}

func (r *TinBaoRepository) SoftDelete(ctx context.Context, tb *entity.TinBao) error {
	tb.IsDeleted = true
	return r.db.WithContext(ctx).Model(tb).Update("is_deleted", true).Error
}

// MaxSTT lấy STT lớn nhất trên toàn bảng (kể cả bản ghi xoá mềm,
// chúng vẫn giữ ràng buộc unique trên cột stt).
func (r *TinBaoRepository) MaxSTT(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).Model(&entity.TinBao{}).
		Select("COALESCE(MAX(stt), 0)").
		Scan(&max).Error
	return max, err
}

// ActiveSTTs trả về tập STT của các tin báo chưa xoá (kiểm tra trùng
// khi nhập Excel).
func (r *TinBaoRepository) ActiveSTTs(ctx context.Context) (map[int]bool, error) {
	var stts []int
	err := r.db.WithContext(ctx).Model(&entity.TinBao{}).
		Where("is_deleted = ?", false).
		Pluck("stt", &stts).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(stts))
	for _, s := range stts {
		out[s] = true
	}
	return out, nil
}

// ImportBatch nhập một lô tin báo trong một giao dịch: xoá cứng các
// bản ghi xoá mềm đang chiếm STT trước rồi chèn cả lô. Lỗi giữa chừng
// hủy toàn bộ, không nhập nửa chừng.
func (r *TinBaoRepository) ImportBatch(ctx context.Context, tbs []*entity.TinBao, purgeSTTs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(purgeSTTs) > 0 {
			if err := tx.Where("stt IN ? AND is_deleted = ?", purgeSTTs, true).
				Delete(&entity.TinBao{}).Error; err != nil {
				return err
			}
		}
		for _, tb := range tbs {
			if err := tx.Create(tb).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Convert ghi nhận chuyển tin báo thành vụ án: tạo vụ án, cập nhật tin
// báo và ghi lịch sử chuyển đổi trong cùng một giao dịch.
func (r *TinBaoRepository) Convert(ctx context.Context, tb *entity.TinBao, va *entity.VuAn, ls *entity.LichSuChuyenDoi) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(va).Error; err != nil {
			return err
		}
		tb.VuAnID = &va.ID
		tb.TrangThai = entity.TinBaoDaChuyenVuAn
		if err := tx.Save(tb).Error; err != nil {
			return err
		}
		ls.TinBaoID = tb.ID
		ls.VuAnID = va.ID
		return tx.Create(ls).Error
	})
}

// ConversionHistory trả về các lần chuyển đổi của một tin báo.
func (r *TinBaoRepository) ConversionHistory(ctx context.Context, tinBaoID string) ([]entity.LichSuChuyenDoi, error) {
	var ls []entity.LichSuChuyenDoi
	err := r.db.WithContext(ctx).
		Where("tin_bao_id = ? AND is_deleted = ?", tinBaoID, false).
		Order("ngay_chuyen DESC").
		Find(&ls).Error
	return ls, err
}

// CountByStatus đếm tin báo chưa xoá theo trạng thái.
func (r *TinBaoRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		TrangThai string
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&entity.TinBao{}).
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
