package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loại hình ghi trong sổ kiểm tra - bảo trì.
const (
	MaintenanceKiemTra = "Kiểm tra"
	MaintenanceBaoTri  = "Bảo trì"
	MaintenanceSuaChua = "Sửa chữa"
)

// LichSuKiemTraBaoTri là một dòng sổ kiểm tra/bảo trì/sửa chữa.
// Sổ tham chiếu tài sản qua mã (không FK) nên giữ được lịch sử kể cả
// khi tài sản đã bị xoá mềm; xoá dòng sổ là xoá cứng.
type LichSuKiemTraBaoTri struct {
	ID              string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	MaTaiSan        string    `json:"ma_tai_san" gorm:"type:varchar(50);not null;index"`
	LoaiHinh        string    `json:"loai_hinh" gorm:"type:varchar(50);not null"`
	NgayThucHien    Date      `json:"ngay_thuc_hien" gorm:"not null"`
	NguoiThucHien   string    `json:"nguoi_thuc_hien" gorm:"type:varchar(100)"`
	ChiTietCongViec string    `json:"chi_tiet_cong_viec" gorm:"type:text"`
	ChiPhi          *float64  `json:"chi_phi" gorm:"type:numeric(15,0)"`
	KetQua          string    `json:"ket_qua" gorm:"type:varchar(20)"`
	GhiChu          string    `json:"ghi_chu" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
}

func (LichSuKiemTraBaoTri) TableName() string { return "lich_su_kiem_tra_bao_tri" }

func (m *LichSuKiemTraBaoTri) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
