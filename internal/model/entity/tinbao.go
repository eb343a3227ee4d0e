package entity

import "time"

// Trạng thái tin báo.
const (
	TinBaoTiepNhan     = "Tiếp nhận"
	TinBaoDangDieuTra  = "Đang điều tra"
	TinBaoDaChuyenVuAn = "Chuyển thành vụ án"
)

// DonViMacDinh gán cho tin báo và vụ án khi không nhập.
const DonViMacDinh = "CAX Phước Thái"

// TinBao - tin báo, tố giác tội phạm đang thụ lý.
type TinBao struct {
	BaseModel
	STT              int     `json:"stt" gorm:"column:stt;uniqueIndex;not null"`
	DieuLuat         string  `json:"dieu_luat" gorm:"type:varchar(255);not null"`
	TenNguonTin      string  `json:"ten_nguon_tin" gorm:"type:varchar(255)"`
	NgayXayRa        Date    `json:"ngay_xay_ra" gorm:"not null"`
	NoiXayRa         string  `json:"noi_xay_ra" gorm:"type:text;not null"`
	NoiDungNguonTin  string  `json:"noi_dung_nguon_tin" gorm:"type:text;not null"`
	SoQDPhanCongPTT  string  `json:"so_qd_phan_cong_ptt" gorm:"column:so_qd_phan_cong_ptt;type:varchar(100)"`
	SoQDPhanCongDTV  string  `json:"so_qd_phan_cong_dtv" gorm:"column:so_qd_phan_cong_dtv;type:varchar(100)"`
	NgayPhanCong     *Date   `json:"ngay_phan_cong"`
	KetQuaGiaiQuyet  string  `json:"ket_qua_giai_quyet" gorm:"type:varchar(50)"`
	DiaChiBiHai      string  `json:"dia_chi_bi_hai" gorm:"type:text"`
	ThongTinDoiTuong string  `json:"thong_tin_doi_tuong" gorm:"type:text"`
	CongAnPhuTrach   string  `json:"cong_an_phu_trach" gorm:"type:varchar(100)"`
	DonVi            string  `json:"don_vi" gorm:"type:varchar(100);default:'CAX Phước Thái'"`
	KiemSatVien      string  `json:"kiem_sat_vien" gorm:"type:varchar(100)"`
	GiaHan           int     `json:"gia_han" gorm:"default:0"`
	NgayHetHan       *Date   `json:"ngay_het_han"`
	TinhTrangHoSo    string  `json:"tinh_trang_ho_so" gorm:"type:varchar(100)"`
	GhiChu           string  `json:"ghi_chu" gorm:"type:text"`
	TrangThai        string  `json:"trang_thai" gorm:"type:varchar(50);not null;default:'Tiếp nhận'"`
	VuAnID           *string `json:"vu_an_id" gorm:"type:varchar(36);index"`
}

func (TinBao) TableName() string { return "tin_bao" }

// LichSuChuyenDoi lưu vết mỗi lần chuyển tin báo thành vụ án.
type LichSuChuyenDoi struct {
	BaseModel
	TinBaoID    string    `json:"tin_bao_id" gorm:"type:varchar(36);not null;index"`
	VuAnID      string    `json:"vu_an_id" gorm:"type:varchar(36);not null;index"`
	NgayChuyen  time.Time `json:"ngay_chuyen" gorm:"not null"`
	NguoiChuyen string    `json:"nguoi_chuyen" gorm:"type:varchar(100)"`
	LyDo        string    `json:"ly_do" gorm:"type:text"`
	GhiChu      string    `json:"ghi_chu" gorm:"type:text"`
}

func (LichSuChuyenDoi) TableName() string { return "lich_su_chuyen_doi" }
