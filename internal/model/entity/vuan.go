package entity

// Trạng thái vụ án.
const (
	VuAnMoiTao      = "Mới tạo"
	VuAnDangDieuTra = "Đang điều tra"
	VuAnKhoiToVuAn  = "Khởi tố vụ án"
	VuAnKhoiToBiCan = "Khởi tố bị can"
	VuAnDinhChi     = "Đình chỉ"
	VuAnKetThuc     = "Kết thúc điều tra"
)

// Trạng thái bị can.
const (
	BiCanChuaKhoiTo = "Chưa khởi tố"
	BiCanDaKhoiTo   = "Đã khởi tố"
)

// Trạng thái lệnh tạm giam.
const (
	TamGiamDangGiam   = "Đang giam"
	TamGiamDaThaGiam  = "Đã thả"
	TamGiamHetHanGiam = "Hết hạn"
)

// BienPhapTamGiam là giá trị biện pháp ngăn chặn kích hoạt tự động tạo
// lệnh tạm giam.
const BienPhapTamGiam = "Tạm giam"

// VuAn - vụ án hình sự đang điều tra.
type VuAn struct {
	BaseModel
	STT                int     `json:"stt" gorm:"column:stt;uniqueIndex;not null"`
	TinBaoID           *string `json:"tin_bao_id" gorm:"type:varchar(36);index"`
	DieuLuat           string  `json:"dieu_luat" gorm:"type:varchar(255);not null"`
	ToiDanh            string  `json:"toi_danh" gorm:"type:varchar(255);not null"`
	NgayXayRa          Date    `json:"ngay_xay_ra" gorm:"not null"`
	NoiXayRa           string  `json:"noi_xay_ra" gorm:"type:text;not null"`
	ThongTinVuAn       string  `json:"thong_tin_vu_an" gorm:"type:text;not null"`
	SoQDPhanCongPTT    string  `json:"so_qd_phan_cong_ptt" gorm:"column:so_qd_phan_cong_ptt;type:varchar(100)"`
	SoQDPhanCongDTV    string  `json:"so_qd_phan_cong_dtv" gorm:"column:so_qd_phan_cong_dtv;type:varchar(100)"`
	NgayPhanCong       *Date   `json:"ngay_phan_cong"`
	SoKhoiToVuAn       string  `json:"so_khoi_to_vu_an" gorm:"type:varchar(100)"`
	NgayKhoiToVuAn     *Date   `json:"ngay_khoi_to_vu_an"`
	TongSoBiCan        int     `json:"tong_so_bi_can" gorm:"default:0"`
	ThongTinBiCan      string  `json:"thong_tin_bi_can" gorm:"type:text"`
	BienPhapNganChan   string  `json:"bien_phap_ngan_chan" gorm:"type:varchar(100)"`
	SoKhoiToBiCan      string  `json:"so_khoi_to_bi_can" gorm:"type:varchar(100)"`
	NgayKhoiToBiCan    *Date   `json:"ngay_khoi_to_bi_can"`
	DangVien           string  `json:"dang_vien" gorm:"type:varchar(100)"`
	KetQuaGiaiQuyet    string  `json:"ket_qua_giai_quyet" gorm:"type:varchar(100)"`
	BiCanGiaiQuyet     string  `json:"bi_can_giai_quyet" gorm:"type:text"`
	DieuTraVien        string  `json:"dieu_tra_vien" gorm:"type:varchar(100);not null"`
	CanBoQuanLyHoSo    string  `json:"can_bo_quan_ly_ho_so" gorm:"type:varchar(100)"`
	DonVi              string  `json:"don_vi" gorm:"type:varchar(100);default:'CAX Phước Thái'"`
	KiemSatVien        string  `json:"kiem_sat_vien" gorm:"type:varchar(100)"`
	NgayHetHan         *Date   `json:"ngay_het_han"`
	TinhTrangHoSo      string  `json:"tinh_trang_ho_so" gorm:"type:varchar(100)"`
	GhiChu             string  `json:"ghi_chu" gorm:"type:text"`
	TrangThai          string  `json:"trang_thai" gorm:"type:varchar(50);not null;default:'Mới tạo'"`
	NgayChuyenTuTinBao *Date   `json:"ngay_chuyen_tu_tin_bao"`
}

func (VuAn) TableName() string { return "vu_an" }

// BiCan - bị can thuộc một vụ án.
type BiCan struct {
	BaseModel
	VuAnID           string `json:"vu_an_id" gorm:"type:varchar(36);not null;index"`
	HoTen            string `json:"ho_ten" gorm:"type:varchar(100);not null"`
	NamSinh          int    `json:"nam_sinh" gorm:"not null"`
	DiaChiThuongTru  string `json:"dia_chi_thuong_tru" gorm:"type:text;not null"`
	SoCMND           string `json:"so_cmnd" gorm:"column:so_cmnd;type:varchar(20)"`
	NgheNghiep       string `json:"nghe_nghiep" gorm:"type:varchar(100)"`
	DangVien         bool   `json:"dang_vien" gorm:"default:false"`
	BienPhapNganChan string `json:"bien_phap_ngan_chan" gorm:"type:varchar(100)"`
	SoKhoiToBiCan    string `json:"so_khoi_to_bi_can" gorm:"type:varchar(100)"`
	NgayKhoiTo       *Date  `json:"ngay_khoi_to"`
	TrangThai        string `json:"trang_thai" gorm:"type:varchar(50);default:'Chưa khởi tố'"`
}

func (BiCan) TableName() string { return "bi_can" }

// TamGiam - lệnh tạm giam gắn với bị can trong vụ án.
type TamGiam struct {
	BaseModel
	VuAnID         string `json:"vu_an_id" gorm:"type:varchar(36);not null;index"`
	BiCanID        string `json:"bi_can_id" gorm:"type:varchar(36);not null;index"`
	NgayBatGiam    Date   `json:"ngay_bat_giam" gorm:"not null"`
	NgayHetHanGiam Date   `json:"ngay_het_han_giam" gorm:"not null"`
	LyDoTamGiam    string `json:"ly_do_tam_giam" gorm:"type:text;not null"`
	TrangThaiGiam  string `json:"trang_thai_giam" gorm:"type:varchar(50);default:'Đang giam'"`
	GhiChu         string `json:"ghi_chu" gorm:"type:text"`
}

func (TamGiam) TableName() string { return "tam_giam" }
