package entity

// AssetType phân biệt 5 nhóm tài sản của đơn vị.
type AssetType string

const (
	AssetWeapons   AssetType = "weapons"   // vũ khí, vật liệu nổ, công cụ hỗ trợ
	AssetVehicles  AssetType = "vehicles"  // phương tiện
	AssetTechnical AssetType = "technical" // thiết bị kỹ thuật nghiệp vụ
	AssetOffice    AssetType = "office"    // thiết bị văn phòng, doanh trại
	AssetWater     AssetType = "water"     // trang thiết bị tuần tra trên sông
)

// InspectionFields là nhóm trường lịch kiểm tra chung của mọi biến thể.
type InspectionFields struct {
	DinhKyKiemTra       string `json:"dinh_ky_kiem_tra" gorm:"type:varchar(20)"`
	NgayKiemTraGanNhat  *Date  `json:"ngay_kiem_tra_gan_nhat"`
	NgayKiemTraTiepTheo *Date  `json:"ngay_kiem_tra_tiep_theo"`
	KetQuaKiemTra       string `json:"ket_qua_kiem_tra" gorm:"type:varchar(20)"`
}

// AssetRecord là mặt cắt chung để repository và các service lịch kiểm tra,
// thông báo, xuất Excel thao tác trên cả 5 biến thể mà không rẽ nhánh.
type AssetRecord interface {
	Base() *BaseModel
	MaTaiSan() string
	SetMaTaiSan(code string)
	TenHienThi() string
	SoLuongTaiSan() int
	// GiaTri trả về (nguyên giá, giá trị còn lại); biến thể không có
	// trường tương ứng trả về nil.
	GiaTri() (nguyenGia, giaTriConLai *float64)
	Inspection() *InspectionFields
}

// VuKhiCongCuHoTro - vũ khí, vật liệu nổ và công cụ hỗ trợ.
type VuKhiCongCuHoTro struct {
	BaseModel
	MaTaiSanField string   `json:"ma_tai_san" gorm:"column:ma_tai_san;type:varchar(50);uniqueIndex;not null"`
	MaDanhMuc     string   `json:"ma_danh_muc" gorm:"type:varchar(20);not null"`
	TenTaiSan     string   `json:"ten_tai_san" gorm:"type:varchar(255);not null"`
	DonViTinh     string   `json:"don_vi_tinh" gorm:"type:varchar(20);not null"`
	NamSuDung     *int     `json:"nam_su_dung"`
	SoLuong       int      `json:"so_luong" gorm:"not null;default:1"`
	NguyenGia     *float64 `json:"nguyen_gia" gorm:"type:numeric(15,0)"`
	GiaTriConLai  *float64 `json:"gia_tri_con_lai" gorm:"type:numeric(15,0)"`
	SoHieu        string   `json:"so_hieu" gorm:"type:varchar(100)"`
	LoaiTaiSan    string   `json:"loai_tai_san" gorm:"type:varchar(50)"`
	ThucTeBanGiao string   `json:"thuc_te_ban_giao" gorm:"type:varchar(10)"`
	ViTriTaiSan   string   `json:"vi_tri_tai_san" gorm:"type:varchar(100)"`
	NguoiSuDung   string   `json:"nguoi_su_dung" gorm:"type:varchar(100)"`
	InspectionFields
	NamHetHan      *int   `json:"nam_het_han"`
	PhuongThucXuLy string `json:"phuong_thuc_xu_ly" gorm:"type:varchar(50)"`
	GhiChu         string `json:"ghi_chu" gorm:"type:text"`
}

func (VuKhiCongCuHoTro) TableName() string { return "danh_sach_vu_khi_cong_cu_ho_tro" }

func (a *VuKhiCongCuHoTro) Base() *BaseModel              { return &a.BaseModel }
func (a *VuKhiCongCuHoTro) MaTaiSan() string              { return a.MaTaiSanField }
func (a *VuKhiCongCuHoTro) SetMaTaiSan(code string)       { a.MaTaiSanField = code }
func (a *VuKhiCongCuHoTro) TenHienThi() string            { return a.TenTaiSan }
func (a *VuKhiCongCuHoTro) SoLuongTaiSan() int            { return a.SoLuong }
func (a *VuKhiCongCuHoTro) GiaTri() (*float64, *float64)  { return a.NguyenGia, a.GiaTriConLai }
func (a *VuKhiCongCuHoTro) Inspection() *InspectionFields { return &a.InspectionFields }

// PhuongTien - ô tô, mô tô, xuồng máy của đơn vị. Ba mốc ngày riêng
// (đăng kiểm, thay nhớt, thay vỏ) chỉ nhập tay, không tự cộng chu kỳ.
type PhuongTien struct {
	BaseModel
	MaTaiSanField     string   `json:"ma_tai_san" gorm:"column:ma_tai_san;type:varchar(50);uniqueIndex;not null"`
	DanhMucPhuongTien string   `json:"danh_muc_phuong_tien" gorm:"type:varchar(50);not null"`
	TenPhuongTien     string   `json:"ten_phuong_tien" gorm:"type:varchar(255);not null"`
	DonViTinh         string   `json:"don_vi_tinh" gorm:"type:varchar(20);not null"`
	NguyenGia         *float64 `json:"nguyen_gia" gorm:"type:numeric(15,0)"`
	SoLuong           int      `json:"so_luong" gorm:"not null;default:1"`
	BienSoKyHieu      string   `json:"bien_so_ky_hieu" gorm:"type:varchar(50)"`
	SoKhungSoThanVo   string   `json:"so_khung_so_than_vo" gorm:"type:varchar(100)"`
	SoMay             string   `json:"so_may" gorm:"type:varchar(100)"`
	NamTrangBi        *int     `json:"nam_trang_bi"`
	LoaiTaiSan        string   `json:"loai_tai_san" gorm:"type:varchar(50)"`
	ThucTeBanGiao     string   `json:"thuc_te_ban_giao" gorm:"type:varchar(10)"`
	NgayDangKiem      *Date    `json:"ngay_dang_kiem"`
	NgayThayNhot      *Date    `json:"ngay_thay_nhot"`
	NgayThayVo        *Date    `json:"ngay_thay_vo"`
	SuaChua           string   `json:"sua_chua" gorm:"type:text"`
	PhiDuongBo        string   `json:"phi_duong_bo" gorm:"type:text"`
	NamHetHan         *int     `json:"nam_het_han"`
	PhuongThucXuLy    string   `json:"phuong_thuc_xu_ly" gorm:"type:varchar(50)"`
	InspectionFields
	GhiChu string `json:"ghi_chu" gorm:"type:text"`
}

func (PhuongTien) TableName() string { return "danh_sach_phuong_tien" }

func (a *PhuongTien) Base() *BaseModel              { return &a.BaseModel }
func (a *PhuongTien) MaTaiSan() string              { return a.MaTaiSanField }
func (a *PhuongTien) SetMaTaiSan(code string)       { a.MaTaiSanField = code }
func (a *PhuongTien) TenHienThi() string            { return a.TenPhuongTien }
func (a *PhuongTien) SoLuongTaiSan() int            { return a.SoLuong }
func (a *PhuongTien) GiaTri() (*float64, *float64)  { return a.NguyenGia, nil }
func (a *PhuongTien) Inspection() *InspectionFields { return &a.InspectionFields }

// ThietBiKyThuat - thiết bị kỹ thuật nghiệp vụ.
type ThietBiKyThuat struct {
	BaseModel
	MaTaiSanField string   `json:"ma_tai_san" gorm:"column:ma_tai_san;type:varchar(50);uniqueIndex;not null"`
	TenTaiSan     string   `json:"ten_tai_san" gorm:"type:varchar(255);not null"`
	NamSuDung     *int     `json:"nam_su_dung"`
	SoLuong       int      `json:"so_luong" gorm:"not null"`
	NguyenGia     *float64 `json:"nguyen_gia" gorm:"type:numeric(15,0)"`
	GiaTriConLai  *float64 `json:"gia_tri_con_lai" gorm:"type:numeric(15,0)"`
	LoaiTaiSan    string   `json:"loai_tai_san" gorm:"type:varchar(50)"`
	ThucTeBanGiao string   `json:"thuc_te_ban_giao" gorm:"type:varchar(10)"`
	InspectionFields
	NamHetHan      *int   `json:"nam_het_han"`
	PhuongThucXuLy string `json:"phuong_thuc_xu_ly" gorm:"type:varchar(50)"`
	GhiChu         string `json:"ghi_chu" gorm:"type:text"`
}

func (ThietBiKyThuat) TableName() string { return "danh_sach_thiet_bi_ky_thuat_nghiep_vu" }

func (a *ThietBiKyThuat) Base() *BaseModel              { return &a.BaseModel }
func (a *ThietBiKyThuat) MaTaiSan() string              { return a.MaTaiSanField }
func (a *ThietBiKyThuat) SetMaTaiSan(code string)       { a.MaTaiSanField = code }
func (a *ThietBiKyThuat) TenHienThi() string            { return a.TenTaiSan }
func (a *ThietBiKyThuat) SoLuongTaiSan() int            { return a.SoLuong }
func (a *ThietBiKyThuat) GiaTri() (*float64, *float64)  { return a.NguyenGia, a.GiaTriConLai }
func (a *ThietBiKyThuat) Inspection() *InspectionFields { return &a.InspectionFields }

// ThietBiVanPhong - thiết bị văn phòng, doanh trại.
type ThietBiVanPhong struct {
	BaseModel
	MaTaiSanField string   `json:"ma_tai_san" gorm:"column:ma_tai_san;type:varchar(50);uniqueIndex;not null"`
	TenTaiSan     string   `json:"ten_tai_san" gorm:"type:varchar(255);not null"`
	NamSuDung     *int     `json:"nam_su_dung"`
	SoLuong       int      `json:"so_luong" gorm:"not null"`
	NguyenGia     *float64 `json:"nguyen_gia" gorm:"type:numeric(15,0)"`
	GiaTriConLai  *float64 `json:"gia_tri_con_lai" gorm:"type:numeric(15,0)"`
	LoaiTaiSan    string   `json:"loai_tai_san" gorm:"type:varchar(50)"`
	ThucTeBanGiao string   `json:"thuc_te_ban_giao" gorm:"type:varchar(10)"`
	HinhThuc      string   `json:"hinh_thuc" gorm:"type:varchar(50)"`
	SuKien        string   `json:"su_kien" gorm:"type:varchar(50)"`
	ChiPhi        *float64 `json:"chi_phi" gorm:"type:numeric(15,0)"`
	InspectionFields
	NamHetHan      *int   `json:"nam_het_han"`
	PhuongThucXuLy string `json:"phuong_thuc_xu_ly" gorm:"type:varchar(50)"`
	GhiChu         string `json:"ghi_chu" gorm:"type:text"`
}

func (ThietBiVanPhong) TableName() string { return "danh_sach_thiet_bi_van_phong_doanh_trai" }

func (a *ThietBiVanPhong) Base() *BaseModel              { return &a.BaseModel }
func (a *ThietBiVanPhong) MaTaiSan() string              { return a.MaTaiSanField }
func (a *ThietBiVanPhong) SetMaTaiSan(code string)       { a.MaTaiSanField = code }
func (a *ThietBiVanPhong) TenHienThi() string            { return a.TenTaiSan }
func (a *ThietBiVanPhong) SoLuongTaiSan() int            { return a.SoLuong }
func (a *ThietBiVanPhong) GiaTri() (*float64, *float64)  { return a.NguyenGia, a.GiaTriConLai }
func (a *ThietBiVanPhong) Inspection() *InspectionFields { return &a.InspectionFields }

// TrangThietBiThuy - trang thiết bị tuần tra đường thủy.
type TrangThietBiThuy struct {
	BaseModel
	MaTaiSanField       string   `json:"ma_tai_san" gorm:"column:ma_tai_san;type:varchar(50);uniqueIndex;not null"`
	DanhMucTrangThietBi string   `json:"danh_muc_trang_thiet_bi" gorm:"type:varchar(50);not null"`
	TenTrangBi          string   `json:"ten_trang_bi" gorm:"type:varchar(255);not null"`
	DonViTinh           string   `json:"don_vi_tinh" gorm:"type:varchar(20);not null"`
	NguyenGia           *float64 `json:"nguyen_gia" gorm:"type:numeric(15,0)"`
	SoLuong             int      `json:"so_luong" gorm:"not null;default:1"`
	MaHieu              string   `json:"ma_hieu" gorm:"type:varchar(100)"`
	NamTrangBi          *int     `json:"nam_trang_bi"`
	LoaiTaiSan          string   `json:"loai_tai_san" gorm:"type:varchar(50)"`
	InspectionFields
	NamHetHan      *int   `json:"nam_het_han"`
	PhuongThucXuLy string `json:"phuong_thuc_xu_ly" gorm:"type:varchar(50)"`
	GhiChu         string `json:"ghi_chu" gorm:"type:text"`
}

func (TrangThietBiThuy) TableName() string { return "danh_sach_trang_thiet_bi_thuy" }

func (a *TrangThietBiThuy) Base() *BaseModel              { return &a.BaseModel }
func (a *TrangThietBiThuy) MaTaiSan() string              { return a.MaTaiSanField }
func (a *TrangThietBiThuy) SetMaTaiSan(code string)       { a.MaTaiSanField = code }
func (a *TrangThietBiThuy) TenHienThi() string            { return a.TenTrangBi }
func (a *TrangThietBiThuy) SoLuongTaiSan() int            { return a.SoLuong }
func (a *TrangThietBiThuy) GiaTri() (*float64, *float64)  { return a.NguyenGia, nil }
func (a *TrangThietBiThuy) Inspection() *InspectionFields { return &a.InspectionFields }

// AssetVariant mô tả một biến thể tài sản: tiền tố mã, chu kỳ cố định
// (nếu có), trường bắt buộc và cách dựng record/slice cho gorm.
// Mọi khác biệt giữa 5 biến thể nằm gọn trong bảng này.
type AssetVariant struct {
	Type      AssetType
	Prefix    string
	TenNhom   string
	NameField string   // khoá JSON của trường tên hiển thị
	Required  []string // khoá JSON bắt buộc khi tạo mới
	// FixedPeriod khác rỗng nghĩa là biến thể luôn dùng chu kỳ này,
	// bỏ qua dinh_ky_kiem_tra trong dữ liệu gửi lên.
	FixedPeriod string
	SearchCols  []string
	New         func() AssetRecord
	NewSlice    func() interface{}
	Records     func(slice interface{}) []AssetRecord
}

func toRecords[T any, PT interface {
	*T
	AssetRecord
}](slice interface{}) []AssetRecord {
	rows := slice.(*[]T)
	out := make([]AssetRecord, 0, len(*rows))
	for i := range *rows {
		out = append(out, PT(&(*rows)[i]))
	}
	return out
}

// AssetVariants là bảng tra đóng của 5 biến thể. Thêm biến thể mới chỉ
// cần thêm một dòng ở đây (và struct entity tương ứng).
var AssetVariants = map[AssetType]*AssetVariant{
	AssetWeapons: {
		Type:       AssetWeapons,
		Prefix:     "VK",
		TenNhom:    "Vũ khí, VLN, CCHT",
		NameField:  "ten_tai_san",
		Required:   []string{"ten_tai_san", "ma_danh_muc", "don_vi_tinh", "so_luong"},
		SearchCols: []string{"ma_tai_san", "ten_tai_san", "so_hieu"},
		New:        func() AssetRecord { return &VuKhiCongCuHoTro{} },
		NewSlice:   func() interface{} { return &[]VuKhiCongCuHoTro{} },
		Records:    toRecords[VuKhiCongCuHoTro, *VuKhiCongCuHoTro],
	},
	AssetVehicles: {
		Type:       AssetVehicles,
		Prefix:     "PT",
		TenNhom:    "Phương tiện",
		NameField:  "ten_phuong_tien",
		Required:   []string{"ten_phuong_tien", "danh_muc_phuong_tien", "don_vi_tinh", "so_luong"},
		SearchCols: []string{"ma_tai_san", "ten_phuong_tien", "bien_so_ky_hieu"},
		New:        func() AssetRecord { return &PhuongTien{} },
		NewSlice:   func() interface{} { return &[]PhuongTien{} },
		Records:    toRecords[PhuongTien, *PhuongTien],
	},
	AssetTechnical: {
		Type:        AssetTechnical,
		Prefix:      "TB",
		TenNhom:     "Thiết bị kỹ thuật nghiệp vụ",
		NameField:   "ten_tai_san",
		Required:    []string{"ten_tai_san", "so_luong"},
		FixedPeriod: "6 tháng",
		SearchCols:  []string{"ma_tai_san", "ten_tai_san"},
		New:         func() AssetRecord { return &ThietBiKyThuat{} },
		NewSlice:    func() interface{} { return &[]ThietBiKyThuat{} },
		Records:     toRecords[ThietBiKyThuat, *ThietBiKyThuat],
	},
	AssetOffice: {
		Type:        AssetOffice,
		Prefix:      "VP",
		TenNhom:     "Thiết bị văn phòng, doanh trại",
		NameField:   "ten_tai_san",
		Required:    []string{"ten_tai_san", "so_luong"},
		FixedPeriod: "6 tháng",
		SearchCols:  []string{"ma_tai_san", "ten_tai_san"},
		New:         func() AssetRecord { return &ThietBiVanPhong{} },
		NewSlice:    func() interface{} { return &[]ThietBiVanPhong{} },
		Records:     toRecords[ThietBiVanPhong, *ThietBiVanPhong],
	},
	AssetWater: {
		Type:        AssetWater,
		Prefix:      "TT",
		TenNhom:     "Trang thiết bị tuần tra trên sông",
		NameField:   "ten_trang_bi",
		Required:    []string{"ten_trang_bi", "danh_muc_trang_thiet_bi", "don_vi_tinh", "so_luong"},
		FixedPeriod: "6 tháng",
		SearchCols:  []string{"ma_tai_san", "ten_trang_bi", "ma_hieu"},
		New:         func() AssetRecord { return &TrangThietBiThuy{} },
		NewSlice:    func() interface{} { return &[]TrangThietBiThuy{} },
		Records:     toRecords[TrangThietBiThuy, *TrangThietBiThuy],
	},
}

// AssetTypeOrder cố định thứ tự duyệt các biến thể (sổ bảo trì tra mã
// tài sản theo đúng thứ tự này).
var AssetTypeOrder = []AssetType{AssetWeapons, AssetVehicles, AssetTechnical, AssetOffice, AssetWater}

// VariantOf trả về mô tả biến thể, nil nếu loại không tồn tại.
func VariantOf(t AssetType) *AssetVariant {
	return AssetVariants[t]
}
