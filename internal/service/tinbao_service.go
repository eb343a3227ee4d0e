package service

import (
	"context"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// Phạm vi counter STT.
const (
	seqScopeTinBao = "tin_bao:stt"
	seqScopeVuAn   = "vu_an:stt"
)

// CreateTinBaoRequest - dữ liệu tiếp nhận tin báo mới.
type CreateTinBaoRequest struct {
	DieuLuat         string       `json:"dieu_luat" binding:"required"`
	TenNguonTin      string       `json:"ten_nguon_tin"`
	NgayXayRa        entity.Date  `json:"ngay_xay_ra" binding:"required"`
	NoiXayRa         string       `json:"noi_xay_ra" binding:"required"`
	NoiDungNguonTin  string       `json:"noi_dung_nguon_tin" binding:"required"`
	SoQDPhanCongPTT  string       `json:"so_qd_phan_cong_ptt"`
	SoQDPhanCongDTV  string       `json:"so_qd_phan_cong_dtv"`
	NgayPhanCong     *entity.Date `json:"ngay_phan_cong"`
	KetQuaGiaiQuyet  string       `json:"ket_qua_giai_quyet"`
	DiaChiBiHai      string       `json:"dia_chi_bi_hai"`
	ThongTinDoiTuong string       `json:"thong_tin_doi_tuong"`
	CongAnPhuTrach   string       `json:"cong_an_phu_trach"`
	DonVi            string       `json:"don_vi"`
	KiemSatVien      string       `json:"kiem_sat_vien"`
	GiaHan           int          `json:"gia_han"`
	NgayHetHan       *entity.Date `json:"ngay_het_han"`
	TinhTrangHoSo    string       `json:"tinh_trang_ho_so"`
	GhiChu           string       `json:"ghi_chu"`
	TrangThai        string       `json:"trang_thai"`
}

// UpdateTinBaoRequest sửa tin báo, trường nil giữ nguyên.
type UpdateTinBaoRequest struct {
	DieuLuat         *string      `json:"dieu_luat"`
	TenNguonTin      *string      `json:"ten_nguon_tin"`
	NgayXayRa        *entity.Date `json:"ngay_xay_ra"`
	NoiXayRa         *string      `json:"noi_xay_ra"`
	NoiDungNguonTin  *string      `json:"noi_dung_nguon_tin"`
	SoQDPhanCongPTT  *string      `json:"so_qd_phan_cong_ptt"`
	SoQDPhanCongDTV  *string      `json:"so_qd_phan_cong_dtv"`
	NgayPhanCong     *entity.Date `json:"ngay_phan_cong"`
	KetQuaGiaiQuyet  *string      `json:"ket_qua_giai_quyet"`
	DiaChiBiHai      *string      `json:"dia_chi_bi_hai"`
	ThongTinDoiTuong *string      `json:"thong_tin_doi_tuong"`
	CongAnPhuTrach   *string      `json:"cong_an_phu_trach"`
	DonVi            *string      `json:"don_vi"`
	KiemSatVien      *string      `json:"kiem_sat_vien"`
	GiaHan           *int         `json:"gia_han"`
	NgayHetHan       *entity.Date `json:"ngay_het_han"`
	TinhTrangHoSo    *string      `json:"tinh_trang_ho_so"`
	GhiChu           *string      `json:"ghi_chu"`
	TrangThai        *string      `json:"trang_thai"`
}

// ConvertTinBaoRequest - tuỳ chọn khi chuyển tin báo thành vụ án.
type ConvertTinBaoRequest struct {
	ToiDanh string `json:"toi_danh"`
	LyDo    string `json:"ly_do"`
	GhiChu  string `json:"ghi_chu"`
}

// VuAnPreview là bộ trường sẽ được sao chép nếu chuyển đổi.
type VuAnPreview struct {
	DieuLuat        string       `json:"dieu_luat"`
	ToiDanh         string       `json:"toi_danh"`
	NgayXayRa       entity.Date  `json:"ngay_xay_ra"`
	NoiXayRa        string       `json:"noi_xay_ra"`
	ThongTinVuAn    string       `json:"thong_tin_vu_an"`
	SoQDPhanCongPTT string       `json:"so_qd_phan_cong_ptt"`
	SoQDPhanCongDTV string       `json:"so_qd_phan_cong_dtv"`
	NgayPhanCong    *entity.Date `json:"ngay_phan_cong"`
	DieuTraVien     string       `json:"dieu_tra_vien"`
	DonVi           string       `json:"don_vi"`
}

// TinBaoService nghiệp vụ tin báo, tố giác tội phạm, gồm cả bước
// chuyển tin báo thành vụ án.
type TinBaoService struct {
	repo     *repository.TinBaoRepository
	vuAnRepo *repository.VuAnRepository
	seqRepo  *repository.SequenceRepository
	now      nowFunc
}

func NewTinBaoService(repo *repository.TinBaoRepository, vuAnRepo *repository.VuAnRepository, seqRepo *repository.SequenceRepository) *TinBaoService {
	return &TinBaoService{repo: repo, vuAnRepo: vuAnRepo, seqRepo: seqRepo, now: time.Now}
}

func (s *TinBaoService) List(ctx context.Context, page, pageSize int, search, trangThai, congAnPhuTrach string) ([]entity.TinBao, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, page, pageSize, search, trangThai, congAnPhuTrach)
}

func (s *TinBaoService) Get(ctx context.Context, id string) (*entity.TinBao, error) {
	return s.repo.FindByID(ctx, id)
}

func validateTinBaoFields(dieuLuat, noiXayRa, noiDung string) error {
	if len([]rune(dieuLuat)) < 5 {
		return Invalid("điều luật bắt buộc nhập, tối thiểu 5 ký tự")
	}
	if len([]rune(noiXayRa)) < 5 {
		return Invalid("nơi xảy ra bắt buộc nhập, tối thiểu 5 ký tự")
	}
	if len([]rune(noiDung)) < 20 {
		return Invalid("nội dung bắt buộc, mô tả chi tiết tối thiểu 20 ký tự")
	}
	return nil
}

// Create tiếp nhận tin báo mới, STT do hệ thống cấp.
func (s *TinBaoService) Create(ctx context.Context, req *CreateTinBaoRequest) (*entity.TinBao, error) {
	if err := validateTinBaoFields(req.DieuLuat, req.NoiXayRa, req.NoiDungNguonTin); err != nil {
		return nil, err
	}
	if req.NgayXayRa.IsZero() {
		return nil, Invalid("ngày xảy ra bắt buộc nhập")
	}

	stt, err := s.seqRepo.Next(ctx, seqScopeTinBao, func(ctx context.Context) (int64, error) {
		return s.repo.MaxSTT(ctx)
	})
	if err != nil {
		return nil, err
	}

	donVi := req.DonVi
	if donVi == "" {
		donVi = entity.DonViMacDinh
	}
	trangThai := req.TrangThai
	if trangThai == "" {
		trangThai = entity.TinBaoTiepNhan
	}

	tb := &entity.TinBao{
		STT:              int(stt),
		DieuLuat:         req.DieuLuat,
		TenNguonTin:      req.TenNguonTin,
		NgayXayRa:        req.NgayXayRa,
		NoiXayRa:         req.NoiXayRa,
		NoiDungNguonTin:  req.NoiDungNguonTin,
		SoQDPhanCongPTT:  req.SoQDPhanCongPTT,
		SoQDPhanCongDTV:  req.SoQDPhanCongDTV,
		NgayPhanCong:     req.NgayPhanCong,
		KetQuaGiaiQuyet:  req.KetQuaGiaiQuyet,
		DiaChiBiHai:      req.DiaChiBiHai,
		ThongTinDoiTuong: req.ThongTinDoiTuong,
		CongAnPhuTrach:   req.CongAnPhuTrach,
		DonVi:            donVi,
		KiemSatVien:      req.KiemSatVien,
		GiaHan:           req.GiaHan,
		NgayHetHan:       req.NgayHetHan,
		TinhTrangHoSo:    req.TinhTrangHoSo,
		GhiChu:           req.GhiChu,
		TrangThai:        trangThai,
	}
	if err := s.repo.Create(ctx, tb); err != nil {
		return nil, err
	}
	return tb, nil
}

// Update sửa tin báo. STT và liên kết vụ án không sửa qua đường này.
func (s *TinBaoService) Update(ctx context.Context, id string, req *UpdateTinBaoRequest) (*entity.TinBao, error) {
	tb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DieuLuat != nil && len([]rune(*req.DieuLuat)) < 5 {
		return nil, Invalid("điều luật tối thiểu 5 ký tự")
	}
	if req.NoiXayRa != nil && len([]rune(*req.NoiXayRa)) < 5 {
		return nil, Invalid("nơi xảy ra tối thiểu 5 ký tự")
	}
	if req.NoiDungNguonTin != nil && len([]rune(*req.NoiDungNguonTin)) < 20 {
		return nil, Invalid("nội dung tối thiểu 20 ký tự")
	}

	if req.DieuLuat != nil {
		tb.DieuLuat = *req.DieuLuat
	}
	if req.TenNguonTin != nil {
		tb.TenNguonTin = *req.TenNguonTin
	}
	if req.NgayXayRa != nil {
		tb.NgayXayRa = *req.NgayXayRa
	}
	if req.NoiXayRa != nil {
		tb.NoiXayRa = *req.NoiXayRa
	}
	if req.NoiDungNguonTin != nil {
		tb.NoiDungNguonTin = *req.NoiDungNguonTin
	}
	if req.SoQDPhanCongPTT != nil {
		tb.SoQDPhanCongPTT = *req.SoQDPhanCongPTT
	}
	if req.SoQDPhanCongDTV != nil {
		tb.SoQDPhanCongDTV = *req.SoQDPhanCongDTV
	}
	if req.NgayPhanCong != nil {
		tb.NgayPhanCong = req.NgayPhanCong
	}
	if req.KetQuaGiaiQuyet != nil {
		tb.KetQuaGiaiQuyet = *req.KetQuaGiaiQuyet
	}
	if req.DiaChiBiHai != nil {
		tb.DiaChiBiHai = *req.DiaChiBiHai
	}
	if req.ThongTinDoiTuong != nil {
		tb.ThongTinDoiTuong = *req.ThongTinDoiTuong
	}
	if req.CongAnPhuTrach != nil {
		tb.CongAnPhuTrach = *req.CongAnPhuTrach
	}
	if req.DonVi != nil {
		tb.DonVi = *req.DonVi
	}
	if req.KiemSatVien != nil {
		tb.KiemSatVien = *req.KiemSatVien
	}
	if req.GiaHan != nil {
		tb.GiaHan = *req.GiaHan
	}
	if req.NgayHetHan != nil {
		tb.NgayHetHan = req.NgayHetHan
	}
	if req.TinhTrangHoSo != nil {
		tb.TinhTrangHoSo = *req.TinhTrangHoSo
	}
	if req.GhiChu != nil {
		tb.GhiChu = *req.GhiChu
	}
	if req.TrangThai != nil {
		tb.TrangThai = *req.TrangThai
	}

	if err := s.repo.Save(ctx, tb); err != nil {
		return nil, err
	}
	return tb, nil
}

func (s *TinBaoService) Delete(ctx context.Context, id string) error {
	tb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, tb)
}

// Convert chuyển tin báo thành vụ án: sao chép hồ sơ sang vụ án mới,
// đánh dấu tin báo đã chuyển và ghi lịch sử. Mỗi tin báo chỉ chuyển
// được đúng một lần.
func (s *TinBaoService) Convert(ctx context.Context, id string, req *ConvertTinBaoRequest, nguoiChuyen string) (*entity.TinBao, *entity.VuAn, error) {
	tb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if tb.VuAnID != nil {
		return nil, nil, Invalid("tin báo đã được chuyển thành vụ án trước đó")
	}
	if tb.TrangThai != entity.TinBaoTiepNhan && tb.TrangThai != entity.TinBaoDangDieuTra {
		return nil, nil, Invalid("không thể chuyển tin báo có trạng thái: %s", tb.TrangThai)
	}
	if tb.DieuLuat == "" || tb.NgayXayRa.IsZero() || tb.NoiXayRa == "" || tb.NoiDungNguonTin == "" {
		return nil, nil, Invalid("tin báo thiếu thông tin bắt buộc để chuyển đổi")
	}

	stt, err := s.seqRepo.Next(ctx, seqScopeVuAn, func(ctx context.Context) (int64, error) {
		return s.vuAnRepo.MaxSTT(ctx)
	})
	if err != nil {
		return nil, nil, err
	}

	toiDanh := req.ToiDanh
	if toiDanh == "" {
		toiDanh = tb.DieuLuat
	}
	lyDo := req.LyDo
	if lyDo == "" {
		lyDo = "Điều tra phát hiện là vụ án"
	}
	donVi := tb.DonVi
	if donVi == "" {
		donVi = entity.DonViMacDinh
	}
	if nguoiChuyen == "" {
		nguoiChuyen = "System"
	}

	now := s.now()
	va := &entity.VuAn{
		STT:                int(stt),
		TinBaoID:           &tb.ID,
		DieuLuat:           tb.DieuLuat,
		ToiDanh:            toiDanh,
		NgayXayRa:          tb.NgayXayRa,
		NoiXayRa:           tb.NoiXayRa,
		ThongTinVuAn:       tb.NoiDungNguonTin,
		SoQDPhanCongPTT:    tb.SoQDPhanCongPTT,
		SoQDPhanCongDTV:    tb.SoQDPhanCongDTV,
		NgayPhanCong:       tb.NgayPhanCong,
		DieuTraVien:        tb.CongAnPhuTrach,
		DonVi:              donVi,
		TrangThai:          entity.VuAnMoiTao,
		NgayChuyenTuTinBao: entity.DatePtr(now),
	}
	ls := &entity.LichSuChuyenDoi{
		NgayChuyen:  now,
		NguoiChuyen: nguoiChuyen,
		LyDo:        lyDo,
		GhiChu:      req.GhiChu,
	}

	if err := s.repo.Convert(ctx, tb, va, ls); err != nil {
		return nil, nil, err
	}
	return tb, va, nil
}

// PreviewVuAn trả về bộ trường sẽ được sao chép nếu chuyển đổi, không
// ghi gì vào CSDL.
func (s *TinBaoService) PreviewVuAn(ctx context.Context, id string) (*VuAnPreview, error) {
	tb, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VuAnPreview{
		DieuLuat:        tb.DieuLuat,
		ToiDanh:         tb.DieuLuat,
		NgayXayRa:       tb.NgayXayRa,
		NoiXayRa:        tb.NoiXayRa,
		ThongTinVuAn:    tb.NoiDungNguonTin,
		SoQDPhanCongPTT: tb.SoQDPhanCongPTT,
		SoQDPhanCongDTV: tb.SoQDPhanCongDTV,
		NgayPhanCong:    tb.NgayPhanCong,
		DieuTraVien:     tb.CongAnPhuTrach,
		DonVi:           tb.DonVi,
	}, nil
}

// ConversionHistory liệt kê các lần chuyển đổi của một tin báo.
func (s *TinBaoService) ConversionHistory(ctx context.Context, id string) ([]entity.LichSuChuyenDoi, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ConversionHistory(ctx, id)
}
