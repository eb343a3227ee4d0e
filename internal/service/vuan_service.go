package service

import (
	"context"
	"errors"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// CreateVuAnRequest - tạo vụ án độc lập (không qua chuyển đổi tin báo).
type CreateVuAnRequest struct {
	TinBaoID           *string      `json:"tin_bao_id"`
	DieuLuat           string       `json:"dieu_luat" binding:"required"`
	ToiDanh            string       `json:"toi_danh" binding:"required"`
	NgayXayRa          entity.Date  `json:"ngay_xay_ra" binding:"required"`
	NoiXayRa           string       `json:"noi_xay_ra" binding:"required"`
	ThongTinVuAn       string       `json:"thong_tin_vu_an" binding:"required"`
	SoQDPhanCongPTT    string       `json:"so_qd_phan_cong_ptt"`
	SoQDPhanCongDTV    string       `json:"so_qd_phan_cong_dtv"`
	NgayPhanCong       *entity.Date `json:"ngay_phan_cong"`
	SoKhoiToVuAn       string       `json:"so_khoi_to_vu_an"`
	NgayKhoiToVuAn     *entity.Date `json:"ngay_khoi_to_vu_an"`
	BienPhapNganChan   string       `json:"bien_phap_ngan_chan"`
	DangVien           string       `json:"dang_vien"`
	KetQuaGiaiQuyet    string       `json:"ket_qua_giai_quyet"`
	BiCanGiaiQuyet     string       `json:"bi_can_giai_quyet"`
	DieuTraVien        string       `json:"dieu_tra_vien" binding:"required"`
	CanBoQuanLyHoSo    string       `json:"can_bo_quan_ly_ho_so"`
	DonVi              string       `json:"don_vi"`
	KiemSatVien        string       `json:"kiem_sat_vien"`
	NgayHetHan         *entity.Date `json:"ngay_het_han"`
	TinhTrangHoSo      string       `json:"tinh_trang_ho_so"`
	GhiChu             string       `json:"ghi_chu"`
	TrangThai          string       `json:"trang_thai"`
	NgayChuyenTuTinBao *entity.Date `json:"ngay_chuyen_tu_tin_bao"`
}

// UpdateVuAnRequest sửa vụ án, trường nil giữ nguyên. STT, liên kết
// tin báo và các trường khởi tố có API riêng.
type UpdateVuAnRequest struct {
	DieuLuat         *string      `json:"dieu_luat"`
	ToiDanh          *string      `json:"toi_danh"`
	NgayXayRa        *entity.Date `json:"ngay_xay_ra"`
	NoiXayRa         *string      `json:"noi_xay_ra"`
	ThongTinVuAn     *string      `json:"thong_tin_vu_an"`
	SoQDPhanCongPTT  *string      `json:"so_qd_phan_cong_ptt"`
	SoQDPhanCongDTV  *string      `json:"so_qd_phan_cong_dtv"`
	NgayPhanCong     *entity.Date `json:"ngay_phan_cong"`
	BienPhapNganChan *string      `json:"bien_phap_ngan_chan"`
	DangVien         *string      `json:"dang_vien"`
	DieuTraVien      *string      `json:"dieu_tra_vien"`
	CanBoQuanLyHoSo  *string      `json:"can_bo_quan_ly_ho_so"`
	DonVi            *string      `json:"don_vi"`
	KiemSatVien      *string      `json:"kiem_sat_vien"`
	NgayHetHan       *entity.Date `json:"ngay_het_han"`
	TinhTrangHoSo    *string      `json:"tinh_trang_ho_so"`
	GhiChu           *string      `json:"ghi_chu"`
	TrangThai        *string      `json:"trang_thai"`
}

// FileCaseRequest - quyết định khởi tố vụ án.
type FileCaseRequest struct {
	SoKhoiToVuAn   string      `json:"so_khoi_to_vu_an" binding:"required"`
	NgayKhoiToVuAn entity.Date `json:"ngay_khoi_to_vu_an" binding:"required"`
}

// ResolutionRequest - cập nhật kết quả giải quyết.
type ResolutionRequest struct {
	KetQuaGiaiQuyet *string `json:"ket_qua_giai_quyet"`
	BiCanGiaiQuyet  *string `json:"bi_can_giai_quyet"`
	TrangThai       *string `json:"trang_thai"`
}

// VuAnDetail gộp vụ án với danh sách bị can, lệnh giam và tin báo gốc.
type VuAnDetail struct {
	*entity.VuAn
	BiCanList   []entity.BiCan   `json:"bi_can_list"`
	TamGiamList []entity.TamGiam `json:"tam_giam_list"`
	TinBao      *entity.TinBao   `json:"tin_bao,omitempty"`
}

// VuAnService nghiệp vụ vụ án: vòng đời hồ sơ, khởi tố và kết quả
// giải quyết.
type VuAnService struct {
	repo        *repository.VuAnRepository
	tinBaoRepo  *repository.TinBaoRepository
	biCanRepo   *repository.BiCanRepository
	tamGiamRepo *repository.TamGiamRepository
	seqRepo     *repository.SequenceRepository
	now         nowFunc
}

func NewVuAnService(repo *repository.VuAnRepository, tinBaoRepo *repository.TinBaoRepository, biCanRepo *repository.BiCanRepository, tamGiamRepo *repository.TamGiamRepository, seqRepo *repository.SequenceRepository) *VuAnService {
	return &VuAnService{
		repo:        repo,
		tinBaoRepo:  tinBaoRepo,
		biCanRepo:   biCanRepo,
		tamGiamRepo: tamGiamRepo,
		seqRepo:     seqRepo,
		now:         time.Now,
	}
}

func (s *VuAnService) List(ctx context.Context, page, pageSize int, search, trangThai, dieuTraVien string) ([]entity.VuAn, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, page, pageSize, search, trangThai, dieuTraVien)
}

// Get trả về hồ sơ đầy đủ của vụ án. Tin báo gốc đã xoá mềm thì phần
// tin báo để trống, không coi là lỗi.
func (s *VuAnService) Get(ctx context.Context, id string) (*VuAnDetail, error) {
	va, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	biCans, err := s.biCanRepo.ListByVuAn(ctx, id)
	if err != nil {
		return nil, err
	}
	tamGiams, err := s.tamGiamRepo.ListByVuAn(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &VuAnDetail{VuAn: va, BiCanList: biCans, TamGiamList: tamGiams}
	if va.TinBaoID != nil {
		tb, err := s.tinBaoRepo.FindByID(ctx, *va.TinBaoID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		detail.TinBao = tb
	}
	return detail, nil
}

// Create lập vụ án mới, STT do hệ thống cấp.
func (s *VuAnService) Create(ctx context.Context, req *CreateVuAnRequest) (*entity.VuAn, error) {
	if req.NgayXayRa.IsZero() {
		return nil, Invalid("ngày xảy ra bắt buộc nhập")
	}
	if req.TinBaoID != nil {
		if _, err := s.tinBaoRepo.FindByID(ctx, *req.TinBaoID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, Invalid("tin báo liên kết không tồn tại")
			}
			return nil, err
		}
	}

	stt, err := s.seqRepo.Next(ctx, seqScopeVuAn, func(ctx context.Context) (int64, error) {
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
		trangThai = entity.VuAnMoiTao
	}

	va := &entity.VuAn{
		STT:                int(stt),
		TinBaoID:           req.TinBaoID,
		DieuLuat:           req.DieuLuat,
		ToiDanh:            req.ToiDanh,
		NgayXayRa:          req.NgayXayRa,
		NoiXayRa:           req.NoiXayRa,
		ThongTinVuAn:       req.ThongTinVuAn,
		SoQDPhanCongPTT:    req.SoQDPhanCongPTT,
		SoQDPhanCongDTV:    req.SoQDPhanCongDTV,
		NgayPhanCong:       req.NgayPhanCong,
		SoKhoiToVuAn:       req.SoKhoiToVuAn,
		NgayKhoiToVuAn:     req.NgayKhoiToVuAn,
		BienPhapNganChan:   req.BienPhapNganChan,
		DangVien:           req.DangVien,
		KetQuaGiaiQuyet:    req.KetQuaGiaiQuyet,
		BiCanGiaiQuyet:     req.BiCanGiaiQuyet,
		DieuTraVien:        req.DieuTraVien,
		CanBoQuanLyHoSo:    req.CanBoQuanLyHoSo,
		DonVi:              donVi,
		KiemSatVien:        req.KiemSatVien,
		NgayHetHan:         req.NgayHetHan,
		TinhTrangHoSo:      req.TinhTrangHoSo,
		GhiChu:             req.GhiChu,
		TrangThai:          trangThai,
		NgayChuyenTuTinBao: req.NgayChuyenTuTinBao,
	}
	if err := s.repo.Create(ctx, va); err != nil {
		return nil, err
	}
	return va, nil
}

// Update sửa hồ sơ vụ án.
func (s *VuAnService) Update(ctx context.Context, id string, req *UpdateVuAnRequest) (*entity.VuAn, error) {
	va, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DieuLuat != nil {
		va.DieuLuat = *req.DieuLuat
	}
	if req.ToiDanh != nil {
		va.ToiDanh = *req.ToiDanh
	}
	if req.NgayXayRa != nil {
		va.NgayXayRa = *req.NgayXayRa
	}
	if req.NoiXayRa != nil {
		va.NoiXayRa = *req.NoiXayRa
	}
	if req.ThongTinVuAn != nil {
		va.ThongTinVuAn = *req.ThongTinVuAn
	}
	if req.SoQDPhanCongPTT != nil {
		va.SoQDPhanCongPTT = *req.SoQDPhanCongPTT
	}
	if req.SoQDPhanCongDTV != nil {
		va.SoQDPhanCongDTV = *req.SoQDPhanCongDTV
	}
	if req.NgayPhanCong != nil {
		va.NgayPhanCong = req.NgayPhanCong
	}
	if req.BienPhapNganChan != nil {
		va.BienPhapNganChan = *req.BienPhapNganChan
	}
	if req.DangVien != nil {
		va.DangVien = *req.DangVien
	}
	if req.DieuTraVien != nil {
		va.DieuTraVien = *req.DieuTraVien
	}
	if req.CanBoQuanLyHoSo != nil {
		va.CanBoQuanLyHoSo = *req.CanBoQuanLyHoSo
	}
	if req.DonVi != nil {
		va.DonVi = *req.DonVi
	}
	if req.KiemSatVien != nil {
		va.KiemSatVien = *req.KiemSatVien
	}
	if req.NgayHetHan != nil {
		va.NgayHetHan = req.NgayHetHan
	}
	if req.TinhTrangHoSo != nil {
		va.TinhTrangHoSo = *req.TinhTrangHoSo
	}
	if req.GhiChu != nil {
		va.GhiChu = *req.GhiChu
	}
	if req.TrangThai != nil {
		va.TrangThai = *req.TrangThai
	}
	if err := s.repo.Save(ctx, va); err != nil {
		return nil, err
	}
	return va, nil
}

func (s *VuAnService) Delete(ctx context.Context, id string) error {
	va, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, va)
}

// FileCase ghi quyết định khởi tố vụ án. Số khởi tố duy nhất toàn hệ
// thống, ngày khởi tố không được ở tương lai, mỗi vụ chỉ khởi tố một
// lần.
func (s *VuAnService) FileCase(ctx context.Context, id string, req *FileCaseRequest) (*entity.VuAn, error) {
	va, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if va.SoKhoiToVuAn != "" {
		return nil, Invalid("vụ án đã được khởi tố trước đó")
	}
	if req.NgayKhoiToVuAn.IsZero() {
		return nil, Invalid("ngày khởi tố vụ án bắt buộc nhập")
	}
	today := entity.NewDate(s.now())
	if req.NgayKhoiToVuAn.After(today.Time) {
		return nil, Invalid("ngày khởi tố không được sau hôm nay")
	}
	taken, err := s.repo.SoKhoiToVuAnExists(ctx, req.SoKhoiToVuAn, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid("số khởi tố vụ án đã tồn tại")
	}

	va.SoKhoiToVuAn = req.SoKhoiToVuAn
	va.NgayKhoiToVuAn = &req.NgayKhoiToVuAn
	va.TrangThai = entity.VuAnKhoiToVuAn
	if err := s.repo.Save(ctx, va); err != nil {
		return nil, err
	}
	return va, nil
}

// UpdateResolution cập nhật kết quả giải quyết vụ án.
func (s *VuAnService) UpdateResolution(ctx context.Context, id string, req *ResolutionRequest) (*entity.VuAn, error) {
	va, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.KetQuaGiaiQuyet != nil {
		va.KetQuaGiaiQuyet = *req.KetQuaGiaiQuyet
	}
	if req.BiCanGiaiQuyet != nil {
		va.BiCanGiaiQuyet = *req.BiCanGiaiQuyet
	}
	if req.TrangThai != nil {
		va.TrangThai = *req.TrangThai
	}
	if err := s.repo.Save(ctx, va); err != nil {
		return nil, err
	}
	return va, nil
}
