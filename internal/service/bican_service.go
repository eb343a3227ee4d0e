package service

import (
	"context"
	"errors"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// Tạm giam tự tạo mặc định 30 ngày kể từ ngày bắt giam.
const defaultDetentionDays = 30

// CreateBiCanRequest - thêm bị can vào vụ án.
type CreateBiCanRequest struct {
	HoTen            string `json:"ho_ten" binding:"required"`
	NamSinh          int    `json:"nam_sinh" binding:"required"`
	DiaChiThuongTru  string `json:"dia_chi_thuong_tru" binding:"required"`
	SoCMND           string `json:"so_cmnd"`
	NgheNghiep       string `json:"nghe_nghiep"`
	DangVien         bool   `json:"dang_vien"`
	BienPhapNganChan string `json:"bien_phap_ngan_chan" binding:"required"`
	LyDoTamGiam      string `json:"ly_do_tam_giam"`
}

// UpdateBiCanRequest sửa bị can, trường nil giữ nguyên.
type UpdateBiCanRequest struct {
	HoTen            *string `json:"ho_ten"`
	NamSinh          *int    `json:"nam_sinh"`
	DiaChiThuongTru  *string `json:"dia_chi_thuong_tru"`
	SoCMND           *string `json:"so_cmnd"`
	NgheNghiep       *string `json:"nghe_nghiep"`
	DangVien         *bool   `json:"dang_vien"`
	BienPhapNganChan *string `json:"bien_phap_ngan_chan"`
	TrangThai        *string `json:"trang_thai"`
}

// IndictBiCanRequest - quyết định khởi tố bị can.
type IndictBiCanRequest struct {
	SoKhoiToBiCan    string       `json:"so_khoi_to_bi_can" binding:"required"`
	NgayKhoiTo       entity.Date  `json:"ngay_khoi_to" binding:"required"`
	BienPhapNganChan string       `json:"bien_phap_ngan_chan"`
	NgayHetHanGiam   *entity.Date `json:"ngay_het_han_giam"`
	LyDoTamGiam      string       `json:"ly_do_tam_giam"`
}

// BiCanService nghiệp vụ bị can. Mỗi lần thêm/sửa/xoá đều cập nhật
// tổng số và chuỗi tóm tắt bị can trên vụ án; biện pháp "Tạm giam"
// kéo theo lệnh giam tự động.
type BiCanService struct {
	repo        *repository.BiCanRepository
	vuAnRepo    *repository.VuAnRepository
	tamGiamRepo *repository.TamGiamRepository
	now         nowFunc
}

func NewBiCanService(repo *repository.BiCanRepository, vuAnRepo *repository.VuAnRepository, tamGiamRepo *repository.TamGiamRepository) *BiCanService {
	return &BiCanService{repo: repo, vuAnRepo: vuAnRepo, tamGiamRepo: tamGiamRepo, now: time.Now}
}

// ListByVuAn liệt kê bị can của vụ án theo thứ tự thêm vào.
func (s *BiCanService) ListByVuAn(ctx context.Context, vuAnID string) ([]entity.BiCan, error) {
	if _, err := s.vuAnRepo.FindByID(ctx, vuAnID); err != nil {
		return nil, err
	}
	return s.repo.ListByVuAn(ctx, vuAnID)
}

// Get trả về bị can thuộc đúng vụ án nêu trong đường dẫn.
func (s *BiCanService) Get(ctx context.Context, vuAnID, biCanID string) (*entity.BiCan, error) {
	bc, err := s.repo.FindByID(ctx, biCanID)
	if err != nil {
		return nil, err
	}
	if bc.VuAnID != vuAnID {
		return nil, repository.ErrNotFound
	}
	return bc, nil
}

func (s *BiCanService) validateCreate(req *CreateBiCanRequest) error {
	if len([]rune(req.HoTen)) < 5 {
		return Invalid("họ tên bắt buộc nhập, tối thiểu 5 ký tự")
	}
	currentYear := s.now().Year()
	if req.NamSinh < 1900 || req.NamSinh > currentYear {
		return Invalid("năm sinh không hợp lệ (1900 - %d)", currentYear)
	}
	if req.DiaChiThuongTru == "" {
		return Invalid("địa chỉ thường trú bắt buộc nhập")
	}
	if req.BienPhapNganChan == "" {
		return Invalid("biện pháp ngăn chặn bắt buộc chọn")
	}
	return nil
}

// Create thêm bị can. Biện pháp "Tạm giam" tự sinh lệnh giam bắt đầu
// hôm nay, hạn 30 ngày, lý do mặc định "Khởi tố bị can".
func (s *BiCanService) Create(ctx context.Context, vuAnID string, req *CreateBiCanRequest) (*entity.BiCan, error) {
	if _, err := s.vuAnRepo.FindByID(ctx, vuAnID); err != nil {
		return nil, err
	}
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	bc := &entity.BiCan{
		VuAnID:           vuAnID,
		HoTen:            req.HoTen,
		NamSinh:          req.NamSinh,
		DiaChiThuongTru:  req.DiaChiThuongTru,
		SoCMND:           req.SoCMND,
		NgheNghiep:       req.NgheNghiep,
		DangVien:         req.DangVien,
		BienPhapNganChan: req.BienPhapNganChan,
		TrangThai:        entity.BiCanChuaKhoiTo,
	}

	var tg *entity.TamGiam
	if req.BienPhapNganChan == entity.BienPhapTamGiam {
		ngayBatGiam := entity.NewDate(s.now())
		lyDo := req.LyDoTamGiam
		if lyDo == "" {
			lyDo = "Khởi tố bị can"
		}
		tg = &entity.TamGiam{
			VuAnID:         vuAnID,
			NgayBatGiam:    ngayBatGiam,
			NgayHetHanGiam: entity.NewDate(ngayBatGiam.AddDate(0, 0, defaultDetentionDays)),
			LyDoTamGiam:    lyDo,
			TrangThaiGiam:  entity.TamGiamDangGiam,
		}
	}

	if err := s.repo.CreateWithDetention(ctx, bc, tg); err != nil {
		return nil, err
	}
	return bc, nil
}

// Update sửa bị can và dựng lại tóm tắt trên vụ án.
func (s *BiCanService) Update(ctx context.Context, vuAnID, biCanID string, req *UpdateBiCanRequest) (*entity.BiCan, error) {
	bc, err := s.Get(ctx, vuAnID, biCanID)
	if err != nil {
		return nil, err
	}
	if req.HoTen != nil {
		if len([]rune(*req.HoTen)) < 5 {
			return nil, Invalid("họ tên tối thiểu 5 ký tự")
		}
		bc.HoTen = *req.HoTen
	}
	if req.NamSinh != nil {
		currentYear := s.now().Year()
		if *req.NamSinh < 1900 || *req.NamSinh > currentYear {
			return nil, Invalid("năm sinh không hợp lệ (1900 - %d)", currentYear)
		}
		bc.NamSinh = *req.NamSinh
	}
	if req.DiaChiThuongTru != nil {
		bc.DiaChiThuongTru = *req.DiaChiThuongTru
	}
	if req.SoCMND != nil {
		bc.SoCMND = *req.SoCMND
	}
	if req.NgheNghiep != nil {
		bc.NgheNghiep = *req.NgheNghiep
	}
	if req.DangVien != nil {
		bc.DangVien = *req.DangVien
	}
	if req.BienPhapNganChan != nil {
		bc.BienPhapNganChan = *req.BienPhapNganChan
	}
	if req.TrangThai != nil {
		bc.TrangThai = *req.TrangThai
	}
	if err := s.repo.SaveSynced(ctx, bc); err != nil {
		return nil, err
	}
	return bc, nil
}

// Delete xoá mềm bị can, tổng số trên vụ án không xuống dưới 0.
func (s *BiCanService) Delete(ctx context.Context, vuAnID, biCanID string) error {
	bc, err := s.Get(ctx, vuAnID, biCanID)
	if err != nil {
		return err
	}
	return s.repo.SoftDeleteSynced(ctx, bc)
}

// Indict khởi tố bị can: điền số và ngày khởi tố, chuyển trạng thái,
// đồng bộ sang vụ án và xử lý lệnh tạm giam nếu biện pháp là "Tạm
// giam". Mỗi bị can chỉ khởi tố một lần.
func (s *BiCanService) Indict(ctx context.Context, biCanID string, req *IndictBiCanRequest) (*entity.BiCan, error) {
	bc, err := s.repo.FindByID(ctx, biCanID)
	if err != nil {
		return nil, err
	}
	if bc.SoKhoiToBiCan != "" {
		return nil, Invalid("bị can đã được khởi tố trước đó")
	}
	if req.NgayKhoiTo.IsZero() {
		return nil, Invalid("ngày khởi tố bắt buộc nhập")
	}
	today := entity.NewDate(s.now())
	if req.NgayKhoiTo.After(today.Time) {
		return nil, Invalid("ngày khởi tố không được sau hôm nay")
	}

	va, err := s.vuAnRepo.FindByID(ctx, bc.VuAnID)
	if err != nil {
		return nil, err
	}

	bc.SoKhoiToBiCan = req.SoKhoiToBiCan
	bc.NgayKhoiTo = &req.NgayKhoiTo
	bc.TrangThai = entity.BiCanDaKhoiTo
	if req.BienPhapNganChan != "" {
		bc.BienPhapNganChan = req.BienPhapNganChan
	}

	// Vụ án lưu số/ngày khởi tố của bị can đầu tiên được khởi tố;
	// các lần khởi tố sau không ghi đè.
	if va.SoKhoiToBiCan == "" {
		va.SoKhoiToBiCan = req.SoKhoiToBiCan
		va.NgayKhoiToBiCan = &req.NgayKhoiTo
	}
	if va.TrangThai == entity.VuAnKhoiToVuAn || va.TrangThai == entity.VuAnMoiTao {
		va.TrangThai = entity.VuAnKhoiToBiCan
	}

	var newTG, updTG *entity.TamGiam
	if req.BienPhapNganChan == entity.BienPhapTamGiam {
		existing, err := s.tamGiamRepo.FindActiveByBiCan(ctx, biCanID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			hetHan := req.NgayHetHanGiam
			if hetHan == nil {
				hetHan = entity.DatePtr(req.NgayKhoiTo.AddDate(0, 0, defaultDetentionDays))
			}
			lyDo := req.LyDoTamGiam
			if lyDo == "" {
				lyDo = "Khởi tố bị can"
			}
			newTG = &entity.TamGiam{
				VuAnID:         bc.VuAnID,
				BiCanID:        biCanID,
				NgayBatGiam:    req.NgayKhoiTo,
				NgayHetHanGiam: *hetHan,
				LyDoTamGiam:    lyDo,
				TrangThaiGiam:  entity.TamGiamDangGiam,
			}
		case err != nil:
			return nil, err
		default:
			if req.NgayHetHanGiam != nil {
				existing.NgayHetHanGiam = *req.NgayHetHanGiam
			}
			existing.TrangThaiGiam = entity.TamGiamDangGiam
			updTG = existing
		}
	}

	if err := s.repo.SaveIndictment(ctx, bc, va, newTG, updTG); err != nil {
		return nil, err
	}
	return bc, nil
}
