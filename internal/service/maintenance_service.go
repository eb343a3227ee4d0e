package service

import (
	"context"
	"errors"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
)

// CreateMaintenanceRequest - dữ liệu ghi một dòng sổ kiểm tra/bảo trì.
type CreateMaintenanceRequest struct {
	MaTaiSan        string      `json:"ma_tai_san" binding:"required"`
	LoaiHinh        string      `json:"loai_hinh" binding:"required"`
	NgayThucHien    entity.Date `json:"ngay_thuc_hien" binding:"required"`
	NguoiThucHien   string      `json:"nguoi_thuc_hien"`
	ChiTietCongViec string      `json:"chi_tiet_cong_viec"`
	ChiPhi          *float64    `json:"chi_phi"`
	KetQua          string      `json:"ket_qua"`
	GhiChu          string      `json:"ghi_chu"`
}

// UpdateMaintenanceRequest sửa một dòng sổ, trường nil giữ nguyên.
type UpdateMaintenanceRequest struct {
	LoaiHinh        *string      `json:"loai_hinh"`
	NgayThucHien    *entity.Date `json:"ngay_thuc_hien"`
	NguoiThucHien   *string      `json:"nguoi_thuc_hien"`
	ChiTietCongViec *string      `json:"chi_tiet_cong_viec"`
	ChiPhi          *float64     `json:"chi_phi"`
	KetQua          *string      `json:"ket_qua"`
	GhiChu          *string      `json:"ghi_chu"`
}

// MaintenanceService quản lý sổ kiểm tra - bảo trì. Chỉ thao tác ghi
// mới đẩy ngày kiểm tra gần nhất sang hồ sơ tài sản; sửa và xoá dòng
// sổ không tính lại lịch.
type MaintenanceService struct {
	repo      *repository.MaintenanceRepository
	assetRepo *repository.AssetRepository
}

func NewMaintenanceService(repo *repository.MaintenanceRepository, assetRepo *repository.AssetRepository) *MaintenanceService {
	return &MaintenanceService{repo: repo, assetRepo: assetRepo}
}

// History trả về lịch sử một mã tài sản, mới nhất trước.
func (s *MaintenanceService) History(ctx context.Context, maTaiSan string) ([]entity.LichSuKiemTraBaoTri, error) {
	if maTaiSan == "" {
		return nil, Invalid("thiếu ma_tai_san")
	}
	return s.repo.ListByAsset(ctx, maTaiSan)
}

// Create ghi dòng sổ mới rồi cập nhật lịch kiểm tra của tài sản mang
// mã đó. Không tìm thấy tài sản thì dòng sổ vẫn được giữ (sổ ghi cả
// tài sản đã thanh lý).
func (s *MaintenanceService) Create(ctx context.Context, req *CreateMaintenanceRequest) (*entity.LichSuKiemTraBaoTri, error) {
	if req.NgayThucHien.IsZero() {
		return nil, Invalid("thiếu ngay_thuc_hien")
	}
	rec := &entity.LichSuKiemTraBaoTri{
		MaTaiSan:        req.MaTaiSan,
		LoaiHinh:        req.LoaiHinh,
		NgayThucHien:    req.NgayThucHien,
		NguoiThucHien:   req.NguoiThucHien,
		ChiTietCongViec: req.ChiTietCongViec,
		ChiPhi:          req.ChiPhi,
		KetQua:          req.KetQua,
		GhiChu:          req.GhiChu,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.touchAssetInspection(ctx, req.MaTaiSan, req.NgayThucHien); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update sửa dòng sổ. Cố ý không đụng đến lịch kiểm tra của tài sản:
// sửa sổ là đính chính giấy tờ, không phải một lần kiểm tra mới.
func (s *MaintenanceService) Update(ctx context.Context, id string, req *UpdateMaintenanceRequest) (*entity.LichSuKiemTraBaoTri, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.LoaiHinh != nil {
		rec.LoaiHinh = *req.LoaiHinh
	}
	if req.NgayThucHien != nil {
		rec.NgayThucHien = *req.NgayThucHien
	}
	if req.NguoiThucHien != nil {
		rec.NguoiThucHien = *req.NguoiThucHien
	}
	if req.ChiTietCongViec != nil {
		rec.ChiTietCongViec = *req.ChiTietCongViec
	}
	if req.ChiPhi != nil {
		rec.ChiPhi = req.ChiPhi
	}
	if req.KetQua != nil {
		rec.KetQua = *req.KetQua
	}
	if req.GhiChu != nil {
		rec.GhiChu = *req.GhiChu
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete xoá cứng dòng sổ, cũng không tính lại lịch kiểm tra.
func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// touchAssetInspection tìm tài sản mang mã theo thứ tự cố định của 5
// nhóm, cập nhật ngày kiểm tra gần nhất và tính lại ngày tiếp theo.
// Chỉ bản ghi khớp đầu tiên được cập nhật.
func (s *MaintenanceService) touchAssetInspection(ctx context.Context, maTaiSan string, ngayThucHien entity.Date) error {
	for _, t := range entity.AssetTypeOrder {
		rec, err := s.assetRepo.FindByCode(ctx, t, maTaiSan)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		v := entity.VariantOf(t)
		insp := rec.Inspection()
		insp.NgayKiemTraGanNhat = &ngayThucHien

		period := insp.DinhKyKiemTra
		if period == "" {
			period = v.FixedPeriod
		}
		if next, ok := schedule.NextDue(ngayThucHien.Time, period); ok {
			insp.NgayKiemTraTiepTheo = entity.DatePtr(next)
		}
		return s.assetRepo.Save(ctx, rec)
	}
	return nil
}
