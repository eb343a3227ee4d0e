package service

import (
	"context"
	"errors"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// CreateTamGiamRequest - mở lệnh tạm giam thủ công.
type CreateTamGiamRequest struct {
	VuAnID         string      `json:"vu_an_id" binding:"required"`
	BiCanID        string      `json:"bi_can_id" binding:"required"`
	NgayBatGiam    entity.Date `json:"ngay_bat_giam" binding:"required"`
	NgayHetHanGiam entity.Date `json:"ngay_het_han_giam" binding:"required"`
	LyDoTamGiam    string      `json:"ly_do_tam_giam" binding:"required"`
	TrangThaiGiam  string      `json:"trang_thai_giam"`
	GhiChu         string      `json:"ghi_chu"`
}

// UpdateTamGiamRequest sửa lệnh giam, trường nil giữ nguyên.
type UpdateTamGiamRequest struct {
	NgayBatGiam    *entity.Date `json:"ngay_bat_giam"`
	NgayHetHanGiam *entity.Date `json:"ngay_het_han_giam"`
	LyDoTamGiam    *string      `json:"ly_do_tam_giam"`
	TrangThaiGiam  *string      `json:"trang_thai_giam"`
	GhiChu         *string      `json:"ghi_chu"`
}

// TamGiamDetail gắn kèm họ tên bị can và STT vụ án cho danh sách.
type TamGiamDetail struct {
	entity.TamGiam
	HoTenBiCan string `json:"ho_ten_bi_can,omitempty"`
	VuAnSTT    int    `json:"vu_an_stt,omitempty"`
}

// TamGiamService nghiệp vụ lệnh tạm giam.
type TamGiamService struct {
	repo      *repository.TamGiamRepository
	vuAnRepo  *repository.VuAnRepository
	biCanRepo *repository.BiCanRepository
	now       nowFunc
}

func NewTamGiamService(repo *repository.TamGiamRepository, vuAnRepo *repository.VuAnRepository, biCanRepo *repository.BiCanRepository) *TamGiamService {
	return &TamGiamService{repo: repo, vuAnRepo: vuAnRepo, biCanRepo: biCanRepo, now: time.Now}
}

// List phân trang, gắn kèm thông tin bị can và vụ án. Bản ghi liên
// quan đã xoá thì phần gắn kèm để trống.
func (s *TamGiamService) List(ctx context.Context, page, pageSize int, trangThaiGiam, vuAnID string) ([]TamGiamDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	tgs, total, err := s.repo.List(ctx, page, pageSize, trangThaiGiam, vuAnID)
	if err != nil {
		return nil, 0, err
	}
	details := make([]TamGiamDetail, 0, len(tgs))
	for _, tg := range tgs {
		details = append(details, s.enrich(ctx, tg))
	}
	return details, total, nil
}

func (s *TamGiamService) enrich(ctx context.Context, tg entity.TamGiam) TamGiamDetail {
	detail := TamGiamDetail{TamGiam: tg}
	if bc, err := s.biCanRepo.FindByID(ctx, tg.BiCanID); err == nil {
		detail.HoTenBiCan = bc.HoTen
	}
	if va, err := s.vuAnRepo.FindByID(ctx, tg.VuAnID); err == nil {
		detail.VuAnSTT = va.STT
	}
	return detail
}

func (s *TamGiamService) Get(ctx context.Context, id string) (*TamGiamDetail, error) {
	tg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := s.enrich(ctx, *tg)
	return &detail, nil
}

// Create mở lệnh giam thủ công. Ngày hết hạn phải sau ngày bắt giam.
func (s *TamGiamService) Create(ctx context.Context, req *CreateTamGiamRequest) (*entity.TamGiam, error) {
	if !req.NgayHetHanGiam.After(req.NgayBatGiam.Time) {
		return nil, Invalid("ngày hết hạn giam phải sau ngày bắt giam")
	}
	va, err := s.vuAnRepo.FindByID(ctx, req.VuAnID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Invalid("vụ án không tồn tại")
		}
		return nil, err
	}
	bc, err := s.biCanRepo.FindByID(ctx, req.BiCanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Invalid("bị can không tồn tại")
		}
		return nil, err
	}
	if bc.VuAnID != va.ID {
		return nil, Invalid("bị can không thuộc vụ án đã chọn")
	}

	trangThai := req.TrangThaiGiam
	if trangThai == "" {
		trangThai = entity.TamGiamDangGiam
	}
	tg := &entity.TamGiam{
		VuAnID:         req.VuAnID,
		BiCanID:        req.BiCanID,
		NgayBatGiam:    req.NgayBatGiam,
		NgayHetHanGiam: req.NgayHetHanGiam,
		LyDoTamGiam:    req.LyDoTamGiam,
		TrangThaiGiam:  trangThai,
		GhiChu:         req.GhiChu,
	}
	if err := s.repo.Create(ctx, tg); err != nil {
		return nil, err
	}
	return tg, nil
}

func (s *TamGiamService) Update(ctx context.Context, id string, req *UpdateTamGiamRequest) (*entity.TamGiam, error) {
	tg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.NgayBatGiam != nil {
		tg.NgayBatGiam = *req.NgayBatGiam
	}
	if req.NgayHetHanGiam != nil {
		tg.NgayHetHanGiam = *req.NgayHetHanGiam
	}
	if !tg.NgayHetHanGiam.After(tg.NgayBatGiam.Time) {
		return nil, Invalid("ngày hết hạn giam phải sau ngày bắt giam")
	}
	if req.LyDoTamGiam != nil {
		tg.LyDoTamGiam = *req.LyDoTamGiam
	}
	if req.TrangThaiGiam != nil {
		tg.TrangThaiGiam = *req.TrangThaiGiam
	}
	if req.GhiChu != nil {
		tg.GhiChu = *req.GhiChu
	}
	if err := s.repo.Save(ctx, tg); err != nil {
		return nil, err
	}
	return tg, nil
}

func (s *TamGiamService) Delete(ctx context.Context, id string) error {
	tg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, tg)
}

// Expiring liệt kê lệnh đang giam hết hạn trong days ngày tới, gồm cả
// lệnh đã quá hạn.
func (s *TamGiamService) Expiring(ctx context.Context, days int) ([]TamGiamDetail, error) {
	if days <= 0 {
		days = 7
	}
	until := entity.NewDate(s.now().AddDate(0, 0, days))
	tgs, err := s.repo.ListExpiring(ctx, until)
	if err != nil {
		return nil, err
	}
	details := make([]TamGiamDetail, 0, len(tgs))
	for _, tg := range tgs {
		details = append(details, s.enrich(ctx, tg))
	}
	return details, nil
}
