package service

import (
	"context"
	"sort"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
)

// DashboardStats - số liệu tổng hợp trên bảng điều khiển.
type DashboardStats struct {
	TotalAssets  int64                      `json:"total_assets"`
	ByType       map[entity.AssetType]int64 `json:"by_type"`
	TotalValue   ValueSummary               `json:"total_value"`
	TinBao       map[string]int64           `json:"tin_bao_by_status"`
	VuAn         map[string]int64           `json:"vu_an_by_status"`
	DangTamGiam  int64                      `json:"dang_tam_giam"`
	ChiPhiBaoTri float64                    `json:"chi_phi_bao_tri"`
}

// ValueSummary gom nguyên giá và giá trị còn lại.
type ValueSummary struct {
	NguyenGia    float64 `json:"nguyen_gia"`
	GiaTriConLai float64 `json:"gia_tri_con_lai"`
}

// ReportAsset là một dòng tài sản trong báo cáo, kèm loại và trạng thái
// so với hạn kiểm tra.
type ReportAsset struct {
	AssetType           entity.AssetType `json:"asset_type"`
	TenNhom             string           `json:"ten_nhom"`
	MaTaiSan            string           `json:"ma_tai_san"`
	TenTaiSan           string           `json:"ten_tai_san"`
	SoLuong             int              `json:"so_luong"`
	NguyenGia           *float64         `json:"nguyen_gia"`
	GiaTriConLai        *float64         `json:"gia_tri_con_lai"`
	NgayKiemTraTiepTheo *entity.Date     `json:"ngay_kiem_tra_tiep_theo"`
	Status              schedule.Status  `json:"status"`
	DaysUntil           *int             `json:"days_until"`
}

// InspectionDueReport liệt kê tài sản đến hạn kiểm tra trong N ngày tới.
type InspectionDueReport struct {
	Days int           `json:"days"`
	Data []ReportAsset `json:"data"`
}

// ExpiringReport liệt kê toàn bộ tài sản, xếp theo hạn kiểm tra gần
// nhất để người xem nhìn tổng thể rồi lọc tiếp trên giao diện.
type ExpiringReport struct {
	Days         int                      `json:"days"`
	TotalAssets  int                      `json:"total_assets"`
	ByTypeTotals map[entity.AssetType]int `json:"by_type_totals"`
	Data         []ReportAsset            `json:"data"`
}

// ReportSummary là phần đầu của sổ báo cáo: tổng số, tổng giá trị và
// phân bố trạng thái theo từng nhóm.
type ReportSummary struct {
	GeneratedAt  time.Time                         `json:"generated_at"`
	TotalAssets  int                               `json:"total_assets"`
	CountsByType map[entity.AssetType]int          `json:"counts_by_type"`
	ValueByType  map[entity.AssetType]ValueSummary `json:"value_by_type"`
	StatusCounts map[schedule.Status]int           `json:"status_counts"`
	TotalValue   ValueSummary                      `json:"total_value"`
}

// ReportService dựng số liệu bảng điều khiển và các báo cáo tổng hợp.
type ReportService struct {
	assetRepo   *repository.AssetRepository
	maintRepo   *repository.MaintenanceRepository
	tinBaoRepo  *repository.TinBaoRepository
	vuAnRepo    *repository.VuAnRepository
	tamGiamRepo *repository.TamGiamRepository
	notifySvc   *NotificationService
	now         nowFunc
}

func NewReportService(
	assetRepo *repository.AssetRepository,
	maintRepo *repository.MaintenanceRepository,
	tinBaoRepo *repository.TinBaoRepository,
	vuAnRepo *repository.VuAnRepository,
	tamGiamRepo *repository.TamGiamRepository,
	notifySvc *NotificationService,
) *ReportService {
	return &ReportService{
		assetRepo:   assetRepo,
		maintRepo:   maintRepo,
		tinBaoRepo:  tinBaoRepo,
		vuAnRepo:    vuAnRepo,
		tamGiamRepo: tamGiamRepo,
		notifySvc:   notifySvc,
		now:         time.Now,
	}
}

// Stats dựng số liệu bảng điều khiển. Đếm và cộng dồn bằng truy vấn
// tổng hợp chứ không kéo từng dòng về.
func (s *ReportService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		ByType: make(map[entity.AssetType]int64, len(entity.AssetTypeOrder)),
	}
	for _, t := range entity.AssetTypeOrder {
		count, err := s.assetRepo.CountActive(ctx, t)
		if err != nil {
			return nil, err
		}
		stats.ByType[t] = count
		stats.TotalAssets += count

		ng, remain, err := s.assetRepo.SumValues(ctx, t)
		if err != nil {
			return nil, err
		}
		stats.TotalValue.NguyenGia += ng
		stats.TotalValue.GiaTriConLai += remain
	}

	var err error
	if stats.TinBao, err = s.tinBaoRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.VuAn, err = s.vuAnRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.DangTamGiam, err = s.tamGiamRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.ChiPhiBaoTri, err = s.maintRepo.SumCost(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// TopAlerts trả về các cảnh báo ưu tiên cao nhất cho bảng điều khiển.
func (s *ReportService) TopAlerts(ctx context.Context, limit int) []NotificationItem {
	if limit <= 0 {
		limit = 5
	}
	return s.notifySvc.List(ctx, "", limit)
}

// InspectionDue liệt kê tài sản có hạn kiểm tra rơi vào [hôm nay, hôm
// nay + days], xếp theo ngày đến hạn tăng dần.
func (s *ReportService) InspectionDue(ctx context.Context, days int) (*InspectionDueReport, error) {
	if days <= 0 {
		days = 30
	}
	today := s.now()
	rows, err := s.collectAssets(ctx, today)
	if err != nil {
		return nil, err
	}

	data := make([]ReportAsset, 0, len(rows))
	for _, row := range rows {
		if row.DaysUntil == nil {
			continue
		}
		if *row.DaysUntil < 0 || *row.DaysUntil > days {
			continue
		}
		data = append(data, row)
	}
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].NgayKiemTraTiepTheo.Time.Before(data[j].NgayKiemTraTiepTheo.Time)
	})
	return &InspectionDueReport{Days: days, Data: data}, nil
}

// Expiring trả về toàn bộ tài sản, hạn gần nhất đứng trước; tài sản
// chưa có hạn xếp cuối.
func (s *ReportService) Expiring(ctx context.Context, days int) (*ExpiringReport, error) {
	if days <= 0 {
		days = 30
	}
	today := s.now()
	rows, err := s.collectAssets(ctx, today)
	if err != nil {
		return nil, err
	}

	totals := make(map[entity.AssetType]int, len(entity.AssetTypeOrder))
	for _, row := range rows {
		totals[row.AssetType]++
	}
	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].NgayKiemTraTiepTheo, rows[j].NgayKiemTraTiepTheo
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Time.Before(dj.Time)
		}
	})
	return &ExpiringReport{
		Days:         days,
		TotalAssets:  len(rows),
		ByTypeTotals: totals,
		Data:         rows,
	}, nil
}

// Summary dựng phần tổng hợp của sổ báo cáo Excel.
func (s *ReportService) Summary(ctx context.Context) (*ReportSummary, error) {
	today := s.now()
	rows, err := s.collectAssets(ctx, today)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		GeneratedAt:  today,
		CountsByType: make(map[entity.AssetType]int, len(entity.AssetTypeOrder)),
		ValueByType:  make(map[entity.AssetType]ValueSummary, len(entity.AssetTypeOrder)),
		StatusCounts: make(map[schedule.Status]int, 3),
	}
	for _, t := range entity.AssetTypeOrder {
		summary.CountsByType[t] = 0
		summary.ValueByType[t] = ValueSummary{}
	}
	for _, row := range rows {
		summary.TotalAssets++
		summary.CountsByType[row.AssetType]++

		v := summary.ValueByType[row.AssetType]
		if row.NguyenGia != nil {
			v.NguyenGia += *row.NguyenGia
			summary.TotalValue.NguyenGia += *row.NguyenGia
		}
		if row.GiaTriConLai != nil {
			v.GiaTriConLai += *row.GiaTriConLai
			summary.TotalValue.GiaTriConLai += *row.GiaTriConLai
		}
		summary.ValueByType[row.AssetType] = v

		if row.NgayKiemTraTiepTheo != nil {
			summary.StatusCounts[row.Status]++
		}
	}
	return summary, nil
}

// collectAssets kéo tài sản chưa xoá của cả 5 nhóm về dạng dòng báo
// cáo, đã gắn trạng thái so với hạn kiểm tra.
func (s *ReportService) collectAssets(ctx context.Context, today time.Time) ([]ReportAsset, error) {
	rows := make([]ReportAsset, 0, 128)
	for _, t := range entity.AssetTypeOrder {
		v := entity.VariantOf(t)
		assets, err := s.assetRepo.ListActive(ctx, t)
		if err != nil {
			return nil, err
		}
		for _, asset := range assets {
			ng, remain := asset.GiaTri()
			row := ReportAsset{
				AssetType:    t,
				TenNhom:      v.TenNhom,
				MaTaiSan:     asset.MaTaiSan(),
				TenTaiSan:    asset.TenHienThi(),
				SoLuong:      asset.SoLuongTaiSan(),
				NguyenGia:    ng,
				GiaTriConLai: remain,
			}
			if due := asset.Inspection().NgayKiemTraTiepTheo; due != nil {
				row.NgayKiemTraTiepTheo = due
				row.Status = schedule.Classify(due.Time, today)
				days := schedule.DaysUntil(due.Time, today)
				row.DaysUntil = &days
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// DetentionExpiring liệt kê lệnh tạm giam hết hạn trong N ngày tới.
func (s *ReportService) DetentionExpiring(ctx context.Context, days int) ([]entity.TamGiam, error) {
	if days <= 0 {
		days = 7
	}
	until := entity.Date{Time: s.now().AddDate(0, 0, days)}
	return s.tamGiamRepo.ListExpiring(ctx, until)
}
