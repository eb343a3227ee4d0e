package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
)

// NotificationItem là một cảnh báo đến hạn trên bảng điều khiển.
type NotificationItem struct {
	AssetType           entity.AssetType  `json:"asset_type"`
	MaTaiSan            string            `json:"ma_tai_san"`
	TenTaiSan           string            `json:"ten_tai_san"`
	TargetDate          entity.Date       `json:"target_date"`
	TargetLabel         string            `json:"target_label"`
	NgayKiemTraTiepTheo entity.Date       `json:"ngay_kiem_tra_tiep_theo"`
	Status              schedule.Status   `json:"status"`
	Priority            schedule.Priority `json:"priority"`
	DaysUntil           int               `json:"days_until"`
	AssetID             string            `json:"asset_id"`
}

// NotificationCounts đếm cảnh báo theo mức ưu tiên.
type NotificationCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

const notifyCountsCacheKey = "phuocthai:notify:counts"
const notifyCountsCacheTTL = 60 * time.Second

// vehicleDateLabels: ba mốc nhắc riêng của phương tiện, chỉ nhắc chứ
// không tự cộng chu kỳ.
var vehicleDateLabels = []struct {
	value func(pt *entity.PhuongTien) *entity.Date
	label string
}{
	{func(pt *entity.PhuongTien) *entity.Date { return pt.NgayDangKiem }, "Ngày đăng kiểm"},
	{func(pt *entity.PhuongTien) *entity.Date { return pt.NgayThayNhot }, "Ngày thay nhớt"},
	{func(pt *entity.PhuongTien) *entity.Date { return pt.NgayThayVo }, "Ngày thay vỏ"},
}

// notifyScanOrder cố định thứ tự quét để kết quả ổn định giữa các lần
// gọi (sắp xếp ưu tiên là stable sort).
var notifyScanOrder = []entity.AssetType{
	entity.AssetWeapons, entity.AssetVehicles, entity.AssetWater,
	entity.AssetTechnical, entity.AssetOffice,
}

// NotificationService quét lịch kiểm tra cả 5 nhóm tài sản và tổng
// hợp cảnh báo. Lỗi ở một nhóm chỉ làm thiếu cảnh báo của nhóm đó,
// không làm đổ cả danh sách.
type NotificationService struct {
	assetRepo *repository.AssetRepository
	rdb       *redis.Client
	logger    *zap.Logger
	now       nowFunc
}

func NewNotificationService(assetRepo *repository.AssetRepository, rdb *redis.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{assetRepo: assetRepo, rdb: rdb, logger: logger, now: time.Now}
}

// List trả về cảnh báo sắp xếp theo mức ưu tiên rồi theo số ngày còn
// lại. priority lọc theo một mức, limit > 0 cắt bớt danh sách.
func (s *NotificationService) List(ctx context.Context, priority schedule.Priority, limit int) []NotificationItem {
	today := s.now()
	items := make([]NotificationItem, 0, 64)

	for _, t := range notifyScanOrder {
		assets, err := s.assetRepo.ListActive(ctx, t)
		if err != nil {
			s.logger.Warn("quét cảnh báo bỏ qua một nhóm tài sản",
				zap.String("asset_type", string(t)), zap.Error(err))
			continue
		}
		for _, asset := range assets {
			if insp := asset.Inspection(); insp.NgayKiemTraTiepTheo != nil {
				items = s.appendItem(items, t, asset, *insp.NgayKiemTraTiepTheo, "Ngày kiểm tra tiếp theo", today, priority)
			}
			if pt, ok := asset.(*entity.PhuongTien); ok {
				for _, extra := range vehicleDateLabels {
					if d := extra.value(pt); d != nil {
						items = s.appendItem(items, t, asset, *d, extra.label, today, priority)
					}
				}
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := schedule.Rank(items[i].Priority), schedule.Rank(items[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return items[i].DaysUntil < items[j].DaysUntil
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *NotificationService) appendItem(items []NotificationItem, t entity.AssetType, asset entity.AssetRecord, due entity.Date, label string, today time.Time, filter schedule.Priority) []NotificationItem {
	status := schedule.Classify(due.Time, today)
	prio := schedule.PriorityOf(status)
	if filter != "" && prio != filter {
		return items
	}
	return append(items, NotificationItem{
		AssetType:           t,
		MaTaiSan:            asset.MaTaiSan(),
		TenTaiSan:           asset.TenHienThi(),
		TargetDate:          due,
		TargetLabel:         label,
		NgayKiemTraTiepTheo: due,
		Status:              status,
		Priority:            prio,
		DaysUntil:           schedule.DaysUntil(due.Time, today),
		AssetID:             asset.Base().ID,
	})
}

// Counts đếm cảnh báo theo mức ưu tiên, cache Redis 60 giây vì mỗi
// lần đếm phải quét đủ 5 bảng. Redis hỏng thì đếm trực tiếp.
func (s *NotificationService) Counts(ctx context.Context) NotificationCounts {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, notifyCountsCacheKey).Bytes(); err == nil {
			var counts NotificationCounts
			if json.Unmarshal(cached, &counts) == nil {
				return counts
			}
		}
	}

	var counts NotificationCounts
	for _, item := range s.List(ctx, "", 0) {
		switch item.Priority {
		case schedule.PriorityHigh:
			counts.High++
		case schedule.PriorityMedium:
			counts.Medium++
		case schedule.PriorityLow:
			counts.Low++
		}
		counts.Total++
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(counts); err == nil {
			if err := s.rdb.Set(ctx, notifyCountsCacheKey, raw, notifyCountsCacheTTL).Err(); err != nil {
				s.logger.Debug("không cache được số cảnh báo", zap.Error(err))
			}
		}
	}
	return counts
}
