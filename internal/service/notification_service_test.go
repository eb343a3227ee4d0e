package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func seedNotifyAssets(t *testing.T, repos *repository.Repositories) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	overdue := entity.NewDate(now.AddDate(0, 0, -5))
	dueSoon := entity.NewDate(now.AddDate(0, 0, 10))
	normal := entity.NewDate(now.AddDate(0, 0, 60))

	if err := repos.Asset.Create(ctx, &entity.VuKhiCongCuHoTro{
		MaTaiSanField:    "VK2501001",
		MaDanhMuc:        "VK-01",
		TenTaiSan:        "Súng ngắn K59",
		DonViTinh:        "Khẩu",
		SoLuong:          1,
		InspectionFields: entity.InspectionFields{NgayKiemTraTiepTheo: &overdue},
	}); err != nil {
		t.Fatalf("seed weapon: %v", err)
	}
	if err := repos.Asset.Create(ctx, &entity.ThietBiVanPhong{
		MaTaiSanField:    "VP2501001",
		TenTaiSan:        "Máy in Canon",
		SoLuong:          1,
		InspectionFields: entity.InspectionFields{NgayKiemTraTiepTheo: &dueSoon},
	}); err != nil {
		t.Fatalf("seed office: %v", err)
	}
	if err := repos.Asset.Create(ctx, &entity.ThietBiKyThuat{
		MaTaiSanField:    "TB2501001",
		TenTaiSan:        "Máy đo tốc độ",
		SoLuong:          1,
		InspectionFields: entity.InspectionFields{NgayKiemTraTiepTheo: &normal},
	}); err != nil {
		t.Fatalf("seed technical: %v", err)
	}
}

func TestNotificationListOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	seedNotifyAssets(t, repos)

	svc := NewNotificationService(repos.Asset, nil, zap.NewNop())
	items := svc.List(context.Background(), "", 0)

	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	// Quá hạn đứng trước sắp đến hạn, sắp đến hạn đứng trước bình thường.
	if items[0].Priority != schedule.PriorityHigh || items[0].MaTaiSan != "VK2501001" {
		t.Errorf("items[0] = %+v, want overdue weapon first", items[0])
	}
	if items[1].Priority != schedule.PriorityMedium || items[1].MaTaiSan != "VP2501001" {
		t.Errorf("items[1] = %+v, want due-soon office second", items[1])
	}
	if items[2].Priority != schedule.PriorityLow {
		t.Errorf("items[2].Priority = %q, want low", items[2].Priority)
	}
	if items[0].DaysUntil >= 0 {
		t.Errorf("overdue DaysUntil = %d, want negative", items[0].DaysUntil)
	}
}

func TestNotificationFilterAndLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	seedNotifyAssets(t, repos)

	svc := NewNotificationService(repos.Asset, nil, zap.NewNop())

	high := svc.List(context.Background(), schedule.PriorityHigh, 0)
	if len(high) != 1 || high[0].MaTaiSan != "VK2501001" {
		t.Fatalf("high filter = %+v, want only the overdue weapon", high)
	}

	limited := svc.List(context.Background(), "", 2)
	if len(limited) != 2 {
		t.Fatalf("limited items = %d, want 2", len(limited))
	}
}

func TestNotificationCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	seedNotifyAssets(t, repos)

	svc := NewNotificationService(repos.Asset, nil, zap.NewNop())
	counts := svc.Counts(context.Background())

	if counts.High != 1 || counts.Medium != 1 || counts.Low != 1 || counts.Total != 3 {
		t.Errorf("counts = %+v, want 1/1/1 total 3", counts)
	}
}

func TestNotificationVehicleExtraDates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	now := time.Now()
	dangKiem := entity.NewDate(now.AddDate(0, 0, -1))
	thayNhot := entity.NewDate(now.AddDate(0, 0, 5))
	if err := repos.Asset.Create(context.Background(), &entity.PhuongTien{
		MaTaiSanField:     "PT2501001",
		DanhMucPhuongTien: "Ô tô",
		TenPhuongTien:     "Xe tải Suzuki",
		DonViTinh:         "Chiếc",
		SoLuong:           1,
		NgayDangKiem:      &dangKiem,
		NgayThayNhot:      &thayNhot,
	}); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}

	svc := NewNotificationService(repos.Asset, nil, zap.NewNop())
	items := svc.List(context.Background(), "", 0)

	// Mỗi mốc ngày của phương tiện là một cảnh báo riêng.
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].TargetLabel != "Ngày đăng kiểm" || items[0].Priority != schedule.PriorityHigh {
		t.Errorf("items[0] = %+v, want overdue registration first", items[0])
	}
	if items[1].TargetLabel != "Ngày thay nhớt" {
		t.Errorf("items[1].TargetLabel = %q", items[1].TargetLabel)
	}
}
