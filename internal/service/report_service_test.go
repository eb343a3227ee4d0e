package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func setupReportTest(t *testing.T) (*ReportService, *AssetService, *MaintenanceService, *TinBaoService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	assetSvc := NewAssetService(repos.Asset, repos.Sequence)
	maintSvc := NewMaintenanceService(repos.Maintenance, repos.Asset)
	tinBaoSvc := NewTinBaoService(repos.TinBao, repos.VuAn, repos.Sequence)
	notifySvc := NewNotificationService(repos.Asset, nil, zap.NewNop())
	reportSvc := NewReportService(repos.Asset, repos.Maintenance, repos.TinBao, repos.VuAn, repos.TamGiam, notifySvc)
	return reportSvc, assetSvc, maintSvc, tinBaoSvc
}

func TestReportStats(t *testing.T) {
	reportSvc, assetSvc, maintSvc, tinBaoSvc := setupReportTest(t)
	ctx := context.Background()

	weapon, err := assetSvc.Create(ctx, entity.AssetWeapons,
		[]byte(`{"ten_tai_san":"Súng ngắn K59","ma_danh_muc":"VK-01","don_vi_tinh":"Khẩu","so_luong":1,"nguyen_gia":5000000,"gia_tri_con_lai":3000000}`))
	if err != nil {
		t.Fatalf("create weapon: %v", err)
	}
	if _, err := assetSvc.Create(ctx, entity.AssetOffice,
		[]byte(`{"ten_tai_san":"Máy in Canon","so_luong":2,"nguyen_gia":2000000}`)); err != nil {
		t.Fatalf("create office asset: %v", err)
	}

	chiPhi := 150000.0
	if _, err := maintSvc.Create(ctx, &CreateMaintenanceRequest{
		MaTaiSan:     weapon.MaTaiSan(),
		LoaiHinh:     entity.MaintenanceBaoTri,
		NgayThucHien: mustDate(t, "2025-04-01"),
		ChiPhi:       &chiPhi,
	}); err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	if _, err := tinBaoSvc.Create(ctx, &CreateTinBaoRequest{
		DieuLuat:        "Điều 173 BLHS",
		NgayXayRa:       mustDate(t, "2025-03-10"),
		NoiXayRa:        "Ấp 1, xã Phước Thái",
		NoiDungNguonTin: "Trình báo mất trộm xe máy dựng trước sân nhà vào rạng sáng hôm qua",
	}); err != nil {
		t.Fatalf("create tin bao: %v", err)
	}

	stats, err := reportSvc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAssets != 2 {
		t.Errorf("TotalAssets = %d, want 2", stats.TotalAssets)
	}
	if stats.ByType[entity.AssetWeapons] != 1 || stats.ByType[entity.AssetOffice] != 1 {
		t.Errorf("ByType = %v", stats.ByType)
	}
	if stats.TotalValue.NguyenGia != 7000000 {
		t.Errorf("TotalValue.NguyenGia = %v, want 7000000", stats.TotalValue.NguyenGia)
	}
	if stats.TotalValue.GiaTriConLai != 3000000 {
		t.Errorf("TotalValue.GiaTriConLai = %v, want 3000000", stats.TotalValue.GiaTriConLai)
	}
	if stats.TinBao[entity.TinBaoTiepNhan] != 1 {
		t.Errorf("TinBao counts = %v", stats.TinBao)
	}
	if stats.ChiPhiBaoTri != 150000 {
		t.Errorf("ChiPhiBaoTri = %v, want 150000", stats.ChiPhiBaoTri)
	}
}

func TestReportInspectionDueWindow(t *testing.T) {
	reportSvc, assetSvc, maintSvc, _ := setupReportTest(t)
	ctx := context.Background()

	// Ba tài sản kỹ thuật, ngày kiểm tra gần nhất khác nhau: quá hạn,
	// trong cửa sổ, ngoài cửa sổ (chu kỳ cố định 6 tháng).
	now := time.Now()
	mk := func(name string, lastOffsetDays int) {
		t.Helper()
		rec, err := assetSvc.Create(ctx, entity.AssetTechnical,
			[]byte(`{"ten_tai_san":"`+name+`","so_luong":1}`))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		last := entity.NewDate(now.AddDate(0, -6, lastOffsetDays))
		if _, err := maintSvc.Create(ctx, &CreateMaintenanceRequest{
			MaTaiSan:     rec.MaTaiSan(),
			LoaiHinh:     entity.MaintenanceKiemTra,
			NgayThucHien: last,
		}); err != nil {
			t.Fatalf("maintenance %s: %v", name, err)
		}
	}
	mk("Máy quá hạn rồi", -10)
	mk("Máy sắp đến hạn", 7)
	mk("Máy còn xa hạn", 60)

	report, err := reportSvc.InspectionDue(ctx, 15)
	if err != nil {
		t.Fatalf("inspection due: %v", err)
	}
	if report.Days != 15 {
		t.Errorf("Days = %d, want 15", report.Days)
	}
	// Chỉ tài sản đến hạn trong [hôm nay, +15 ngày]: quá hạn và còn xa
	// đều bị loại.
	if len(report.Data) != 1 {
		t.Fatalf("Data = %d rows, want 1: %+v", len(report.Data), report.Data)
	}
	if report.Data[0].TenTaiSan != "Máy sắp đến hạn" {
		t.Errorf("Data[0].TenTaiSan = %q", report.Data[0].TenTaiSan)
	}

	expiring, err := reportSvc.Expiring(ctx, 15)
	if err != nil {
		t.Fatalf("expiring: %v", err)
	}
	if expiring.TotalAssets != 3 {
		t.Errorf("Expiring.TotalAssets = %d, want 3", expiring.TotalAssets)
	}
	// Hạn gần nhất đứng trước.
	if expiring.Data[0].TenTaiSan != "Máy quá hạn rồi" {
		t.Errorf("Expiring.Data[0] = %q, want the overdue one first", expiring.Data[0].TenTaiSan)
	}
}
