package service

import (
	"context"
	"testing"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func setupMaintenanceTest(t *testing.T) (*MaintenanceService, *AssetService, *repository.Repositories) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewMaintenanceService(repos.Maintenance, repos.Asset),
		NewAssetService(repos.Asset, repos.Sequence),
		repos
}

func TestMaintenanceCreateTouchesAssetInspection(t *testing.T) {
	maintSvc, assetSvc, repos := setupMaintenanceTest(t)
	ctx := context.Background()

	rec, err := assetSvc.Create(ctx, entity.AssetTechnical, []byte(`{"ten_tai_san":"Máy đo nồng độ cồn","so_luong":1}`))
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}

	_, err = maintSvc.Create(ctx, &CreateMaintenanceRequest{
		MaTaiSan:      rec.MaTaiSan(),
		LoaiHinh:      "Kiểm tra định kỳ",
		NgayThucHien:  mustDate(t, "2025-05-01"),
		NguoiThucHien: "Trần Văn Bảo",
	})
	if err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	updated, err := repos.Asset.FindByCode(ctx, entity.AssetTechnical, rec.MaTaiSan())
	if err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	insp := updated.Inspection()
	if insp.NgayKiemTraGanNhat == nil || insp.NgayKiemTraGanNhat.Format("2006-01-02") != "2025-05-01" {
		t.Errorf("ngay_kiem_tra_gan_nhat = %v, want 2025-05-01", insp.NgayKiemTraGanNhat)
	}
	// Chu kỳ cố định 6 tháng của nhóm kỹ thuật.
	if insp.NgayKiemTraTiepTheo == nil || insp.NgayKiemTraTiepTheo.Format("2006-01-02") != "2025-11-01" {
		t.Errorf("ngay_kiem_tra_tiep_theo = %v, want 2025-11-01", insp.NgayKiemTraTiepTheo)
	}
}

func TestMaintenanceCreateOrphanCodeKept(t *testing.T) {
	maintSvc, _, _ := setupMaintenanceTest(t)
	ctx := context.Background()

	// Sổ ghi cả tài sản đã thanh lý: mã không khớp vẫn lưu dòng sổ.
	rec, err := maintSvc.Create(ctx, &CreateMaintenanceRequest{
		MaTaiSan:     "VK0001XXX",
		LoaiHinh:     "Sửa chữa",
		NgayThucHien: mustDate(t, "2025-05-02"),
	})
	if err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	history, err := maintSvc.History(ctx, "VK0001XXX")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != rec.ID {
		t.Fatalf("history = %+v, want the orphan record", history)
	}
}

func TestMaintenanceUpdateDoesNotTouchSchedule(t *testing.T) {
	maintSvc, assetSvc, repos := setupMaintenanceTest(t)
	ctx := context.Background()

	asset, err := assetSvc.Create(ctx, entity.AssetTechnical, []byte(`{"ten_tai_san":"Camera giám sát","so_luong":1}`))
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	rec, err := maintSvc.Create(ctx, &CreateMaintenanceRequest{
		MaTaiSan:     asset.MaTaiSan(),
		LoaiHinh:     "Kiểm tra định kỳ",
		NgayThucHien: mustDate(t, "2025-05-01"),
	})
	if err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	// Đính chính ngày trên dòng sổ không được tính lại lịch của tài sản.
	newDate := mustDate(t, "2025-06-15")
	if _, err := maintSvc.Update(ctx, rec.ID, &UpdateMaintenanceRequest{NgayThucHien: &newDate}); err != nil {
		t.Fatalf("update maintenance: %v", err)
	}

	reloaded, err := repos.Asset.FindByCode(ctx, entity.AssetTechnical, asset.MaTaiSan())
	if err != nil {
		t.Fatalf("reload asset: %v", err)
	}
	if got := reloaded.Inspection().NgayKiemTraGanNhat.Format("2006-01-02"); got != "2025-05-01" {
		t.Errorf("ngay_kiem_tra_gan_nhat = %s, want unchanged 2025-05-01", got)
	}
}
