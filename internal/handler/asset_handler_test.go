package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/service"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func setupAssetTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	assetSvc := service.NewAssetService(repos.Asset, repos.Sequence)
	h := NewAssetHandler(assetSvc, nil, nil)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	assets := api.Group("/assets/:type")
	assets.GET("", h.List)
	assets.POST("", h.Create)
	assets.GET("/:id", h.Get)
	assets.PUT("/:id", h.Update)
	assets.DELETE("/:id", h.Delete)

	return router, db
}

func createAsset(t *testing.T, router *gin.Engine, assetType string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/assets/"+assetType, body, testutil.StaffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("create %s asset: status %d, body %s", assetType, w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func weaponBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"ten_tai_san": name,
		"ma_danh_muc": "VK-01",
		"don_vi_tinh": "Khẩu",
		"so_luong":    2,
	}
}

func TestAssetCodeGenerated(t *testing.T) {
	router, _ := setupAssetTest(t)

	now := time.Now()
	period := fmt.Sprintf("VK%02d%02d", now.Year()%100, int(now.Month()))

	first := createAsset(t, router, "weapons", weaponBody("Súng ngắn K59"))
	if got := first["ma_tai_san"].(string); got != period+"001" {
		t.Errorf("ma_tai_san = %q, want %q", got, period+"001")
	}

	second := createAsset(t, router, "weapons", weaponBody("Súng bắn đạn cao su"))
	if got := second["ma_tai_san"].(string); got != period+"002" {
		t.Errorf("ma_tai_san = %q, want %q", got, period+"002")
	}
}

func TestAssetHumanCodeHonored(t *testing.T) {
	router, _ := setupAssetTest(t)

	now := time.Now()
	period := fmt.Sprintf("VK%02d%02d", now.Year()%100, int(now.Month()))

	body := weaponBody("Súng ngắn K59")
	body["ma_tai_san"] = "VK-SO-CU-17"
	first := createAsset(t, router, "weapons", body)
	if got := first["ma_tai_san"].(string); got != "VK-SO-CU-17" {
		t.Errorf("ma_tai_san = %q, want mã tự đặt được giữ nguyên", got)
	}

	// Mã tự đặt trùng với bản ghi đang dùng bị từ chối.
	dup := weaponBody("Súng bắn đạn cao su")
	dup["ma_tai_san"] = "VK-SO-CU-17"
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/assets/weapons", dup, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mã trùng: status = %d, want 400, body %s", w.Code, w.Body.String())
	}

	// Mã tự đặt trùng kỳ tháng nhưng đuôi không phải số không làm hỏng
	// việc cấp mã tự động tiếp theo.
	odd := weaponBody("Dùi cui điện")
	odd["ma_tai_san"] = period + "XYZ"
	createAsset(t, router, "weapons", odd)

	auto := createAsset(t, router, "weapons", weaponBody("Gậy chỉ huy giao thông"))
	if got := auto["ma_tai_san"].(string); got != period+"001" {
		t.Errorf("ma_tai_san = %q, want %q", got, period+"001")
	}
}

func TestAssetCodeNotReusedAfterDelete(t *testing.T) {
	router, _ := setupAssetTest(t)

	now := time.Now()
	period := fmt.Sprintf("VK%02d%02d", now.Year()%100, int(now.Month()))

	first := createAsset(t, router, "weapons", weaponBody("Dùi cui điện"))
	w := testutil.DoRequest(router, http.MethodDelete,
		"/api/v1/assets/weapons/"+first["id"].(string), nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}

	second := createAsset(t, router, "weapons", weaponBody("Dùi cui cao su"))
	if got := second["ma_tai_san"].(string); got != period+"002" {
		t.Errorf("ma_tai_san after delete = %q, want %q", got, period+"002")
	}
}

func TestAssetResidualValueGuard(t *testing.T) {
	router, _ := setupAssetTest(t)

	body := weaponBody("Súng AK")
	body["nguyen_gia"] = 1000000
	body["gia_tri_con_lai"] = 2000000
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/assets/weapons", body, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestAssetMissingRequiredField(t *testing.T) {
	router, _ := setupAssetTest(t)

	body := weaponBody("Súng K54")
	delete(body, "don_vi_tinh")
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/assets/weapons", body, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestAssetUnknownType(t *testing.T) {
	router, _ := setupAssetTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/assets/furniture", nil, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestTechnicalAssetFixedPeriod(t *testing.T) {
	router, _ := setupAssetTest(t)

	data := createAsset(t, router, "technical", map[string]interface{}{
		"ten_tai_san":            "Máy đo tốc độ",
		"so_luong":               1,
		"dinh_ky_kiem_tra":       "12 tháng",
		"ngay_kiem_tra_gan_nhat": "2025-05-01",
	})

	// Nhóm thiết bị kỹ thuật luôn dùng chu kỳ 6 tháng, bỏ qua giá trị nhập.
	if got := data["dinh_ky_kiem_tra"]; got != "6 tháng" {
		t.Errorf("dinh_ky_kiem_tra = %v, want %q", got, "6 tháng")
	}
	if got := data["ngay_kiem_tra_tiep_theo"]; got != "2025-11-01" {
		t.Errorf("ngay_kiem_tra_tiep_theo = %v, want 2025-11-01", got)
	}
}

func TestAssetListAndSearch(t *testing.T) {
	router, _ := setupAssetTest(t)

	createAsset(t, router, "weapons", weaponBody("Súng ngắn K59"))
	createAsset(t, router, "weapons", weaponBody("Gậy cao su"))

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/assets/weapons?search=K59", nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("search items = %d, want 1", len(items))
	}
	pg := data["pagination"].(map[string]interface{})
	if pg["total"].(float64) != 1 {
		t.Errorf("pagination total = %v, want 1", pg["total"])
	}
}
