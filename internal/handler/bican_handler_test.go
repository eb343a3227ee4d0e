package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/service"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func setupVuAnTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	vuAnSvc := service.NewVuAnService(repos.VuAn, repos.TinBao, repos.BiCan, repos.TamGiam, repos.Sequence)
	biCanSvc := service.NewBiCanService(repos.BiCan, repos.VuAn, repos.TamGiam)
	tamGiamSvc := service.NewTamGiamService(repos.TamGiam, repos.VuAn, repos.BiCan)

	vuAnHandler := NewVuAnHandler(vuAnSvc)
	biCanHandler := NewBiCanHandler(biCanSvc)
	tamGiamHandler := NewTamGiamHandler(tamGiamSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	vuAn := api.Group("/vu-an")
	vuAn.POST("", vuAnHandler.Create)
	vuAn.GET("/:id", vuAnHandler.Get)
	vuAn.POST("/:id/khoi-to", vuAnHandler.FileCase)
	vuAn.GET("/:id/bi-can", biCanHandler.List)
	vuAn.POST("/:id/bi-can", biCanHandler.Create)
	vuAn.DELETE("/:id/bi-can/:bi_can_id", biCanHandler.Delete)
	vuAn.POST("/:id/bi-can/:bi_can_id/khoi-to", biCanHandler.Indict)

	tamGiam := api.Group("/tam-giam")
	tamGiam.GET("", tamGiamHandler.List)
	tamGiam.GET("/sap-het-han", tamGiamHandler.Expiring)

	return router, db
}

func createVuAn(t *testing.T, router *gin.Engine) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"dieu_luat":       "Điều 173 BLHS",
		"toi_danh":        "Trộm cắp tài sản",
		"ngay_xay_ra":     "2025-02-01",
		"noi_xay_ra":      "Ấp 2, xã Phước Thái",
		"thong_tin_vu_an": "Đối tượng đột nhập nhà dân lấy trộm tài sản trị giá 20 triệu đồng",
		"dieu_tra_vien":   "Trần Văn Can",
	}
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/vu-an", body, testutil.StaffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("create vu an: status %d, body %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func addBiCan(t *testing.T, router *gin.Engine, vuAnID string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/vu-an/%s/bi-can", vuAnID), body, testutil.StaffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("add bi can: status %d, body %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func getVuAn(t *testing.T, router *gin.Engine, id string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/vu-an/"+id, nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get vu an: status %d, body %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func TestBiCanUpdatesCaseSummary(t *testing.T) {
	router, _ := setupVuAnTest(t)

	vuAn := createVuAn(t, router)
	id := vuAn["id"].(string)

	addBiCan(t, router, id, map[string]interface{}{
		"ho_ten":              "Nguyễn Văn An",
		"nam_sinh":            1990,
		"dia_chi_thuong_tru":  "Ấp 3, xã Phước Thái",
		"bien_phap_ngan_chan": "Cấm đi khỏi nơi cư trú",
	})
	bc2 := addBiCan(t, router, id, map[string]interface{}{
		"ho_ten":              "Lê Thị Bưởi",
		"nam_sinh":            1995,
		"dia_chi_thuong_tru":  "Ấp 4, xã Phước Thái",
		"bien_phap_ngan_chan": "Cấm đi khỏi nơi cư trú",
	})

	detail := getVuAn(t, router, id)
	if n := detail["tong_so_bi_can"].(float64); n != 2 {
		t.Errorf("tong_so_bi_can = %v, want 2", n)
	}
	if s := detail["thong_tin_bi_can"].(string); s != "Nguyễn Văn An (1990), Lê Thị Bưởi (1995)" {
		t.Errorf("thong_tin_bi_can = %q", s)
	}

	// Xoá một bị can thì tổng số và tóm tắt co lại theo.
	w := testutil.DoRequest(router, http.MethodDelete,
		fmt.Sprintf("/api/v1/vu-an/%s/bi-can/%s", id, bc2["id"].(string)), nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete bi can: status %d", w.Code)
	}
	detail = getVuAn(t, router, id)
	if n := detail["tong_so_bi_can"].(float64); n != 1 {
		t.Errorf("tong_so_bi_can after delete = %v, want 1", n)
	}
	if s := detail["thong_tin_bi_can"].(string); s != "Nguyễn Văn An (1990)" {
		t.Errorf("thong_tin_bi_can after delete = %q", s)
	}
}

func TestBiCanTamGiamAutoCreated(t *testing.T) {
	router, db := setupVuAnTest(t)

	vuAn := createVuAn(t, router)
	id := vuAn["id"].(string)

	bc := addBiCan(t, router, id, map[string]interface{}{
		"ho_ten":              "Phạm Văn Cường",
		"nam_sinh":            1988,
		"dia_chi_thuong_tru":  "Ấp 1, xã Phước Thái",
		"bien_phap_ngan_chan": "Tạm giam",
	})

	var orders []entity.TamGiam
	if err := db.Where("bi_can_id = ?", bc["id"].(string)).Find(&orders).Error; err != nil {
		t.Fatalf("query tam giam: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("tam giam orders = %d, want 1", len(orders))
	}
	order := orders[0]
	if order.TrangThaiGiam != entity.TamGiamDangGiam {
		t.Errorf("trang_thai_giam = %q", order.TrangThaiGiam)
	}
	// Hạn giam mặc định 30 ngày.
	wantEnd := order.NgayBatGiam.AddDate(0, 0, 30)
	if !order.NgayHetHanGiam.Time.Equal(wantEnd) {
		t.Errorf("ngay_het_han_giam = %v, want %v", order.NgayHetHanGiam.Time, wantEnd)
	}

	// Danh sách tạm giam gắn kèm họ tên bị can.
	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/tam-giam", nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list tam giam: status %d", w.Code)
	}
	list := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := list["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("tam giam items = %d, want 1", len(items))
	}
	if items[0].(map[string]interface{})["ho_ten_bi_can"] != "Phạm Văn Cường" {
		t.Errorf("ho_ten_bi_can = %v", items[0].(map[string]interface{})["ho_ten_bi_can"])
	}
}

func TestBiCanIndict(t *testing.T) {
	router, _ := setupVuAnTest(t)

	vuAn := createVuAn(t, router)
	id := vuAn["id"].(string)
	bc := addBiCan(t, router, id, map[string]interface{}{
		"ho_ten":              "Hoàng Văn Dũng",
		"nam_sinh":            1992,
		"dia_chi_thuong_tru":  "Ấp 5, xã Phước Thái",
		"bien_phap_ngan_chan": "Cấm đi khỏi nơi cư trú",
	})

	w := testutil.DoRequest(router, http.MethodPost,
		fmt.Sprintf("/api/v1/vu-an/%s/bi-can/%s/khoi-to", id, bc["id"].(string)),
		map[string]interface{}{
			"so_khoi_to_bi_can": "01/QĐ-KTBC",
			"ngay_khoi_to":      "2025-03-01",
		}, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("indict: status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["trang_thai"] != entity.BiCanDaKhoiTo {
		t.Errorf("trang_thai = %v", data["trang_thai"])
	}
	if data["so_khoi_to_bi_can"] != "01/QĐ-KTBC" {
		t.Errorf("so_khoi_to_bi_can = %v", data["so_khoi_to_bi_can"])
	}

	// Vụ án ghi nhận số/ngày khởi tố của bị can đầu tiên.
	detail := getVuAn(t, router, id)
	if detail["so_khoi_to_bi_can"] != "01/QĐ-KTBC" {
		t.Errorf("vu an so_khoi_to_bi_can = %v", detail["so_khoi_to_bi_can"])
	}

	// Khởi tố bị can thứ hai không ghi đè dấu mốc của bị can đầu tiên.
	bc2 := addBiCan(t, router, id, map[string]interface{}{
		"ho_ten":              "Đặng Văn Em",
		"nam_sinh":            1997,
		"dia_chi_thuong_tru":  "Ấp 6, xã Phước Thái",
		"bien_phap_ngan_chan": "Cấm đi khỏi nơi cư trú",
	})
	w = testutil.DoRequest(router, http.MethodPost,
		fmt.Sprintf("/api/v1/vu-an/%s/bi-can/%s/khoi-to", id, bc2["id"].(string)),
		map[string]interface{}{
			"so_khoi_to_bi_can": "02/QĐ-KTBC",
			"ngay_khoi_to":      "2025-03-10",
		}, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("indict second: status %d, body %s", w.Code, w.Body.String())
	}
	detail = getVuAn(t, router, id)
	if detail["so_khoi_to_bi_can"] != "01/QĐ-KTBC" {
		t.Errorf("vu an so_khoi_to_bi_can sau lần hai = %v, want 01/QĐ-KTBC", detail["so_khoi_to_bi_can"])
	}
	if detail["ngay_khoi_to_bi_can"] != "2025-03-01" {
		t.Errorf("vu an ngay_khoi_to_bi_can = %v, want 2025-03-01", detail["ngay_khoi_to_bi_can"])
	}
}

func TestVuAnFileCase(t *testing.T) {
	router, _ := setupVuAnTest(t)

	vuAn := createVuAn(t, router)
	id := vuAn["id"].(string)

	w := testutil.DoRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/vu-an/%s/khoi-to", id),
		map[string]interface{}{
			"so_khoi_to_vu_an":   "05/QĐ-KTVA",
			"ngay_khoi_to_vu_an": "2025-03-05",
		}, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("file case: status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["trang_thai"] != entity.VuAnKhoiToVuAn {
		t.Errorf("trang_thai = %v, want %q", data["trang_thai"], entity.VuAnKhoiToVuAn)
	}
}
