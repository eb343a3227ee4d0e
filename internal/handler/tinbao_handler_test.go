package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/service"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func setupTinBaoTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	tinBaoSvc := service.NewTinBaoService(repos.TinBao, repos.VuAn, repos.Sequence)
	h := NewTinBaoHandler(tinBaoSvc, nil, nil)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	tinBao := api.Group("/tin-bao")
	tinBao.GET("", h.List)
	tinBao.POST("", h.Create)
	tinBao.GET("/:id", h.Get)
	tinBao.PUT("/:id", h.Update)
	tinBao.DELETE("/:id", h.Delete)
	tinBao.GET("/:id/preview-vu-an", h.Preview)
	tinBao.POST("/:id/convert", h.Convert)
	tinBao.GET("/:id/conversion-history", h.History)

	return router, db
}

func validTinBaoBody(suffix string) map[string]interface{} {
	return map[string]interface{}{
		"dieu_luat":          "Điều 173 BLHS",
		"ten_nguon_tin":      "Đơn tố giác " + suffix,
		"ngay_xay_ra":        "2025-03-10",
		"noi_xay_ra":         "Ấp 1, xã Phước Thái",
		"noi_dung_nguon_tin": "Trình báo mất trộm xe máy tại nhà riêng, kẻ gian đột nhập ban đêm " + suffix,
		"cong_an_phu_trach":  "Nguyễn Văn Bình",
	}
}

func createTinBao(t *testing.T, router *gin.Engine, suffix string) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/tin-bao", validTinBaoBody(suffix), testutil.StaffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("create tin bao: status %d, body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestTinBaoCreateAssignsSequentialSTT(t *testing.T) {
	router, _ := setupTinBaoTest(t)

	first := createTinBao(t, router, "A")
	second := createTinBao(t, router, "B")

	if stt := first["stt"].(float64); stt != 1 {
		t.Errorf("first STT = %v, want 1", stt)
	}
	if stt := second["stt"].(float64); stt != 2 {
		t.Errorf("second STT = %v, want 2", stt)
	}
	if first["don_vi"] != "CAX Phước Thái" {
		t.Errorf("don_vi default = %v", first["don_vi"])
	}
	if first["trang_thai"] != "Tiếp nhận" {
		t.Errorf("trang_thai default = %v", first["trang_thai"])
	}
}

func TestTinBaoCreateValidation(t *testing.T) {
	router, _ := setupTinBaoTest(t)

	body := validTinBaoBody("C")
	body["noi_dung_nguon_tin"] = "quá ngắn"
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/tin-bao", body, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40000 {
		t.Errorf("code = %v, want 40000", resp["code"])
	}
}

func TestTinBaoRequiresAuth(t *testing.T) {
	router, _ := setupTinBaoTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/tin-bao", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestTinBaoConvert(t *testing.T) {
	router, _ := setupTinBaoTest(t)

	tb := createTinBao(t, router, "D")
	id := tb["id"].(string)

	// Xem trước không ghi gì.
	w := testutil.DoRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/tin-bao/%s/preview-vu-an", id), nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("preview: status %d, body %s", w.Code, w.Body.String())
	}
	preview := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if preview["toi_danh"] != "Điều 173 BLHS" {
		t.Errorf("preview toi_danh = %v", preview["toi_danh"])
	}

	w = testutil.DoRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/tin-bao/%s/convert", id),
		map[string]interface{}{"toi_danh": "Trộm cắp tài sản"}, testutil.StaffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("convert: status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})

	vuAn := data["vu_an"].(map[string]interface{})
	if vuAn["toi_danh"] != "Trộm cắp tài sản" {
		t.Errorf("vu an toi_danh = %v", vuAn["toi_danh"])
	}
	if vuAn["stt"].(float64) != 1 {
		t.Errorf("vu an stt = %v, want 1", vuAn["stt"])
	}
	if vuAn["dieu_tra_vien"] != "Nguyễn Văn Bình" {
		t.Errorf("dieu_tra_vien = %v", vuAn["dieu_tra_vien"])
	}

	converted := data["tin_bao"].(map[string]interface{})
	if converted["trang_thai"] != "Chuyển thành vụ án" {
		t.Errorf("tin bao trang_thai = %v", converted["trang_thai"])
	}
	if converted["vu_an_id"] == nil {
		t.Error("tin bao vu_an_id must be set after conversion")
	}

	// Mỗi tin báo chỉ chuyển được một lần.
	w = testutil.DoRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/tin-bao/%s/convert", id),
		map[string]interface{}{}, testutil.StaffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second convert: status %d, want 400, body %s", w.Code, w.Body.String())
	}

	// Lịch sử ghi nhận người chuyển từ token.
	w = testutil.DoRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/tin-bao/%s/conversion-history", id), nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("history: status %d", w.Code)
	}
	hist := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := hist["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("history items = %d, want 1", len(items))
	}
	entry := items[0].(map[string]interface{})
	if entry["nguoi_chuyen"] != "Nguyễn Văn Chuyên" {
		t.Errorf("nguoi_chuyen = %v", entry["nguoi_chuyen"])
	}
}

func TestTinBaoDeleteKeepsSTTRetired(t *testing.T) {
	router, _ := setupTinBaoTest(t)

	first := createTinBao(t, router, "E")
	id := first["id"].(string)

	w := testutil.DoRequest(router, http.MethodDelete, "/api/v1/tin-bao/"+id, nil, testutil.StaffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}

	// STT của bản ghi đã xoá không được cấp lại.
	next := createTinBao(t, router, "F")
	if stt := next["stt"].(float64); stt != 2 {
		t.Errorf("STT after delete = %v, want 2", stt)
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/tin-bao/"+id, nil, testutil.StaffToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted: status %d, want 404", w.Code)
	}
}
