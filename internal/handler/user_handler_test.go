package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func createUser(t *testing.T, router *gin.Engine, username string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"username":  username,
		"email":     username + "@phuocthai.local",
		"password":  "matkhau123",
		"full_name": "Trần Thị Cán Bộ",
	}
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/users", body, testutil.AdminToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("create user: status %d, body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	return resp["data"].(map[string]interface{})
}

func TestUserCreateAndList(t *testing.T) {
	router, _ := setupFullRouter(t)

	created := createUser(t, router, "canbo01")
	if created["role"] != "chuyen_vien" {
		t.Errorf("role mặc định = %v, want chuyen_vien", created["role"])
	}
	if created["is_active"] != true {
		t.Errorf("is_active = %v, want true", created["is_active"])
	}
	if _, ok := created["password_hash"]; ok {
		t.Error("password_hash bị lộ trong response")
	}

	// Trùng tên đăng nhập bị từ chối.
	body := map[string]interface{}{
		"username":  "canbo01",
		"email":     "khac@phuocthai.local",
		"password":  "matkhau123",
		"full_name": "Người Trùng Tên",
	}
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/users", body, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Errorf("tạo trùng username: status = %d, want 400", w.Code)
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/users", nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list users: status %d, body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if total := data["pagination"].(map[string]interface{})["total"].(float64); total != 1 {
		t.Errorf("total = %v, want 1", total)
	}
}

func TestUserUpdateDeactivates(t *testing.T) {
	router, _ := setupFullRouter(t)

	created := createUser(t, router, "canbo02")
	id := created["id"].(string)

	w := testutil.DoRequest(router, http.MethodPut, "/api/v1/users/"+id,
		map[string]interface{}{"is_active": false, "role": "admin"}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("update user: status %d, body %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["is_active"] != false {
		t.Errorf("is_active = %v, want false", data["is_active"])
	}
	if data["role"] != "admin" {
		t.Errorf("role = %v, want admin", data["role"])
	}
}

func TestUserDelete(t *testing.T) {
	router, _ := setupFullRouter(t)

	created := createUser(t, router, "canbo03")
	id := created["id"].(string)

	w := testutil.DoRequest(router, http.MethodDelete, "/api/v1/users/"+id, nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete user: status %d, body %s", w.Code, w.Body.String())
	}

	// Đã xoá mềm: không còn đọc được và biến khỏi danh sách.
	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/users/"+id, nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("get user đã xoá: status = %d, want 404", w.Code)
	}
	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/users", nil, testutil.AdminToken())
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if total := data["pagination"].(map[string]interface{})["total"].(float64); total != 0 {
		t.Errorf("total sau xoá = %v, want 0", total)
	}

	// Xoá bản ghi không tồn tại trả 404.
	w = testutil.DoRequest(router, http.MethodDelete, "/api/v1/users/khong-ton-tai", nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("delete user không tồn tại: status = %d, want 404", w.Code)
	}
}

func TestUserCannotDeleteOwnAccount(t *testing.T) {
	router, _ := setupFullRouter(t)

	// Token admin mặc định mang sub "test-admin-001".
	w := testutil.DoRequest(router, http.MethodDelete, "/api/v1/users/test-admin-001", nil, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Errorf("tự xoá tài khoản: status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}
