package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/config"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/service"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

// setupFullRouter dựng router với đúng bảng route của server thật.
func setupFullRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:             testutil.JWTSecret,
			AccessTokenExpire:  2 * time.Hour,
			RefreshTokenExpire: 168 * time.Hour,
			Issuer:             "phuocthai-backend",
		},
	}
	services := service.NewServices(repos, nil, cfg, zap.NewNop())
	h := NewHandlers(services, cfg)

	router := testutil.SetupRouter()
	RegisterAPIRoutes(router, h, testutil.JWTSecret)
	return router, db
}

func TestAdminGatedRoutes(t *testing.T) {
	router, _ := setupFullRouter(t)

	gated := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/v1/assets/weapons/khong-ton-tai"},
		{http.MethodGet, "/api/v1/assets/weapons/export"},
		{http.MethodPost, "/api/v1/assets/weapons/import"},
		{http.MethodDelete, "/api/v1/maintenance/khong-ton-tai"},
		{http.MethodDelete, "/api/v1/tin-bao/khong-ton-tai"},
		{http.MethodGet, "/api/v1/tin-bao/export"},
		{http.MethodDelete, "/api/v1/vu-an/khong-ton-tai"},
		{http.MethodDelete, "/api/v1/vu-an/khong-ton-tai/bi-can/khong-ton-tai"},
		{http.MethodDelete, "/api/v1/tam-giam/khong-ton-tai"},
		{http.MethodGet, "/api/v1/reports/export"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodDelete, "/api/v1/users/khong-ton-tai"},
	}

	for _, route := range gated {
		w := testutil.DoRequest(router, route.method, route.path, nil, testutil.StaffToken())
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s với chuyên viên: status = %d, want 403", route.method, route.path, w.Code)
		}
	}

	// Admin phải qua được cửa phân quyền: bản ghi không tồn tại trả 404
	// từ handler chứ không phải 403.
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/v1/tin-bao/khong-ton-tai"},
		{http.MethodDelete, "/api/v1/vu-an/khong-ton-tai"},
		{http.MethodDelete, "/api/v1/maintenance/khong-ton-tai"},
	} {
		w := testutil.DoRequest(router, route.method, route.path, nil, testutil.AdminToken())
		if w.Code == http.StatusForbidden {
			t.Errorf("%s %s với admin vẫn bị chặn 403", route.method, route.path)
		}
	}
}

func TestStaffStillReachesReadAndWriteRoutes(t *testing.T) {
	router, _ := setupFullRouter(t)

	// Chuyên viên vẫn dùng được các thao tác thường ngày.
	open := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/assets/weapons", http.StatusOK},
		{http.MethodGet, "/api/v1/assets/weapons/template", http.StatusOK},
		{http.MethodGet, "/api/v1/tin-bao", http.StatusOK},
		{http.MethodGet, "/api/v1/tin-bao/template", http.StatusOK},
		{http.MethodGet, "/api/v1/notifications", http.StatusOK},
		{http.MethodGet, "/api/v1/dashboard/stats", http.StatusOK},
		{http.MethodGet, "/api/v1/reports/tong-hop", http.StatusOK},
	}
	for _, route := range open {
		w := testutil.DoRequest(router, route.method, route.path, nil, testutil.StaffToken())
		if w.Code != route.want {
			t.Errorf("%s %s: status = %d, want %d, body %s", route.method, route.path, w.Code, route.want, w.Body.String())
		}
	}
}
