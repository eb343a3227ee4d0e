package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/middleware"
)

// RegisterAPIRoutes gắn toàn bộ nhóm /api/v1. Thao tác xoá hồ sơ và
// xuất file chỉ dành cho admin, quản trị tài khoản cũng vậy.
func RegisterAPIRoutes(r *gin.Engine, h *Handlers, jwtSecret string) {
	v1 := r.Group("/api/v1")
	{
		// Đăng nhập và làm mới token, không cần xác thực.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtSecret))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.POST("/auth/change-password", h.Auth.ChangePassword)

			// Quản trị tài khoản, chỉ admin.
			users := authorized.Group("/users")
			users.Use(middleware.AdminOnly())
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// Hồ sơ tài sản, :type là một trong 5 nhóm.
			assets := authorized.Group("/assets/:type")
			{
				assets.GET("", h.Asset.List)
				assets.POST("", h.Asset.Create)
				assets.GET("/export", middleware.AdminOnly(), h.Asset.Export)
				assets.POST("/import", middleware.AdminOnly(), h.Asset.Import)
				assets.GET("/template", h.Asset.Template)
				assets.GET("/:id", h.Asset.Get)
				assets.PUT("/:id", h.Asset.Update)
				assets.DELETE("/:id", middleware.AdminOnly(), h.Asset.Delete)
			}

			// Sổ kiểm tra bảo trì.
			maintenance := authorized.Group("/maintenance")
			{
				maintenance.POST("", h.Maintenance.Create)
				maintenance.GET("/:ma_tai_san", h.Maintenance.History)
				maintenance.PUT("/:id", h.Maintenance.Update)
				maintenance.DELETE("/:id", middleware.AdminOnly(), h.Maintenance.Delete)
			}

			// Chuông thông báo.
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/counts", h.Notification.Counts)
			}

			// Sổ tiếp nhận tin báo, tố giác tội phạm.
			tinBao := authorized.Group("/tin-bao")
			{
				tinBao.GET("", h.TinBao.List)
				tinBao.POST("", h.TinBao.Create)
				tinBao.GET("/export", middleware.AdminOnly(), h.TinBao.Export)
				tinBao.POST("/import", h.TinBao.Import)
				tinBao.GET("/template", h.TinBao.Template)
				tinBao.GET("/:id", h.TinBao.Get)
				tinBao.PUT("/:id", h.TinBao.Update)
				tinBao.DELETE("/:id", middleware.AdminOnly(), h.TinBao.Delete)
				tinBao.GET("/:id/preview-vu-an", h.TinBao.Preview)
				tinBao.POST("/:id/convert", h.TinBao.Convert)
				tinBao.GET("/:id/conversion-history", h.TinBao.History)
			}

			// Sổ thụ lý vụ án và bị can.
			vuAn := authorized.Group("/vu-an")
			{
				vuAn.GET("", h.VuAn.List)
				vuAn.POST("", h.VuAn.Create)
				vuAn.GET("/:id", h.VuAn.Get)
				vuAn.PUT("/:id", h.VuAn.Update)
				vuAn.DELETE("/:id", middleware.AdminOnly(), h.VuAn.Delete)
				vuAn.POST("/:id/khoi-to", h.VuAn.FileCase)
				vuAn.PUT("/:id/ket-qua", h.VuAn.Resolution)

				vuAn.GET("/:id/bi-can", h.BiCan.List)
				vuAn.POST("/:id/bi-can", h.BiCan.Create)
				vuAn.GET("/:id/bi-can/:bi_can_id", h.BiCan.Get)
				vuAn.PUT("/:id/bi-can/:bi_can_id", h.BiCan.Update)
				vuAn.DELETE("/:id/bi-can/:bi_can_id", middleware.AdminOnly(), h.BiCan.Delete)
				vuAn.POST("/:id/bi-can/:bi_can_id/khoi-to", h.BiCan.Indict)
			}

			// Sổ theo dõi tạm giữ, tạm giam.
			tamGiam := authorized.Group("/tam-giam")
			{
				tamGiam.GET("", h.TamGiam.List)
				tamGiam.POST("", h.TamGiam.Create)
				tamGiam.GET("/sap-het-han", h.TamGiam.Expiring)
				tamGiam.GET("/:id", h.TamGiam.Get)
				tamGiam.PUT("/:id", h.TamGiam.Update)
				tamGiam.DELETE("/:id", middleware.AdminOnly(), h.TamGiam.Delete)
			}

			// Bảng điều khiển.
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/stats", h.Report.Stats)
				dashboard.GET("/alerts", h.Report.Alerts)
			}

			// Báo cáo tổng hợp.
			reports := authorized.Group("/reports")
			{
				reports.GET("/kiem-tra-den-han", h.Report.InspectionDue)
				reports.GET("/sap-het-han", h.Report.Expiring)
				reports.GET("/tam-giam-sap-het-han", h.Report.DetentionExpiring)
				reports.GET("/tong-hop", h.Report.Summary)
				reports.GET("/export", middleware.AdminOnly(), h.Report.Export)
			}
		}
	}
}
