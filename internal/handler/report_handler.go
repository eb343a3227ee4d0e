package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// ReportHandler phục vụ bảng điều khiển và các báo cáo tổng hợp.
type ReportHandler struct {
	reportSvc *service.ReportService
	exportSvc *service.ExportService
}

func NewReportHandler(reportSvc *service.ReportService, exportSvc *service.ExportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc}
}

func daysQuery(c *gin.Context, def int) (int, bool) {
	days := def
	if d := c.Query("days"); d != "" {
		v, err := strconv.Atoi(d)
		if err != nil || v < 1 || v > 365 {
			BadRequest(c, "Tham số days không hợp lệ")
			return 0, false
		}
		days = v
	}
	return days, true
}

// Stats GET /api/v1/dashboard/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.reportSvc.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, stats)
}

// Alerts GET /api/v1/dashboard/alerts?limit=5
func (h *ReportHandler) Alerts(c *gin.Context) {
	limit := 5
	if l := c.Query("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 || v > 50 {
			BadRequest(c, "Tham số limit không hợp lệ")
			return
		}
		limit = v
	}
	Success(c, gin.H{"items": h.reportSvc.TopAlerts(c.Request.Context(), limit)})
}

// InspectionDue GET /api/v1/reports/kiem-tra-den-han?days=15
func (h *ReportHandler) InspectionDue(c *gin.Context) {
	days, ok := daysQuery(c, 15)
	if !ok {
		return
	}
	report, err := h.reportSvc.InspectionDue(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, report)
}

// Expiring GET /api/v1/reports/sap-het-han?days=15
func (h *ReportHandler) Expiring(c *gin.Context) {
	days, ok := daysQuery(c, 15)
	if !ok {
		return
	}
	report, err := h.reportSvc.Expiring(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, report)
}

// Summary GET /api/v1/reports/tong-hop
func (h *ReportHandler) Summary(c *gin.Context) {
	report, err := h.reportSvc.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, report)
}

// DetentionExpiring GET /api/v1/reports/tam-giam-sap-het-han?days=7
func (h *ReportHandler) DetentionExpiring(c *gin.Context) {
	days, ok := daysQuery(c, 7)
	if !ok {
		return
	}
	items, err := h.reportSvc.DetentionExpiring(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"days": days, "items": items, "total": len(items)})
}

// Export GET /api/v1/reports/export - file Excel tổng hợp toàn bộ tài sản.
func (h *ReportHandler) Export(c *gin.Context) {
	f, filename, err := h.exportSvc.ExportReport(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	h.exportSvc.Archive(c.Request.Context(), f, filename)
	WriteExcel(c, f, filename)
}
