package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// MaintenanceHandler quản lý sổ kiểm tra bảo trì theo mã tài sản.
type MaintenanceHandler struct {
	maintSvc *service.MaintenanceService
}

func NewMaintenanceHandler(maintSvc *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintSvc: maintSvc}
}

// History GET /api/v1/maintenance/:ma_tai_san
func (h *MaintenanceHandler) History(c *gin.Context) {
	records, err := h.maintSvc.History(c.Request.Context(), c.Param("ma_tai_san"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": records, "total": len(records)})
}

// Create POST /api/v1/maintenance
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req service.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	record, err := h.maintSvc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, record)
}

// Update PUT /api/v1/maintenance/:id
func (h *MaintenanceHandler) Update(c *gin.Context) {
	var req service.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	record, err := h.maintSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, record)
}

// Delete DELETE /api/v1/maintenance/:id
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.maintSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá bản ghi bảo trì"})
}
