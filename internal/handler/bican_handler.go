package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// BiCanHandler quản lý bị can, luôn gắn dưới một vụ án.
type BiCanHandler struct {
	biCanSvc *service.BiCanService
}

func NewBiCanHandler(biCanSvc *service.BiCanService) *BiCanHandler {
	return &BiCanHandler{biCanSvc: biCanSvc}
}

// List GET /api/v1/vu-an/:id/bi-can
func (h *BiCanHandler) List(c *gin.Context) {
	items, err := h.biCanSvc.ListByVuAn(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items, "total": len(items)})
}

// Get GET /api/v1/vu-an/:id/bi-can/:bi_can_id
func (h *BiCanHandler) Get(c *gin.Context) {
	biCan, err := h.biCanSvc.Get(c.Request.Context(), c.Param("id"), c.Param("bi_can_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, biCan)
}

// Create POST /api/v1/vu-an/:id/bi-can
func (h *BiCanHandler) Create(c *gin.Context) {
	var req service.CreateBiCanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	biCan, err := h.biCanSvc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, biCan)
}

// Update PUT /api/v1/vu-an/:id/bi-can/:bi_can_id
func (h *BiCanHandler) Update(c *gin.Context) {
	var req service.UpdateBiCanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	biCan, err := h.biCanSvc.Update(c.Request.Context(), c.Param("id"), c.Param("bi_can_id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, biCan)
}

// Delete DELETE /api/v1/vu-an/:id/bi-can/:bi_can_id
func (h *BiCanHandler) Delete(c *gin.Context) {
	if err := h.biCanSvc.Delete(c.Request.Context(), c.Param("id"), c.Param("bi_can_id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá bị can"})
}

// Indict POST /api/v1/vu-an/:id/bi-can/:bi_can_id/khoi-to
// Khởi tố bị can; nếu biện pháp là tạm giam thì lệnh tạm giam được mở tự động.
func (h *BiCanHandler) Indict(c *gin.Context) {
	var req service.IndictBiCanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	biCan, err := h.biCanSvc.Indict(c.Request.Context(), c.Param("bi_can_id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, biCan)
}
