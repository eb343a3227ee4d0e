package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// TamGiamHandler quản lý sổ theo dõi tạm giữ, tạm giam.
type TamGiamHandler struct {
	tamGiamSvc *service.TamGiamService
}

func NewTamGiamHandler(tamGiamSvc *service.TamGiamService) *TamGiamHandler {
	return &TamGiamHandler{tamGiamSvc: tamGiamSvc}
}

// List GET /api/v1/tam-giam
func (h *TamGiamHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	items, total, err := h.tamGiamSvc.List(c.Request.Context(), page, pageSize,
		c.Query("trang_thai_giam"), c.Query("vu_an_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, NewListResponse(items, page, pageSize, total))
}

// Expiring GET /api/v1/tam-giam/sap-het-han?days=7
func (h *TamGiamHandler) Expiring(c *gin.Context) {
	days := 7
	if d := c.Query("days"); d != "" {
		v, err := strconv.Atoi(d)
		if err != nil || v < 1 {
			BadRequest(c, "Tham số days không hợp lệ")
			return
		}
		days = v
	}

	items, err := h.tamGiamSvc.Expiring(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"days": days, "items": items, "total": len(items)})
}

// Get GET /api/v1/tam-giam/:id
func (h *TamGiamHandler) Get(c *gin.Context) {
	detail, err := h.tamGiamSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, detail)
}

// Create POST /api/v1/tam-giam
func (h *TamGiamHandler) Create(c *gin.Context) {
	var req service.CreateTamGiamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	tg, err := h.tamGiamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, tg)
}

// Update PUT /api/v1/tam-giam/:id
func (h *TamGiamHandler) Update(c *gin.Context) {
	var req service.UpdateTamGiamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	tg, err := h.tamGiamSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, tg)
}

// Delete DELETE /api/v1/tam-giam/:id - chỉ admin.
func (h *TamGiamHandler) Delete(c *gin.Context) {
	if err := h.tamGiamSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá lệnh tạm giam"})
}
