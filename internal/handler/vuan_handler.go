package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// VuAnHandler quản lý sổ thụ lý vụ án hình sự.
type VuAnHandler struct {
	vuAnSvc *service.VuAnService
}

func NewVuAnHandler(vuAnSvc *service.VuAnService) *VuAnHandler {
	return &VuAnHandler{vuAnSvc: vuAnSvc}
}

// List GET /api/v1/vu-an
func (h *VuAnHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	items, total, err := h.vuAnSvc.List(c.Request.Context(), page, pageSize,
		c.Query("search"), c.Query("trang_thai"), c.Query("dieu_tra_vien"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, NewListResponse(items, page, pageSize, total))
}

// Get GET /api/v1/vu-an/:id - kèm danh sách bị can và tóm tắt.
func (h *VuAnHandler) Get(c *gin.Context) {
	detail, err := h.vuAnSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, detail)
}

// Create POST /api/v1/vu-an
func (h *VuAnHandler) Create(c *gin.Context) {
	var req service.CreateVuAnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	vuAn, err := h.vuAnSvc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, vuAn)
}

// Update PUT /api/v1/vu-an/:id
func (h *VuAnHandler) Update(c *gin.Context) {
	var req service.UpdateVuAnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	vuAn, err := h.vuAnSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, vuAn)
}

// Delete DELETE /api/v1/vu-an/:id
func (h *VuAnHandler) Delete(c *gin.Context) {
	if err := h.vuAnSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá vụ án"})
}

// FileCase POST /api/v1/vu-an/:id/khoi-to - chuyển sang trạng thái đã khởi tố.
func (h *VuAnHandler) FileCase(c *gin.Context) {
	var req service.FileCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	vuAn, err := h.vuAnSvc.FileCase(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, vuAn)
}

// Resolution PUT /api/v1/vu-an/:id/ket-qua - cập nhật kết quả giải quyết.
func (h *VuAnHandler) Resolution(c *gin.Context) {
	var req service.ResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	vuAn, err := h.vuAnSvc.UpdateResolution(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, vuAn)
}
