package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/service"
)

// TinBaoHandler quản lý sổ tiếp nhận tin báo, tố giác tội phạm và
// bước chuyển hoá sang vụ án.
type TinBaoHandler struct {
	tinBaoSvc *service.TinBaoService
	exportSvc *service.ExportService
	importSvc *service.ImportService
}

func NewTinBaoHandler(tinBaoSvc *service.TinBaoService, exportSvc *service.ExportService, importSvc *service.ImportService) *TinBaoHandler {
	return &TinBaoHandler{tinBaoSvc: tinBaoSvc, exportSvc: exportSvc, importSvc: importSvc}
}

// List GET /api/v1/tin-bao
func (h *TinBaoHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)

	items, total, err := h.tinBaoSvc.List(c.Request.Context(), page, pageSize,
		c.Query("search"), c.Query("trang_thai"), c.Query("cong_an_phu_trach"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, NewListResponse(items, page, pageSize, total))
}

// Get GET /api/v1/tin-bao/:id
func (h *TinBaoHandler) Get(c *gin.Context) {
	tb, err := h.tinBaoSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, tb)
}

// Create POST /api/v1/tin-bao
func (h *TinBaoHandler) Create(c *gin.Context) {
	var req service.CreateTinBaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	tb, err := h.tinBaoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, tb)
}

// Update PUT /api/v1/tin-bao/:id
func (h *TinBaoHandler) Update(c *gin.Context) {
	var req service.UpdateTinBaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	tb, err := h.tinBaoSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, tb)
}

// Delete DELETE /api/v1/tin-bao/:id
func (h *TinBaoHandler) Delete(c *gin.Context) {
	if err := h.tinBaoSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá tin báo"})
}

// Preview GET /api/v1/tin-bao/:id/preview-vu-an
func (h *TinBaoHandler) Preview(c *gin.Context) {
	preview, err := h.tinBaoSvc.PreviewVuAn(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, preview)
}

// Convert POST /api/v1/tin-bao/:id/convert
// Người thực hiện chuyển hoá lấy từ token đăng nhập.
func (h *TinBaoHandler) Convert(c *gin.Context) {
	var req service.ConvertTinBaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	tb, vuAn, err := h.tinBaoSvc.Convert(c.Request.Context(), c.Param("id"), &req, GetFullName(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, gin.H{"tin_bao": tb, "vu_an": vuAn})
}

// History GET /api/v1/tin-bao/:id/conversion-history
func (h *TinBaoHandler) History(c *gin.Context) {
	items, err := h.tinBaoSvc.ConversionHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"items": items, "total": len(items)})
}

// Export GET /api/v1/tin-bao/export
func (h *TinBaoHandler) Export(c *gin.Context) {
	f, filename, err := h.exportSvc.ExportTinBao(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	h.exportSvc.Archive(c.Request.Context(), f, filename)
	WriteExcel(c, f, filename)
}

// Import POST /api/v1/tin-bao/import
func (h *TinBaoHandler) Import(c *gin.Context) {
	f, err := OpenUploadedExcel(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer f.Close()

	result, err := h.importSvc.ImportTinBao(c.Request.Context(), f)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// Template GET /api/v1/tin-bao/template
func (h *TinBaoHandler) Template(c *gin.Context) {
	f, filename, err := h.importSvc.TinBaoTemplate()
	if err != nil {
		HandleError(c, err)
		return
	}
	WriteExcel(c, f, filename)
}
