package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/service"
)

// AssetHandler phục vụ CRUD, nhập và xuất Excel cho cả 5 nhóm tài sản.
// Nhóm tài sản lấy từ path param :type, body tạo/sửa là JSON thô vì
// bộ trường mỗi nhóm khác nhau.
type AssetHandler struct {
	assetSvc  *service.AssetService
	exportSvc *service.ExportService
	importSvc *service.ImportService
}

func NewAssetHandler(assetSvc *service.AssetService, exportSvc *service.ExportService, importSvc *service.ImportService) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc, exportSvc: exportSvc, importSvc: importSvc}
}

// assetFilterCols là các cột được phép lọc đẳng thức qua query string.
// Danh sách đóng để tên cột không bao giờ đến từ client.
var assetFilterCols = []string{"loai_tai_san", "ket_qua_kiem_tra", "thuc_te_ban_giao", "vi_tri_tai_san", "danh_muc_phuong_tien"}

func assetTypeParam(c *gin.Context) (entity.AssetType, bool) {
	t := entity.AssetType(c.Param("type"))
	if entity.VariantOf(t) == nil {
		BadRequest(c, "Loại tài sản không hợp lệ: "+string(t))
		return "", false
	}
	return t, true
}

// List GET /api/v1/assets/:type
func (h *AssetHandler) List(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	page, pageSize := GetPagination(c)

	filters := make(map[string]string)
	for _, col := range assetFilterCols {
		if v := c.Query(col); v != "" {
			filters[col] = v
		}
	}

	records, total, err := h.assetSvc.List(c.Request.Context(), t, page, pageSize, c.Query("search"), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, NewListResponse(records, page, pageSize, total))
}

// Get GET /api/v1/assets/:type/:id
func (h *AssetHandler) Get(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	record, err := h.assetSvc.Get(c.Request.Context(), t, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, record)
}

// Create POST /api/v1/assets/:type
func (h *AssetHandler) Create(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		BadRequest(c, "Thiếu dữ liệu tài sản")
		return
	}

	record, err := h.assetSvc.Create(c.Request.Context(), t, payload)
	if err != nil {
		HandleError(c, err)
		return
	}
	Created(c, record)
}

// Update PUT /api/v1/assets/:type/:id
func (h *AssetHandler) Update(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		BadRequest(c, "Thiếu dữ liệu tài sản")
		return
	}

	record, err := h.assetSvc.Update(c.Request.Context(), t, c.Param("id"), payload)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, record)
}

// Delete DELETE /api/v1/assets/:type/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	if err := h.assetSvc.Delete(c.Request.Context(), t, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	Success(c, gin.H{"message": "Đã xoá tài sản"})
}

// Export GET /api/v1/assets/:type/export
func (h *AssetHandler) Export(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	f, filename, err := h.exportSvc.ExportAssets(c.Request.Context(), t)
	if err != nil {
		HandleError(c, err)
		return
	}
	h.exportSvc.Archive(c.Request.Context(), f, filename)
	WriteExcel(c, f, filename)
}

// Import POST /api/v1/assets/:type/import
func (h *AssetHandler) Import(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	f, err := OpenUploadedExcel(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer f.Close()

	result, err := h.importSvc.ImportAssets(c.Request.Context(), t, f)
	if err != nil {
		HandleError(c, err)
		return
	}
	Success(c, result)
}

// Template GET /api/v1/assets/:type/template
func (h *AssetHandler) Template(c *gin.Context) {
	t, ok := assetTypeParam(c)
	if !ok {
		return
	}
	f, filename, err := h.importSvc.AssetTemplate(t)
	if err != nil {
		HandleError(c, err)
		return
	}
	WriteExcel(c, f, filename)
}
