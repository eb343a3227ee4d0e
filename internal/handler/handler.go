package handler

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/hctech/phuocthai-backend/internal/config"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/service"
)

// Handlers gom toàn bộ tầng HTTP.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Asset        *AssetHandler
	Notification *NotificationHandler
	Maintenance  *MaintenanceHandler
	TinBao       *TinBaoHandler
	VuAn         *VuAnHandler
	BiCan        *BiCanHandler
	TamGiam      *TamGiamHandler
	Report       *ReportHandler
}

func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Asset:        NewAssetHandler(svc.Asset, svc.Export, svc.Import),
		Notification: NewNotificationHandler(svc.Notification),
		Maintenance:  NewMaintenanceHandler(svc.Maintenance),
		TinBao:       NewTinBaoHandler(svc.TinBao, svc.Export, svc.Import),
		VuAn:         NewVuAnHandler(svc.VuAn),
		BiCan:        NewBiCanHandler(svc.BiCan),
		TamGiam:      NewTamGiamHandler(svc.TamGiam),
		Report:       NewReportHandler(svc.Report, svc.Export),
	}
}

// Response là khung phản hồi chung: code 0 là thành công, mã 5 chữ số
// theo nhóm HTTP khi lỗi.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse bọc danh sách phân trang.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewListResponse(items interface{}, page, pageSize int, total int64) *ListResponse {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) > 0 {
		totalPages++
	}
	return &ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// HandleError ánh xạ lỗi tầng nghiệp vụ sang HTTP: lỗi dữ liệu đầu
// vào 400, không tìm thấy 404, còn lại 500 không lộ chi tiết.
func HandleError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "Không tìm thấy bản ghi")
	default:
		InternalError(c, "Có lỗi xảy ra, vui lòng thử lại sau")
	}
}

// GetUserID đọc id người dùng do middleware JWT gắn vào.
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// GetFullName đọc họ tên người đang đăng nhập.
func GetFullName(c *gin.Context) string {
	return c.GetString("full_name")
}

// GetPagination đọc tham số phân trang, mặc định trang 1 cỡ 20.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}

// WriteExcel trả file Excel về client dạng attachment.
func WriteExcel(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename*=UTF-8''`+url.PathEscape(filename))
	c.Header("Content-Transfer-Encoding", "binary")
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}

// OpenUploadedExcel mở file Excel từ form multipart (field "file").
func OpenUploadedExcel(c *gin.Context) (*excelize.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, service.Invalid("không tìm thấy file trong request")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, service.Invalid("không mở được file: %v", err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, service.Invalid("không đọc được file Excel: %v", err)
	}
	return f, nil
}
