package service

import (
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hctech/phuocthai-backend/internal/config"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// ValidationError là lỗi dữ liệu đầu vào, handler trả về 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid tạo ValidationError theo định dạng fmt.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// nowFunc cho phép test gắn đồng hồ cố định.
type nowFunc func() time.Time

// Services gom toàn bộ tầng nghiệp vụ.
type Services struct {
	Auth         *AuthService
	User         *UserService
	Asset        *AssetService
	Notification *NotificationService
	Maintenance  *MaintenanceService
	TinBao       *TinBaoService
	VuAn         *VuAnService
	BiCan        *BiCanService
	TamGiam      *TamGiamService
	Report       *ReportService
	Export       *ExportService
	Import       *ImportService
}

// NewServices khởi tạo tầng nghiệp vụ. MinIO không bắt buộc: thiếu cấu
// hình thì bỏ qua bước lưu file xuất lên kho đối tượng.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warn("khởi tạo MinIO thất bại, bỏ qua lưu trữ file", zap.Error(err))
			minioClient = nil
		}
	}

	notifySvc := NewNotificationService(repos.Asset, rdb, logger)
	assetSvc := NewAssetService(repos.Asset, repos.Sequence)

	return &Services{
		Auth:         NewAuthService(repos.User, rdb, cfg),
		User:         NewUserService(repos.User),
		Asset:        assetSvc,
		Notification: notifySvc,
		Maintenance:  NewMaintenanceService(repos.Maintenance, repos.Asset),
		TinBao:       NewTinBaoService(repos.TinBao, repos.VuAn, repos.Sequence),
		VuAn:         NewVuAnService(repos.VuAn, repos.TinBao, repos.BiCan, repos.TamGiam, repos.Sequence),
		BiCan:        NewBiCanService(repos.BiCan, repos.VuAn, repos.TamGiam),
		TamGiam:      NewTamGiamService(repos.TamGiam, repos.VuAn, repos.BiCan),
		Report:       NewReportService(repos.Asset, repos.Maintenance, repos.TinBao, repos.VuAn, repos.TamGiam, notifySvc),
		Export:       NewExportService(repos.Asset, repos.TinBao, minioClient, cfg.MinIO.Bucket, logger),
		Import:       NewImportService(assetSvc, repos.TinBao, repos.Sequence),
	}
}
