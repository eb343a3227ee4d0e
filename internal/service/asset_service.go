package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
)

// AssetService nghiệp vụ hồ sơ tài sản cho cả 5 biến thể.
// Payload tạo/sửa nhận JSON thô vì bộ trường mỗi biến thể khác nhau;
// phần kiểm tra dữ liệu dựa trên bảng tra biến thể.
type AssetService struct {
	repo    *repository.AssetRepository
	seqRepo *repository.SequenceRepository
	now     nowFunc
}

func NewAssetService(repo *repository.AssetRepository, seqRepo *repository.SequenceRepository) *AssetService {
	return &AssetService{repo: repo, seqRepo: seqRepo, now: time.Now}
}

func variantOrErr(t entity.AssetType) (*entity.AssetVariant, error) {
	v := entity.VariantOf(t)
	if v == nil {
		return nil, Invalid("loại tài sản không hợp lệ: %s", t)
	}
	return v, nil
}

// List phân trang + tìm kiếm + lọc.
func (s *AssetService) List(ctx context.Context, t entity.AssetType, page, pageSize int, search string, filters map[string]string) ([]entity.AssetRecord, int64, error) {
	if _, err := variantOrErr(t); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, t, page, pageSize, search, filters)
}

func (s *AssetService) Get(ctx context.Context, t entity.AssetType, id string) (entity.AssetRecord, error) {
	if _, err := variantOrErr(t); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, t, id)
}

// Create tạo tài sản mới. Người nhập có thể tự đặt mã tài sản; bỏ
// trống thì hệ thống cấp mã theo kỳ tháng.
func (s *AssetService) Create(ctx context.Context, t entity.AssetType, payload []byte) (entity.AssetRecord, error) {
	v, err := variantOrErr(t)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, Invalid("payload không phải JSON hợp lệ: %v", err)
	}
	if err := s.validate(v, data, false); err != nil {
		return nil, err
	}

	rec := v.New()
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, Invalid("dữ liệu tài sản không hợp lệ: %v", err)
	}

	code, _ := data["ma_tai_san"].(string)
	code = strings.TrimSpace(code)
	if code == "" {
		code, err = s.generateCode(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("cấp mã tài sản: %w", err)
		}
	} else {
		if _, err := s.repo.FindByCode(ctx, v.Type, code); err == nil {
			return nil, Invalid("mã tài sản đã tồn tại: %s", code)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	rec.SetMaTaiSan(code)

	s.applyPeriod(v, rec)
	s.recomputeNextInspection(v, rec)

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update sửa tài sản theo kiểu gộp từng trường: trường vắng mặt trong
// payload giữ nguyên. Mã tài sản, id và thời điểm tạo không đổi được.
func (s *AssetService) Update(ctx context.Context, t entity.AssetType, id string, payload []byte) (entity.AssetRecord, error) {
	v, err := variantOrErr(t)
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.FindByID(ctx, t, id)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, Invalid("payload không phải JSON hợp lệ: %v", err)
	}
	if err := s.validate(v, data, true); err != nil {
		return nil, err
	}

	base := *rec.Base()
	code := rec.MaTaiSan()
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, Invalid("dữ liệu tài sản không hợp lệ: %v", err)
	}
	*rec.Base() = base
	rec.SetMaTaiSan(code)

	s.applyPeriod(v, rec)
	// Chỉ tính lại khi payload động đến ngày kiểm tra gần nhất; ngày
	// tiếp theo nhập tay trong các trường hợp khác được giữ nguyên.
	if _, touched := data["ngay_kiem_tra_gan_nhat"]; touched {
		s.recomputeNextInspection(v, rec)
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete xoá mềm; mã tài sản của bản ghi đã xoá không được cấp lại.
func (s *AssetService) Delete(ctx context.Context, t entity.AssetType, id string) error {
	if _, err := variantOrErr(t); err != nil {
		return err
	}
	rec, err := s.repo.FindByID(ctx, t, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, rec)
}

// validate áp bộ luật chung: trường bắt buộc khi tạo, tên tối thiểu 3
// ký tự, số lượng >= 1, giá trị còn lại không vượt nguyên giá, ngày
// kiểm tra tiếp theo không sớm hơn ngày gần nhất.
func (s *AssetService) validate(v *entity.AssetVariant, data map[string]interface{}, isUpdate bool) error {
	if !isUpdate {
		for _, field := range v.Required {
			if isEmptyValue(data[field]) {
				return Invalid("thiếu trường bắt buộc: %s", field)
			}
		}
	}
	if name, ok := data[v.NameField].(string); ok && name != "" && len([]rune(name)) < 3 {
		return Invalid("%s phải có ít nhất 3 ký tự", v.NameField)
	}
	if qty, ok := numberValue(data["so_luong"]); ok && qty < 1 {
		return Invalid("so_luong phải lớn hơn hoặc bằng 1")
	}
	conLai, hasConLai := numberValue(data["gia_tri_con_lai"])
	nguyenGia, hasNguyenGia := numberValue(data["nguyen_gia"])
	if hasConLai && hasNguyenGia && conLai > nguyenGia {
		return Invalid("gia_tri_con_lai không được vượt quá nguyen_gia")
	}
	ganNhat, err1 := dateValue(data["ngay_kiem_tra_gan_nhat"])
	tiepTheo, err2 := dateValue(data["ngay_kiem_tra_tiep_theo"])
	if err1 != nil {
		return Invalid("ngay_kiem_tra_gan_nhat không hợp lệ")
	}
	if err2 != nil {
		return Invalid("ngay_kiem_tra_tiep_theo không hợp lệ")
	}
	if ganNhat != nil && tiepTheo != nil && tiepTheo.Before(*ganNhat) {
		return Invalid("ngay_kiem_tra_tiep_theo phải từ ngay_kiem_tra_gan_nhat trở đi")
	}
	return nil
}

// applyPeriod ép chu kỳ cố định cho biến thể có FixedPeriod.
func (s *AssetService) applyPeriod(v *entity.AssetVariant, rec entity.AssetRecord) {
	if v.FixedPeriod != "" {
		rec.Inspection().DinhKyKiemTra = v.FixedPeriod
	}
}

// recomputeNextInspection tính lại ngày kiểm tra tiếp theo từ ngày gần
// nhất và chu kỳ. Thiếu một trong hai thì giữ nguyên giá trị đang có.
func (s *AssetService) recomputeNextInspection(v *entity.AssetVariant, rec entity.AssetRecord) {
	insp := rec.Inspection()
	if insp.NgayKiemTraGanNhat == nil {
		return
	}
	next, ok := schedule.NextDue(insp.NgayKiemTraGanNhat.Time, insp.DinhKyKiemTra)
	if !ok {
		return
	}
	insp.NgayKiemTraTiepTheo = entity.DatePtr(next)
}

// generateCode cấp mã PREFIX + YYMM + số thứ tự 3 chữ số, đếm riêng
// từng kỳ tháng. Counter của kỳ mới được mồi từ mã lớn nhất sẵn có
// (kể cả bản ghi xoá mềm) nên mã cũ không bao giờ bị cấp lại.
func (s *AssetService) generateCode(ctx context.Context, v *entity.AssetVariant) (string, error) {
	now := s.now()
	period := fmt.Sprintf("%s%02d%02d", v.Prefix, now.Year()%100, int(now.Month()))
	seq, err := s.seqRepo.Next(ctx, "asset:"+period, func(ctx context.Context) (int64, error) {
		return s.repo.MaxCodeSuffix(ctx, v.Type, period)
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", period, seq), nil
}

func isEmptyValue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return false
	default:
		return false
	}
}

func numberValue(v interface{}) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func dateValue(v interface{}) (*time.Time, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d.Time, nil
}
