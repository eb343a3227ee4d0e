package service

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/schedule"
)

// ExportService xuất danh sách tài sản và sổ báo cáo ra Excel. Nếu có
// MinIO thì lưu thêm một bản vào kho đối tượng để đối chiếu về sau.
type ExportService struct {
	assetRepo  *repository.AssetRepository
	tinBaoRepo *repository.TinBaoRepository
	minio      *minio.Client
	bucket     string
	logger     *zap.Logger
	now        nowFunc
}

func NewExportService(assetRepo *repository.AssetRepository, tinBaoRepo *repository.TinBaoRepository, minioClient *minio.Client, bucket string, logger *zap.Logger) *ExportService {
	return &ExportService{
		assetRepo:  assetRepo,
		tinBaoRepo: tinBaoRepo,
		minio:      minioClient,
		bucket:     bucket,
		logger:     logger,
		now:        time.Now,
	}
}

// ExportAssets xuất toàn bộ tài sản chưa xoá của một nhóm ra một file
// Excel, mỗi biến thể có bộ cột riêng.
func (s *ExportService) ExportAssets(ctx context.Context, t entity.AssetType) (*excelize.File, string, error) {
	v := entity.VariantOf(t)
	if v == nil {
		return nil, "", Invalid("loại tài sản không hợp lệ: %s", t)
	}
	assets, err := s.assetRepo.ListActive(ctx, t)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := truncateSheetName("Danh sách " + v.TenNhom)
	f.SetSheetName("Sheet1", sheet)
	if err := s.writeAssetSheet(f, sheet, t, assets); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.xlsx", t, s.now().Format("20060102_150405"))
	return f, filename, nil
}

// ExportReport dựng sổ báo cáo: một sheet tổng hợp cộng năm sheet chi
// tiết theo từng nhóm tài sản.
func (s *ExportService) ExportReport(ctx context.Context) (*excelize.File, string, error) {
	f := excelize.NewFile()
	summarySheet := "Tổng hợp"
	f.SetSheetName("Sheet1", summarySheet)

	today := s.now()
	type typeBlock struct {
		t      entity.AssetType
		count  int
		values ValueSummary
	}
	blocks := make([]typeBlock, 0, len(entity.AssetTypeOrder))
	var totalAssets, overdue, dueSoon, normal int
	var totalValue ValueSummary

	for _, t := range entity.AssetTypeOrder {
		v := entity.VariantOf(t)
		assets, err := s.assetRepo.ListActive(ctx, t)
		if err != nil {
			return nil, "", err
		}

		block := typeBlock{t: t, count: len(assets)}
		for _, asset := range assets {
			ng, remain := asset.GiaTri()
			if ng != nil {
				block.values.NguyenGia += *ng
			}
			if remain != nil {
				block.values.GiaTriConLai += *remain
			}
			if due := asset.Inspection().NgayKiemTraTiepTheo; due != nil {
				switch schedule.Classify(due.Time, today) {
				case schedule.StatusOverdue:
					overdue++
				case schedule.StatusDueSoon:
					dueSoon++
				default:
					normal++
				}
			}
		}
		totalAssets += block.count
		totalValue.NguyenGia += block.values.NguyenGia
		totalValue.GiaTriConLai += block.values.GiaTriConLai
		blocks = append(blocks, block)

		detailSheet := truncateSheetName(v.TenNhom)
		if _, err := f.NewSheet(detailSheet); err != nil {
			return nil, "", err
		}
		if err := s.writeAssetSheet(f, detailSheet, t, assets); err != nil {
			return nil, "", err
		}
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.MergeCell(summarySheet, "A1", "F1")
	f.SetCellValue(summarySheet, "A1", "BÁO CÁO & THỐNG KÊ TÀI SẢN")
	f.SetCellStyle(summarySheet, "A1", "A1", titleStyle)

	f.SetCellValue(summarySheet, "A2", "Ngày xuất")
	f.SetCellValue(summarySheet, "B2", today.Format("02/01/2006 15:04"))
	f.SetCellValue(summarySheet, "A3", "Tổng số tài sản")
	f.SetCellValue(summarySheet, "B3", totalAssets)
	f.SetCellValue(summarySheet, "A4", "Tổng nguyên giá (VND)")
	f.SetCellValue(summarySheet, "B4", totalValue.NguyenGia)
	f.SetCellValue(summarySheet, "A5", "Tổng giá trị còn lại (VND)")
	f.SetCellValue(summarySheet, "B5", totalValue.GiaTriConLai)
	f.SetCellStyle(summarySheet, "A2", "A5", boldStyle)

	f.SetCellValue(summarySheet, "D2", "Quá hạn")
	f.SetCellValue(summarySheet, "E2", overdue)
	f.SetCellValue(summarySheet, "D3", "Sắp hết hạn (≤15 ngày)")
	f.SetCellValue(summarySheet, "E3", dueSoon)
	f.SetCellValue(summarySheet, "D4", "Còn hạn")
	f.SetCellValue(summarySheet, "E4", normal)
	f.SetCellStyle(summarySheet, "D2", "D4", boldStyle)

	headerStyle := s.headerStyle(f)
	tableHeaders := []string{"Danh mục", "Số lượng", "Tổng nguyên giá (VND)", "Giá trị còn lại (VND)"}
	const tableStart = 7
	for i, h := range tableHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, tableStart)
		f.SetCellValue(summarySheet, cell, h)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}
	for i, block := range blocks {
		row := tableStart + 1 + i
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), entity.VariantOf(block.t).TenNhom)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), block.count)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), block.values.NguyenGia)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), block.values.GiaTriConLai)
	}

	colWidths := []float64{26, 18, 25, 25, 15}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(summarySheet, col, col, w)
	}

	filename := fmt.Sprintf("bao_cao_tai_san_%s.xlsx", s.now().Format("20060102_150405"))
	return f, filename, nil
}

// ExportTinBao xuất sổ tin báo đang thụ lý.
func (s *ExportService) ExportTinBao(ctx context.Context) (*excelize.File, string, error) {
	items, _, err := s.tinBaoRepo.List(ctx, 1, 10000, "", "", "")
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Tin báo"
	f.SetSheetName("Sheet1", sheet)

	headerStyle := s.headerStyle(f)
	for i, h := range tinBaoColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 22)
	}
	for i := range items {
		tb := &items[i]
		row := i + 2
		values := []interface{}{
			tb.STT, tb.DieuLuat, tb.TenNguonTin, cellDate(&tb.NgayXayRa),
			tb.NoiXayRa, tb.NoiDungNguonTin, tb.SoQDPhanCongPTT,
			tb.SoQDPhanCongDTV, cellDate(tb.NgayPhanCong), tb.KetQuaGiaiQuyet,
			tb.ThongTinDoiTuong, tb.CongAnPhuTrach, tb.DonVi, tb.KiemSatVien,
			tb.GiaHan, cellDate(tb.NgayHetHan), tb.TinhTrangHoSo,
			tb.TrangThai, tb.GhiChu,
		}
		for j, value := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
		}
	}

	filename := fmt.Sprintf("tin_bao_%s.xlsx", s.now().Format("20060102_150405"))
	return f, filename, nil
}

// Archive đẩy file Excel vừa xuất lên MinIO. Không có MinIO hoặc đẩy
// lỗi thì chỉ ghi log, không làm hỏng lượt tải của người dùng.
func (s *ExportService) Archive(ctx context.Context, f *excelize.File, filename string) {
	if s.minio == nil || s.bucket == "" {
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Warn("không ghi được file xuất ra bộ đệm", zap.Error(err))
		return
	}
	objectName := fmt.Sprintf("exports/%s/%s", s.now().Format("2006-01"), filename)
	_, err = s.minio.PutObject(ctx, s.bucket, objectName, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		s.logger.Warn("lưu file xuất lên MinIO thất bại",
			zap.String("object", objectName), zap.Error(err))
		return
	}
	s.logger.Info("đã lưu file xuất lên MinIO", zap.String("object", objectName))
}

func (s *ExportService) headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

func (s *ExportService) writeAssetSheet(f *excelize.File, sheet string, t entity.AssetType, assets []entity.AssetRecord) error {
	headers := assetExportHeaders(t)
	headerStyle := s.headerStyle(f)
	for i, h := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 20)
	}
	for i, asset := range assets {
		row := i + 2
		for j, value := range assetExportValues(t, asset) {
			col, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), value)
		}
	}
	return nil
}

// tinBaoColumns là bộ cột sổ tin báo, giữ đúng tiêu đề sổ giấy đơn vị
// đang dùng.
var tinBaoColumns = []string{
	"STT", "Điều luật", "Tên nguồn tin", "Ngày xảy ra", "Nơi xảy ra",
	"Nội dung nguồn tin", "Số QĐ phân công PTT/Trưởng CAX ủy quyền",
	"Số QĐ phân công ĐTV", "Ngày phân công",
	"Kết quả giải quyết (Khởi tố, Không KT, TĐC, chuyển)",
	"Bị can (đối với vụ khởi tố)", "Điều tra viên", "Đơn vị",
	"Kiểm sát viên", "Gia hạn", "Ngày hết hạn", "Tình trạng hồ sơ",
	"Trạng thái", "Ghi chú",
}

func assetExportHeaders(t entity.AssetType) []string {
	switch t {
	case entity.AssetWeapons:
		return []string{
			"Mã tài sản", "Danh mục", "Tên tài sản", "Đơn vị tính",
			"Số lượng", "Nguyên giá", "Giá trị còn lại", "Số hiệu",
			"Loại tài sản", "Thực tế bàn giao", "Định kỳ kiểm tra",
			"Ngày kiểm tra gần nhất", "Ngày kiểm tra tiếp theo",
			"Kết quả kiểm tra", "Năm hết hạn", "Ghi chú",
		}
	case entity.AssetVehicles:
		return []string{
			"Mã tài sản", "Danh mục PT", "Tên phương tiện", "Đơn vị tính",
			"Nguyên giá", "Số lượng", "Biển số", "Số khung/Số thân vỏ",
			"Số máy", "Năm trang bị", "Loại tài sản", "Thực tế bàn giao",
			"Ngày đăng kiểm", "Ngày thay nhớt", "Ngày thay vỏ",
			"Định kỳ kiểm tra", "Ngày kiểm tra gần nhất",
			"Ngày kiểm tra tiếp theo", "Kết quả kiểm tra", "Ghi chú",
		}
	case entity.AssetWater:
		return []string{
			"Mã tài sản", "Danh mục", "Tên trang bị", "Đơn vị tính",
			"Nguyên giá", "Số lượng", "Mã hiệu", "Năm trang bị",
			"Loại tài sản", "Định kỳ kiểm tra", "Ngày kiểm tra gần nhất",
			"Ngày kiểm tra tiếp theo", "Kết quả kiểm tra", "Năm hết hạn",
			"Ghi chú",
		}
	case entity.AssetOffice:
		return []string{
			"Mã tài sản", "Tên thiết bị", "Năm sử dụng", "Số lượng",
			"Nguyên giá", "Giá trị còn lại", "Loại tài sản",
			"Thực tế bàn giao", "Hình thức", "Sự kiện", "Chi phí",
			"Định kỳ kiểm tra", "Ngày kiểm tra gần nhất",
			"Ngày kiểm tra tiếp theo", "Kết quả kiểm tra", "Năm hết hạn",
			"Ghi chú",
		}
	default: // technical
		return []string{
			"Mã tài sản", "Tên thiết bị", "Năm sử dụng", "Số lượng",
			"Nguyên giá", "Giá trị còn lại", "Loại tài sản",
			"Thực tế bàn giao", "Định kỳ kiểm tra",
			"Ngày kiểm tra gần nhất", "Ngày kiểm tra tiếp theo",
			"Kết quả kiểm tra", "Năm hết hạn", "Ghi chú",
		}
	}
}

func assetExportValues(t entity.AssetType, rec entity.AssetRecord) []interface{} {
	switch a := rec.(type) {
	case *entity.VuKhiCongCuHoTro:
		return []interface{}{
			a.MaTaiSanField, a.MaDanhMuc, a.TenTaiSan, a.DonViTinh,
			a.SoLuong, cellFloat(a.NguyenGia), cellFloat(a.GiaTriConLai),
			a.SoHieu, a.LoaiTaiSan, a.ThucTeBanGiao, a.DinhKyKiemTra,
			cellDate(a.NgayKiemTraGanNhat), cellDate(a.NgayKiemTraTiepTheo),
			a.KetQuaKiemTra, cellInt(a.NamHetHan), a.GhiChu,
		}
	case *entity.PhuongTien:
		return []interface{}{
			a.MaTaiSanField, a.DanhMucPhuongTien, a.TenPhuongTien,
			a.DonViTinh, cellFloat(a.NguyenGia), a.SoLuong, a.BienSoKyHieu,
			a.SoKhungSoThanVo, a.SoMay, cellInt(a.NamTrangBi),
			a.LoaiTaiSan, a.ThucTeBanGiao, cellDate(a.NgayDangKiem),
			cellDate(a.NgayThayNhot), cellDate(a.NgayThayVo),
			a.DinhKyKiemTra, cellDate(a.NgayKiemTraGanNhat),
			cellDate(a.NgayKiemTraTiepTheo), a.KetQuaKiemTra, a.GhiChu,
		}
	case *entity.TrangThietBiThuy:
		return []interface{}{
			a.MaTaiSanField, a.DanhMucTrangThietBi, a.TenTrangBi,
			a.DonViTinh, cellFloat(a.NguyenGia), a.SoLuong, a.MaHieu,
			cellInt(a.NamTrangBi), a.LoaiTaiSan, a.DinhKyKiemTra,
			cellDate(a.NgayKiemTraGanNhat), cellDate(a.NgayKiemTraTiepTheo),
			a.KetQuaKiemTra, cellInt(a.NamHetHan), a.GhiChu,
		}
	case *entity.ThietBiVanPhong:
		return []interface{}{
			a.MaTaiSanField, a.TenTaiSan, cellInt(a.NamSuDung), a.SoLuong,
			cellFloat(a.NguyenGia), cellFloat(a.GiaTriConLai),
			a.LoaiTaiSan, a.ThucTeBanGiao, a.HinhThuc, a.SuKien,
			cellFloat(a.ChiPhi), a.DinhKyKiemTra,
			cellDate(a.NgayKiemTraGanNhat), cellDate(a.NgayKiemTraTiepTheo),
			a.KetQuaKiemTra, cellInt(a.NamHetHan), a.GhiChu,
		}
	case *entity.ThietBiKyThuat:
		return []interface{}{
			a.MaTaiSanField, a.TenTaiSan, cellInt(a.NamSuDung), a.SoLuong,
			cellFloat(a.NguyenGia), cellFloat(a.GiaTriConLai),
			a.LoaiTaiSan, a.ThucTeBanGiao, a.DinhKyKiemTra,
			cellDate(a.NgayKiemTraGanNhat), cellDate(a.NgayKiemTraTiepTheo),
			a.KetQuaKiemTra, cellInt(a.NamHetHan), a.GhiChu,
		}
	default:
		_ = t
		return nil
	}
}

func cellDate(d *entity.Date) interface{} {
	if d == nil || d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func cellFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func cellInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// Tên sheet Excel tối đa 31 ký tự.
func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) > 31 {
		return string(runes[:31])
	}
	return name
}
