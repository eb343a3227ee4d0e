package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// ImportResult tổng kết một lượt nhập Excel.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}

// importColumn ánh xạ một cột Excel sang khoá JSON của entity. Header
// mang dấu * là cột bắt buộc.
type importColumn struct {
	Header string
	Field  string
}

// ImportService nhập tài sản và tin báo từ file Excel, kèm sinh file
// mẫu. Tài sản nhập từng dòng độc lập qua AssetService (dòng hỏng
// không chặn dòng khác); tin báo nhập cả lô trong một giao dịch vì
// STT phải nhất quán.
type ImportService struct {
	assetSvc   *AssetService
	tinBaoRepo *repository.TinBaoRepository
	seqRepo    *repository.SequenceRepository
	now        nowFunc
}

func NewImportService(assetSvc *AssetService, tinBaoRepo *repository.TinBaoRepository, seqRepo *repository.SequenceRepository) *ImportService {
	return &ImportService{
		assetSvc:   assetSvc,
		tinBaoRepo: tinBaoRepo,
		seqRepo:    seqRepo,
		now:        time.Now,
	}
}

// ImportAssets đọc file Excel và tạo tài sản từng dòng một. Dòng lỗi
// được ghi vào kết quả rồi bỏ qua, các dòng còn lại vẫn được nhập.
func (s *ImportService) ImportAssets(ctx context.Context, t entity.AssetType, f *excelize.File) (*ImportResult, error) {
	columns, ok := assetImportColumns[t]
	if !ok {
		return nil, Invalid("loại tài sản không hợp lệ: %s", t)
	}

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, Invalid("không đọc được file Excel: %v", err)
	}
	result := &ImportResult{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	fieldByCol, err := mapImportHeaders(rows[0], columns)
	if err != nil {
		return nil, err
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if rowIsEmpty(row) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(cellAt(row, 0)), "HƯỚNG DẪN") {
			continue
		}

		payload := make(map[string]interface{}, len(columns))
		rowOK := true
		for colIdx, field := range fieldByCol {
			raw := strings.TrimSpace(cellAt(row, colIdx))
			if raw == "" {
				continue
			}
			value, err := convertImportCell(field, raw)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: %v", rowNum, err))
				rowOK = false
				break
			}
			payload[field] = value
		}
		if !rowOK {
			result.ErrorCount++
			continue
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: %v", rowNum, err))
			result.ErrorCount++
			continue
		}
		if _, err := s.assetSvc.Create(ctx, t, raw); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: %v", rowNum, err))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

// AssetTemplate sinh file Excel mẫu cho một nhóm tài sản: dòng tiêu
// đề, một dòng ví dụ và một dòng hướng dẫn.
func (s *ImportService) AssetTemplate(t entity.AssetType) (*excelize.File, string, error) {
	columns, ok := assetImportColumns[t]
	if !ok {
		return nil, "", Invalid("loại tài sản không hợp lệ: %s", t)
	}
	v := entity.VariantOf(t)

	f := excelize.NewFile()
	sheet := truncateSheetName("Mẫu nhập " + v.TenNhom)
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	exampleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7E6E6"}},
	})
	noteStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FF0000"},
	})

	lastCol := ""
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, "", err
		}
		lastCol = col
		cell := col + "1"
		f.SetCellValue(sheet, cell, c.Header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 25)
	}
	for i, value := range assetTemplateExamples[t] {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, "", err
		}
		f.SetCellValue(sheet, col+"2", value)
	}
	f.SetCellStyle(sheet, "A2", lastCol+"2", exampleStyle)

	f.MergeCell(sheet, "A3", lastCol+"3")
	f.SetCellValue(sheet, "A3", "HƯỚNG DẪN: Xóa dòng ví dụ và nhập dữ liệu của bạn. Các cột có dấu * là bắt buộc.")
	f.SetCellStyle(sheet, "A3", "A3", noteStyle)

	return f, fmt.Sprintf("mau_nhap_%s.xlsx", t), nil
}

// ImportTinBao nhập sổ tin báo. STT được soát trước cả lô: STT trùng
// ngay trong file hoặc đụng bản ghi đang dùng làm hỏng cả lượt nhập,
// không ghi dòng nào. Dòng thiếu STT được tự gán trên mức lớn nhất.
func (s *ImportService) ImportTinBao(ctx context.Context, f *excelize.File) (*ImportResult, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, Invalid("không đọc được file Excel: %v", err)
	}
	result := &ImportResult{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, required := range []string{"Điều luật", "Ngày xảy ra", "Nơi xảy ra", "Nội dung nguồn tin"} {
		if _, ok := colIdx[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, Invalid("thiếu các cột bắt buộc: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, header string) string {
		idx, ok := colIdx[header]
		if !ok {
			return ""
		}
		return strings.TrimSpace(cellAt(row, idx))
	}

	// Soát STT trước khi đụng đến dữ liệu.
	sttByRow := make(map[int]int)
	seen := make(map[int]int)
	var duplicates []int
	for i, row := range rows[1:] {
		rowNum := i + 2
		if rowIsEmpty(row) {
			continue
		}
		raw := field(row, "STT")
		if raw == "" {
			continue
		}
		stt, err := parseImportInt(raw)
		if err != nil {
			return nil, Invalid("dòng %d: STT phải là số nguyên", rowNum)
		}
		if seen[stt] > 0 {
			duplicates = append(duplicates, stt)
		}
		seen[stt]++
		sttByRow[i] = stt
	}
	if len(duplicates) > 0 {
		sort.Ints(duplicates)
		return nil, Invalid("trùng STT ngay trong file import: %v", duplicates)
	}
	if len(sttByRow) > 0 {
		active, err := s.tinBaoRepo.ActiveSTTs(ctx)
		if err != nil {
			return nil, err
		}
		var conflicts []int
		for _, stt := range sttByRow {
			if active[stt] {
				conflicts = append(conflicts, stt)
			}
		}
		if len(conflicts) > 0 {
			sort.Ints(conflicts)
			return nil, Invalid("STT đã tồn tại trong hệ thống: %v", conflicts)
		}
	}

	maxSTT, err := s.tinBaoRepo.MaxSTT(ctx)
	if err != nil {
		return nil, err
	}

	var batch []*entity.TinBao
	var purgeSTTs []int
	for i, row := range rows[1:] {
		rowNum := i + 2
		if rowIsEmpty(row) {
			continue
		}

		var stt int
		if provided, ok := sttByRow[i]; ok {
			stt = provided
			if int64(stt) > maxSTT {
				maxSTT = int64(stt)
			}
		} else {
			maxSTT++
			stt = int(maxSTT)
		}

		dieuLuat := field(row, "Điều luật")
		noiXayRa := field(row, "Nơi xảy ra")
		noiDung := field(row, "Nội dung nguồn tin")
		switch {
		case len([]rune(dieuLuat)) < 2:
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Điều luật bắt buộc, tối thiểu 2 ký tự", rowNum))
			result.ErrorCount++
			continue
		case len([]rune(noiXayRa)) < 5:
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Nơi xảy ra bắt buộc, tối thiểu 5 ký tự", rowNum))
			result.ErrorCount++
			continue
		case len([]rune(noiDung)) < 20:
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Nội dung nguồn tin bắt buộc, tối thiểu 20 ký tự", rowNum))
			result.ErrorCount++
			continue
		}

		ngayXayRa, err := parseImportDate(field(row, "Ngày xảy ra"))
		if err != nil || ngayXayRa == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Ngày xảy ra không hợp lệ (hỗ trợ YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY)", rowNum))
			result.ErrorCount++
			continue
		}
		ngayPhanCong, err := parseImportDate(field(row, "Ngày phân công"))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Ngày phân công không hợp lệ", rowNum))
			result.ErrorCount++
			continue
		}
		ngayHetHan, err := parseImportDate(field(row, "Ngày hết hạn"))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Dòng %d: Ngày hết hạn không hợp lệ", rowNum))
			result.ErrorCount++
			continue
		}

		giaHan := 0
		if raw := field(row, "Gia hạn"); raw != "" {
			if n, err := parseImportInt(raw); err == nil {
				giaHan = n
			}
		}

		ketQua := field(row, "Kết quả giải quyết (Khởi tố, Không KT, TĐC, chuyển)")
		trangThai := ketQua
		if trangThai == "" {
			trangThai = entity.TinBaoTiepNhan
		}
		donVi := field(row, "Đơn vị")
		if donVi == "" {
			donVi = entity.DonViMacDinh
		}

		// Các cột sổ giấy không có trường riêng dồn vào ghi chú.
		var notes []string
		if v := field(row, "Số QĐ"); v != "" {
			notes = append(notes, "Số QĐ: "+v)
		}
		if v := field(row, "Ngày ra QĐ"); v != "" {
			notes = append(notes, "Ngày ra QĐ: "+v)
		}
		if v := field(row, "Cán bộ quản lý hồ sơ"); v != "" {
			notes = append(notes, "Cán bộ quản lý hồ sơ: "+v)
		}
		if v := field(row, "Ghi chú"); v != "" {
			notes = append(notes, v)
		}

		batch = append(batch, &entity.TinBao{
			STT:              stt,
			DieuLuat:         dieuLuat,
			TenNguonTin:      field(row, "Tên nguồn tin"),
			NgayXayRa:        *ngayXayRa,
			NoiXayRa:         noiXayRa,
			NoiDungNguonTin:  noiDung,
			SoQDPhanCongPTT:  field(row, "Số QĐ phân công PTT/Trưởng CAX ủy quyền"),
			SoQDPhanCongDTV:  field(row, "Số QĐ phân công ĐTV"),
			NgayPhanCong:     ngayPhanCong,
			KetQuaGiaiQuyet:  ketQua,
			ThongTinDoiTuong: field(row, "Bị can (đối với vụ khởi tố)"),
			CongAnPhuTrach:   field(row, "Điều tra viên"),
			DonVi:            donVi,
			KiemSatVien:      field(row, "Kiểm sát viên"),
			GiaHan:           giaHan,
			NgayHetHan:       ngayHetHan,
			TinhTrangHoSo:    field(row, "Tình trạng hồ sơ"),
			GhiChu:           strings.Join(notes, " | "),
			TrangThai:        trangThai,
		})
		purgeSTTs = append(purgeSTTs, stt)
		result.SuccessCount++
	}

	if len(batch) > 0 {
		if err := s.tinBaoRepo.ImportBatch(ctx, batch, purgeSTTs); err != nil {
			return nil, err
		}
		// Counter không được cấp lại các STT vừa nhập.
		if err := s.seqRepo.Raise(ctx, seqScopeTinBao, maxSTT); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// TinBaoTemplate sinh file mẫu nhập tin báo theo đúng cột sổ giấy
// đang dùng, kèm hai dòng ví dụ.
func (s *ImportService) TinBaoTemplate() (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheet := "Tin báo"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, h := range tinBaoTemplateColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, "", err
		}
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		f.SetColWidth(sheet, col, col, 24)
	}
	for r, row := range tinBaoTemplateExamples {
		for i, value := range row {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, "", err
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r+2), value)
		}
	}
	return f, "Mau_Import_Tin_Bao.xlsx", nil
}

// mapImportHeaders khớp dòng tiêu đề của file với bộ cột mong đợi,
// chấp nhận thiếu dấu * và khác hoa thường. Cột lạ làm hỏng cả lượt.
func mapImportHeaders(headerRow []string, columns []importColumn) (map[int]string, error) {
	normalize := func(h string) string {
		return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, "*", "")))
	}
	expected := make(map[string]string, len(columns))
	for _, c := range columns {
		expected[normalize(c.Header)] = c.Field
	}

	fieldByCol := make(map[int]string)
	var unknown []string
	for i, h := range headerRow {
		if strings.TrimSpace(h) == "" {
			continue
		}
		field, ok := expected[normalize(h)]
		if !ok {
			unknown = append(unknown, strings.TrimSpace(h))
			continue
		}
		fieldByCol[i] = field
	}
	if len(unknown) > 0 {
		return nil, Invalid("cột không khớp với cấu trúc mẫu: %s", strings.Join(unknown, ", "))
	}
	if len(fieldByCol) == 0 {
		return nil, Invalid("file không có cột nào khớp với mẫu")
	}
	return fieldByCol, nil
}

var importIntFields = map[string]bool{
	"so_luong":     true,
	"nam_su_dung":  true,
	"nam_trang_bi": true,
	"nam_het_han":  true,
}

var importFloatFields = map[string]bool{
	"nguyen_gia":      true,
	"gia_tri_con_lai": true,
	"chi_phi":         true,
}

// convertImportCell đổi ô Excel (luôn là chuỗi) sang kiểu JSON mà
// entity mong đợi theo tên trường.
func convertImportCell(field, raw string) (interface{}, error) {
	switch {
	case strings.HasPrefix(field, "ngay_") || strings.Contains(field, "_ngay"):
		d, err := parseImportDate(raw)
		if err != nil || d == nil {
			return nil, fmt.Errorf("'%s' không đúng định dạng ngày (dd/mm/yyyy)", field)
		}
		return d.Format("2006-01-02"), nil
	case importIntFields[field]:
		n, err := parseImportInt(raw)
		if err != nil {
			return nil, fmt.Errorf("'%s' phải là số", field)
		}
		return n, nil
	case importFloatFields[field]:
		n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' phải là số", field)
		}
		return n, nil
	default:
		return raw, nil
	}
}

// parseImportDate đọc ngày theo các định dạng sổ giấy hay gặp, kể cả
// số serial của Excel. Chuỗi rỗng trả về nil.
func parseImportDate(raw string) (*entity.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	layouts := []string{
		"2006-01-02", "02/01/2006", "02-01-2006", "02.01.2006",
		"2006/01/02", "02 01 2006", "1/2/06", "01-02-06",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := entity.Date{Time: t}
			return &d, nil
		}
	}

	// Excel lưu ngày dưới dạng số ngày tính từ 30/12/1899.
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		d := entity.Date{Time: epoch.AddDate(0, 0, int(serial))}
		return &d, nil
	}
	return nil, fmt.Errorf("không đọc được ngày %q", raw)
}

// parseImportInt đọc số nguyên, chấp nhận dạng "2.0" và chuỗi lẫn chữ
// kiểu "2 lần" (lấy cụm chữ số đầu tiên).
func parseImportInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f), nil
	}
	start := -1
	for i, r := range raw {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return strconv.Atoi(raw[start:i])
		}
	}
	if start >= 0 {
		return strconv.Atoi(raw[start:])
	}
	return 0, fmt.Errorf("không đọc được số %q", raw)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// assetImportColumns giữ đúng bộ cột file mẫu từng nhóm tài sản.
var assetImportColumns = map[entity.AssetType][]importColumn{
	entity.AssetWeapons: {
		{"Mã tài sản", "ma_tai_san"},
		{"Danh mục*", "ma_danh_muc"},
		{"Tên tài sản*", "ten_tai_san"},
		{"Đơn vị tính*", "don_vi_tinh"},
		{"Số lượng*", "so_luong"},
		{"Nguyên giá", "nguyen_gia"},
		{"Giá trị còn lại", "gia_tri_con_lai"},
		{"Số hiệu", "so_hieu"},
		{"Năm sử dụng", "nam_su_dung"},
		{"Loại tài sản", "loai_tai_san"},
		{"Thực tế bàn giao", "thuc_te_ban_giao"},
		{"Định kỳ kiểm tra", "dinh_ky_kiem_tra"},
		{"Ngày kiểm tra gần nhất", "ngay_kiem_tra_gan_nhat"},
		{"Ngày kiểm tra tiếp theo", "ngay_kiem_tra_tiep_theo"},
		{"Kết quả kiểm tra", "ket_qua_kiem_tra"},
		{"Năm hết hạn", "nam_het_han"},
		{"Phương thức xử lý", "phuong_thuc_xu_ly"},
		{"Ghi chú", "ghi_chu"},
	},
	entity.AssetVehicles: {
		{"Mã tài sản", "ma_tai_san"},
		{"Danh mục PT*", "danh_muc_phuong_tien"},
		{"Tên phương tiện*", "ten_phuong_tien"},
		{"Đơn vị tính*", "don_vi_tinh"},
		{"Nguyên giá", "nguyen_gia"},
		{"Số lượng*", "so_luong"},
		{"Biển số", "bien_so_ky_hieu"},
		{"Số khung/Số thân vỏ", "so_khung_so_than_vo"},
		{"Số máy", "so_may"},
		{"Năm trang bị", "nam_trang_bi"},
		{"Loại tài sản", "loai_tai_san"},
		{"Thực tế bàn giao", "thuc_te_ban_giao"},
		{"Ngày đăng kiểm", "ngay_dang_kiem"},
		{"Ngày thay nhớt", "ngay_thay_nhot"},
		{"Ngày thay vỏ", "ngay_thay_vo"},
		{"Phí đường bộ", "phi_duong_bo"},
		{"Định kỳ kiểm tra", "dinh_ky_kiem_tra"},
		{"Ngày kiểm tra gần nhất", "ngay_kiem_tra_gan_nhat"},
		{"Ngày kiểm tra tiếp theo", "ngay_kiem_tra_tiep_theo"},
		{"Kết quả kiểm tra", "ket_qua_kiem_tra"},
		{"Năm hết hạn", "nam_het_han"},
		{"Phương thức xử lý", "phuong_thuc_xu_ly"},
		{"Ghi chú", "ghi_chu"},
	},
	entity.AssetWater: {
		{"Mã tài sản", "ma_tai_san"},
		{"Danh mục*", "danh_muc_trang_thiet_bi"},
		{"Tên trang bị*", "ten_trang_bi"},
		{"Đơn vị tính*", "don_vi_tinh"},
		{"Nguyên giá", "nguyen_gia"},
		{"Số lượng*", "so_luong"},
		{"Mã hiệu", "ma_hieu"},
		{"Năm trang bị", "nam_trang_bi"},
		{"Loại tài sản", "loai_tai_san"},
		{"Định kỳ kiểm tra chất lượng", "ngay_kiem_tra_gan_nhat"},
		{"Kết quả kiểm tra", "ket_qua_kiem_tra"},
		{"Năm hết hạn", "nam_het_han"},
		{"Phương thức xử lý", "phuong_thuc_xu_ly"},
		{"Ghi chú", "ghi_chu"},
	},
	entity.AssetTechnical: {
		{"Mã tài sản", "ma_tai_san"},
		{"Tên đơn vị, tài sản*", "ten_tai_san"},
		{"Năm sử dụng", "nam_su_dung"},
		{"Số lượng*", "so_luong"},
		{"Nguyên giá", "nguyen_gia"},
		{"Giá trị còn lại", "gia_tri_con_lai"},
		{"Loại tài sản", "loai_tai_san"},
		{"Thực tế bàn giao", "thuc_te_ban_giao"},
		{"Định kỳ kiểm tra chất lượng", "ngay_kiem_tra_gan_nhat"},
		{"Kết quả kiểm tra", "ket_qua_kiem_tra"},
		{"Năm hết hạn", "nam_het_han"},
		{"Phương thức xử lý", "phuong_thuc_xu_ly"},
		{"Ghi chú", "ghi_chu"},
	},
	entity.AssetOffice: {
		{"Mã tài sản", "ma_tai_san"},
		{"Tên đơn vị, tài sản*", "ten_tai_san"},
		{"Năm sử dụng", "nam_su_dung"},
		{"Số lượng*", "so_luong"},
		{"Nguyên giá", "nguyen_gia"},
		{"Giá trị còn lại", "gia_tri_con_lai"},
		{"Loại tài sản", "loai_tai_san"},
		{"Thực tế bàn giao", "thuc_te_ban_giao"},
		{"Hình thức", "hinh_thuc"},
		{"Sự kiện", "su_kien"},
		{"Phí", "chi_phi"},
		{"Định kỳ kiểm tra chất lượng", "ngay_kiem_tra_gan_nhat"},
		{"Kết quả kiểm tra", "ket_qua_kiem_tra"},
		{"Năm hết hạn", "nam_het_han"},
		{"Phương thức xử lý", "phuong_thuc_xu_ly"},
		{"Ghi chú", "ghi_chu"},
	},
}

var assetTemplateExamples = map[entity.AssetType][]interface{}{
	entity.AssetWeapons: {
		"VK2511001", "Súng", "Súng AKM", "Khẩu", 1, 9481024, 9481024,
		"141759", 2016, "Tài sản đặc biệt", "Có", "6 tháng",
		"2025-06-01", "2025-12-01", "Đạt", 2028, "Tiếp tục sử dụng", "",
	},
	entity.AssetVehicles: {
		"PT2511001", "Ô tô", "Suzuki Carry", "Chiếc", 378800000, 1,
		"60A-009.87", "MHYHDC61TMJ912829", "K15BT1297661", 2024,
		"Chuyên dụng", "Có", "2025-10-01", "2025-08-15", "2025-07-01",
		500000, "3 tháng", "2025-08-15", "2025-11-15", "Đạt", 2028,
		"Tiếp tục sử dụng", "",
	},
	entity.AssetWater: {
		"TT2511001", "Phao áo", "Phao cứu sinh tiêu chuẩn", "Chiếc",
		500000, 10, "PA-001", 2024, "Chuyên dụng", "2025-06-01", "Đạt",
		2028, "Tiếp tục sử dụng", "",
	},
	entity.AssetTechnical: {
		"TB2511001", "Máy tính xách tay", 2023, 1, 15000000, 12000000,
		"Chuyên dụng", "Có", "2025-06-01", "Đạt", 2029,
		"Tiếp tục sử dụng", "",
	},
	entity.AssetOffice: {
		"VP2511001", "Bàn làm việc", 2023, 5, 5000000, 4000000,
		"Quản lý", "Có", "Mua mới", "Sửa chữa", 500000, "2025-06-01",
		"Đạt", 2029, "Tiếp tục sử dụng", "",
	},
}

var tinBaoTemplateColumns = []string{
	"STT", "Điều luật", "Tên nguồn tin", "Ngày xảy ra", "Nơi xảy ra",
	"Nội dung nguồn tin", "Số QĐ phân công PTT/Trưởng CAX ủy quyền",
	"Số QĐ phân công ĐTV", "Ngày phân công",
	"Kết quả giải quyết (Khởi tố, Không KT, TĐC, chuyển)",
	"Bị can (đối với vụ khởi tố)", "Số QĐ", "Ngày ra QĐ",
	"Điều tra viên", "Cán bộ quản lý hồ sơ", "Đơn vị", "Kiểm sát viên",
	"Gia hạn", "Ngày hết hạn", "Tình trạng hồ sơ", "Ghi chú",
}

var tinBaoTemplateExamples = [][]interface{}{
	{
		1173, "Trộm cắp tài sản", "Nguyễn Văn A", "2025-11-01",
		"ấp 6, xã Phước Thái, tỉnh Đồng Nai",
		"Khoảng 07 giờ ngày 01/11/2025 anh Nguyễn Văn A trình báo bị mất chiếc xe máy...",
		"11145", "", "2025-11-02", "Tiếp nhận", "", "", "",
		"Nguyễn Tấn Lợi", "", "CAX Phước Thái", "", 0, "",
		"Chưa hoàn thành", "",
	},
	{
		1174, "Gây rối trật tự công cộng", "Trần Thị B", "2025-11-02",
		"ấp 7, xã Phước Thái, tỉnh Đồng Nai",
		"Khoảng 10 giờ ngày 02/11/2025 chị Trần Thị B trình báo có nhóm thanh niên gây rối...",
		"", "", "", "Đang điều tra", "", "", "", "Trần Văn C",
		"Nguyễn Văn D", "CAX Phước Thái", "", 0, "", "", "",
	},
}
