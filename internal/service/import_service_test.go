package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
	"github.com/hctech/phuocthai-backend/internal/testutil"
)

func mustDate(t *testing.T, s string) entity.Date {
	t.Helper()
	d, err := entity.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func setupImportTest(t *testing.T) (*ImportService, *TinBaoService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	assetSvc := NewAssetService(repos.Asset, repos.Sequence)
	tinBaoSvc := NewTinBaoService(repos.TinBao, repos.VuAn, repos.Sequence)
	return NewImportService(assetSvc, repos.TinBao, repos.Sequence), tinBaoSvc
}

// tinBaoWorkbook dựng file import với các cột bắt buộc; mỗi dòng là
// [STT, điều luật, ngày xảy ra, nơi xảy ra, nội dung].
func tinBaoWorkbook(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"STT", "Điều luật", "Ngày xảy ra", "Nơi xảy ra", "Nội dung nguồn tin"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	for r, row := range rows {
		for c, value := range row {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r+2), value)
		}
	}
	return f
}

func importRow(stt, dieuLuat string) []string {
	return []string{stt, dieuLuat, "10/03/2025", "Ấp 1, xã Phước Thái",
		"Trình báo mất trộm tài sản, kẻ gian đột nhập vào ban đêm lấy đi xe máy"}
}

func TestImportTinBaoAutoSTT(t *testing.T) {
	importSvc, tinBaoSvc := setupImportTest(t)
	ctx := context.Background()

	f := tinBaoWorkbook(t, [][]string{
		importRow("", "Điều 173"),
		importRow("", "Điều 174"),
	})
	result, err := importSvc.ImportTinBao(ctx, f)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.SuccessCount != 2 || result.ErrorCount != 0 {
		t.Fatalf("result = %+v, want 2 success", result)
	}

	items, total, err := tinBaoSvc.List(ctx, 1, 20, "", "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	// STT tự cấp 1, 2; counter phải tiếp tục sau đó.
	seen := map[int]bool{}
	for _, tb := range items {
		seen[tb.STT] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("imported STTs = %v, want {1,2}", seen)
	}

	tb, err := tinBaoSvc.Create(ctx, &CreateTinBaoRequest{
		DieuLuat:        "Điều 175 BLHS",
		NgayXayRa:       mustDate(t, "2025-04-01"),
		NoiXayRa:        "Ấp 2, xã Phước Thái",
		NoiDungNguonTin: "Tố giác hành vi lạm dụng tín nhiệm chiếm đoạt tài sản của hàng xóm",
	})
	if err != nil {
		t.Fatalf("create after import: %v", err)
	}
	if tb.STT != 3 {
		t.Errorf("STT after import = %d, want 3", tb.STT)
	}
}

func TestImportTinBaoExplicitSTTRaisesCounter(t *testing.T) {
	importSvc, tinBaoSvc := setupImportTest(t)
	ctx := context.Background()

	f := tinBaoWorkbook(t, [][]string{importRow("7", "Điều 173")})
	result, err := importSvc.ImportTinBao(ctx, f)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Fatalf("result = %+v", result)
	}

	tb, err := tinBaoSvc.Create(ctx, &CreateTinBaoRequest{
		DieuLuat:        "Điều 174 BLHS",
		NgayXayRa:       mustDate(t, "2025-04-02"),
		NoiXayRa:        "Ấp 3, xã Phước Thái",
		NoiDungNguonTin: "Tố giác hành vi lừa đảo chiếm đoạt tài sản qua mạng xã hội Facebook",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tb.STT != 8 {
		t.Errorf("STT = %d, want 8 (sau STT nhập tay 7)", tb.STT)
	}
}

func TestImportTinBaoDuplicateSTTInFile(t *testing.T) {
	importSvc, _ := setupImportTest(t)

	f := tinBaoWorkbook(t, [][]string{
		importRow("3", "Điều 173"),
		importRow("3", "Điều 174"),
	})
	_, err := importSvc.ImportTinBao(context.Background(), f)
	if err == nil {
		t.Fatal("expected error for duplicate STT in file")
	}
	if !strings.Contains(err.Error(), "trùng STT") {
		t.Errorf("error = %v, want duplicate STT message", err)
	}
}

func TestImportTinBaoConflictWithExisting(t *testing.T) {
	importSvc, tinBaoSvc := setupImportTest(t)
	ctx := context.Background()

	if _, err := tinBaoSvc.Create(ctx, &CreateTinBaoRequest{
		DieuLuat:        "Điều 173 BLHS",
		NgayXayRa:       mustDate(t, "2025-01-15"),
		NoiXayRa:        "Ấp 1, xã Phước Thái",
		NoiDungNguonTin: "Trình báo mất trộm xe máy dựng trước sân nhà lúc rạng sáng hôm qua",
	}); err != nil {
		t.Fatalf("seed tin bao: %v", err)
	}

	// STT 1 đang hoạt động nên file import nêu STT 1 phải bị chặn toàn bộ.
	f := tinBaoWorkbook(t, [][]string{
		importRow("1", "Điều 174"),
		importRow("", "Điều 175"),
	})
	_, err := importSvc.ImportTinBao(ctx, f)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "đã tồn tại") {
		t.Errorf("error = %v, want existing STT message", err)
	}

	// Không dòng nào được ghi: tất cả hoặc không gì cả.
	_, total, err := tinBaoSvc.List(ctx, 1, 20, "", "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 (chỉ bản ghi seed)", total)
	}
}

func TestImportTinBaoMissingRequiredColumns(t *testing.T) {
	importSvc, _ := setupImportTest(t)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "STT")
	f.SetCellValue(sheet, "B1", "Điều luật")
	f.SetCellValue(sheet, "A2", "1")

	_, err := importSvc.ImportTinBao(context.Background(), f)
	if err == nil {
		t.Fatal("expected missing columns error")
	}
	if !strings.Contains(err.Error(), "thiếu các cột bắt buộc") {
		t.Errorf("error = %v", err)
	}
}

func TestImportTinBaoRowValidationCollectsErrors(t *testing.T) {
	importSvc, _ := setupImportTest(t)

	short := importRow("", "Điều 173")
	short[4] = "quá ngắn"
	f := tinBaoWorkbook(t, [][]string{
		short,
		importRow("", "Điều 174"),
	})
	result, err := importSvc.ImportTinBao(context.Background(), f)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.SuccessCount != 1 || result.ErrorCount != 1 {
		t.Fatalf("result = %+v, want 1 success 1 error", result)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Dòng 2") {
		t.Errorf("errors = %v", result.Errors)
	}
}

// assetWorkbook dựng file import vũ khí; mỗi dòng là
// [mã tài sản, danh mục, tên, đơn vị tính, số lượng].
func assetWorkbook(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"Mã tài sản", "Danh mục*", "Tên tài sản*", "Đơn vị tính*", "Số lượng*"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	for r, row := range rows {
		for c, value := range row {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r+2), value)
		}
	}
	return f
}

func TestImportAssetsKeepsSuppliedCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	assetSvc := NewAssetService(repos.Asset, repos.Sequence)
	importSvc := NewImportService(assetSvc, repos.TinBao, repos.Sequence)
	ctx := context.Background()

	f := assetWorkbook(t, [][]string{
		{"VK-SO-CU-03", "VK-01", "Súng ngắn K59", "Khẩu", "1"},
		{"", "VK-01", "Gậy cao su", "Chiếc", "10"},
	})
	result, err := importSvc.ImportAssets(ctx, entity.AssetWeapons, f)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.SuccessCount != 2 || result.ErrorCount != 0 {
		t.Fatalf("result = %+v, want 2 success", result)
	}

	// Dòng có mã giữ nguyên mã, dòng trống mã được hệ thống cấp.
	if _, err := repos.Asset.FindByCode(ctx, entity.AssetWeapons, "VK-SO-CU-03"); err != nil {
		t.Errorf("mã tự đặt không được giữ: %v", err)
	}
	items, total, err := assetSvc.List(ctx, entity.AssetWeapons, 1, 20, "Gậy cao su", nil)
	if err != nil || total != 1 {
		t.Fatalf("list: total = %d, err = %v", total, err)
	}
	if code := items[0].MaTaiSan(); code == "" || code == "VK-SO-CU-03" {
		t.Errorf("mã cấp tự động = %q", code)
	}
}
