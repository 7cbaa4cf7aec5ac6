package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"license-compliance-system/internal/config"
	"license-compliance-system/internal/model"
)

// reportHeader 与 ReportValues 的列顺序一致
var reportHeader = []interface{}{
	"License ID", "Product", "License Type", "Entitlements", "Used", "Gap", "Status", "Generated At",
}

// SheetSyncService 将合规报表发布到 Google Sheet，供财务与审计查看
type SheetSyncService struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetSyncService 未启用同步时返回 nil, nil；nil 的服务调用 SyncReport 为空操作
func NewSheetSyncService(ctx context.Context, cfg config.SheetsConfig) (*SheetSyncService, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	// 读取凭证文件
	b, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("读取凭证文件失败: %w", err)
	}

	// 使用服务账号授权
	creds, err := google.CredentialsFromJSON(ctx, b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("无法加载凭证: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, err
	}

	return &SheetSyncService{
		service:       srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// SyncReport 覆盖写入工作表：先清空旧数据，再写入表头与报表行
func (s *SheetSyncService) SyncReport(ctx context.Context, rows []model.ComplianceReportRow, generatedAt time.Time) error {
	if s == nil {
		return nil
	}

	// 先检查工作表是否存在
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("获取Spreadsheet信息失败: %w", err)
	}
	sheetExists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == s.sheetName {
			sheetExists = true
			break
		}
	}
	if !sheetExists {
		return fmt.Errorf("工作表'%s'不存在", s.sheetName)
	}

	_, err = s.service.Spreadsheets.Values.Clear(
		s.spreadsheetID,
		fmt.Sprintf("'%s'!A:H", s.sheetName),
		&sheets.ClearValuesRequest{},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("清空工作表失败: %w", err)
	}

	_, err = s.service.Spreadsheets.Values.Update(
		s.spreadsheetID,
		fmt.Sprintf("'%s'!A1", s.sheetName),
		&sheets.ValueRange{Values: ReportValues(rows, generatedAt)},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("同步到Google Sheet失败: %w", err)
	}

	slog.InfoContext(ctx, "compliance report synced to sheet",
		"spreadsheet_id", s.spreadsheetID,
		"sheet", s.sheetName,
		"rows", len(rows))
	return nil
}

// ReportValues 转换为表格数据，第一行为表头
func ReportValues(rows []model.ComplianceReportRow, generatedAt time.Time) [][]interface{} {
	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, reportHeader)

	stamp := generatedAt.Format(time.RFC3339)
	for _, row := range rows {
		values = append(values, []interface{}{
			row.LicenseID,
			row.ProductName,
			row.LicenseType,
			row.TotalEntitlements,
			row.UsedLicenses,
			row.Gap,
			row.Status,
			stamp,
		})
	}
	return values
}
