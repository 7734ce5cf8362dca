package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"campus-events/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出活动热度排行为 Excel (.xlsx)，行顺序与 /reports/popularity 完全一致
//   - 导出活动日历为 iCalendar (.ics)，可按类型筛选，供日历客户端订阅
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportPopularity 导出活动热度排行
	ExportPopularity(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCalendar 导出活动日历，eventType 为空时导出全部
	ExportCalendar(ctx context.Context, eventType string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

const popularitySheet = "活动热度"

var popularityHeaders = []string{"活动ID", "活动名称", "类型", "日期", "学院ID", "报名人数"}

// ═══════════════════════════════════════════════════════════
// ExportPopularity — 导出活动热度排行
// ═══════════════════════════════════════════════════════════
//
// 表头：| 活动ID | 活动名称 | 类型 | 日期 | 学院ID | 报名人数 |
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportPopularity(ctx context.Context) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Report.Popularity(ctx)
	if err != nil {
		s.logger.Error("查询活动热度失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(popularitySheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	f.SetColWidth(popularitySheet, "A", "A", 10)
	f.SetColWidth(popularitySheet, "B", "B", 28)
	f.SetColWidth(popularitySheet, "C", "D", 14)
	f.SetColWidth(popularitySheet, "E", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	if err := f.SetSheetRow(popularitySheet, "A1", &popularityHeaders); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(popularityHeaders), 1)
	f.SetCellStyle(popularitySheet, "A1", lastHeader, headerStyle)

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{r.EventID, r.Title, r.Type, r.Date, r.CollegeID, r.TotalRegistrations}
		if err := f.SetSheetRow(popularitySheet, cell, &values); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("row", i+2), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("活动热度_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出活动日历
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCalendar(ctx context.Context, eventType string) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.List(ctx, eventType)
	if err != nil {
		s.logger.Error("查询活动失败", zap.String("type", eventType), zap.Error(err))
		return nil, "", err
	}

	content, skipped := BuildEventCalendar(events, s.now())
	if len(skipped) > 0 {
		s.logger.Warn("部分活动日期格式无效，未写入日历", zap.Int64s("event_ids", skipped))
	}

	filename := "campus_events.ics"
	if eventType != "" {
		filename = fmt.Sprintf("campus_events_%s.ics", eventType)
	}
	return bytes.NewBufferString(content), filename, nil
}
