package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoReservations = errors.New("暂无已批准预约")
	ErrExportGenerateFail   = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出本周全部已批准预约为 Excel (.xlsx)，供管理员存档
//     （预约表每周日清空，导出即当周快照）
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportReservations 导出已批准预约为 Excel
	ExportReservations(ctx context.Context, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportReservations — 导出已批准预约为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "预约表"
//   - 列头：星期 | 时段 | 教室 | 教师 | 班级 | 备注
//   - 行序：day_of_week → shift（morning/afternoon/evening）→ 提交时间
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportReservations(ctx context.Context, now time.Time) (*bytes.Buffer, string, error) {
	reservations, err := s.repo.Reservation.ListApproved(ctx)
	if err != nil {
		s.logger.Error("查询已批准预约失败", zap.Error(err))
		return nil, "", err
	}
	if len(reservations) == 0 {
		return nil, "", ErrExportNoReservations
	}

	// 班次按日程顺序排，数据库字典序不符合（afternoon < evening < morning）
	shiftOrder := map[model.Shift]int{
		model.ShiftMorning:   0,
		model.ShiftAfternoon: 1,
		model.ShiftEvening:   2,
	}
	sort.SliceStable(reservations, func(i, j int) bool {
		if reservations[i].DayOfWeek != reservations[j].DayOfWeek {
			return reservations[i].DayOfWeek < reservations[j].DayOfWeek
		}
		return shiftOrder[reservations[i].Shift] < shiftOrder[reservations[j].Shift]
	})

	dayNames := map[model.DayOfWeek]string{1: "周一", 2: "周二", 3: "周三", 4: "周四", 5: "周五"}
	shiftNames := map[model.Shift]string{
		model.ShiftMorning:   "上午",
		model.ShiftAfternoon: "下午",
		model.ShiftEvening:   "晚上",
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "预约表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 32)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	week := isoWeekKey(now)
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("教室预约表 — %s", week))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"星期", "时段", "教室", "教师", "班级", "备注"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 2), h)
	}

	// 数据行
	row := 3
	for i := range reservations {
		res := &reservations[i]

		roomName, teacherName, groupName := "-", "-", "-"
		if res.Room != nil {
			roomName = res.Room.Name
		}
		if res.User != nil {
			teacherName = res.User.FullName
		}
		if res.ClassGroup != nil {
			groupName = res.ClassGroup.Name
		}

		f.SetCellValue(sheetName, cell("A", row), dayNames[res.DayOfWeek])
		f.SetCellValue(sheetName, cell("B", row), shiftNames[res.Shift])
		f.SetCellValue(sheetName, cell("C", row), roomName)
		f.SetCellValue(sheetName, cell("D", row), teacherName)
		f.SetCellValue(sheetName, cell("E", row), groupName)
		f.SetCellValue(sheetName, cell("F", row), res.Observation)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("预约表_%s.xlsx", week)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
