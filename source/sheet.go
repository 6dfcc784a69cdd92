package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"leaderboard/attendance"
)

// SheetSource 读取签到系统导出的 Excel 表格。
// 每行格式: 年级 | 已签到人数 | 总人数，无法识别年级的行（例如表头）会被跳过。
type SheetSource struct {
	path  string
	sheet string
}

// NewSheetSource sheet 为空时读取第一个工作表
func NewSheetSource(path, sheet string) *SheetSource {
	return &SheetSource{path: path, sheet: sheet}
}

func (s *SheetSource) Fetch(ctx context.Context) (attendance.Values, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("打开 Excel 文件失败：%w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败：%w", sheet, err)
	}

	values := attendance.Zero()
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		key, ok := classKey(row[0])
		if !ok {
			continue
		}
		tapped, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行签到人数无效：%w", i+1, err)
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行总人数无效：%w", i+1, err)
		}
		values[key] = attendance.Tally{TappedIn: tapped, TotalStudents: total}.Percentage()
	}
	return values, nil
}

func (s *SheetSource) Name() string { return "sheet:" + s.path }

// classKey 接受年级键或屏幕缩写，大小写不敏感
func classKey(cell string) (string, bool) {
	cell = strings.TrimSpace(cell)
	for _, c := range attendance.Classes {
		if strings.EqualFold(cell, c.Key) || strings.EqualFold(cell, c.Name) {
			return c.Key, true
		}
	}
	return "", false
}
