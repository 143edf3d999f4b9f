package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/SuperCup/pms-bd-process/models"
)

// 商机导出表头
var opportunityExportHeaders = []string{
	"事项", "客户", "事项重要程度", "类型", "跟进人",
	"创建时间", "计划完成时间", "状态", "进展", "相关文档",
}

// ExportOpportunities 将商机列表导出为xlsx
// 枚举值通过选项配置解析为中文文案
func ExportOpportunities(items []models.Opportunity, cfg models.OptionConfig) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "商机列表"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	// 表头样式: 加粗
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	// 写入表头
	for i, h := range opportunityExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	// 写入数据行
	for rowIdx, o := range items {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.Item)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.Customer.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), cfg.LabelOf(cfg.Importance, string(o.Importance)))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cfg.LabelOf(cfg.Type, string(o.Type)))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), o.Follower.Name)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), o.CreateTime)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), o.PlanCompleteTime)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), cfg.LabelOf(cfg.Status, string(o.Status)))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), o.Progress)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), strings.Join(o.RelatedDocs, "\n"))
	}

	// 汇总行
	summaryRow := len(items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "汇总")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("共 %d 条商机", len(items)))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("J%d", summaryRow), summaryStyle)

	// 列宽
	colWidths := []float64{30, 14, 16, 12, 12, 20, 16, 10, 24, 24}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	return f, nil
}
