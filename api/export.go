package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"budget/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	svc *service.BudgetService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.BudgetService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

var exportHeaders = []string{"ID", "类别", "标识", "上级类别", "占比(%)", "每日金额"}

// exportRow 导出的一行，子类别紧跟在所属一级类别之后
type exportRow struct {
	ID          uint
	Name        string
	Slug        string
	Parent      string
	Percentage  float64
	DailyAmount float64
}

func flattenSummary(categories []service.CategorySummary) []exportRow {
	var rows []exportRow
	for _, c := range categories {
		rows = append(rows, exportRow{ID: c.ID, Name: c.Name, Slug: c.Slug, Percentage: c.Percentage, DailyAmount: c.DailyAmount})
		for _, sub := range c.Subcategories {
			rows = append(rows, exportRow{ID: sub.ID, Name: sub.Name, Slug: sub.Slug, Parent: c.Name, Percentage: sub.Percentage, DailyAmount: sub.DailyAmount})
		}
	}
	return rows
}

// ExportCSV 导出预算分配为 CSV
// @Summary 导出预算分配
// @Description 导出所有类别的占比和每日金额为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sum, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		serviceError(c, err, "查询数据失败")
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	for _, r := range flattenSummary(sum.Categories) {
		row := []string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			r.Slug,
			r.Parent,
			fmt.Sprintf("%.2f", r.Percentage),
			fmt.Sprintf("%.2f", r.DailyAmount),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Write([]string{"", "合计", "", "", fmt.Sprintf("%.2f", sum.TotalPercentage), fmt.Sprintf("%.2f", sum.AllocatedDaily)})

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("budget_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出预算分配为 Excel
// @Summary 导出预算分配为 Excel
// @Description 导出所有类别的占比和每日金额，末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	sum, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		serviceError(c, err, "查询数据失败")
		return
	}

	f, err := buildWorkbook(sum)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("预算分配_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

func buildWorkbook(sum *service.DashboardSummary) (*excelize.File, error) {
	const sheet = "预算分配"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "D", 20)
	f.SetColWidth(sheet, "E", "F", 14)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	for _, r := range flattenSummary(sum.Categories) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Slug)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Parent)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Percentage)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.DailyAmount)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合计")
	f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), sum.TotalPercentage)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sum.AllocatedDaily)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), summaryStyle)

	return f, nil
}
