package generate_excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"quotation-golang/internal/service/quotation"
)

// RenderService writes quotation documents as xlsx workbooks into dir and
// hands back the file path as the artifact reference.
type RenderService struct {
	dir string
}

func NewRenderService(dir string) *RenderService {
	return &RenderService{dir: dir}
}

func (s *RenderService) Render(ctx context.Context, data quotation.DocumentData) (string, error) {
	const op = "service.generate_excel.Render"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: create artifacts dir: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Quotation"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	f.SetCellValue(sheet, "A1", "Quotation")
	f.SetCellValue(sheet, "B1", data.CompanyName)
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Company", data.CompanyName},
		{"Customer", data.CustomerEmail},
		{"Product", data.ProductName},
		{"Material", data.MaterialName},
		{"Coating", data.CoatingName},
		{"Quantity", data.Quantity},
		{"Price per unit", data.PricePerUnit},
		{"Total cost", data.TotalCost},
	}

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, cellName(1, rowNum), row.label)
		f.SetCellValue(sheet, cellName(2, rowNum), row.value)
	}

	f.SetColWidth(sheet, "A", "B", 24)

	path := filepath.Join(s.dir, fmt.Sprintf("quotation-%d.xlsx", time.Now().UnixNano()))

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%s: save workbook: %w", op, err)
	}

	return path, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
