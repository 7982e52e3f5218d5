package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dtnitsch/romaneio/models"
)

const sheetName = "Romaneios"

// BuildXLSX renders the same table as the CSV export into an XLSX workbook
// and returns the serialized bytes.
func BuildXLSX(manifests []models.Manifest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	for _, m := range manifests {
		for _, inv := range m.Invoices {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheetName, cell, v)
			}
			write(1, FormatDateBR(m.Date))
			write(2, inv.CompanyName)
			write(3, inv.Number)
			write(4, inv.Value)
			write(5, m.FreightRate)
			write(6, inv.Freight)
			row++
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 28)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
