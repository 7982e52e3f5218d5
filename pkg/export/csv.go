// Package export renders the filtered manifest set for the outward-facing
// surfaces: the CSV and XLSX table exports and the WhatsApp share message.
// It only consumes snapshots; nothing here mutates the collection.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dtnitsch/romaneio/models"
)

// Column order is fixed; downstream spreadsheets depend on it.
var header = []string{"Data", "Empresa", "Nota", "Valor", "Taxa(%)", "Frete"}

// WriteCSV writes one row per invoice: formatted date, company, invoice
// number, value, rate percent and freight, with amounts to two decimals.
func WriteCSV(w io.Writer, manifests []models.Manifest) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, m := range manifests {
		dateStr := FormatDateBR(m.Date)
		rateStr := formatRate(m.FreightRate)
		for _, inv := range m.Invoices {
			record := []string{
				dateStr,
				inv.CompanyName,
				inv.Number,
				fmt.Sprintf("%.2f", inv.Value),
				rateStr,
				fmt.Sprintf("%.2f", inv.Freight),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
