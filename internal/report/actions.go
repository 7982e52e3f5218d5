// Package report implements the outward-facing CLI verbs over the filtered
// collection: table exports and the share message.
package report

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/internal/common"
	"github.com/dtnitsch/romaneio/pkg/export"
	"github.com/dtnitsch/romaneio/pkg/filter"
	"github.com/dtnitsch/romaneio/pkg/storage"
)

func ExportAction(c *cli.Context) error {
	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	start, end, err := common.ParseDateRange(c.String("start"), c.String("end"))
	if err != nil {
		return err
	}

	manifests := filter.ByDateRange(st.Snapshot(), start, end)
	if len(manifests) == 0 {
		fmt.Println("No manifests in range, nothing to export")
		return nil
	}

	format := c.String("format")
	var data []byte
	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, manifests); err != nil {
			return err
		}
		data = buf.Bytes()
	case "xlsx":
		if data, err = export.BuildXLSX(manifests); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (use: csv or xlsx)", format)
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = fmt.Sprintf("romaneios_export_%s.%s", common.Today(), format)
	}

	s := &storage.Storage{}
	if s.HasFile(outPath) {
		logger.Info("report.export.overwrite", "path", outPath)
	}
	if err := s.SaveFile(outPath, data); err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}

	var invoiceCount int
	for _, m := range manifests {
		invoiceCount += len(m.Invoices)
	}
	logger.Info("report.export.ok", "format", format, "path", outPath,
		"manifests", len(manifests), "invoices", invoiceCount)
	fmt.Printf("Exported %d invoices from %d manifests to %s\n", invoiceCount, len(manifests), outPath)
	return nil
}

func ShareAction(c *cli.Context) error {
	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	start, end, err := common.ParseDateRange(c.String("start"), c.String("end"))
	if err != nil {
		return err
	}

	manifests := filter.ByDateRange(st.Snapshot(), start, end)
	if len(manifests) == 0 {
		fmt.Println("No manifests in range, nothing to share")
		return nil
	}

	message := export.ShareMessage(manifests, start, end)
	if c.Bool("link") {
		fmt.Println(export.ShareLink(message))
		return nil
	}
	fmt.Print(message)
	return nil
}
