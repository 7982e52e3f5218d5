package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/internal/analyze"
	"github.com/dtnitsch/romaneio/internal/invoices"
	"github.com/dtnitsch/romaneio/internal/manifests"
	"github.com/dtnitsch/romaneio/internal/report"
)

func main() {
	rangeFlags := []cli.Flag{
		&cli.StringFlag{Name: "start", Usage: "start date (YYYY-MM-DD, inclusive)"},
		&cli.StringFlag{Name: "end", Usage: "end date (YYYY-MM-DD, inclusive)"},
	}

	app := &cli.App{
		Name:  "romaneio",
		Usage: "Track freight manifests and derive freight charges per invoice",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the optional YAML config file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "override the database path (default: next to the binary)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a new manifest with the default freight rate",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "manifest date (YYYY-MM-DD, default: today)"},
				},
				Action: manifests.CreateAction,
			},
			{
				Name:   "list",
				Usage:  "List manifests in a date range with value and freight totals",
				Flags:  rangeFlags,
				Action: manifests.ListAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a manifest and every invoice it owns",
				ArgsUsage: "<manifest-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip confirmation"},
				},
				Action: manifests.DeleteAction,
			},
			{
				Name:  "invoice",
				Usage: "Manage invoices inside a manifest",
				Subcommands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Add an invoice; freight is derived from the manifest rate",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "manifest", Usage: "manifest ID", Required: true},
							&cli.StringFlag{Name: "number", Usage: "invoice number", Required: true},
							&cli.StringFlag{Name: "company", Usage: "client company name", Required: true},
							&cli.StringFlag{Name: "value", Usage: "invoice face value", Required: true},
						},
						Action: invoices.AddAction,
					},
					{
						Name:      "delete",
						Usage:     "Remove an invoice from a manifest",
						ArgsUsage: "<invoice-id>",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "manifest", Usage: "manifest ID", Required: true},
						},
						Action: invoices.DeleteAction,
					},
				},
			},
			{
				Name:      "rate",
				Usage:     "Change a manifest's freight rate and recompute all its freight",
				ArgsUsage: "<manifest-id> <rate>",
				Action:    manifests.RateAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change the default freight rate for new manifests",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "default-rate", Usage: "new default rate percent"},
				},
				Action: manifests.SettingsAction,
			},
			{
				Name:  "export",
				Usage: "Export the filtered invoices as a CSV or XLSX table",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "format", Value: "csv", Usage: "csv or xlsx"},
					&cli.StringFlag{Name: "out", Usage: "output path (default: romaneios_export_<today>.<format>)"},
				}, rangeFlags...),
				Action: report.ExportAction,
			},
			{
				Name:  "share",
				Usage: "Print the WhatsApp summary message for the filtered manifests",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{Name: "link", Usage: "print a wa.me link instead of the raw message"},
				}, rangeFlags...),
				Action: report.ShareAction,
			},
			{
				Name:   "analyze",
				Usage:  "Generate an AI summary of the filtered manifests",
				Flags:  rangeFlags,
				Action: analyze.AnalyzeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
