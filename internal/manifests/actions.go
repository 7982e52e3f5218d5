// Package manifests implements the manifest-level CLI verbs.
package manifests

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/internal/common"
	"github.com/dtnitsch/romaneio/pkg/export"
	"github.com/dtnitsch/romaneio/pkg/filter"
)

func CreateAction(c *cli.Context) error {
	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	date := common.Today()
	if c.IsSet("date") {
		date, err = common.ParseDate(c.String("date"))
		if err != nil {
			return err
		}
	}

	m, err := st.CreateManifest(date, st.Settings().DefaultFreightRate)
	common.WarnPersistFailed(err)

	fmt.Printf("Created manifest %s\n", m.ID)
	fmt.Printf("  Date: %s  Rate: %s%%\n", m.Date, formatRate(m.FreightRate))
	return nil
}

func ListAction(c *cli.Context) error {
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
		fmt.Println("No manifests found")
		return nil
	}

	fmt.Printf("%-36s %-12s %-8s %-8s %14s %14s\n",
		"ID", "Date", "Rate", "Notas", "Value", "Freight")
	fmt.Println(strings.Repeat("-", 98))

	for _, m := range manifests {
		var value, freightTotal float64
		for _, inv := range m.Invoices {
			value += inv.Value
			freightTotal += inv.Freight
		}
		fmt.Printf("%-36s %-12s %-8s %-8d %14.2f %14.2f\n",
			m.ID, m.Date, formatRate(m.FreightRate)+"%", len(m.Invoices), value, freightTotal)
	}

	fmt.Println(strings.Repeat("-", 98))
	fmt.Printf("Total: %d manifests | Notas: %s | Frete: %s\n",
		len(manifests),
		export.FormatBRL(filter.TotalValue(manifests)),
		export.FormatBRL(filter.TotalFreight(manifests)))

	return nil
}

func DeleteAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: romaneio delete <manifest-id>")
	}
	manifestID := c.Args().Get(0)

	// Destructive: the store itself never asks, so the confirmation lives
	// here at the edge.
	if !c.Bool("yes") && !confirm(fmt.Sprintf("Delete manifest %s and all its invoices?", manifestID)) {
		fmt.Println("Aborted")
		return nil
	}

	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	common.WarnPersistFailed(st.DeleteManifest(manifestID))
	fmt.Printf("Deleted manifest %s\n", manifestID)
	return nil
}

func RateAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: romaneio rate <manifest-id> <rate>")
	}
	manifestID := c.Args().Get(0)
	rate, err := common.ParseAmount(c.Args().Get(1))
	if err != nil {
		return err
	}

	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	common.WarnPersistFailed(st.ChangeRate(manifestID, rate))
	fmt.Printf("Rate set to %s%% (freight recomputed for all invoices in the manifest)\n", formatRate(rate))
	return nil
}

func SettingsAction(c *cli.Context) error {
	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if c.IsSet("default-rate") {
		rate, err := common.ParseAmount(c.String("default-rate"))
		if err != nil {
			return err
		}
		common.WarnPersistFailed(st.SetDefaultRate(rate))
		fmt.Printf("Default freight rate set to %s%% (existing manifests unchanged)\n", formatRate(rate))
		return nil
	}

	fmt.Printf("Default freight rate: %s%%\n", formatRate(st.Settings().DefaultFreightRate))
	fmt.Printf("Database: %s\n", database.Path())
	return nil
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
