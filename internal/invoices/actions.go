// Package invoices implements the invoice-level CLI verbs.
package invoices

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/romaneio/internal/common"
)

func AddAction(c *cli.Context) error {
	value, err := common.ParseAmount(c.String("value"))
	if err != nil {
		return err
	}

	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	inv, found, err := st.AddInvoice(c.String("manifest"), c.String("number"), c.String("company"), value)
	if !found {
		// Stale reference, not a failure: mirror the store's no-op contract
		// but tell the user nothing happened.
		fmt.Printf("Manifest %s not found, nothing added\n", c.String("manifest"))
		return nil
	}
	common.WarnPersistFailed(err)

	fmt.Printf("Added invoice %s\n", inv.ID)
	fmt.Printf("  Nota: %s  Empresa: %s  Valor: %.2f  Frete: %.2f\n",
		inv.Number, inv.CompanyName, inv.Value, inv.Freight)
	return nil
}

func DeleteAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: romaneio invoice delete --manifest <id> <invoice-id>")
	}
	invoiceID := c.Args().Get(0)

	logger := common.Logger(c)
	st, database, err := common.OpenStore(c, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	common.WarnPersistFailed(st.DeleteInvoice(c.String("manifest"), invoiceID))
	fmt.Printf("Deleted invoice %s\n", invoiceID)
	return nil
}
