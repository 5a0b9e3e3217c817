package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/altindan/config"
	"github.com/shashiranjanraj/altindan/database/seeders"
	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
)

// altindan seed — write the starter catalog and admin account.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the starter catalog and admin account (no-op when data exists)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
			return err
		}

		if err := catalog.NewProvider(config.DataDir()).Seed(seeders.Products()); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		if err := settings.NewStore(config.DataDir()).SeedAdmins(seeders.Admins()); err != nil {
			return fmt.Errorf("seed admins: %w", err)
		}

		fmt.Println("✅  Seeded", config.DataDir())
		return nil
	},
}

// altindan export — dump the order history as CSV to stdout.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the order history as CSV to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		data, err := order.ExportCSV(order.NewStore(config.DataDir()).ListAll())
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}

// altindan report — print order aggregates.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print order totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		r := order.BuildReport(order.NewStore(config.DataDir()).ListAll())
		fmt.Println("Orders: ", r.Count)
		fmt.Println("Qty:    ", strconv.FormatFloat(r.TotalQty, 'f', -1, 64))
		fmt.Println("Revenue:", strconv.FormatFloat(r.TotalRevenue, 'f', -1, 64))
		return nil
	},
}
