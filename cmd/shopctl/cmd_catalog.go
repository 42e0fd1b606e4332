package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/service"

	"github.com/spf13/cobra"
)

var (
	catalogCategory string
	catalogSearch   string
	catalogEvent    string
)

// catalogCmd 拉取表格并打印规范化后的商品
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch the product sheet and print the normalized catalog",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category (case-insensitive)")
	catalogCmd.Flags().StringVar(&catalogSearch, "search", "", "filter by keyword")
	catalogCmd.Flags().StringVar(&catalogEvent, "event", "", "filter by event id")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	source := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.SheetID, cfg.Catalog.Timeout())
	svc := service.NewCatalogService(cfg.Catalog, source)
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Catalog.Timeout())
	defer cancel()
	if _, err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	products := svc.ListProducts(catalog.Filter{
		Category: catalogCategory,
		EventID:  catalogEvent,
		Search:   catalogSearch,
	})
	return printProducts(cmd, products)
}

func printProducts(cmd *cobra.Command, products []catalog.Product) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tDISCOUNT\tFINAL\tCOLORS\tSIZES")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Price.String(), p.Discount, p.FinalPrice.String(),
			strings.Join(p.Colors, ","), strings.Join(p.Sizes, ","),
		)
	}
	fmt.Fprintf(w, "\n%d products\n", len(products))
	return w.Flush()
}
