package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcblab/internal/catalog"
	"pcblab/internal/models"
)

var (
	queryFlag    string
	categoryFlag string
	sortFlag     string
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Search components and supplier offers",
	RunE:  runComponents,
}

var pcbsCmd = &cobra.Command{
	Use:   "pcbs",
	Short: "Search the board database",
	RunE:  runPCBs,
}

var faultsCmd = &cobra.Command{
	Use:   "faults",
	Short: "Search known fault patterns",
	RunE:  runFaults,
}

var toolsCmd = &cobra.Command{
	Use:   "tools [id]",
	Short: "List tools or show one tool",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTools,
}

func init() {
	for _, c := range []*cobra.Command{componentsCmd, pcbsCmd, faultsCmd} {
		c.Flags().StringVarP(&queryFlag, "query", "q", "", "case-insensitive search text")
	}
	for _, c := range []*cobra.Command{componentsCmd, pcbsCmd, toolsCmd} {
		c.Flags().StringVarP(&categoryFlag, "category", "c", catalog.AllCategories, "category filter")
	}
	componentsCmd.Flags().StringVarP(&sortFlag, "sort", "s", string(catalog.SortByPrice),
		"offer order: price, stock, rating or leadTime")
}

func runComponents(cmd *cobra.Command, args []string) error {
	key, err := catalog.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cat := catalog.Default()
	listings := cat.Components(queryFlag, categoryFlag)
	if len(listings) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No components found"))
		return nil
	}

	for _, l := range listings {
		c := l.Component
		fmt.Fprintln(out, titleStyle.Render(c.PartNumber))
		fmt.Fprintln(out, field("Description", c.Description))
		fmt.Fprintln(out, field("Manufacturer", c.Manufacturer))
		fmt.Fprintln(out, field("Package", c.PackageType))

		summary := catalog.Summarize(l)
		if !summary.HasOffers {
			fmt.Fprintln(out, dimStyle.Render("No suppliers found"))
			continue
		}
		fmt.Fprintln(out, field("Best price", fmt.Sprintf("$%.2f", summary.BestPrice)))
		fmt.Fprintln(out, field("Total stock", fmt.Sprint(summary.TotalStock)))

		offers, err := catalog.SortOffers(l.Offers, key)
		if err != nil {
			return err
		}
		for _, o := range offers {
			fmt.Fprintf(out, "  %-22s $%-6.2f %7d in stock  %-9s ★%.1f\n",
				o.SupplierName, o.Price, o.StockQuantity, o.LeadTime, o.Rating)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runPCBs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	records := catalog.Default().PCBs(queryFlag, categoryFlag)
	if len(records) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No boards found"))
		return nil
	}
	fmt.Fprintln(out, field("Status", statusLegend(models.PCBStatuses())))
	fmt.Fprintln(out)

	for _, r := range records {
		fmt.Fprintf(out, "%s  %s\n", titleStyle.Render(r.Model), badge(r.Status.Display()))
		fmt.Fprintln(out, field("Manufacturer", r.Manufacturer))
		fmt.Fprintln(out, field("Category", r.Category))
		fmt.Fprintln(out, field("Common faults", fmt.Sprint(r.CommonFaultsCount)))
		fmt.Fprintln(out, field("Success rate", fmt.Sprintf("%.1f%%", r.SuccessRate)))
		fmt.Fprintln(out, field("Updated", r.LastUpdated))
		fmt.Fprintln(out)
	}
	return nil
}

func runFaults(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	patterns := catalog.Default().FaultPatterns(queryFlag)
	if len(patterns) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No fault patterns found"))
		return nil
	}
	fmt.Fprintln(out, field("Severity", statusLegend(models.Severities())))
	fmt.Fprintln(out)

	for _, p := range patterns {
		fmt.Fprintf(out, "%s  %s\n", titleStyle.Render(p.Title), badge(p.Severity.Display()))
		fmt.Fprintln(out, field("Board", p.PCBModel))
		fmt.Fprintln(out, field("Reported", fmt.Sprintf("%d times", p.Frequency)))
		fmt.Fprintln(out, field("Symptoms", strings.Join(p.Symptoms, "; ")))
		fmt.Fprintln(out, field("Solution", p.Solution))
		fmt.Fprintln(out)
	}
	return nil
}

func runTools(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cat := catalog.Default()

	if len(args) == 1 {
		d, err := cat.ToolDetail(args[0])
		if err != nil {
			return err
		}
		printToolDetail(cmd, d)
		return nil
	}

	for _, t := range cat.ToolList(categoryFlag) {
		fmt.Fprintf(out, "%-24s %-14s %s\n", t.ID, t.Category, t.Description)
	}
	return nil
}

func printToolDetail(cmd *cobra.Command, d catalog.ToolDetail) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(d.Tool.Name))
	fmt.Fprintln(out, d.Summary)
	for _, f := range d.Tool.Features {
		fmt.Fprintln(out, "  • "+f)
	}
	if len(d.RecentSearches) > 0 {
		fmt.Fprintln(out, field("Recent searches", strings.Join(d.RecentSearches, ", ")))
	}
	if d.BOM != nil {
		fmt.Fprintln(out, field("Components", fmt.Sprint(d.BOM.Components)))
		fmt.Fprintln(out, field("Unique parts", fmt.Sprint(d.BOM.UniqueParts)))
		fmt.Fprintln(out, field("Est. cost", d.BOM.EstimatedCost))
	}
	if !d.Available {
		fmt.Fprintln(out, dimStyle.Render("Coming soon"))
	}
}

// statusLegend lists the palette used for a status type
func statusLegend[T interface {
	~string
	Display() (models.Display, bool)
}](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, badge(v.Display()))
	}
	return strings.Join(parts, " ")
}
