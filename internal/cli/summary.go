package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/service"
	"github.com/sakif/packlist/internal/summary"
)

func newSummaryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <packing-list-id>",
		Short: "Print the weight summary of a packing list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid packing list id %q", args[0])
			}

			store, err := openStore(cmd.Context(), a.cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			sum, err := service.NewPackingListService(store, a.logger).Summary(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			return printSummary(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw summary as JSON")
	return cmd
}

// printSummary renders the human-readable report. Categories are listed
// heaviest first for readability; the summary itself carries no order.
func printSummary(w io.Writer, s model.PackingListSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Packing list\t%d\n", s.PackingListID)
	fmt.Fprintf(tw, "Total weight\t%s\n", summary.FormatWeight(s.TotalWeight))
	fmt.Fprintf(tw, "Total items\t%d\n", s.TotalItems)
	fmt.Fprintf(tw, "Average per item\t%s\n", summary.FormatWeight(summary.AverageItemWeight(s)))
	fmt.Fprintf(tw, "Weight class\t%s\n", summary.Classify(s.TotalWeight))

	if len(s.CategoryBreakdown) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "CATEGORY\tWEIGHT\tITEMS")
		for _, c := range summary.SortedByWeight(s.CategoryBreakdown) {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Category, summary.FormatWeight(c.Weight), c.ItemCount)
		}
	}
	return tw.Flush()
}
