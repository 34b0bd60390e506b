package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ineyio/partquote"
)

func newOffersCmd(rc *RootConfig) *cobra.Command {
	var partFlag string

	cmd := &cobra.Command{
		Use:   "offers",
		Short: "List every stocking supplier's price for a part, cheapest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := partquote.ParsePart(partFlag)
			if err != nil {
				return err
			}

			sel, err := newSelector(cmd, rc)
			if err != nil {
				return err
			}

			offers, err := sel.Offers(part)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Rank", "Supplier", "Part", "Price")
			for i, o := range offers {
				if err := table.Append([]string{strconv.Itoa(i + 1), o.Supplier, o.Part.String(), formatPrice(o.Price)}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVarP(&partFlag, "part", "p", "", "Part as category:option, e.g. head:night-vision")
	_ = cmd.MarkFlagRequired("part")

	return cmd
}
