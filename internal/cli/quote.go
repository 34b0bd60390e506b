package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ineyio/partquote"
)

func newQuoteCmd(rc *RootConfig) *cobra.Command {
	var head, body string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a head and/or body at the cheapest stocking supplier",
		Long: `Quote looks up each requested part across the configured suppliers
and prints the lowest price offered by a supplier that stocks it.

Examples:
  partquote quote --head infrared-vision
  partquote quote --head infrared-vision --body square`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if head == "" && body == "" {
				return fmt.Errorf("at least one of --head or --body is required")
			}

			sel, err := newSelector(cmd, rc)
			if err != nil {
				return err
			}

			var q partquote.Quote
			switch {
			case head != "" && body != "":
				q, err = sel.QuotePair(partquote.Head(head), partquote.Body(body))
			case head != "":
				q, err = sel.Quote(partquote.Head(head))
			default:
				q, err = sel.Quote(partquote.Body(body))
			}
			if err != nil {
				return err
			}

			return renderQuote(cmd, q)
		},
	}

	cmd.Flags().StringVar(&head, "head", "", "Head option, e.g. infrared-vision")
	cmd.Flags().StringVar(&body, "body", "", "Body option, e.g. square")

	return cmd
}

func renderQuote(cmd *cobra.Command, q partquote.Quote) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Category", "Option", "Price")
	for _, l := range q.Lines() {
		if err := table.Append([]string{string(l.Part.Category), l.Part.Option, formatPrice(l.Price)}); err != nil {
			return err
		}
	}
	table.Footer("", "Total", formatPrice(q.Total()))
	return table.Render()
}
