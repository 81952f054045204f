package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Long:  `List the registered SQL dialects and their capabilities.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := dialect.List()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Dialect", "Extends", "Time Tokens", "Reserved Words"})

			for _, name := range names {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				base := ""
				if d.Base != nil {
					base = d.Base.Name
				}
				tokens := 0
				if d.TimeTable != nil {
					tokens = d.TimeTable.Len()
				}
				t.AppendRow(table.Row{d.Name, base, tokens, d.ReservedWordCount()})
			}

			t.Render()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No dialects registered")
			}
			return nil
		},
	}
	return cmd
}
