package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlbridge/internal/cli/config"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/timefmt"
	"github.com/spf13/cobra"
)

// NewTimeFormatCommand creates the timefmt command.
func NewTimeFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "timefmt <format...>",
		Short: "Transcode time format strings between dialects",
		Long: `Decode time format strings in the source dialect's vocabulary and
re-encode them in the target dialect's vocabulary.

Examples:
  sqlbridge timefmt --from singlestore --to mysql "YYYY-MM-DD HH24:MI:SS"
  sqlbridge timefmt --from mysql --to singlestore "%Y-%m-%d"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()

			source, ok := dialect.Get(cfg.SourceDialect)
			if !ok {
				return fmt.Errorf("unknown source dialect %q", cfg.SourceDialect)
			}
			target, ok := dialect.Get(cfg.TargetDialect)
			if !ok {
				return fmt.Errorf("unknown target dialect %q", cfg.TargetDialect)
			}
			if source.TimeTable == nil {
				return fmt.Errorf("dialect %q has no time format table", source.Name)
			}
			if target.TimeTable == nil {
				return fmt.Errorf("dialect %q has no time format table", target.Name)
			}

			for _, format := range args {
				out, err := timefmt.Transcode(format, source.TimeTable, target.TimeTable)
				if err != nil {
					return fmt.Errorf("transcode %q: %w", format, err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
