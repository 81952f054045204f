package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlbridge/internal/cli/config"
	"github.com/leapstack-labs/sqlbridge/pkg/dialect"
	"github.com/leapstack-labs/sqlbridge/pkg/generator"
	"github.com/leapstack-labs/sqlbridge/pkg/parser"
	"github.com/spf13/cobra"
)

// NewTranspileCommand creates the transpile command.
func NewTranspileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpile [expression...]",
		Short: "Transpile SQL expressions between dialects",
		Long: `Parse SQL expressions in the source dialect and render them in the
target dialect. Expressions are read from arguments, or from stdin
(one per line) when no arguments are given.

Examples:
  sqlbridge transpile "TO_DATE(x, 'YYYY-MM-DD')"
  sqlbridge transpile --from singlestore --to mysql "ts :> DATE"
  echo "TIME_FORMAT(x, 'HH24:MI')" | sqlbridge transpile`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			logger := config.GetLogger(cmd.Context())

			source, ok := dialect.Get(cfg.SourceDialect)
			if !ok {
				return fmt.Errorf("unknown source dialect %q", cfg.SourceDialect)
			}
			target, ok := dialect.Get(cfg.TargetDialect)
			if !ok {
				return fmt.Errorf("unknown target dialect %q", cfg.TargetDialect)
			}
			logger.Debug("transpiling", "from", source.Name, "to", target.Name)

			gen := generator.New(target)
			transpile := func(expr string) error {
				ast, err := parser.ParseExpr(expr, source)
				if err != nil {
					return fmt.Errorf("parse %q: %w", expr, err)
				}
				out, err := gen.Generate(ast)
				if err != nil {
					return fmt.Errorf("generate %q: %w", expr, err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			if len(args) > 0 {
				for _, expr := range args {
					if err := transpile(expr); err != nil {
						return err
					}
				}
				return nil
			}

			// No arguments: read expressions from stdin, one per line
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := transpile(line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}
