// Command sqlbridge is the sqlbridge CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlbridge/internal/cli"

	// Register built-in dialects.
	_ "github.com/leapstack-labs/sqlbridge/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlbridge/pkg/dialects/singlestore"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
