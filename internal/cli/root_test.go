package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlbridge/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Register built-in dialects.
	_ "github.com/leapstack-labs/sqlbridge/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlbridge/pkg/dialects/singlestore"
)

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestTranspileCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "identity transpile",
			args: []string{"transpile", "TO_DATE(x, 'YYYY-MM-DD')"},
			want: "TO_DATE(x, 'YYYY-MM-DD')",
		},
		{
			name: "singlestore to mysql",
			args: []string{"transpile", "--from", "singlestore", "--to", "mysql", "TO_DATE(x, 'YYYY-MM-DD')"},
			want: "TO_DATE(x, '%Y-%m-%d')",
		},
		{
			name: "time format lowering",
			args: []string{"transpile", "TIME_FORMAT(x, '%H:%i')"},
			want: "DATE_FORMAT(CAST(x AS TIME(6)), '%H:%i')",
		},
		{
			name: "cast operator",
			args: []string{"transpile", "x :> DATE"},
			want: "CAST(x AS DATE)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestTranspileCommandErrors(t *testing.T) {
	t.Run("unknown dialect", func(t *testing.T) {
		_, err := runCommand(t, "transpile", "--from", "nosuch", "1")
		assert.Error(t, err)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := runCommand(t, "transpile", "1 +")
		assert.Error(t, err)
	})
}

func TestTimeFormatCommand(t *testing.T) {
	t.Run("singlestore to mysql", func(t *testing.T) {
		out, err := runCommand(t, "timefmt", "--from", "singlestore", "--to", "mysql", "YYYY-MM-DD HH24:MI:SS")
		require.NoError(t, err)
		assert.Equal(t, "%Y-%m-%d %H:%i:%s", strings.TrimSpace(out))
	})

	t.Run("mysql to singlestore", func(t *testing.T) {
		out, err := runCommand(t, "timefmt", "--from", "mysql", "--to", "singlestore", "%Y-%m-%d")
		require.NoError(t, err)
		assert.Equal(t, "YYYY-MM-DD", strings.TrimSpace(out))
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := runCommand(t, "timefmt")
		assert.Error(t, err)
	})
}

func TestDialectsCommand(t *testing.T) {
	out, err := runCommand(t, "dialects")
	require.NoError(t, err)
	assert.Contains(t, out, "singlestore")
	assert.Contains(t, out, "mysql")
}

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, config.DefaultSourceDialect, cfg.SourceDialect)
	assert.Equal(t, config.DefaultTargetDialect, cfg.TargetDialect)
}
