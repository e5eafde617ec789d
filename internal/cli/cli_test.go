package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-songfactory/internal/cli"
	"github.com/IvanChernomyrdin/go-songfactory/internal/config"
	"github.com/IvanChernomyrdin/go-songfactory/internal/demo"
	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-songfactory/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
)

// withDeps подменяет логгер на Nop, чтобы тесты не писали runtime/logs.
func withDeps(t *testing.T) {
	t.Helper()

	origLogger := cli.NewLogger
	origDriver := cli.NewDriver
	t.Cleanup(func() {
		cli.NewLogger = origLogger
		cli.NewDriver = origDriver
	})

	cli.NewLogger = func(config.LogConfig) (*logger.Logger, error) { return logger.Nop(), nil }
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCmd("1.0.0", "2026-10-18")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, yml string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "songfactory.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yml), 0o600))
	return p
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.0.0", "2026-10-18")

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, w := range []string{"demo", "make", "version"} {
		require.True(t, names[w], "expected subcommand %q", w)
	}
}

func TestVersion_PrintsVersionAndBuildDate(t *testing.T) {
	withDeps(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "songfactory 1.0.0 (built 2026-10-18, go"), out)
}

func TestDemo_TraceAndSummaryOnStdout(t *testing.T) {
	withDeps(t)

	out, err := execute(t, "demo")
	require.NoError(t, err)

	require.Equal(t, 4, strings.Count(out, " constructed "))
	require.Equal(t, 4, strings.Count(out, " destroyed "))
	require.Contains(t, out, "+ #0.1 constructed Michael Jackson - Beat It\n")
	require.Contains(t, out, "- #0.1 destroyed   Michael Jackson - Beat It\n")
	require.Contains(t, out, "constructed=4 destroyed=4 visited=3 iteration_events=0 order=forward\n")

	// одиночная песня уничтожается последней
	lastDestroy := strings.LastIndex(out, "- #")
	require.Equal(t, strings.Index(out, "- #0.1 destroyed"), lastDestroy)
}

func TestDemo_OrderFlagOverridesConfig(t *testing.T) {
	withDeps(t)

	rec := trace.NewRecorder()
	cli.NewDriver = func(cfg *config.Config, out io.Writer, tr trace.Tracer, log *logger.Logger) *demo.Driver {
		return demo.New(cfg, out, trace.Multi(tr, rec), log)
	}

	p := writeConfig(t, "trace:\n  output: none\n  destroy_order: forward\n")
	out, err := execute(t, "demo", "--config", p, "--order", "reverse")
	require.NoError(t, err)

	require.NotContains(t, out, "+ #")
	require.Contains(t, out, "order=reverse")
	require.Equal(t, []string{
		"Garrison Keillor - The Mira Chanted",
		"Cyndi Lauper - Time After Time",
		"Bob Dylan - The Times They Are A Changing",
		"Michael Jackson - Beat It",
	}, rec.Subjects(trace.KindDestroyed))
}

func TestDemo_BadOrderFlag(t *testing.T) {
	withDeps(t)

	_, err := execute(t, "demo", "--order", "sideways")
	require.Error(t, err)
}

func TestDemo_AllocationErrorFromEnv(t *testing.T) {
	withDeps(t)
	t.Setenv("SONGFACTORY_MAX_SLOTS", "1")

	out, err := execute(t, "demo")
	require.ErrorIs(t, err, serr.ErrAllocation)

	// созданная песня всё равно уничтожена
	require.Equal(t, 1, strings.Count(out, " constructed "))
	require.Equal(t, 1, strings.Count(out, " destroyed "))
}

func TestRoot_BadConfigFails(t *testing.T) {
	withDeps(t)

	p := writeConfig(t, "log:\n  level: loud\n")
	_, err := execute(t, "--config", p, "version")
	require.ErrorIs(t, err, serr.ErrInvalidConfig)
}

func TestMake_OneConstructionOneDestruction(t *testing.T) {
	withDeps(t)

	out, err := execute(t, "make", "--artist", "Michael Jackson", "--title", "Beat It")
	require.NoError(t, err)

	require.Contains(t, out, "artist=Michael Jackson\ntitle=Beat It\nref=#0.1\n")
	require.Equal(t, 1, strings.Count(out, " constructed "))
	require.Equal(t, 1, strings.Count(out, " destroyed "))
	require.Less(t, strings.Index(out, "artist="), strings.Index(out, "- #0.1 destroyed"))
}

func TestMake_RequiresFlags(t *testing.T) {
	withDeps(t)

	_, err := execute(t, "make", "--artist", "x")
	require.Error(t, err)
}
