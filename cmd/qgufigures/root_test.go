package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iafilius/AttosecondDelays/src/figures"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_SelectedFigure(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--out-dir", dir, "--figures", "2", "--formats", "png", "--panel-width", "320", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "== QGU attosecond time delays ==")
	assert.Contains(t, out, "[init] figures=[2] formats=png")
	assert.Contains(t, out, "✓ Figure 2 saved: fig2_all_elements.png")
	assert.Contains(t, out, "== Done: 1 files in")
	assert.Contains(t, out, "  "+filepath.Join(dir, "fig2_all_elements.png"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fig2_all_elements.png", entries[0].Name())
}

func TestRoot_DataDir(t *testing.T) {
	dir, data := t.TempDir(), t.TempDir()
	_, err := execute(t, "--out-dir", dir, "--figures", "6", "--formats", "pdf", "--panel-width", "320",
		"--data-dir", data, "--no-color")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "fig6_corrections.pdf"))
	assert.FileExists(t, filepath.Join(data, "fig6_corrections.yaml"))
}

func TestRoot_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown figure", []string{"--figures", "9"}, "unknown figure"},
		{"bad format", []string{"--formats", "svg"}, "unknown format"},
		{"bad log level", []string{"--log-level", "loud"}, "invalid log level"},
		{"positional args", []string{"extra"}, "unknown command"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := append([]string{"--out-dir", t.TempDir(), "--no-color"}, c.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestRoot_UnknownFigureIsSentinel(t *testing.T) {
	_, err := execute(t, "--out-dir", t.TempDir(), "--figures", "0")
	assert.ErrorIs(t, err, figures.ErrUnknownFigure)
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"version", "--log-level", "debug", "--no-color"})
	defer figures.SetLogLevel("warn")
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "log level DEBUG")
	assert.NotContains(t, out.String(), "log level")
}

func TestCutoffs_Golden(t *testing.T) {
	out, err := execute(t, "cutoffs")
	require.NoError(t, err)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "cutoffs", []byte(out))
}

func TestCutoffs_YAML(t *testing.T) {
	out, err := execute(t, "cutoffs", "--yaml")
	require.NoError(t, err)
	var rows []cutoffRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "He", rows[0].Symbol)
	for _, r := range rows {
		assert.Less(t, r.Corrected, r.Bare, r.Symbol)
		assert.InDelta(t, r.Bare*r.Factors.Total(), r.Corrected, 1e-9, r.Symbol)
	}
}

func TestElements(t *testing.T) {
	out, err := execute(t, "elements")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "He "))
	assert.Contains(t, lines[5], "6.35")

	out, err = execute(t, "elements", "--yaml")
	require.NoError(t, err)
	var rows []elementRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Equal(t, elementRow{"Ne", 10, 3.85, 2, 10, 21.56}, rows[1])
}

func TestVersion(t *testing.T) {
	saved := version
	version = "test-1.0.0"
	defer func() { version = saved }()
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "qgufigures version test-1.0.0\n", out)
}
