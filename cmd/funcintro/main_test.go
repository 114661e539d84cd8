package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vinodhalaharvi/funcintro/pkg/catalog"
)

// execute runs the root command with args and returns what it printed.
// Flag values and their Changed marks are reset first, since cobra keeps
// them between executions.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "funcintro version "+version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog.Default().Names()))
	assert.True(t, strings.HasPrefix(lines[0], "increment"))
	assert.Contains(t, out, "race")
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "sum", "hello-count")
	require.NoError(t, err)
	assert.Equal(t, "== sum ==\n  10\n\n== hello-count ==\n  imperative: 2\n  functional: 2\n", out)
}

func TestRunYAML(t *testing.T) {
	out, err := execute(t, "run", "squares", "-o", "yaml")
	require.NoError(t, err)

	var decoded []struct {
		Name  string `yaml:"name"`
		Value []int  `yaml:"value"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "squares", decoded[0].Name)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, decoded[0].Value)
}

func TestRunUnknown(t *testing.T) {
	_, err := execute(t, "run", "nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownExample)
}

func TestRunNeedsArgs(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestBadOutputFormat(t *testing.T) {
	_, err := execute(t, "run", "sum", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestAll(t *testing.T) {
	out, err := execute(t, "all")
	require.NoError(t, err)

	last := -1
	for _, e := range catalog.Default().Examples() {
		idx := strings.Index(out, "== "+e.Name+" ==")
		require.GreaterOrEqual(t, idx, 0, "missing %s", e.Name)
		assert.Greater(t, idx, last, "%s out of order", e.Name)
		last = idx
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funcintro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bands:\n  country: Iceland\n"), 0644))

	out, err := execute(t, "run", "bands", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Women (Iceland)")
}

func TestBadConfigFile(t *testing.T) {
	_, err := execute(t, "run", "sum", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeedReplaysRace(t *testing.T) {
	first, err := execute(t, "run", "race", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, "run", "race", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(7), cfg.Race.Seed)
}

func TestPurity(t *testing.T) {
	out, err := execute(t, "purity", "../../pkg/basics")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "IncrementInPlace: argument-write of n")
	assert.Contains(t, lines[1], "ReplaceWithRandom: argument-write of words")
	assert.Contains(t, lines[2], "FormatBandsInPlace: argument-write of bands")
}

func TestPurityDefaultsToCurrentPackage(t *testing.T) {
	out, err := execute(t, "purity")
	require.NoError(t, err)
	assert.Equal(t, "no side effects found\n", out)
}

func TestPurityReportsPointerReceivers(t *testing.T) {
	out, err := execute(t, "purity", "../../pkg/random")
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed.IntN: argument-write of f")
}

func TestPurityClean(t *testing.T) {
	out, err := execute(t, "purity", "../../pkg/ct")
	require.NoError(t, err)
	assert.Equal(t, "no side effects found\n", out)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))

	l, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
