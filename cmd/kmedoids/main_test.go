package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/kmedoids"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_PrintsThreeLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.txt")
	require.NoError(t, kmedoids.WritePoints(path, []kmedoids.Point{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}}))

	stdout, _, err := execute(t, "--log-level", "error", path)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n5.000\n", stdout)
}

func TestRoot_Generator(t *testing.T) {
	stdout, stderr, err := execute(t, "--workers", "3", "--tile-size", "4", "--log-format", "json", "line(9, 2)")
	require.NoError(t, err)
	// 0..16 step 2: medoids 2 and 12 cost 2+0+2+4 + 4+2+0+2+4.
	assert.Equal(t, "1\n6\n20.000\n", stdout)
	assert.Contains(t, stderr, `"msg":"search completed"`)
}

func TestRoot_WorkersDoNotChangeResult(t *testing.T) {
	first, _, err := execute(t, "--workers", "1", "--log-level", "error", "uniform(40, 5)")
	require.NoError(t, err)
	for _, workers := range []string{"2", "7"} {
		out, _, err := execute(t, "--workers", workers, "--tile-size", "3", "--log-level", "error", "uniform(40, 5)")
		require.NoError(t, err)
		assert.Equal(t, first, out, "workers=%s", workers)
	}
}

func TestRoot_MissingArgument(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, stdout+stderr, "Usage:")
}

func TestRoot_TooManyArguments(t *testing.T) {
	_, _, err := execute(t, "line(3)", "line(4)")
	assert.Error(t, err)
}

func TestRoot_MalformedArgument(t *testing.T) {
	for _, arg := range []string{"spiral(10)", "uniform(ten, 1)", "line(3"} {
		stdout, stderr, err := execute(t, arg)
		require.Error(t, err, arg)
		assert.ErrorIs(t, err, kmedoids.ErrUnknownSource, arg)
		assert.Contains(t, stdout+stderr, "Usage:", arg)
	}
}

func TestRoot_RuntimeErrorOmitsUsage(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-level", "error", "line(1)")
	require.Error(t, err)
	assert.NotContains(t, stdout+stderr, "Usage:")
}

func TestRoot_TooFewPoints(t *testing.T) {
	_, _, err := execute(t, "--log-level", "error", "line(1)")
	assert.ErrorIs(t, err, kmedoids.ErrTooFewPoints)
}

func TestRoot_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workers: 2\nmetric: hamming\nlog:\n  level: error\n"), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "line(4)")
	assert.ErrorIs(t, err, kmedoids.ErrUnknownMetric)

	stdout, _, err := execute(t, "--config", cfgPath, "--metric", "l1", "line(4)")
	require.NoError(t, err)
	assert.Equal(t, "0\n2\n2.000\n", stdout)
}

func TestRoot_InvalidLogSettings(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "line(4)")
	assert.Error(t, err)
	_, _, err = execute(t, "--log-format", "xml", "line(4)")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.bin.zst")
	_, stderr, err := execute(t, "generate", "gaussian(30, 1, 2)", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote 30 points")

	src, err := kmedoids.OpenPointFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, src.N())

	fromFile, _, err := execute(t, "--log-level", "error", path)
	require.NoError(t, err)
	fromGen, _, err := execute(t, "--log-level", "error", "gaussian(30, 1, 2)")
	require.NoError(t, err)
	assert.Equal(t, fromGen, fromFile)
}

func TestGenerate_MalformedSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.txt")
	stdout, stderr, err := execute(t, "generate", "bogus(1,2)", path)
	require.Error(t, err)
	assert.Contains(t, stdout+stderr, "Usage:")
	assert.NoFileExists(t, path)
}

func TestResources(t *testing.T) {
	stdout, _, err := execute(t, "resources")
	require.NoError(t, err)
	assert.Equal(t, "cores: 1\naccelerators: 1\n", stdout)
}
