package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucktrack/internal/config"
)

// run executes the root command with an isolated config and log file
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--log-file", filepath.Join(dir, "trucktrack.log"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "routes")
	require.NoError(t, err)

	for _, want := range []string{"/trucks/:id", "truck-details", "/aboutus", "not-found", "conflict mode:"} {
		assert.Contains(t, out, want)
	}
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "resolve", "/trucks/taco-libre")
	require.NoError(t, err)
	assert.Contains(t, out, "view:    truck-details")
	assert.Contains(t, out, "pattern: /trucks/:id")
	assert.Contains(t, out, "param:   id=taco-libre")

	out, err = run(t, dir, "resolve", "/nope")
	require.NoError(t, err)
	assert.Contains(t, out, "view:    not-found")
	assert.Contains(t, out, "(no match)")
}

func TestResolveNeedsOnePath(t *testing.T) {
	_, err := run(t, t.TempDir(), "resolve")
	assert.Error(t, err)
}

func TestTrucksCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "trucks", "al pastor")
	require.NoError(t, err)
	assert.Contains(t, out, "Taco Libre")
	assert.NotContains(t, out, "Smoke Stack")

	out, err = run(t, dir, "trucks", "--cuisine", "BBQ")
	require.NoError(t, err)
	assert.Contains(t, out, "smoke-stack")
	assert.NotContains(t, out, "taco-libre")

	out, err = run(t, dir, "trucks", "zzzz-nothing")
	require.NoError(t, err)
	assert.Equal(t, "no trucks match", strings.TrimSpace(out))
}

func TestConfigInitWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	out, err := run(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().StartPath, cfg.StartPath)

	_, err = run(t, dir, "config", "init")
	assert.Error(t, err, "refuses to overwrite without --force")

	_, err = run(t, dir, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigInitForceReplacesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[filters]]\nid = \"\"\n"), 0o644))

	_, err := run(t, dir, "routes")
	require.Error(t, err, "an invalid config blocks normal commands")

	_, err = run(t, dir, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.NewConfigServiceAt(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Filters, cfg.Filters)
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), strings.TrimSpace(out))
}

func TestStartPathFlagIsApplied(t *testing.T) {
	dir := t.TempDir()
	opts := &rootOptions{
		configPath: filepath.Join(dir, "config.toml"),
		logFile:    filepath.Join(dir, "trucktrack.log"),
		startPath:  "/events",
	}
	a, err := setup(opts)
	require.NoError(t, err)
	defer a.cleanup()

	assert.Equal(t, "/events", a.cfg.StartPath)
	assert.Equal(t, opts.logFile, a.cfg.LogFile)
	assert.NotEmpty(t, a.store.Trucks())
}

func TestSetupRejectsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("start_path = [\n"), 0o644))

	_, err := setup(&rootOptions{configPath: path, logFile: filepath.Join(dir, "x.log")})
	assert.Error(t, err)
}
