package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"compkit/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COMPKIT_CONFIG", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "mcp", "search", "details", "capture", "browse", "template", "landing", "ui", "config"} {
		assert.Contains(t, names, want)
	}
}

func TestSearchMarkdown(t *testing.T) {
	results := catalog.Default().Search("button", catalog.SearchOptions{Limit: 2})

	out := searchMarkdown("button", results)
	assert.Contains(t, out, `# 2 results for "button"`)
	assert.Contains(t, out, "npx shadcn@latest add button")
	assert.Contains(t, searchMarkdown("qqqzzz", nil), "No components matched")
}

func TestSearchCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "search", "dialog", "--plain", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "`dialog`")

	_, err = execute(t, "search", "--category", "widgets", "--config", cfgPath)
	assert.ErrorContains(t, err, "unknown category")
}

func TestDetailsCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "details", "modal", "--plain", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "npx shadcn@latest add dialog")
}

func TestConfigInitAndPath(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	_, err = execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_iterations: 5")

	_, err = execute(t, "config", "init", "--config", cfgPath)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force", "--config", cfgPath)
	assert.NoError(t, err)
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:3001", displayAddr("", "3001"))
	assert.Equal(t, "0.0.0.0:8080", displayAddr("0.0.0.0", "8080"))
}
