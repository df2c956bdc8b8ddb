package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"compkit/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExtension = "---\n" +
	"key: glass-card\n" +
	"name: Glass Card\n" +
	"package: motion\n" +
	"import: import { GlassCard } from \"@/components/ui/glass-card\"\n" +
	"description: A frosted glass card for hero sections.\n" +
	"category: layout\n" +
	"tags: [glass, card, blur]\n" +
	"library: aceternity\n" +
	"---\n" +
	"Some prose about the card.\n\n" +
	"```tsx\n<GlassCard>Hello</GlassCard>\n```\n"

func TestParseExtension(t *testing.T) {
	r, err := ParseExtension([]byte(validExtension))
	require.NoError(t, err)
	assert.Equal(t, "glass-card", r.Key)
	assert.Equal(t, "Glass Card", r.DisplayName)
	assert.Equal(t, CategoryLayout, r.Category)
	assert.Equal(t, LibraryAceternity, r.Library)
	assert.Equal(t, []string{"glass", "card", "blur"}, r.Tags)
	assert.Equal(t, "<GlassCard>Hello</GlassCard>", r.UsageSnippet)
	assert.Equal(t, "https://ui.aceternity.com/components/glass-card", r.DocsURL())
}

func TestParseExtension_BodyWithoutFence(t *testing.T) {
	content := strings.Replace(validExtension, "Some prose about the card.\n\n```tsx\n<GlassCard>Hello</GlassCard>\n```\n", "<GlassCard />\n", 1)
	r, err := ParseExtension([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "<GlassCard />", r.UsageSnippet)
}

func TestParseExtension_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no frontmatter", "# Just markdown\n"},
		{"missing key", strings.Replace(validExtension, "key: glass-card\n", "", 1)},
		{"bad category", strings.Replace(validExtension, "category: layout", "category: widgets", 1)},
		{"missing name", strings.Replace(validExtension, "name: Glass Card\n", "", 1)},
		{"empty body", strings.SplitAfter(validExtension, "library: aceternity\n---\n")[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExtension([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadExtensions(t *testing.T) {
	logger, buf := logging.NewTestLogger()
	dir := t.TempDir()

	writeFile(t, dir, "b-glass.md", validExtension)
	writeFile(t, dir, "a-broken.md", "no frontmatter here")
	writeFile(t, dir, "notes.txt", validExtension)
	writeFile(t, dir, "huge.md", validExtension+strings.Repeat("x", int(MaxExtensionFileSize)))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))

	records, err := LoadExtensions(dir, logger)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "glass-card", records[0].Key)
	assert.Contains(t, buf.String(), "Extension loading completed")
}

func TestLoadExtensions_MissingDir(t *testing.T) {
	logger, _ := logging.NewTestLogger()
	records, err := LoadExtensions(filepath.Join(t.TempDir(), "absent"), logger)
	assert.NoError(t, err)
	assert.Empty(t, records)

	records, err = LoadExtensions("", logger)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadExtensions_NilLogger(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "glass.md", validExtension)
	writeFile(t, dir, "broken.md", "no frontmatter here")

	records, err := LoadExtensions(dir, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "glass-card", records[0].Key)

	c, err := LoadWithExtensions(dir, nil)
	require.NoError(t, err)
	_, ok := c.Get("glass-card")
	assert.True(t, ok)
}

func TestLoadWithExtensions(t *testing.T) {
	logger, buf := logging.NewTestLogger()
	dir := t.TempDir()
	writeFile(t, dir, "glass.md", validExtension)
	writeFile(t, dir, "button.md", strings.Replace(validExtension, "key: glass-card", "key: button", 1))

	c, err := LoadWithExtensions(dir, logger)
	require.NoError(t, err)
	assert.Equal(t, Default().Len()+1, c.Len())

	r, ok := c.FindComponent("glass-card")
	require.True(t, ok)
	assert.Equal(t, "Glass Card", r.DisplayName)

	button, _ := c.Get("button")
	assert.Equal(t, CategoryForm, button.Category, "built-in wins over colliding extension")
	assert.Contains(t, buf.String(), "collides")
}
