package screenshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html>
<head><title>  Acme   Analytics </title></head>
<body>
  <header><nav><a href="/">Home</a><a href="/pricing">Pricing</a><a href="/">Home</a></nav></header>
  <main>
    <section><h1>Ship faster</h1><button>Get started</button></section>
    <section><h2>Pricing</h2><div role="button">Monthly</div></section>
    <form><input type="email"><textarea></textarea><button>Subscribe</button></form>
    <table><tr><td>1</td></tr></table>
    <img src="a.png"><img src="b.png">
  </main>
  <footer><a href="/terms">Terms</a></footer>
</body>
</html>`

func TestExtractOutline(t *testing.T) {
	o, err := ExtractOutline(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "Acme Analytics", o.Title)
	assert.Equal(t, []string{"Ship faster", "Pricing"}, o.Headings)
	assert.Equal(t, map[string]int{
		"header": 1, "nav": 1, "main": 1, "section": 2, "footer": 1, "form": 1, "table": 1,
	}, o.Landmarks)
	assert.ElementsMatch(t, []string{"Home", "Pricing", "Get started", "Monthly", "Subscribe", "Terms"}, o.Actions)
	assert.Equal(t, 2, o.Images)
	assert.Equal(t, 2, o.Inputs)
}

func TestOutline_Text(t *testing.T) {
	o, err := ExtractOutline(samplePage)
	require.NoError(t, err)

	text := o.Text()
	assert.Contains(t, text, "title: Acme Analytics")
	assert.Contains(t, text, "heading: Ship faster")
	assert.Contains(t, text, "navigation x1")
	assert.Contains(t, text, "footer x1")
	assert.Contains(t, text, "form inputs x2")
	assert.NotContains(t, text, "image gallery")
}

func TestExtractOutline_CapsItems(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("<h2>Heading</h2><a>link ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("</a>")
	}
	o, err := ExtractOutline(b.String())
	require.NoError(t, err)
	assert.Len(t, o.Headings, maxOutlineItems)
	assert.Len(t, o.Actions, maxOutlineItems)
}

func TestExtractOutline_Empty(t *testing.T) {
	o, err := ExtractOutline("")
	require.NoError(t, err)
	assert.Empty(t, o.Title)
	assert.Empty(t, o.Headings)
	assert.Empty(t, o.Text())
}
