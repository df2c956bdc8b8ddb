package mcp

import (
	"fmt"
	"strings"
)

// Fallback texts are returned instead of an error when the HTTP API cannot
// be reached, so the assistant can still make progress.

func unreachableNote(baseURL string) string {
	return fmt.Sprintf("> The compkit API at %s is not reachable. Start it with `compkit serve`; the steps below work without it.\n\n", baseURL)
}

func listFallback(baseURL, query, category string) string {
	var b strings.Builder
	b.WriteString(unreachableNote(baseURL))
	b.WriteString("# Browse components manually\n\n")
	if query != "" {
		fmt.Fprintf(&b, "Search for %q in the component galleries:\n\n", query)
	} else if category != "" {
		fmt.Fprintf(&b, "Look for %s components in the component galleries:\n\n", category)
	}
	b.WriteString("- shadcn/ui: https://ui.shadcn.com/docs/components\n")
	b.WriteString("- Magic UI: https://magicui.design/docs/components\n")
	b.WriteString("- Aceternity UI: https://ui.aceternity.com/components\n")
	return b.String()
}

func detailsFallback(baseURL, name string) string {
	key := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	var b strings.Builder
	b.WriteString(unreachableNote(baseURL))
	fmt.Fprintf(&b, "# %s\n\n", name)
	b.WriteString("## Installation\n\n")
	fmt.Fprintf(&b, "```bash\nnpx shadcn@latest add %s\n```\n\n", key)
	b.WriteString("## Import\n\n")
	fmt.Fprintf(&b, "```tsx\nimport { ... } from \"@/components/ui/%s\"\n```\n\n", key)
	b.WriteString("## Documentation\n\n")
	fmt.Fprintf(&b, "https://ui.shadcn.com/docs/components/%s\n", key)
	return b.String()
}

func cloneFallback(baseURL, requestType string) string {
	var b strings.Builder
	b.WriteString(unreachableNote(baseURL))
	b.WriteString("# Cloning a frontend by hand\n\n")
	switch requestType {
	case "compare_screenshots":
		b.WriteString("Open the original and your clone side by side at the same window size and check:\n\n")
		b.WriteString("1. Section order and layout\n2. Typography and colors\n3. Spacing\n4. Images and icons\n5. Mobile layout\n")
	case "iteration_guide":
		b.WriteString("Work through one area per round: layout first, then typography and color, then spacing, then interactions.\n")
	default:
		b.WriteString("1. Take a screenshot of the page you want to clone.\n")
		b.WriteString("2. List its sections from top to bottom: navigation, hero, features, pricing, footer.\n")
		b.WriteString("3. Map each section to components, e.g. `navigation-menu`, `card`, `button`, `accordion`.\n")
		b.WriteString("4. Install them with `npx shadcn@latest add <component>` and build the page top-down.\n")
	}
	return b.String()
}

func conversationFallback(baseURL, flow string) string {
	var b strings.Builder
	b.WriteString(unreachableNote(baseURL))
	if flow == "landing" {
		b.WriteString("# Plan a landing page\n\n")
		b.WriteString("Answer these four questions and sketch the page from them:\n\n")
		b.WriteString("1. What product or service is the page for?\n2. Who is the audience?\n3. Which sections do you need?\n4. What visual style do you want?\n")
		return b.String()
	}
	b.WriteString("# Plan a project template\n\n")
	b.WriteString("Answer these four questions and pick components from them:\n\n")
	b.WriteString("1. What kind of project is it?\n2. Who is the audience?\n3. Which features does it need?\n4. What visual style do you want?\n")
	return b.String()
}
