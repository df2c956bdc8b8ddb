package conversation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"compkit/internal/catalog"
	"compkit/internal/logging"
	"compkit/internal/patterns"
)

// Answer keys of the template flow.
const (
	KeyProjectType = "projectType"
	KeyAudience    = "audience"
	KeyFeatures    = "features"
	KeyStyle       = "style"
)

// Answer keys of the landing flow that differ from the template flow.
const (
	KeyProduct  = "product"
	KeySections = "sections"
)

// maxRecommended caps the component table in rendered output.
const maxRecommended = 12

// NewTemplateFlow returns the project template flow.
func NewTemplateFlow(cat *catalog.Catalog, matcher *patterns.Matcher, logger *logging.AppLogger) *Flow {
	if logger == nil {
		logger = logging.GetDefault()
	}
	g := generator{cat: cat, matcher: matcher}
	return &Flow{
		name:  "template",
		title: "Project Template",
		intro: "Let's put together a component template for your project. I'll ask four short questions.",
		questions: [TotalSteps]Question{
			{
				Key:      KeyProjectType,
				Prompt:   "What kind of project are you building?",
				Examples: []string{"SaaS dashboard", "E-commerce store", "Blog", "Internal admin tool"},
			},
			{
				Key:      KeyAudience,
				Prompt:   "Who is the target audience?",
				Examples: []string{"Developers", "Small business owners", "Enterprise teams"},
			},
			{
				Key:      KeyFeatures,
				Prompt:   "Which key features or pages do you need? Separate them with commas.",
				Examples: []string{"login form, analytics dashboard, settings", "product gallery, cart, checkout form"},
			},
			{
				Key:      KeyStyle,
				Prompt:   "What visual style do you want?",
				Examples: []string{"Minimal and clean", "Dark and modern", "Playful with animations"},
			},
		},
		render: g.renderTemplate,
		logger: logger,
	}
}

// NewLandingFlow returns the landing page flow.
func NewLandingFlow(cat *catalog.Catalog, matcher *patterns.Matcher, logger *logging.AppLogger) *Flow {
	if logger == nil {
		logger = logging.GetDefault()
	}
	g := generator{cat: cat, matcher: matcher}
	return &Flow{
		name:  "landing",
		title: "Landing Page",
		intro: "Let's design a landing page. I'll ask four short questions.",
		questions: [TotalSteps]Question{
			{
				Key:      KeyProduct,
				Prompt:   "What product or service is the landing page for?",
				Examples: []string{"An AI writing assistant", "A fitness tracking app"},
			},
			{
				Key:      KeyAudience,
				Prompt:   "Who are you trying to reach?",
				Examples: []string{"Startup founders", "Students", "Marketing teams"},
			},
			{
				Key:      KeySections,
				Prompt:   "Which sections should the page have? Separate them with commas.",
				Examples: []string{"hero, features, pricing, testimonials, faq, footer"},
			},
			{
				Key:      KeyStyle,
				Prompt:   "What visual style do you want?",
				Examples: []string{"Bold gradients", "Minimal black and white", "Playful with animations"},
			},
		},
		render: g.renderLanding,
		logger: logger,
	}
}

type generator struct {
	cat     *catalog.Catalog
	matcher *patterns.Matcher
}

var listSeparators = regexp.MustCompile(`(?i)\s*(?:,|;|\n|\band\b)\s*`)

// splitList turns "a, b and c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range listSeparators.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (g generator) recommend(text string) []catalog.ComponentRecord {
	res := g.matcher.Match(text)
	recs := patterns.Resolve(g.cat, res.Suggestions)
	if len(recs) > maxRecommended {
		recs = recs[:maxRecommended]
	}
	return recs
}

func (g generator) renderTemplate(a map[string]string) string {
	features := splitList(a[KeyFeatures])
	recs := g.recommend(a[KeyProjectType] + "\n" + a[KeyFeatures])

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Template\n\n", titleCase(a[KeyProjectType]))
	fmt.Fprintf(&b, "**Audience:** %s\n\n", a[KeyAudience])
	fmt.Fprintf(&b, "**Style:** %s\n\n", a[KeyStyle])

	if len(features) > 0 {
		b.WriteString("## Features\n\n")
		for _, f := range features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	writeComponentTable(&b, recs)
	writeInstall(&b, recs)

	b.WriteString("## Project structure\n\n```\n")
	b.WriteString("app/\n  layout.tsx\n  page.tsx\n")
	for _, f := range features {
		fmt.Fprintf(&b, "  %s/\n    page.tsx\n", slug(f))
	}
	b.WriteString("components/\n  ui/\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "    %s.tsx\n", r.Key)
	}
	b.WriteString("```\n\n")

	writeStyleNotes(&b, a[KeyStyle])

	b.WriteString("## Next steps\n\n")
	b.WriteString("1. Initialize shadcn/ui with `npx shadcn@latest init`.\n")
	b.WriteString("2. Install the components above.\n")
	b.WriteString("3. Build each feature page from the recommended components.\n")
	fmt.Fprintf(&b, "4. Review the copy and flows with your audience (%s) in mind.\n", a[KeyAudience])
	return b.String()
}

func (g generator) renderLanding(a map[string]string) string {
	sections := splitList(a[KeySections])
	if len(sections) == 0 {
		sections = []string{"hero", "features", "footer"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Landing Page: %s\n\n", a[KeyProduct])
	fmt.Fprintf(&b, "**Audience:** %s\n\n", a[KeyAudience])
	fmt.Fprintf(&b, "**Style:** %s\n\n", a[KeyStyle])

	b.WriteString("## Page outline\n\n")
	var all []catalog.ComponentRecord
	seen := map[string]bool{}
	for i, section := range sections {
		recs := g.recommend(section)
		if len(recs) > 3 {
			recs = recs[:3]
		}
		names := make([]string, len(recs))
		for j, r := range recs {
			names[j] = r.DisplayName
			if !seen[r.Key] {
				seen[r.Key] = true
				all = append(all, r)
			}
		}
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, titleCase(section), strings.Join(names, ", "))
	}
	b.WriteString("\n")

	writeComponentTable(&b, all)
	writeInstall(&b, all)

	b.WriteString("## Page skeleton\n\n```tsx\nexport default function LandingPage() {\n  return (\n    <main>\n")
	for _, section := range sections {
		fmt.Fprintf(&b, "      <section id=%q>{/* %s */}</section>\n", slug(section), section)
	}
	b.WriteString("    </main>\n  )\n}\n```\n\n")

	writeStyleNotes(&b, a[KeyStyle])
	return b.String()
}

func writeComponentTable(b *strings.Builder, recs []catalog.ComponentRecord) {
	b.WriteString("## Recommended components\n\n")
	b.WriteString("| Component | Category | Description |\n|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(b, "| %s (`%s`) | %s | %s |\n", r.DisplayName, r.Key, r.Category, r.Description)
	}
	b.WriteString("\n")
}

// writeInstall batches the plain shadcn installs into one command and lists
// registry installs separately.
func writeInstall(b *strings.Builder, recs []catalog.ComponentRecord) {
	var batch []string
	var other []string
	for _, r := range recs {
		if (r.Library == "" || r.Library == catalog.LibraryShadcn) && r.InstallCommand == "" {
			batch = append(batch, r.Key)
			continue
		}
		other = append(other, r.Install())
	}

	b.WriteString("## Installation\n\n```bash\n")
	if len(batch) > 0 {
		fmt.Fprintf(b, "npx shadcn@latest add %s\n", strings.Join(batch, " "))
	}
	for _, cmd := range other {
		b.WriteString(cmd + "\n")
	}
	b.WriteString("```\n\n")
}

var styleHints = []struct {
	keyword string
	hint    string
}{
	{"dark", "Enable the dark theme by adding `class=\"dark\"` to the html element and tune the CSS variables in globals.css."},
	{"minimal", "Keep to the default neutral palette, generous spacing and one accent color."},
	{"gradient", "Use Animated Gradient Text for headlines and gradient borders on cards."},
	{"playful", "Add motion: Magic UI text effects and animated buttons work well here."},
	{"animat", "Prefer Magic UI and Aceternity components for motion; keep animations under 300ms for UI feedback."},
	{"corporate", "Favor neutral colors, clear typography and data-dense layouts."},
	{"modern", "Use rounded-xl cards, subtle borders and large display headings."},
}

func writeStyleNotes(b *strings.Builder, style string) {
	lower := strings.ToLower(style)
	var hints []string
	for _, h := range styleHints {
		if strings.Contains(lower, h.keyword) {
			hints = append(hints, h.hint)
		}
	}
	if len(hints) == 0 {
		hints = []string{"Start from the default shadcn/ui theme and adjust the CSS variables to match: " + style + "."}
	}
	b.WriteString("## Style notes\n\n")
	for _, h := range hints {
		fmt.Fprintf(b, "- %s\n", h)
	}
	b.WriteString("\n")
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
