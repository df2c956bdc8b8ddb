package clone

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"compkit/internal/catalog"
	"compkit/internal/patterns"
	"compkit/internal/screenshot"
)

// matchTolerance is the relative size difference still reported as a match.
const matchTolerance = 0.02

// Comparison holds the size differences between an original capture and its
// clone. Deltas are clone minus original.
type Comparison struct {
	OriginalID  string  `json:"originalId"`
	CloneID     string  `json:"cloneId"`
	WidthDelta  int     `json:"widthDelta"`
	HeightDelta int     `json:"heightDelta"`
	WidthRatio  float64 `json:"widthRatio"`
	HeightRatio float64 `json:"heightRatio"`
	SizeMatches bool    `json:"sizeMatches"`
}

// Compare measures clone against original.
func Compare(original, clone *screenshot.Capture) Comparison {
	c := Comparison{
		OriginalID:  original.ID,
		CloneID:     clone.ID,
		WidthDelta:  clone.Width - original.Width,
		HeightDelta: clone.Height - original.Height,
		WidthRatio:  ratio(clone.Width, original.Width),
		HeightRatio: ratio(clone.Height, original.Height),
	}
	c.SizeMatches = math.Abs(c.WidthRatio-1) <= matchTolerance && math.Abs(c.HeightRatio-1) <= matchTolerance
	return c
}

func ratio(a, b int) float64 {
	if b == 0 {
		if a == 0 {
			return 1
		}
		return 0
	}
	return float64(a) / float64(b)
}

func initialAnalysisText(url string, shot *screenshot.Capture, outline *screenshot.Outline, match patterns.Result, comps []catalog.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Clone analysis: %s\n\n", url)
	fmt.Fprintf(&b, "Captured screenshot `%s` (%dx%d).\n\n", shot.ID, shot.Width, shot.Height)

	if outline != nil {
		b.WriteString("## Page structure\n\n")
		if outline.Title != "" {
			fmt.Fprintf(&b, "- **Title:** %s\n", outline.Title)
		}
		if len(outline.Headings) > 0 {
			fmt.Fprintf(&b, "- **Headings:** %s\n", strings.Join(outline.Headings, " / "))
		}
		tags := slices.Sorted(maps.Keys(outline.Landmarks))
		for _, tag := range tags {
			fmt.Fprintf(&b, "- `<%s>` x%d\n", tag, outline.Landmarks[tag])
		}
		if outline.Inputs > 0 {
			fmt.Fprintf(&b, "- %d form inputs\n", outline.Inputs)
		}
		if outline.Images > 0 {
			fmt.Fprintf(&b, "- %d images\n", outline.Images)
		}
		b.WriteString("\n")
	}

	writePatterns(&b, match)
	writeComponents(&b, comps)

	b.WriteString("## Next steps\n\n")
	b.WriteString("1. Study the screenshot and sketch the section order.\n")
	b.WriteString("2. Install the suggested components.\n")
	b.WriteString("3. Build the layout section by section, starting at the top.\n")
	fmt.Fprintf(&b, "4. Run `compare_screenshots` with `originalScreenshotId: %s` and your clone's URL.\n", shot.ID)
	return b.String()
}

func suggestionText(match patterns.Result, comps []catalog.Summary) string {
	var b strings.Builder
	b.WriteString("# Component suggestions\n\n")
	writePatterns(&b, match)
	writeComponents(&b, comps)
	return b.String()
}

func writePatterns(b *strings.Builder, match patterns.Result) {
	b.WriteString("## Detected patterns\n\n")
	if match.Defaulted {
		b.WriteString("No known pattern detected; starting from the basics.\n\n")
		return
	}
	for _, h := range match.Hits {
		fmt.Fprintf(b, "- **%s** (matched %q)\n", h.Pattern, h.Keyword)
	}
	b.WriteString("\n")
}

func writeComponents(b *strings.Builder, comps []catalog.Summary) {
	b.WriteString("## Suggested components\n\n")
	for _, c := range comps {
		fmt.Fprintf(b, "- **%s** (priority %d): %s\n", c.Name, c.Score, c.Description)
	}
	if len(comps) == 0 {
		b.WriteString("None.\n\n")
		return
	}
	b.WriteString("\n```bash\n")
	for _, c := range comps {
		b.WriteString(c.InstallCommand)
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
}

func comparisonText(original, clone *screenshot.Capture, cmp Comparison) string {
	var b strings.Builder
	b.WriteString("# Screenshot comparison\n\n")
	fmt.Fprintf(&b, "- **Original:** %s (%dx%d)\n", original.URL, original.Width, original.Height)
	fmt.Fprintf(&b, "- **Clone:** %s (%dx%d)\n\n", clone.URL, clone.Width, clone.Height)

	if cmp.SizeMatches {
		b.WriteString("Page dimensions match.\n\n")
	} else {
		b.WriteString("## Size differences\n\n")
		if cmp.WidthDelta != 0 {
			fmt.Fprintf(&b, "- Width differs by %+dpx (%.0f%% of original)\n", cmp.WidthDelta, cmp.WidthRatio*100)
		}
		if cmp.HeightDelta != 0 {
			fmt.Fprintf(&b, "- Height differs by %+dpx (%.0f%% of original)\n", cmp.HeightDelta, cmp.HeightRatio*100)
		}
		if cmp.HeightDelta < 0 {
			b.WriteString("- The clone is shorter: look for missing sections or tighter spacing.\n")
		} else if cmp.HeightDelta > 0 {
			b.WriteString("- The clone is taller: look for extra padding or oversized elements.\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Review checklist\n\n")
	for _, item := range reviewChecklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	return b.String()
}

var reviewChecklist = []string{
	"Section order and overall layout",
	"Typography: font families, sizes and weights",
	"Colors, backgrounds and borders",
	"Spacing between and inside sections",
	"Images, icons and their proportions",
	"Buttons, links and hover states",
	"Behavior at mobile widths",
}

// iterationFocus is the area each refinement round concentrates on. Rounds
// past the end repeat the last entry.
var iterationFocus = []struct {
	title string
	steps []string
}{
	{"Layout and structure", []string{
		"Match the section order and grid of the original.",
		"Get container widths and alignment right before styling.",
	}},
	{"Typography and color", []string{
		"Match heading and body font sizes and weights.",
		"Apply the palette to backgrounds, text and accents.",
	}},
	{"Spacing and detail", []string{
		"Tune padding, margins and gaps section by section.",
		"Replace placeholder images and icons.",
	}},
	{"Interaction and polish", []string{
		"Add hover, focus and transition states.",
		"Check the page at mobile and tablet widths.",
	}},
}

func iterationText(iteration, budget int, feedback string) string {
	var b strings.Builder
	if iteration >= budget {
		fmt.Fprintf(&b, "# Iteration %d of %d: final pass\n\n", iteration, budget)
		if feedback != "" {
			fmt.Fprintf(&b, "**Feedback:** %s\n\n", feedback)
		}
		b.WriteString("The iteration budget is spent. Wrap up:\n\n")
		b.WriteString("1. Fix any remaining blocking differences.\n")
		b.WriteString("2. Run `compare_screenshots` one last time.\n")
		b.WriteString("3. Clean up unused components and styles.\n")
		return b.String()
	}

	focus := iterationFocus[min(iteration, len(iterationFocus))-1]
	fmt.Fprintf(&b, "# Iteration %d of %d: %s\n\n", iteration, budget, focus.title)
	if feedback != "" {
		fmt.Fprintf(&b, "**Feedback:** %s\n\n", feedback)
		b.WriteString("Address the feedback first, then:\n\n")
	}
	for i, step := range focus.steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nWhen done, run `compare_screenshots` and request iteration %d.\n", iteration+1)
	return b.String()
}
