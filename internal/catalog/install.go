package catalog

import (
	"fmt"
	"strings"
)

// maxSuggestions caps the suggestions listed when a component is not found.
const maxSuggestions = 5

// Summary is the list-view projection of a ComponentRecord.
type Summary struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	Library          Library  `json:"library"`
	Tags             []string `json:"tags"`
	InstallCommand   string   `json:"installCommand"`
	DocumentationURL string   `json:"documentationUrl"`
	Score            int      `json:"score,omitempty"`
}

// Summarize projects r into a Summary.
func Summarize(r ComponentRecord) Summary {
	return Summary{
		Key:              r.Key,
		Name:             r.DisplayName,
		Description:      r.Description,
		Category:         r.Category,
		Library:          r.library(),
		Tags:             r.clone().Tags,
		InstallCommand:   r.Install(),
		DocumentationURL: r.DocsURL(),
	}
}

// DetailsRequest asks for installation instructions for one component.
type DetailsRequest struct {
	ComponentName string
	// CurrentFile is the absolute path of the file the component will be used in.
	CurrentFile string
	// ProjectDir is the absolute path of the project root.
	ProjectDir string
}

// Details is the outcome of a DetailsRequest. When Found is false, Markdown
// holds a not-found message with suggestions instead of instructions.
type Details struct {
	Found       bool
	Component   ComponentRecord
	Rule        MatchRule
	Project     *ProjectInfo
	Suggestions []ScoredComponent
	Markdown    string
	// ProjectErr is set when ProjectDir was given but could not be inspected.
	// Instructions are still produced with defaults.
	ProjectErr error
}

// Details resolves req.ComponentName with FindComponent and renders
// installation instructions tailored to the project when one is given.
func (c *Catalog) Details(req DetailsRequest) Details {
	r, rule, ok := c.FindComponentRule(req.ComponentName)
	if !ok {
		suggestions := c.Search(req.ComponentName, SearchOptions{Limit: maxSuggestions})
		return Details{
			Suggestions: suggestions,
			Markdown:    NotFoundMarkdown(req.ComponentName, suggestions),
		}
	}

	d := Details{Found: true, Component: r, Rule: rule}
	if req.ProjectDir != "" {
		p, err := DetectProject(req.ProjectDir)
		if err != nil {
			d.ProjectErr = err
		} else {
			d.Project = &p
		}
	}
	d.Markdown = InstallationMarkdown(r, d.Project, req.CurrentFile)
	return d
}

// InstallationMarkdown renders the installation instructions for r. project
// may be nil.
func InstallationMarkdown(r ComponentRecord, project *ProjectInfo, currentFile string) string {
	install := r.Install()
	imp := r.ImportSnippet
	if project != nil {
		install = project.InstallCommandFor(r)
		imp = project.ImportFor(r)
	}

	lang := "tsx"
	if project != nil && !project.TypeScript {
		lang = "jsx"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.DisplayName)
	fmt.Fprintf(&b, "%s\n\n", r.Description)
	fmt.Fprintf(&b, "**Category:** %s | **Library:** %s | **Package:** `%s`\n\n", r.Category, r.library(), r.PackageName)

	b.WriteString("## Installation\n\n")
	fmt.Fprintf(&b, "```bash\n%s\n```\n\n", install)

	b.WriteString("## Import\n\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, imp)

	b.WriteString("## Usage\n\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, r.UsageSnippet)

	if project != nil || currentFile != "" {
		b.WriteString("## Project\n\n")
		if project != nil {
			fmt.Fprintf(&b, "- Package manager: %s\n", project.PackageManager)
			fmt.Fprintf(&b, "- TypeScript: %t\n", project.TypeScript)
			if project.UIAlias != "" {
				fmt.Fprintf(&b, "- UI alias: `%s`\n", project.UIAlias)
			}
		}
		if currentFile != "" {
			fmt.Fprintf(&b, "- Target file: `%s`\n", currentFile)
			if project != nil && project.UIAlias == "" {
				if rel, err := project.RelativeImport(currentFile, r.Key); err == nil {
					fmt.Fprintf(&b, "- Relative import path: `%s`\n", rel)
				}
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Documentation\n\n")
	fmt.Fprintf(&b, "%s\n", r.DocsURL())

	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "\n**Tags:** %s\n", strings.Join(r.Tags, ", "))
	}
	return b.String()
}

// NotFoundMarkdown renders the message returned for an unknown component.
func NotFoundMarkdown(query string, suggestions []ScoredComponent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Component not found\n\n")
	fmt.Fprintf(&b, "No component matches %q.\n", strings.TrimSpace(query))
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if len(suggestions) > 0 {
		b.WriteString("\n## Did you mean\n\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", s.Component.DisplayName, s.Component.Key, s.Component.Description)
		}
	}
	b.WriteString("\nUse `list_components` to browse every available component.\n")
	return b.String()
}
