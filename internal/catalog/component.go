package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Category groups components for filtering.
type Category string

const (
	CategoryForm           Category = "form"
	CategoryLayout         Category = "layout"
	CategoryNavigation     Category = "navigation"
	CategoryData           Category = "data"
	CategoryFeedback       Category = "feedback"
	CategoryAI             Category = "ai"
	CategoryAdvancedButton Category = "advanced-button"
	CategoryText           Category = "text"
)

var categoryOrder = []Category{
	CategoryForm,
	CategoryLayout,
	CategoryNavigation,
	CategoryData,
	CategoryFeedback,
	CategoryAI,
	CategoryAdvancedButton,
	CategoryText,
}

// Categories returns every known category in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, slices.Contains(categoryOrder, c)
}

// Library is the sub-collection a component is published in. It selects the
// documentation link and default install command templates.
type Library string

const (
	LibraryShadcn     Library = "shadcn"
	LibraryMagicUI    Library = "magicui"
	LibraryAceternity Library = "aceternity"
)

var (
	docsTemplates = map[Library]string{
		LibraryShadcn:     "https://ui.shadcn.com/docs/components/%s",
		LibraryMagicUI:    "https://magicui.design/docs/components/%s",
		LibraryAceternity: "https://ui.aceternity.com/components/%s",
	}
	installTemplates = map[Library]string{
		LibraryShadcn:     "npx shadcn@latest add %s",
		LibraryMagicUI:    `npx shadcn@latest add "https://magicui.design/r/%s"`,
		LibraryAceternity: `npx shadcn@latest add "https://ui.aceternity.com/registry/%s.json"`,
	}
)

// ComponentRecord describes one installable UI component. Records are never
// mutated once a Catalog is built; accessors hand out copies.
type ComponentRecord struct {
	Key              string   `json:"key" yaml:"key"`
	DisplayName      string   `json:"name" yaml:"name"`
	PackageName      string   `json:"package" yaml:"package"`
	ImportSnippet    string   `json:"import" yaml:"import"`
	UsageSnippet     string   `json:"usage" yaml:"-"`
	Description      string   `json:"description" yaml:"description"`
	Category         Category `json:"category" yaml:"category"`
	Tags             []string `json:"tags" yaml:"tags"`
	Library          Library  `json:"library,omitempty" yaml:"library,omitempty"`
	InstallCommand   string   `json:"installCommand,omitempty" yaml:"install,omitempty"`
	DocumentationURL string   `json:"documentationUrl,omitempty" yaml:"docs,omitempty"`
}

// Install returns the install command, preferring the record's override.
func (r ComponentRecord) Install() string {
	if r.InstallCommand != "" {
		return r.InstallCommand
	}
	tmpl, ok := installTemplates[r.library()]
	if !ok {
		tmpl = installTemplates[LibraryShadcn]
	}
	return fmt.Sprintf(tmpl, r.Key)
}

// DocsURL returns the documentation link, preferring the record's override.
func (r ComponentRecord) DocsURL() string {
	if r.DocumentationURL != "" {
		return r.DocumentationURL
	}
	tmpl, ok := docsTemplates[r.library()]
	if !ok {
		tmpl = docsTemplates[LibraryShadcn]
	}
	return fmt.Sprintf(tmpl, r.Key)
}

func (r ComponentRecord) library() Library {
	if r.Library == "" {
		return LibraryShadcn
	}
	return r.Library
}

func (r ComponentRecord) clone() ComponentRecord {
	r.Tags = slices.Clone(r.Tags)
	return r
}

func (r ComponentRecord) validate() error {
	if r.Key == "" {
		return fmt.Errorf("component key is empty")
	}
	if r.Key != strings.ToLower(strings.TrimSpace(r.Key)) {
		return fmt.Errorf("component %q: key must be lowercase without surrounding spaces", r.Key)
	}
	fields := map[string]string{
		"name":        r.DisplayName,
		"package":     r.PackageName,
		"import":      r.ImportSnippet,
		"usage":       r.UsageSnippet,
		"description": r.Description,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("component %q: %s is empty", r.Key, name)
		}
	}
	if !slices.Contains(categoryOrder, r.Category) {
		return fmt.Errorf("component %q: unknown category %q", r.Key, r.Category)
	}
	if r.Library != "" {
		if _, ok := docsTemplates[r.Library]; !ok {
			return fmt.Errorf("component %q: unknown library %q", r.Key, r.Library)
		}
	}
	return nil
}
