package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"compkit/internal/logging"
	"compkit/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// MaxExtensionFileSize is the largest extension file that will be read.
const MaxExtensionFileSize int64 = 256 * 1024

// extensionMatter is the YAML frontmatter of an extension file.
type extensionMatter struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Package     string   `yaml:"package"`
	Import      string   `yaml:"import"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Library     string   `yaml:"library"`
	Install     string   `yaml:"install"`
	Docs        string   `yaml:"docs"`
}

var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\\n(.*?)\\n?```")

// LoadExtensions reads every *.md file in dir and parses it into a record.
// Files that fail validation are skipped and logged; the returned slice is
// sorted by file name. A missing dir yields no records and no error.
func LoadExtensions(dir string, logger *logging.AppLogger) ([]ComponentRecord, error) {
	if logger == nil {
		logger = logging.GetDefault()
	}
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var records []ComponentRecord
	var skipped int
	for _, name := range names {
		r, err := loadExtensionFile(filepath.Join(dir, name), dir)
		if err != nil {
			logger.Debug("Skipping extension file", "name", name, "reason", err)
			skipped++
			continue
		}
		records = append(records, r)
	}

	logger.Info("Extension loading completed",
		"totalFiles", len(names),
		"components", len(records),
		"skipped", skipped)

	return records, nil
}

func loadExtensionFile(path, dir string) (ComponentRecord, error) {
	if err := fileops.ValidateFileInDirectory(path, dir); err != nil {
		return ComponentRecord{}, fmt.Errorf("file validation failed: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(path, MaxExtensionFileSize); err != nil {
		return ComponentRecord{}, fmt.Errorf("file size check failed: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("failed to read file: %w", err)
	}
	if err := fileops.ValidateTextContent(string(content)); err != nil {
		return ComponentRecord{}, fmt.Errorf("content check failed: %w", err)
	}

	return ParseExtension(content)
}

// ParseExtension builds a record from an extension file. The usage snippet is
// the first fenced code block of the body, or the whole body when it has none.
func ParseExtension(content []byte) (ComponentRecord, error) {
	var matter extensionMatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		return ComponentRecord{}, fmt.Errorf("no valid frontmatter found: %w", err)
	}
	if matter.Key == "" {
		return ComponentRecord{}, fmt.Errorf("frontmatter is missing key")
	}

	cat, ok := ParseCategory(matter.Category)
	if !ok {
		return ComponentRecord{}, fmt.Errorf("component %q: unknown category %q", matter.Key, matter.Category)
	}

	usage := strings.TrimSpace(string(body))
	if m := fencedBlock.FindStringSubmatch(usage); m != nil {
		usage = strings.TrimSpace(m[1])
	}

	r := ComponentRecord{
		Key:              strings.ToLower(strings.TrimSpace(matter.Key)),
		DisplayName:      matter.Name,
		PackageName:      matter.Package,
		ImportSnippet:    matter.Import,
		UsageSnippet:     usage,
		Description:      matter.Description,
		Category:         cat,
		Tags:             matter.Tags,
		Library:          Library(strings.ToLower(matter.Library)),
		InstallCommand:   matter.Install,
		DocumentationURL: matter.Docs,
	}
	if err := r.validate(); err != nil {
		return ComponentRecord{}, err
	}
	return r, nil
}

// LoadWithExtensions returns the built-in catalog extended with the records
// found in dir. Colliding extension keys are logged and dropped.
func LoadWithExtensions(dir string, logger *logging.AppLogger) (*Catalog, error) {
	if logger == nil {
		logger = logging.GetDefault()
	}
	base := Default()
	extra, err := LoadExtensions(dir, logger)
	if err != nil {
		return nil, err
	}
	c, rejected, err := base.WithExtensions(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to extend catalog: %w", err)
	}
	for _, key := range rejected {
		logger.Warn("Extension key collides with a built-in component", "key", key)
	}
	return c, nil
}
