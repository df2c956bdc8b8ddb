package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PackageManager is the JavaScript package manager a project uses.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerPNPM PackageManager = "pnpm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerBun  PackageManager = "bun"
)

// lockfiles are checked in order; the first one present wins.
var lockfiles = []struct {
	name string
	pm   PackageManager
}{
	{"pnpm-lock.yaml", PackageManagerPNPM},
	{"yarn.lock", PackageManagerYarn},
	{"bun.lockb", PackageManagerBun},
	{"bun.lock", PackageManagerBun},
	{"package-lock.json", PackageManagerNPM},
}

// Runner returns the one-off package runner for the manager.
func (pm PackageManager) Runner() string {
	switch pm {
	case PackageManagerPNPM:
		return "pnpm dlx"
	case PackageManagerYarn:
		return "yarn dlx"
	case PackageManagerBun:
		return "bunx"
	default:
		return "npx"
	}
}

// ProjectInfo is what could be learned about the caller's project directory.
type ProjectInfo struct {
	Dir            string         `json:"dir"`
	PackageManager PackageManager `json:"packageManager"`
	TypeScript     bool           `json:"typescript"`

	// ComponentsAlias and UIAlias come from components.json. Empty when the
	// project has no components.json or leaves them unset.
	ComponentsAlias string `json:"componentsAlias,omitempty"`
	UIAlias         string `json:"uiAlias,omitempty"`

	// UIDir is where generated ui components land on disk.
	UIDir string `json:"uiDir"`
}

type componentsJSON struct {
	TSX     *bool `json:"tsx"`
	Aliases struct {
		Components string `json:"components"`
		UI         string `json:"ui"`
	} `json:"aliases"`
}

// DetectProject inspects dir for lockfiles, components.json and tsconfig.json.
func DetectProject(dir string) (ProjectInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return ProjectInfo{}, fmt.Errorf("failed to stat project directory: %w", err)
	}
	if !info.IsDir() {
		return ProjectInfo{}, fmt.Errorf("project path %s is not a directory", dir)
	}

	p := ProjectInfo{Dir: dir, PackageManager: PackageManagerNPM}
	for _, lf := range lockfiles {
		if fileExists(filepath.Join(dir, lf.name)) {
			p.PackageManager = lf.pm
			break
		}
	}

	p.TypeScript = fileExists(filepath.Join(dir, "tsconfig.json"))

	cfg, err := readComponentsJSON(filepath.Join(dir, "components.json"))
	if err != nil {
		return ProjectInfo{}, err
	}
	if cfg != nil {
		p.ComponentsAlias = strings.TrimSuffix(cfg.Aliases.Components, "/")
		p.UIAlias = strings.TrimSuffix(cfg.Aliases.UI, "/")
		if p.UIAlias == "" && p.ComponentsAlias != "" {
			p.UIAlias = p.ComponentsAlias + "/ui"
		}
		if cfg.TSX != nil {
			p.TypeScript = *cfg.TSX
		}
	}

	p.UIDir = filepath.Join(dir, "components", "ui")
	if dirExists(filepath.Join(dir, "src")) {
		p.UIDir = filepath.Join(dir, "src", "components", "ui")
	}
	return p, nil
}

func readComponentsJSON(path string) (*componentsJSON, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read components.json: %w", err)
	}
	var cfg componentsJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse components.json: %w", err)
	}
	return &cfg, nil
}

// InstallCommandFor rewrites the record's install command for the project's
// package runner. Commands not starting with npx are returned unchanged.
func (p ProjectInfo) InstallCommandFor(r ComponentRecord) string {
	cmd := r.Install()
	if runner := p.PackageManager.Runner(); runner != "npx" && strings.HasPrefix(cmd, "npx ") {
		return runner + strings.TrimPrefix(cmd, "npx")
	}
	return cmd
}

// ImportFor rewrites the record's import path using the project's aliases.
func (p ProjectInfo) ImportFor(r ComponentRecord) string {
	imp := r.ImportSnippet
	switch {
	case p.UIAlias != "" && strings.Contains(imp, `"@/components/ui/`):
		return strings.Replace(imp, `"@/components/ui/`, `"`+p.UIAlias+`/`, 1)
	case p.ComponentsAlias != "" && strings.Contains(imp, `"@/components/`):
		return strings.Replace(imp, `"@/components/`, `"`+p.ComponentsAlias+`/`, 1)
	}
	return imp
}

// RelativeImport returns the import path of key's generated file relative to
// currentFile, for projects without a components.json alias.
func (p ProjectInfo) RelativeImport(currentFile, key string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(currentFile), filepath.Join(p.UIDir, key))
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", currentFile, p.UIDir, err)
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
