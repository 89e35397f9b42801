package analyzers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultPluginDir is the directory Discover scans when given an empty
// path.
const DefaultPluginDir = "languages"

// Builder constructs an analyzer instance. Built-in analyzer packages
// register one from init so Discover can instantiate them with per-builder
// failure isolation.
type Builder func() (Analyzer, error)

type namedBuilder struct {
	name  string
	build Builder
}

var (
	buildersMu sync.Mutex
	builders   []namedBuilder
)

// RegisterBuilder adds an analyzer constructor to the discovery table.
// Typically called from init in an analyzer implementation package.
func RegisterBuilder(name string, b Builder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders = append(builders, namedBuilder{name: name, build: b})
}

// definition is the on-disk analyzer plugin format: a declarative YAML file
// naming a language and the extensions it owns. Discovered definitions are
// registered as generic analyzers.
type definition struct {
	Language   string   `yaml:"language"`
	Extensions []string `yaml:"extensions"`
}

// Discover populates the registry from the builder table and from analyzer
// definition files found in dir (non-recursive). Files whose name starts
// with "__" are reserved and skipped. A failing builder or definition file
// is logged and skipped; one bad plugin never aborts discovery of the
// rest. A missing directory is a logged warning, not an error.
func (r *Registry) Discover(dir string) {
	if dir == "" {
		dir = DefaultPluginDir
	}

	buildersMu.Lock()
	table := make([]namedBuilder, len(builders))
	copy(table, builders)
	buildersMu.Unlock()

	for _, b := range table {
		r.buildAndRegister(b)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Warn("analyzer plugin directory does not exist", "dir", dir)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("cannot read analyzer plugin directory", "dir", dir, "error", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "__") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
		default:
			continue
		}

		if err := r.loadDefinition(filepath.Join(dir, name)); err != nil {
			slog.Error("failed to load analyzer definition", "file", name, "error", err)
			continue
		}
		slog.Debug("loaded analyzer definition", "file", name)
	}
}

// buildAndRegister runs a single builder, containing both errors and
// panics so a broken analyzer cannot take down the rest of discovery.
func (r *Registry) buildAndRegister(b namedBuilder) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("analyzer builder panicked", "analyzer", b.name, "panic", rec)
		}
	}()

	a, err := b.build()
	if err != nil {
		slog.Error("analyzer builder failed", "analyzer", b.name, "error", err)
		return
	}

	r.Register(a)
	slog.Debug("registered analyzer", "analyzer", b.name, "language", a.LanguageName())
}

func (r *Registry) loadDefinition(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read definition: %w", err)
	}

	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parse definition: %w", err)
	}
	if def.Language == "" {
		return fmt.Errorf("definition %s has no language name", filepath.Base(path))
	}

	r.Register(NewDefaultAnalyzer(def.Language, def.Extensions...))
	return nil
}

// Discover populates the Default registry.
func Discover(dir string) {
	Default.Discover(dir)
}
