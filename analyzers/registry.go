package analyzers

import (
	"log/slog"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-enry/go-enry/v2"
)

// Registry maps language names to analyzers and file extensions to the
// language that owns them. Registration is last-write-wins for both keys.
// Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	analyzers  map[string]Analyzer
	extensions map[string]string // ext -> language name
}

// Default is the process-wide registry used by the package-level helpers.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		analyzers:  make(map[string]Analyzer),
		extensions: make(map[string]string),
	}
}

// Register adds an analyzer, replacing any prior entry for the same
// language name. Extension ownership moves to the new analyzer for every
// extension it declares. Register never fails.
func (r *Registry) Register(a Analyzer) {
	language := a.LanguageName()

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.analyzers[language]; ok && reflect.TypeOf(prev) != reflect.TypeOf(a) {
		slog.Debug("replacing analyzer",
			"language", language, "old", typeName(prev), "new", typeName(a))
	}

	r.analyzers[language] = a
	for _, ext := range a.SupportedExtensions() {
		r.extensions[ext] = language
	}
}

// ForFile returns the analyzer for a file path, keyed on its lower-cased
// extension. A path without an extension matches nothing unless the empty
// extension was explicitly registered.
func (r *Registry) ForFile(path string) (Analyzer, bool) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	language, ok := r.extensions[ext]
	if !ok {
		return nil, false
	}
	a, ok := r.analyzers[language]
	return a, ok
}

// Get returns the analyzer registered under a language name.
func (r *Registry) Get(language string) (Analyzer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.analyzers[language]
	return a, ok
}

// Extensions returns a copy of the extension index (extension -> language).
func (r *Registry) Extensions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.extensions))
	for ext, language := range r.extensions {
		out[ext] = language
	}
	return out
}

// Languages returns the names of all registered languages, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Analyzers groups supported extensions by the concrete analyzer
// implementation type. The key is the type name, not the language name:
// several languages served by the same implementation (the generic
// defaults, for instance) are reported as one entry with their extensions
// concatenated. Useful for diagnostics ("which analyzer handles what").
func (r *Registry) Analyzers() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string)
	for _, a := range r.analyzers {
		name := typeName(a)
		out[name] = append(out[name], a.SupportedExtensions()...)
	}
	return out
}

// DetectLanguage resolves an analyzer from file content when the extension
// alone is not conclusive, using enry's classifier. The detected language
// name is lower-cased before the registry lookup.
func (r *Registry) DetectLanguage(path string, content []byte) (Analyzer, bool) {
	language, safe := enry.GetLanguageByExtension(path)
	if !safe || language == "" {
		language = enry.GetLanguage(filepath.Base(path), content)
	}
	if language == "" {
		return nil, false
	}
	return r.Get(strings.ToLower(language))
}

func typeName(a Analyzer) string {
	t := reflect.TypeOf(a)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Register adds an analyzer to the Default registry.
func Register(a Analyzer) {
	Default.Register(a)
}

// ForFile returns the Default registry's analyzer for a file path.
func ForFile(path string) (Analyzer, bool) {
	return Default.ForFile(path)
}

// Get returns the Default registry's analyzer for a language name.
func Get(language string) (Analyzer, bool) {
	return Default.Get(language)
}
