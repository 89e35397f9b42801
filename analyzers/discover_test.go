package analyzers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "elm.yaml", "language: elm\nextensions:\n  - .elm\n")
	writeDefinition(t, dir, "broken.yaml", "language: [:::\n")
	writeDefinition(t, dir, "__reserved.yaml", "language: zig\nextensions:\n  - .zig\n")
	writeDefinition(t, dir, "notes.txt", "not a definition")

	r := NewRegistry()
	r.Discover(dir)

	// The well-formed definition is registered despite the broken one
	a, ok := r.Get("elm")
	require.True(t, ok)
	require.Equal(t, []string{".elm"}, a.SupportedExtensions())

	got, ok := r.ForFile("Main.elm")
	require.True(t, ok)
	require.Same(t, a, got)

	// Reserved files and non-definition files are skipped
	_, ok = r.Get("zig")
	require.False(t, ok)

	_, ok = r.Get("broken")
	require.False(t, ok)
}

func TestDiscoverMissingDirectory(t *testing.T) {
	r := NewRegistry()

	// Must return normally; nothing from a directory can be registered
	r.Discover(filepath.Join(t.TempDir(), "does-not-exist"))

	_, ok := r.Get("elm")
	require.False(t, ok)
}

func TestDiscoverRejectsDefinitionWithoutLanguage(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "anonymous.yaml", "extensions:\n  - .xyz\n")

	r := NewRegistry()
	r.Discover(dir)

	_, ok := r.ForFile("file.xyz")
	require.False(t, ok)
}

func TestDiscoverBuilderIsolation(t *testing.T) {
	RegisterBuilder("crablang-stub", func() (Analyzer, error) {
		return &stubAnalyzer{language: "crablang", exts: []string{".crab"}}, nil
	})
	RegisterBuilder("failing-stub", func() (Analyzer, error) {
		return nil, errors.New("grammar unavailable")
	})
	RegisterBuilder("panicking-stub", func() (Analyzer, error) {
		panic("boom")
	})

	r := NewRegistry()

	// Must not panic; the healthy builder still registers
	require.NotPanics(t, func() {
		r.Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	})

	a, ok := r.Get("crablang")
	require.True(t, ok)
	require.Equal(t, []string{".crab"}, a.SupportedExtensions())
}
