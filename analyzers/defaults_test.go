package analyzers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()

	for _, tc := range []struct {
		file     string
		language string
	}{
		{"index.html", "html"},
		{"style.scss", "css"},
		{"config.yml", "yaml"},
		{"Cargo.toml", "toml"},
		{"deploy.sh", "bash"},
		{"lib.rs", "rust"},
		{"app.rb", "ruby"},
		{"Main.kt", "kotlin"},
	} {
		a, ok := r.ForFile(tc.file)
		require.True(t, ok, "no analyzer for %s", tc.file)
		require.Equal(t, tc.language, a.LanguageName())
		require.IsType(t, &DefaultAnalyzer{}, a)
	}
}

func TestRegisterDefaultsSkipsBuiltinLanguages(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()

	// Languages with richer built-in analyzers get no generic fallback
	for _, language := range []string{"go", "python", "typescript", "javascript", "java"} {
		_, ok := r.Get(language)
		require.False(t, ok, "unexpected default for %s", language)
	}
}

func TestRegisterDefaultsPreservesCustomAnalyzer(t *testing.T) {
	r := NewRegistry()

	custom := &stubAnalyzer{language: "python", exts: []string{".py"}}
	r.Register(custom)
	r.RegisterDefaults()

	got, ok := r.Get("python")
	require.True(t, ok)
	require.Same(t, custom, got)
}

func TestRegisterAfterDefaultsOverwrites(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()

	// Plain Register has no skip protection; later registrations win
	custom := &stubAnalyzer{language: "rust", exts: []string{".rs"}}
	r.Register(custom)

	got, ok := r.Get("rust")
	require.True(t, ok)
	require.Same(t, custom, got)

	got, ok = r.ForFile("lib.rs")
	require.True(t, ok)
	require.Same(t, custom, got)
}
