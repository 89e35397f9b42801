package lang

import (
	"path/filepath"
	"strings"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"

	"codesitter/analyzers"
)

func builtins() []analyzers.Syntax {
	return []analyzers.Syntax{
		&Go{},
		&Python{},
		&JavaScript{},
		&TypeScript{},
		&TSX{},
	}
}

// TestQueriesCompile compiles every embedded query against its grammar. A
// bad node name or field in a query file fails here rather than at
// runtime.
func TestQueriesCompile(t *testing.T) {
	for _, az := range builtins() {
		t.Run(az.LanguageName(), func(t *testing.T) {
			for name, queryStr := range map[string]string{
				"symbols": az.SymbolsQuery(),
				"outline": az.OutlineQuery(),
				"refs":    az.RefsQuery(),
			} {
				require.NotEmpty(t, queryStr, "%s query missing", name)
				q, err := sitter.NewQuery([]byte(queryStr), az.TreeSitterLang())
				require.NoError(t, err, "%s query does not compile", name)
				q.Close()
			}
		})
	}
}

func TestExtensionsAreDotPrefixedLowercase(t *testing.T) {
	for _, az := range builtins() {
		for _, ext := range az.SupportedExtensions() {
			require.Equal(t, ext, filepath.Ext("x"+ext), "bad extension %q for %s", ext, az.LanguageName())
			require.Equal(t, strings.ToLower(ext), ext, "extension %q for %s is not lower-case", ext, az.LanguageName())
		}
	}
}

// TestBuildersRegister drains the discovery table and checks every
// built-in analyzer lands in the registry.
func TestBuildersRegister(t *testing.T) {
	r := analyzers.NewRegistry()
	r.Discover(filepath.Join(t.TempDir(), "no-plugins"))

	for _, language := range []string{"go", "python", "javascript", "typescript", "tsx"} {
		a, ok := r.Get(language)
		require.True(t, ok, "builder for %s did not register", language)
		_, ok = a.(analyzers.Syntax)
		require.True(t, ok, "%s analyzer lost syntax support", language)
	}
}
