package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"codesitter/analyzers"
)

//go:embed queries/javascript/symbols.scm
var jsSymbolsQuery string

//go:embed queries/javascript/outline.scm
var jsOutlineQuery string

//go:embed queries/javascript/refs.scm
var jsRefsQuery string

// JavaScript analyzes JavaScript source code, including JSX and module
// variants.
type JavaScript struct{}

func init() {
	analyzers.RegisterBuilder("javascript", func() (analyzers.Analyzer, error) {
		return &JavaScript{}, nil
	})
}

func (j *JavaScript) LanguageName() string {
	return "javascript"
}

func (j *JavaScript) SupportedExtensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs"}
}

func (j *JavaScript) TreeSitterLang() *sitter.Language {
	return javascript.GetLanguage()
}

func (j *JavaScript) SymbolsQuery() string {
	return jsSymbolsQuery
}

func (j *JavaScript) OutlineQuery() string {
	return jsOutlineQuery
}

func (j *JavaScript) RefsQuery() string {
	return jsRefsQuery
}
