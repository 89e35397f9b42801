package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"codesitter/analyzers"
)

//go:embed queries/typescript/symbols.scm
var tsSymbolsQuery string

//go:embed queries/typescript/outline.scm
var tsOutlineQuery string

//go:embed queries/typescript/refs.scm
var tsRefsQuery string

// TypeScript analyzes TypeScript source code.
type TypeScript struct{}

// TSX analyzes TSX source code. Separate from TypeScript because the
// tree-sitter grammar differs; both share the same query set.
type TSX struct{}

func init() {
	analyzers.RegisterBuilder("typescript", func() (analyzers.Analyzer, error) {
		return &TypeScript{}, nil
	})
	analyzers.RegisterBuilder("tsx", func() (analyzers.Analyzer, error) {
		return &TSX{}, nil
	})
}

func (t *TypeScript) LanguageName() string {
	return "typescript"
}

func (t *TypeScript) SupportedExtensions() []string {
	return []string{".ts", ".mts", ".cts"}
}

func (t *TypeScript) TreeSitterLang() *sitter.Language {
	return typescript.GetLanguage()
}

func (t *TypeScript) SymbolsQuery() string {
	return tsSymbolsQuery
}

func (t *TypeScript) OutlineQuery() string {
	return tsOutlineQuery
}

func (t *TypeScript) RefsQuery() string {
	return tsRefsQuery
}

func (t *TSX) LanguageName() string {
	return "tsx"
}

func (t *TSX) SupportedExtensions() []string {
	return []string{".tsx"}
}

func (t *TSX) TreeSitterLang() *sitter.Language {
	return tsx.GetLanguage()
}

func (t *TSX) SymbolsQuery() string {
	return tsSymbolsQuery
}

func (t *TSX) OutlineQuery() string {
	return tsOutlineQuery
}

func (t *TSX) RefsQuery() string {
	return tsRefsQuery
}
