package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"codesitter/analyzers"
)

//go:embed queries/go/symbols.scm
var goSymbolsQuery string

//go:embed queries/go/outline.scm
var goOutlineQuery string

//go:embed queries/go/refs.scm
var goRefsQuery string

// Go analyzes Go source code.
type Go struct{}

func init() {
	analyzers.RegisterBuilder("go", func() (analyzers.Analyzer, error) {
		return &Go{}, nil
	})
}

func (g *Go) LanguageName() string {
	return "go"
}

func (g *Go) SupportedExtensions() []string {
	return []string{".go"}
}

func (g *Go) TreeSitterLang() *sitter.Language {
	return golang.GetLanguage()
}

func (g *Go) SymbolsQuery() string {
	return goSymbolsQuery
}

func (g *Go) OutlineQuery() string {
	return goOutlineQuery
}

func (g *Go) RefsQuery() string {
	return goRefsQuery
}
