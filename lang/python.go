package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"codesitter/analyzers"
)

//go:embed queries/python/symbols.scm
var pySymbolsQuery string

//go:embed queries/python/outline.scm
var pyOutlineQuery string

//go:embed queries/python/refs.scm
var pyRefsQuery string

// Python analyzes Python source code.
type Python struct{}

func init() {
	analyzers.RegisterBuilder("python", func() (analyzers.Analyzer, error) {
		return &Python{}, nil
	})
}

func (p *Python) LanguageName() string {
	return "python"
}

func (p *Python) SupportedExtensions() []string {
	return []string{".py", ".pyi"}
}

func (p *Python) TreeSitterLang() *sitter.Language {
	return python.GetLanguage()
}

func (p *Python) SymbolsQuery() string {
	return pySymbolsQuery
}

func (p *Python) OutlineQuery() string {
	return pyOutlineQuery
}

func (p *Python) RefsQuery() string {
	return pyRefsQuery
}
