// Package analyzers manages registration and lookup of language-specific
// source analyzers. A registry maps language names to analyzer instances
// and derives an extension index used to pick the right analyzer for a
// file. Analyzers are opaque to the registry beyond their name and
// extension set; parsing capability is an optional interface.
package analyzers

import sitter "github.com/smacker/go-tree-sitter"

// Analyzer is the minimal contract every language analyzer satisfies.
type Analyzer interface {
	// LanguageName returns the canonical language identifier (e.g., "go").
	LanguageName() string

	// SupportedExtensions returns the file extensions this analyzer
	// handles, dot-prefixed and lower-case (e.g., [".go"]).
	SupportedExtensions() []string
}

// Syntax is the optional capability for analyzers backed by a tree-sitter
// grammar. Generic fallback analyzers do not implement it; they identify
// files but cannot be parsed.
type Syntax interface {
	Analyzer

	// TreeSitterLang returns the tree-sitter language grammar.
	TreeSitterLang() *sitter.Language

	// SymbolsQuery returns the tree-sitter query for extracting symbols.
	SymbolsQuery() string

	// OutlineQuery returns the tree-sitter query for file outline.
	OutlineQuery() string

	// RefsQuery returns the tree-sitter query for finding references.
	RefsQuery() string
}
