package analysis

// QueryOptions configures the Query operation.
type QueryOptions struct {
	// Query is the tree-sitter query string to execute.
	Query string

	// Language specifies which language's grammar the query targets.
	// If empty, "go" is assumed.
	Language string

	// Path is the root directory to scan for files.
	// If empty, current directory is used.
	Path string

	// File is a single file to query.
	// If set, Path is ignored.
	File string

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// MaxBytes skips files larger than this size.
	// If 0, no size limit is enforced.
	MaxBytes int64
}

// SymbolsOptions configures the Symbols operation.
type SymbolsOptions struct {
	// Language restricts extraction to one language.
	// If empty, every registered language with syntax support is scanned.
	Language string

	// Path is the root directory to scan for files.
	// If empty, current directory is used.
	Path string

	// File is a single file to analyze.
	// If set, Path is ignored.
	File string

	// Visibility filters symbols: "all", "public", or "private".
	// Defaults to "all".
	Visibility string

	// IncludeSource includes source code snippets in results.
	IncludeSource bool

	// MaxSourceLines limits the number of lines in source snippets.
	MaxSourceLines int

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// MaxBytes skips files larger than this size.
	// If 0, no size limit is enforced.
	MaxBytes int64
}

// OutlineOptions configures the Outline operation.
type OutlineOptions struct {
	// File is the file to analyze (required). The language is resolved
	// from the file extension unless Language is set.
	File string

	// Language forces a specific language instead of resolving it from
	// the file extension.
	Language string

	// IncludeSource includes source code snippets in results.
	IncludeSource bool

	// MaxSourceLines limits the number of lines in source snippets.
	MaxSourceLines int
}

// RefsOptions configures the Refs operation.
type RefsOptions struct {
	// Symbol is the symbol name to find references for (required).
	Symbol string

	// Language restricts the search to one language.
	// If empty, every registered language with syntax support is scanned.
	Language string

	// Path is the root directory to scan for files.
	// If empty, current directory is used.
	Path string

	// File is a single file to search.
	// If set, Path is ignored.
	File string

	// IncludeContext includes surrounding code context in results.
	IncludeContext bool

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// MaxBytes skips files larger than this size.
	// If 0, no size limit is enforced.
	MaxBytes int64
}
