package analysis

// Position represents a location in a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range represents a span in a source file.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Symbol represents a code symbol (function, type, variable, etc).
type Symbol struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`       // function, method, class, interface, type, var, const
	Visibility string `json:"visibility"` // public, private
	File       string `json:"file"`
	Range      Range  `json:"range"`
	Signature  string `json:"signature,omitempty"` // function signature or type definition
	Source     string `json:"source,omitempty"`    // actual source code (optional)
	Receiver   string `json:"receiver,omitempty"`  // for methods: the receiver type
}

// ImportInfo represents an import statement.
type ImportInfo struct {
	Path  string `json:"path"`
	Alias string `json:"alias,omitempty"`
}

// FileOutline represents the structural overview of a file.
type FileOutline struct {
	File     string       `json:"file"`
	Language string       `json:"language"`
	Package  string       `json:"package,omitempty"`
	Imports  []ImportInfo `json:"imports,omitempty"`
	Symbols  []Symbol     `json:"symbols"`
}

// Reference represents a usage of a symbol.
type Reference struct {
	Symbol   string   `json:"symbol"`
	Kind     string   `json:"kind"` // call, type_ref, field_access, identifier
	File     string   `json:"file"`
	Position Position `json:"position"`
	Context  string   `json:"context,omitempty"` // surrounding code snippet
}

// QueryMatch represents a raw tree-sitter query match.
type QueryMatch struct {
	File     string          `json:"file"`
	Pattern  int             `json:"pattern"`
	Captures []CaptureResult `json:"captures"`
}

// CaptureResult represents a single capture within a query match.
type CaptureResult struct {
	Name     string `json:"name"`
	NodeType string `json:"node_type"`
	Text     string `json:"text"`
	Range    Range  `json:"range"`
}

// SymbolsResult is the per-file output of symbol extraction.
type SymbolsResult struct {
	File     string   `json:"file"`
	Language string   `json:"language"`
	Symbols  []Symbol `json:"symbols"`
}

// RefsResult is the output of reference finding.
type RefsResult struct {
	Symbol     string      `json:"symbol"`
	References []Reference `json:"references"`
}

// FileJob represents a file to be processed, resolved to the language that
// owns it.
type FileJob struct {
	AbsPath     string
	DisplayPath string
	Language    string
}
