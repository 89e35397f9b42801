package analyzers

// defaultSkip lists languages that ship with a richer built-in analyzer.
// RegisterDefaults leaves them alone so a generic fallback never clobbers
// a specialized entry registered earlier.
var defaultSkip = map[string]struct{}{
	"go":         {},
	"typescript": {},
	"javascript": {},
	"python":     {},
	"java":       {},
}

// RegisterDefaults registers generic fallback analyzers for common markup,
// styling, config and general-purpose languages. It consults defaultSkip,
// so running it after custom registrations is safe; plain Register calls
// made afterwards still overwrite defaults unconditionally.
func (r *Registry) RegisterDefaults() {
	defaults := []*DefaultAnalyzer{
		// Markup and styling
		NewDefaultAnalyzer("html", ".html", ".htm"),
		NewDefaultAnalyzer("css", ".css", ".scss", ".sass"),

		// Data and config formats
		NewDefaultAnalyzer("json", ".json"),
		NewDefaultAnalyzer("yaml", ".yaml", ".yml"),
		NewDefaultAnalyzer("toml", ".toml"),
		NewDefaultAnalyzer("xml", ".xml"),

		// Shell scripts
		NewDefaultAnalyzer("bash", ".sh", ".bash"),

		// General-purpose languages, overridable by custom analyzers
		NewDefaultAnalyzer("c", ".c"),
		NewDefaultAnalyzer("cpp", ".cpp", ".cc", ".cxx"),
		NewDefaultAnalyzer("rust", ".rs"),
		NewDefaultAnalyzer("go", ".go"),
		NewDefaultAnalyzer("ruby", ".rb"),
		NewDefaultAnalyzer("php", ".php"),
		NewDefaultAnalyzer("swift", ".swift"),
		NewDefaultAnalyzer("kotlin", ".kt", ".kts"),
		NewDefaultAnalyzer("scala", ".scala"),
	}

	for _, d := range defaults {
		if _, ok := defaultSkip[d.LanguageName()]; ok {
			continue
		}
		r.Register(d)
	}
}

// RegisterDefaults registers the fallback analyzers in the Default registry.
func RegisterDefaults() {
	Default.RegisterDefaults()
}
