package analyzers

// DefaultAnalyzer is a generic fallback analyzer bound to a fixed set of
// extensions. It identifies files by extension only and carries no syntax
// support.
type DefaultAnalyzer struct {
	language   string
	extensions []string
}

// NewDefaultAnalyzer creates a generic analyzer for the given language and
// extensions.
func NewDefaultAnalyzer(language string, extensions ...string) *DefaultAnalyzer {
	return &DefaultAnalyzer{
		language:   language,
		extensions: extensions,
	}
}

func (d *DefaultAnalyzer) LanguageName() string {
	return d.language
}

func (d *DefaultAnalyzer) SupportedExtensions() []string {
	return d.extensions
}
