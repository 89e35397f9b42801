package analysis

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"codesitter/analyzers"
)

// Engine runs analysis operations against a registry of language
// analyzers. Each scanned file is dispatched to the analyzer that owns its
// extension.
type Engine struct {
	reg *analyzers.Registry
}

// New creates an Engine backed by the given registry.
func New(reg *analyzers.Registry) *Engine {
	return &Engine{reg: reg}
}

// Query executes a custom tree-sitter query and returns matches. The query
// is grammar-specific, so it always runs against a single language.
func (e *Engine) Query(opts QueryOptions) ([]QueryMatch, error) {
	if opts.Query == "" {
		return nil, errors.New("query is required")
	}
	if opts.Language == "" {
		opts.Language = "go" // Default to Go
	}
	if opts.Path == "" {
		opts.Path = "."
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 2 * 1024 * 1024
	}

	az, err := e.syntax(opts.Language)
	if err != nil {
		return nil, err
	}

	q, err := newQuery(opts.Query, az)
	if err != nil {
		return nil, err
	}

	files, err := e.collect(opts.Path, opts.File, opts.Language, opts.MaxBytes)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []QueryMatch{}, nil
	}

	matches := runWorkers(az, q, files, opts.Jobs,
		func(matches []QueryMatch, _ []byte, _ FileJob) []QueryMatch {
			return matches
		})
	return matches, nil
}

// Symbols extracts symbols from code files, across every registered
// language with syntax support unless one language is requested.
func (e *Engine) Symbols(opts SymbolsOptions) ([]SymbolsResult, error) {
	if opts.Path == "" {
		opts.Path = "."
	}
	if opts.Visibility == "" {
		opts.Visibility = "all"
	}
	if opts.MaxSourceLines == 0 {
		opts.MaxSourceLines = 10
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 2 * 1024 * 1024
	}

	files, err := e.collect(opts.Path, opts.File, opts.Language, opts.MaxBytes)
	if err != nil {
		return nil, err
	}

	all := []SymbolsResult{}
	for _, group := range groupByLanguage(files) {
		az, err := e.syntax(group.language)
		if err != nil {
			return nil, err
		}

		q, err := newQuery(az.SymbolsQuery(), az)
		if err != nil {
			return nil, fmt.Errorf("%s symbols query: %w", group.language, err)
		}

		results := runWorkers(az, q, group.files, opts.Jobs,
			func(matches []QueryMatch, source []byte, job FileJob) []SymbolsResult {
				symbols := extractSymbols(matches, source, opts.Visibility, opts.IncludeSource, opts.MaxSourceLines)
				if len(symbols) == 0 {
					return nil
				}
				return []SymbolsResult{{
					File:     job.DisplayPath,
					Language: job.Language,
					Symbols:  symbols,
				}}
			})
		all = append(all, results...)
	}

	return all, nil
}

// Outline returns the structural overview of a file.
func (e *Engine) Outline(opts OutlineOptions) (FileOutline, error) {
	if opts.File == "" {
		return FileOutline{}, errors.New("file is required")
	}
	if opts.MaxSourceLines == 0 {
		opts.MaxSourceLines = 5
	}

	sc := newScanner(scannerConfig{reg: e.reg, language: opts.Language})
	job, err := sc.collectSingle(opts.File)
	if err != nil {
		return FileOutline{}, err
	}

	az, err := e.syntax(job.Language)
	if err != nil {
		return FileOutline{}, err
	}

	q, err := newQuery(az.OutlineQuery(), az)
	if err != nil {
		return FileOutline{}, fmt.Errorf("%s outline query: %w", job.Language, err)
	}

	p := newParser(az)
	tree, source, err := p.parseFile(job.AbsPath)
	if err != nil {
		return FileOutline{}, err
	}

	matches := q.run(tree, source, job.DisplayPath)
	return buildOutline(job, matches, opts.IncludeSource, opts.MaxSourceLines), nil
}

// Refs finds references to a symbol, across every registered language with
// syntax support unless one language is requested.
func (e *Engine) Refs(opts RefsOptions) (*RefsResult, error) {
	if opts.Symbol == "" {
		return nil, errors.New("symbol is required")
	}
	if opts.Path == "" {
		opts.Path = "."
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 2 * 1024 * 1024
	}

	files, err := e.collect(opts.Path, opts.File, opts.Language, opts.MaxBytes)
	if err != nil {
		return nil, err
	}

	refs := []Reference{}
	for _, group := range groupByLanguage(files) {
		az, err := e.syntax(group.language)
		if err != nil {
			return nil, err
		}

		q, err := newQuery(az.RefsQuery(), az)
		if err != nil {
			return nil, fmt.Errorf("%s refs query: %w", group.language, err)
		}

		results := runWorkers(az, q, group.files, opts.Jobs,
			func(matches []QueryMatch, source []byte, _ FileJob) []Reference {
				return findReferences(matches, source, opts.Symbol, opts.IncludeContext)
			})
		refs = append(refs, results...)
	}

	return &RefsResult{
		Symbol:     opts.Symbol,
		References: refs,
	}, nil
}

// syntax resolves a language name to a syntax-capable analyzer.
func (e *Engine) syntax(language string) (analyzers.Syntax, error) {
	a, ok := e.reg.Get(language)
	if !ok {
		return nil, errors.New(language + " language not registered")
	}
	az, ok := a.(analyzers.Syntax)
	if !ok {
		return nil, fmt.Errorf("%s analyzer has no syntax support", language)
	}
	return az, nil
}

// collect gathers files for an operation: a single file when one is given,
// otherwise a scan of path restricted to language if set.
func (e *Engine) collect(path, file, language string, maxBytes int64) ([]FileJob, error) {
	if file != "" {
		sc := newScanner(scannerConfig{reg: e.reg, language: language})
		job, err := sc.collectSingle(file)
		if err != nil {
			return nil, err
		}
		return []FileJob{job}, nil
	}

	sc := newScanner(scannerConfig{
		root:     path,
		reg:      e.reg,
		language: language,
		maxBytes: maxBytes,
	})
	return sc.collect()
}

type languageGroup struct {
	language string
	files    []FileJob
}

// groupByLanguage splits jobs into per-language batches, ordered by
// language name for deterministic output.
func groupByLanguage(files []FileJob) []languageGroup {
	byLanguage := make(map[string][]FileJob)
	for _, f := range files {
		byLanguage[f.Language] = append(byLanguage[f.Language], f)
	}

	names := make([]string, 0, len(byLanguage))
	for name := range byLanguage {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]languageGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, languageGroup{language: name, files: byLanguage[name]})
	}
	return groups
}
