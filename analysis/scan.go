package analysis

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"codesitter/analyzers"
)

// defaultIgnoreDirs returns the default list of directories to ignore.
func defaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":          {},
		".hg":           {},
		".svn":          {},
		".jj":           {},
		"node_modules":  {},
		"vendor":        {},
		"dist":          {},
		"build":         {},
		"target":        {},
		".venv":         {},
		"__pycache__":   {},
		".mypy_cache":   {},
		".pytest_cache": {},
		".next":         {},
		".cache":        {},
		".turbo":        {},
		"coverage":      {},
	}
}

// scannerConfig holds scanner configuration.
type scannerConfig struct {
	root       string
	reg        *analyzers.Registry
	language   string // restrict to a single language when set
	ignoreDirs map[string]struct{}
	maxBytes   int64
}

// scanner discovers files the registry knows how to analyze.
type scanner struct {
	cfg scannerConfig
}

// newScanner creates a new scanner with the given configuration.
func newScanner(cfg scannerConfig) *scanner {
	if cfg.ignoreDirs == nil {
		cfg.ignoreDirs = defaultIgnoreDirs()
	}
	return &scanner{cfg: cfg}
}

// collect walks the root and returns a FileJob for every file that resolves
// to a syntax-capable analyzer, tagged with the owning language.
func (s *scanner) collect() ([]FileJob, error) {
	absRoot, err := filepath.Abs(s.cfg.root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var jobs []FileJob
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if s.shouldIgnoreDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		language, ok := s.resolveLanguage(d.Name())
		if !ok {
			return nil
		}

		if s.cfg.maxBytes > 0 {
			info, err := d.Info()
			if err != nil {
				// Skip files we can't stat
				return nil
			}
			if info.Size() > s.cfg.maxBytes {
				return nil
			}
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = path
		}

		jobs = append(jobs, FileJob{
			AbsPath:     path,
			DisplayPath: filepath.ToSlash(rel),
			Language:    language,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// collectSingle returns a single file as a FileJob.
func (s *scanner) collectSingle(filePath string) (FileJob, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return FileJob{}, fmt.Errorf("resolve path: %w", err)
	}

	language := s.cfg.language
	if language == "" {
		var ok bool
		language, ok = s.resolveLanguage(absPath)
		if !ok {
			return FileJob{}, fmt.Errorf("no analyzer registered for %s", filepath.Base(filePath))
		}
	}

	return FileJob{
		AbsPath:     absPath,
		DisplayPath: filepath.Base(absPath),
		Language:    language,
	}, nil
}

func (s *scanner) shouldIgnoreDir(name string) bool {
	_, ok := s.cfg.ignoreDirs[name]
	return ok
}

// resolveLanguage maps a file name to the registered language that owns it.
// Files served by analyzers without syntax support are skipped: there is
// nothing to parse.
func (s *scanner) resolveLanguage(name string) (string, bool) {
	a, ok := s.cfg.reg.ForFile(name)
	if !ok {
		return "", false
	}
	if _, ok := a.(analyzers.Syntax); !ok {
		return "", false
	}
	language := a.LanguageName()
	if s.cfg.language != "" && language != s.cfg.language {
		return "", false
	}
	return language, true
}
