package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"codesitter/analyzers"
	"codesitter/lang"
)

// newTestRegistry returns a registry with the built-in syntax analyzers.
func newTestRegistry(t *testing.T) *analyzers.Registry {
	t.Helper()
	r := analyzers.NewRegistry()
	r.Register(&lang.Go{})
	r.Register(&lang.Python{})
	r.Register(&lang.JavaScript{})
	return r
}

func goSyntax(t *testing.T, r *analyzers.Registry) analyzers.Syntax {
	t.Helper()
	a, ok := r.Get("go")
	require.True(t, ok)
	az, ok := a.(analyzers.Syntax)
	require.True(t, ok)
	return az
}

// generateTestFiles writes count Go files with one function each and
// returns the expected function names.
func generateTestFiles(t *testing.T, dir string, count int) []string {
	t.Helper()
	var funcs []string
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Handler%d", i)
		src := fmt.Sprintf("package main\n\nfunc %s() {}\n", name)
		err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%d.go", i)), []byte(src), 0644)
		require.NoError(t, err)
		funcs = append(funcs, name)
	}
	return funcs
}

func extractFunctionNames(matches []QueryMatch, _ []byte, _ FileJob) []string {
	var names []string
	for _, m := range matches {
		for _, c := range m.Captures {
			if c.Name == "name" {
				names = append(names, c.Text)
			}
		}
	}
	return names
}

// TestRunWorkers tests the worker pool for concurrency correctness.
// Run with -race flag to detect race conditions: go test -race
func TestRunWorkers(t *testing.T) {
	tests := []struct {
		name      string
		fileCount int
		jobs      int
	}{
		{"single_file_single_worker", 1, 1},
		{"multiple_files_single_worker", 5, 1},
		{"multiple_files_multiple_workers", 10, 4},
		{"more_workers_than_files", 3, 10},
		{"many_files_high_concurrency", 50, 16},
		{"zero_jobs_defaults_to_one", 5, 0},
		{"empty_files", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			expectedFuncs := generateTestFiles(t, tmpDir, tc.fileCount)

			reg := newTestRegistry(t)
			az := goSyntax(t, reg)

			q, err := newQuery(`(function_declaration name: (identifier) @name)`, az)
			require.NoError(t, err)

			if tc.fileCount == 0 {
				results := runWorkers(az, q, []FileJob{}, tc.jobs, extractFunctionNames)
				require.Empty(t, results)
				return
			}

			sc := newScanner(scannerConfig{
				root:     tmpDir,
				reg:      reg,
				maxBytes: 2 * 1024 * 1024,
			})

			files, err := sc.collect()
			require.NoError(t, err)
			require.Len(t, files, tc.fileCount)

			results := runWorkers(az, q, files, tc.jobs, extractFunctionNames)
			require.Len(t, results, tc.fileCount, "should have one result per file")

			// Sort both slices for comparison (order may vary due to concurrency)
			sort.Strings(results)
			sort.Strings(expectedFuncs)
			require.Equal(t, expectedFuncs, results)
		})
	}
}
