package analysis

import (
	"sync"

	"codesitter/analyzers"
)

// processFunc turns the query matches for one file into results.
type processFunc[T any] func(matches []QueryMatch, source []byte, job FileJob) []T

// runWorkers parses files on a fixed-size worker pool and fans the results
// into a single slice. Every file must belong to the analyzer's language;
// the caller groups files per language before calling. Files that fail to
// parse are skipped.
func runWorkers[T any](az analyzers.Syntax, q *query, files []FileJob, jobs int, process processFunc[T]) []T {
	results := make(chan T, 128)
	jobQueue := make(chan FileJob, 128)
	var wg sync.WaitGroup

	workerCount := jobs
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(files) {
		workerCount = len(files)
	}

	worker := func() {
		defer wg.Done()
		p := newParser(az)
		for job := range jobQueue {
			tree, source, err := p.parseFile(job.AbsPath)
			if err != nil {
				continue
			}
			matches := q.run(tree, source, job.DisplayPath)
			for _, r := range process(matches, source, job) {
				results <- r
			}
		}
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go worker()
	}

	go func() {
		for _, f := range files {
			jobQueue <- f
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []T
	for r := range results {
		all = append(all, r)
	}

	return all
}
