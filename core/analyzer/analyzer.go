// Package analyzer turns a USFM file or directory tree into one master
// concordance. Files are discovered and sorted, parsed in parallel with
// isolated workers, then merged sequentially in sorted-path order so the
// output is a deterministic function of the file list and file contents.
package analyzer

import (
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/WillowConcord/core/concordance"
	"github.com/FocuswithJustin/WillowConcord/core/usfm"
	"github.com/FocuswithJustin/WillowConcord/internal/fileutil"
	"github.com/FocuswithJustin/WillowConcord/internal/logging"
)

// DefaultExtension is the file extension accepted during discovery,
// matched case-insensitively.
const DefaultExtension = "usfm"

// Options adjusts how a batch runs.
type Options struct {
	// Workers caps the number of parallel file parses. Zero or negative
	// means one worker per CPU.
	Workers int

	// Extensions overrides the accepted file extensions. Empty means
	// DefaultExtension only.
	Extensions []string
}

// Analyze processes a single USFM file or a directory tree with default
// options. A root that is neither a matching file nor a directory is
// logged and yields an empty concordance, not an error. Any single file
// failing to parse aborts the whole batch; no partial result is returned.
func Analyze(root string) (*concordance.Concordance, error) {
	return AnalyzeWithOptions(root, Options{})
}

// AnalyzeWithOptions is Analyze with explicit options.
func AnalyzeWithOptions(root string, opts Options) (*concordance.Concordance, error) {
	begin := time.Now()
	runID := uuid.New().String()

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{DefaultExtension}
	}

	info, err := os.Stat(root)
	if err != nil || !(info.Mode().IsRegular() || info.IsDir()) {
		logging.PathSkipped(root, "run_id", runID)
		return concordance.New(), nil
	}

	if info.Mode().IsRegular() {
		if !matchesAny(root, exts) {
			logging.PathSkipped(root, "run_id", runID, "reason", "extension not accepted")
			return concordance.New(), nil
		}
		result, err := usfm.ParseFile(root)
		if err != nil {
			return nil, err
		}
		return result.Words, nil
	}

	files, err := fileutil.FindByExt(root, exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logging.Info("batch_empty", "run_id", runID, "root", root)
		return concordance.New(), nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logging.BatchStarted(runID, len(files), min(workers, len(files)), "root", root)

	type task struct {
		index int
		path  string
	}
	type taskResult struct {
		index  int
		result *usfm.Result
		err    error
	}

	pool := NewWorkerPool[task, taskResult](workers, len(files))
	pool.Start(func(t task) taskResult {
		result, err := usfm.ParseFile(t.path)
		return taskResult{index: t.index, result: result, err: err}
	})
	for i, path := range files {
		pool.Submit(task{index: i, path: path})
	}
	pool.Close()

	// Re-sequence by submission index: the merge order must follow the
	// sorted path order, never worker completion order.
	results := make([]taskResult, len(files))
	for r := range pool.Results() {
		results[r.index] = r
	}

	// A single failing file fails the batch. The error reported is the
	// first in sorted-path order, so repeated runs blame the same file.
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	// The merge mutates one shared structure, so it stays sequential.
	master := concordance.New()
	for _, r := range results {
		master.Merge(r.result.Words)
	}

	logging.BatchFinished(runID, len(files), master.Len(), time.Since(begin), "root", root)
	return master, nil
}

func matchesAny(path string, exts []string) bool {
	for _, ext := range exts {
		if fileutil.HasExt(path, ext) {
			return true
		}
	}
	return false
}
