// Package pipeline drives the DXF/DWG import stages in order — parse,
// classify, process geometry, recognize blocks, extract text, convert,
// post-process — and assembles the result the caller gets back.
package pipeline

import (
	"time"

	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/convert"
	"github.com/google/uuid"
)

// Statistics summarizes one import run's element counts (§2, §6).
type Statistics struct {
	TotalEntities     int
	ConvertedElements int
	WallsJoined       int
	WarningCount      int
}

// ImportResult is the orchestrator's output (§6 "Output"). It is
// read-only once returned.
type ImportResult struct {
	RunID           string
	Success         bool
	SourceFile      string
	FileType        string
	ImportStartTime time.Time
	ImportEndTime   time.Time
	LayerMappings   map[string]classify.LayerMapping
	ConvertedElements []convert.ConvertedElement
	Statistics      Statistics
	Warnings        []string
	Errors          []string
}

// newRunID allocates a fresh run identifier. A var indirection lets tests
// substitute a deterministic generator.
var newRunID = func() string {
	return uuid.NewString()
}

// ProgressFunc receives a monotonically non-decreasing percentage and a
// short status message at each stage boundary (§5). The orchestrator
// never blocks on it — callers must not block inside it either.
type ProgressFunc func(percent int, message string)

// BatchProgress is the batch-level translation of one file's progress
// record (§5 "Batch import").
type BatchProgress struct {
	TotalFiles          int
	CompletedFiles      int
	CurrentFile         string
	CurrentFileProgress int
}

// BatchProgressFunc receives one BatchProgress update per underlying
// per-file progress callback invocation, plus one more after each file
// finishes, with CompletedFiles counting that file.
type BatchProgressFunc func(BatchProgress)

func noopProgress(int, string) {}
