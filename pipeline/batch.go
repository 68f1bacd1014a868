package pipeline

import (
	"context"

	"github.com/cadbridge/bimimport/config"
)

// ImportBatch drives Import across files sequentially, never in
// parallel (§5 "Batch import runs files sequentially"), translating each
// file's own progress into a batch-level BatchProgress record.
func ImportBatch(ctx context.Context, files []string, opts config.ImportOptions, settings config.ImportSettings, onProgress BatchProgressFunc) []*ImportResult {
	if onProgress == nil {
		onProgress = func(BatchProgress) {}
	}

	results := make([]*ImportResult, 0, len(files))
	for i, file := range files {
		fileProgress := func(percent int, _ string) {
			onProgress(BatchProgress{
				TotalFiles:          len(files),
				CompletedFiles:      i,
				CurrentFile:         file,
				CurrentFileProgress: percent,
			})
		}

		result := Import(ctx, file, opts, settings, fileProgress)
		results = append(results, result)

		onProgress(BatchProgress{
			TotalFiles:          len(files),
			CompletedFiles:      i + 1,
			CurrentFile:         file,
			CurrentFileProgress: 100,
		})

		if ctx.Err() != nil {
			break
		}
	}
	return results
}
