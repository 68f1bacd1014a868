package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cadbridge/bimimport/blocks"
	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/convert"
	"github.com/cadbridge/bimimport/dwg"
	"github.com/cadbridge/bimimport/dxf"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/importerr"
	"github.com/cadbridge/bimimport/internal/logx"
	"github.com/cadbridge/bimimport/postprocess"
	"github.com/cadbridge/bimimport/textextract"
)

// Import runs the full stage sequence against the file at path and
// returns the assembled result. It never returns an error itself —
// failures are captured in the returned ImportResult per §7, matching
// the spec's "success=false and errors non-empty" contract. onProgress
// may be nil.
func Import(ctx context.Context, path string, opts config.ImportOptions, settings config.ImportSettings, onProgress ProgressFunc) *ImportResult {
	if onProgress == nil {
		onProgress = noopProgress
	}

	result := &ImportResult{
		RunID:           newRunID(),
		SourceFile:      path,
		ImportStartTime: startTime(),
	}

	onProgress(0, "validating")
	logx.Info("import %s: starting %s", result.RunID, path)

	if ctx.Err() != nil {
		return cancel(result)
	}

	model, fileType, err := validateAndParse(ctx, path, settings)
	result.FileType = fileType
	if err != nil {
		return fail(result, err)
	}
	onProgress(10, "parsed")

	return runStages(ctx, result, model, opts, settings, onProgress)
}

// ImportReader runs the same stage sequence as Import against an
// already-open stream instead of a path on disk — the entry point for
// hosts with no filesystem, such as the WebAssembly build, which hand
// the engine an in-memory Uint8Array. fileType must be "DXF" or "DWG";
// sourceName is carried through to ImportResult.SourceFile for display
// only and need not be a real path.
func ImportReader(ctx context.Context, r io.Reader, fileType, sourceName string, opts config.ImportOptions, settings config.ImportSettings, onProgress ProgressFunc) *ImportResult {
	if onProgress == nil {
		onProgress = noopProgress
	}

	result := &ImportResult{
		RunID:           newRunID(),
		SourceFile:      sourceName,
		FileType:        fileType,
		ImportStartTime: startTime(),
	}

	onProgress(0, "validating")
	logx.Info("import %s: starting %s", result.RunID, sourceName)

	if ctx.Err() != nil {
		return cancel(result)
	}

	var model *cadmodel.Model
	var err error
	switch fileType {
	case "DWG":
		model, err = dwg.Parse(r)
	case "DXF":
		model, err = dxf.Parse(ctx, r, settings)
	default:
		err = fmt.Errorf("%w: %s", importerr.ErrUnsupportedExtension, fileType)
	}
	if err != nil {
		return fail(result, err)
	}
	onProgress(10, "parsed")

	return runStages(ctx, result, model, opts, settings, onProgress)
}

// runStages carries a parsed model through classification, geometry
// processing, block recognition, text/dimension extraction, conversion,
// and post-processing, filling in result as it goes. Both Import and
// ImportReader converge here once they have a *cadmodel.Model.
func runStages(ctx context.Context, result *ImportResult, model *cadmodel.Model, opts config.ImportOptions, settings config.ImportSettings, onProgress ProgressFunc) *ImportResult {
	if ctx.Err() != nil {
		return cancel(result)
	}

	resolver := classify.NewResolver(opts, loadConfiguration())
	mappings := resolver.ResolveAll(model)
	result.LayerMappings = mappings
	onProgress(25, "classified layers")

	if ctx.Err() != nil {
		return cancel(result)
	}

	processor := geomproc.NewProcessor(settings)
	processed, err := processor.Process(ctx, model, mappings)
	if err != nil {
		return fail(result, err)
	}
	onProgress(40, "processed geometry")

	recognizer := blocks.NewRecognizer(model.Blocks)
	recognized, err := recognizer.RecognizeAll(ctx, model.BlockReferences)
	if err != nil {
		return fail(result, err)
	}
	onProgress(55, "recognized blocks")

	var texts []textextract.ExtractedText
	var dims []textextract.ExtractedDimension
	if opts.ImportText {
		texts = textextract.ExtractTexts(model.Texts)
	}
	if opts.ImportDimensions {
		dims = textextract.ExtractDimensions(model.Dimensions)
	}
	onProgress(65, "extracted text")

	if ctx.Err() != nil {
		return cancel(result)
	}

	converter := convert.NewElementConverter(opts)
	elements := convertAll(converter, processed, recognized, texts, dims)
	onProgress(75, "converted elements")

	postResult := postprocess.Run(elements, mappings, opts, settings)
	onProgress(90, "post-processed")

	result.ConvertedElements = postResult.Elements
	result.Warnings = postResult.Warnings
	result.Statistics = Statistics{
		TotalEntities:     len(model.Entities),
		ConvertedElements: len(postResult.Elements),
		WallsJoined:       postResult.WallsJoined,
		WarningCount:      len(postResult.Warnings),
	}
	result.Success = true
	result.ImportEndTime = endTime()

	onProgress(100, "done")
	logx.Info("import %s: completed, %d elements", result.RunID, len(postResult.Elements))

	return result
}

// convertAll runs every converted-source slice through the converter, in
// stage order: geometry, blocks, text, dimensions — matching the output
// ordering guarantee in §5 ("within each stage the output order follows
// the input order of entities").
func convertAll(c *convert.ElementConverter, processed []geomproc.ProcessedGeometry, recognized []blocks.RecognizedBlock, texts []textextract.ExtractedText, dims []textextract.ExtractedDimension) []convert.ConvertedElement {
	elements := make([]convert.ConvertedElement, 0, len(processed)+len(recognized)+len(texts)+len(dims))
	for _, pg := range processed {
		elements = append(elements, c.ConvertGeometry(pg))
	}
	for _, rb := range recognized {
		elements = append(elements, c.ConvertBlock(rb))
	}
	for _, et := range texts {
		elements = append(elements, c.ConvertText(et))
	}
	for _, ed := range dims {
		elements = append(elements, c.ConvertDimension(ed))
	}
	return elements
}

// validateAndParse applies §7's Validation error kind (missing file,
// wrong extension, size exceeded) before attempting a parse, then
// dispatches to the dxf or dwg parser by extension.
func validateAndParse(ctx context.Context, path string, settings config.ImportSettings) (*cadmodel.Model, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", importerr.ErrFileNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var fileType string
	switch ext {
	case ".dxf":
		fileType = "DXF"
	case ".dwg":
		fileType = "DWG"
	default:
		return nil, "", fmt.Errorf("%w: %s", importerr.ErrUnsupportedExtension, ext)
	}

	if settings.MaxFileSizeBytes > 0 && info.Size() > settings.MaxFileSizeBytes {
		return nil, fileType, fmt.Errorf("%w: %s is %d bytes", importerr.ErrFileTooLarge, path, info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fileType, fmt.Errorf("%w: %v", importerr.ErrUnreadable, err)
	}
	defer f.Close()

	var model *cadmodel.Model
	if fileType == "DWG" {
		model, err = dwg.Parse(f)
	} else {
		model, err = dxf.Parse(ctx, f, settings)
	}
	if err != nil {
		return nil, fileType, err
	}
	return model, fileType, nil
}

func loadConfiguration() *config.LayerMappingConfiguration {
	cfg, err := config.LoadDefaultAIAConfiguration()
	if err != nil {
		logx.Warn("falling back to empty layer mapping configuration: %v", err)
		cfg = &config.LayerMappingConfiguration{}
	}
	return cfg
}

func fail(result *ImportResult, err error) *ImportResult {
	result.Success = false
	result.ImportEndTime = endTime()
	if err == context.Canceled || err == importerr.ErrCancelled {
		result.Errors = append(result.Errors, "Import cancelled by user")
		return result
	}
	result.Errors = append(result.Errors, err.Error())
	logx.Warn("import %s failed: %v", result.RunID, err)
	return result
}

func cancel(result *ImportResult) *ImportResult {
	result.Success = false
	result.ImportEndTime = endTime()
	result.Errors = append(result.Errors, "Import cancelled by user")
	return result
}

// startTime and endTime are var indirections over time.Now so tests can
// stub them; production code just calls time.Now.
var startTime = func() time.Time { return time.Now() }
var endTime = func() time.Time { return time.Now() }
