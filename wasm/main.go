//go:build js && wasm

// Package main provides WebAssembly exports for running the CAD import
// pipeline directly in a browser, with no filesystem access.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/pipeline"
)

// Version of the WASM module
const Version = "1.1.0"

// debugMode controls verbose logging
var debugMode bool

func main() {
	// Register JavaScript functions
	js.Global().Set("cadimportRun", js.FuncOf(cadimportRun))
	js.Global().Set("cadimportGetVersion", js.FuncOf(cadimportGetVersion))
	js.Global().Set("cadimportSetDebug", js.FuncOf(cadimportSetDebug))

	// Keep the program running
	<-make(chan struct{})
}

// cadimportGetVersion returns the WASM module version.
// JS: cadimportGetVersion() -> string
func cadimportGetVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// cadimportSetDebug enables or disables debug mode.
// JS: cadimportSetDebug(enabled: boolean) -> void
func cadimportSetDebug(this js.Value, args []js.Value) interface{} {
	if len(args) >= 1 {
		debugMode = args[0].Bool()
		if debugMode {
			logDebug("Debug mode enabled")
		}
	}
	return nil
}

// logDebug logs a message if debug mode is enabled.
func logDebug(format string, args ...interface{}) {
	if debugMode {
		console := js.Global().Get("console")
		if len(args) == 0 {
			console.Call("log", "[cadimport-WASM] "+format)
		} else {
			console.Call("log", "[cadimport-WASM] "+format, args)
		}
	}
}

// cadimportRun parses DXF or DWG binary data and runs it through the
// full import pipeline, returning the ImportResult as JSON.
// JS: cadimportRun(Uint8Array, fileName: string, fileType: "DXF"|"DWG", options?: object) ->
//
//	{ ok: boolean, data?: string, error?: string }
func cadimportRun(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return makeError("cadimportRun requires 3 arguments: Uint8Array, fileName, fileType")
	}

	logDebug("Starting import")

	data := jsArrayToBytes(args[0])
	fileName := args[1].String()
	fileType := args[2].String()
	logDebug("Received %d bytes of %s data for %s", len(data), fileType, fileName)

	opts := config.DefaultImportOptions()
	if len(args) >= 4 && !args[3].IsUndefined() && !args[3].IsNull() {
		applyJSOptions(&opts, args[3])
	}

	result := pipeline.ImportReader(context.Background(), bytes.NewReader(data), fileType, fileName, opts, config.DefaultImportSettings(), nil)
	if !result.Success {
		logDebug("Import failed: %v", result.Errors)
	} else {
		logDebug("Import succeeded with %d elements", len(result.ConvertedElements))
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		logDebug("JSON marshal error: %v", err.Error())
		return makeError("JSON marshal error: " + err.Error())
	}

	logDebug("Generated %d bytes of JSON", len(jsonData))
	return makeResult(string(jsonData))
}

// applyJSOptions overlays the subset of ImportOptions a JS caller may
// reasonably want to override onto opts.
func applyJSOptions(opts *config.ImportOptions, jsOpts js.Value) {
	if v := jsOpts.Get("defaultWallHeight"); !v.IsUndefined() {
		opts.DefaultWallHeight = v.Float()
	}
	if v := jsOpts.Get("importInvisibleLayers"); !v.IsUndefined() {
		opts.ImportInvisibleLayers = v.Bool()
	}
	if v := jsOpts.Get("joinWalls"); !v.IsUndefined() {
		opts.JoinWalls = v.Bool()
	}
	if v := jsOpts.Get("insertOpeningsIntoWalls"); !v.IsUndefined() {
		opts.InsertOpeningsIntoWalls = v.Bool()
	}
}

// jsArrayToBytes converts a JavaScript Uint8Array to Go []byte.
func jsArrayToBytes(arr js.Value) []byte {
	length := arr.Length()
	data := make([]byte, length)
	js.CopyBytesToGo(data, arr)
	return data
}

// makeResult creates a successful result object.
func makeResult(data string) map[string]interface{} {
	return map[string]interface{}{
		"ok":   true,
		"data": data,
	}
}

// makeError creates an error result object.
func makeError(message string) map[string]interface{} {
	logDebug("Error: %s", message)
	return map[string]interface{}{
		"ok":    false,
		"error": message,
	}
}
