// Package export reads and writes progress files: a JSON rendering of
// the persisted snapshot that players can back up or move between
// machines. Startup restore tolerates a bad snapshot by falling back
// to defaults; importing a file is an explicit action, so a file that
// fails schema validation is rejected instead.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/arjunm/violino/internal/store"
)

// FileVersion is the progress-file format version.
const FileVersion = 1

// File is the on-disk progress file layout.
type File struct {
	Version  int                         `json:"version"`
	Progress *store.ProgressSnapshotData `json:"progress"`
}

// Write renders the progress data to path as indented JSON.
func Write(path string, progress *store.ProgressSnapshotData) error {
	f := File{Version: FileVersion, Progress: progress}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress file: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write progress file: %w", err)
	}
	return nil
}

// Read parses and validates a progress file. A file that is not valid
// JSON, or does not satisfy the progress schema, is rejected.
func Read(path string) (*store.ProgressSnapshotData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}
	return Parse(b)
}

// Parse validates raw progress-file bytes and returns the progress data.
func Parse(b []byte) (*store.ProgressSnapshotData, error) {
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile progress schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("progress file failed validation: %w", err)
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode progress file: %w", err)
	}
	if f.Version != FileVersion {
		return nil, fmt.Errorf("unsupported progress file version %d", f.Version)
	}
	return f.Progress, nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the progress schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		defBytes, err := json.Marshal(progressSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://progress-file.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}
