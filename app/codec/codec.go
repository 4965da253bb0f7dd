// Package codec converts the task list between typed records and the JSON text of the task file.
// Decoding checks the document against the task file schema first, so a malformed file is reported
// with a readable message instead of a bare unmarshal error.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "mem://tasklist/tasks.schema.json"

// Task is a single record of the task file
type Task struct {
	ID          int    `json:"id" jsonschema:"minimum=0"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// FormatError reported when the text is not a valid JSON array of tasks
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	return "invalid task file format: " + e.Msg
}

// Unwrap returns the underlying parser or validator error, if any
func (e *FormatError) Unwrap() error {
	return e.Err
}

// JSON is the task list codec, safe for concurrent use
type JSON struct {
	schema *jsonschema.Schema
}

// New makes JSON codec with compiled task file schema
func New() (*JSON, error) {
	raw, err := schemaJSON()
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add task schema: %w", err)
	}
	sch, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile task schema: %w", err)
	}
	return &JSON{schema: sch}, nil
}

// Decode parses data as a JSON array of tasks. Empty data is not a valid document.
func (j *JSON) Decode(data []byte) ([]Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &FormatError{Msg: "empty document"}
	}

	doc, err := unmarshalRaw(data)
	if err != nil {
		return nil, &FormatError{Msg: err.Error(), Err: err}
	}
	if err := j.schema.Validate(doc); err != nil {
		return nil, &FormatError{Msg: validationMessage(err), Err: err}
	}

	tasks := []Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &FormatError{Msg: err.Error(), Err: err}
	}
	return tasks, nil
}

// Encode makes pretty-printed JSON array with 2-space indentation and trailing newline
func (j *JSON) Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// unmarshalRaw decodes a single JSON value keeping numbers as json.Number, as the validator expects
func unmarshalRaw(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return doc, nil
}

// validationMessage flattens schema validation error to "location: message" pairs
func validationMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	var collect func(e *jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			collect(c)
		}
	}
	collect(ve)
	return strings.Join(msgs, "; ")
}
