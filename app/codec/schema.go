package codec

//go:generate go run ./internal/schema tasks.schema.json

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns JSON schema of the task file, an array of Task objects.
// Extra properties are allowed on task objects and ignored by Decode.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true, AllowAdditionalProperties: true}
	s := r.Reflect(&[]Task{})
	s.Title = "Task file"
	s.Description = "List of tasks, ids are 1-based positions in the list"
	return s
}

func schemaJSON() ([]byte, error) {
	data, err := json.Marshal(Schema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task schema: %w", err)
	}
	return data, nil
}
