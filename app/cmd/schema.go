package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/umputun/tasklist/app/codec"
)

// SchemaCommand prints JSON schema of the task file
type SchemaCommand struct {
	CommonOpts
}

// Execute is the entry point for "schema" command, called by flag parser
func (sc *SchemaCommand) Execute(_ []string) error {
	data, err := json.MarshalIndent(codec.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	sc.printf("%s\n", data)
	return nil
}
