// Command schema writes JSON schema of the task file, used by go generate in app/codec
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/tasklist/app/codec"
)

func main() {
	outputPath := "tasks.schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	if err := writeSchema(outputPath); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}

// writeSchema marshals task file schema with indentation and writes it to outputPath
func writeSchema(outputPath string) error {
	data, err := json.MarshalIndent(codec.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
