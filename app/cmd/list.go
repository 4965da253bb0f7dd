package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ListCommand set of flags and command for list
type ListCommand struct {
	Format string `long:"format" choice:"text" choice:"json" choice:"yaml" default:"text" description:"output format"`
	CommonOpts
}

// Execute is the entry point for "list" command, called by flag parser
func (lc *ListCommand) Execute(_ []string) error {
	svc, err := lc.service()
	if err != nil {
		return err
	}

	switch lc.Format {
	case "json":
		tasks, err := svc.Tasks()
		if err != nil {
			return fmt.Errorf("can't list tasks: %w", err)
		}
		data, err := svc.Codec.Encode(tasks)
		if err != nil {
			return fmt.Errorf("can't encode tasks: %w", err)
		}
		lc.printf("%s", data)
	case "yaml":
		tasks, err := svc.Tasks()
		if err != nil {
			return fmt.Errorf("can't list tasks: %w", err)
		}
		if len(tasks) == 0 {
			lc.printf("[]\n")
			return nil
		}
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return fmt.Errorf("can't marshal tasks to yaml: %w", err)
		}
		lc.printf("%s", data)
	default:
		entries, err := svc.List()
		if err != nil {
			return fmt.Errorf("can't list tasks: %w", err)
		}
		for e := range entries {
			lc.printf("%d. %q is %s\n", e.ID, e.Description, e.Status)
		}
	}
	return nil
}
