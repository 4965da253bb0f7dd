package cmd

import (
	"errors"
	"fmt"
	"strings"
)

// AddCommand set of flags and command for add
type AddCommand struct {
	Description string `short:"d" long:"description" required:"true" description:"task description"`
	CommonOpts
}

// Execute is the entry point for "add" command, called by flag parser
func (ac *AddCommand) Execute(_ []string) error {
	if strings.TrimSpace(ac.Description) == "" {
		return errors.New("task description can't be empty")
	}
	svc, err := ac.service()
	if err != nil {
		return err
	}
	task, err := svc.Add(ac.Description)
	if err != nil {
		return fmt.Errorf("can't add task: %w", err)
	}
	ac.printf("task %d %q created\n", task.ID, task.Description)
	return nil
}
