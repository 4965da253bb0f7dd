package cmd

import (
	"fmt"
)

// DoneCommand set of flags and command for done, toggles task completion
type DoneCommand struct {
	ID int `long:"id" required:"true" description:"task id"`
	CommonOpts
}

// Execute is the entry point for "done" command, called by flag parser
func (dc *DoneCommand) Execute(_ []string) error {
	if err := checkID(dc.ID); err != nil {
		return err
	}
	svc, err := dc.service()
	if err != nil {
		return err
	}
	task, err := svc.Toggle(dc.ID)
	if err != nil {
		return fmt.Errorf("can't update task: %w", err)
	}
	status := "incomplete"
	if task.Completed {
		status = "completed"
	}
	dc.printf("task %d %q marked %s\n", task.ID, task.Description, status)
	return nil
}
