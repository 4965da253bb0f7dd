package cmd

import (
	"fmt"

	"github.com/umputun/tasklist/app/tasklist"
)

// RemoveCommand set of flags and command for remove
type RemoveCommand struct {
	ID int `long:"id" required:"true" description:"task id"`
	CommonOpts
}

// Execute is the entry point for "remove" command, called by flag parser.
// Unknown id is not an error, nothing removed in this case.
func (rc *RemoveCommand) Execute(_ []string) error {
	if err := checkID(rc.ID); err != nil {
		return err
	}
	svc, err := rc.service()
	if err != nil {
		return err
	}
	task, err := svc.Remove(rc.ID)
	if err != nil {
		if tasklist.IsNotFound(err) {
			rc.printf("task %d does not exist, nothing removed\n", rc.ID)
			return nil
		}
		return fmt.Errorf("can't remove task: %w", err)
	}
	rc.printf("task %d %q removed\n", rc.ID, task.Description)
	return nil
}
