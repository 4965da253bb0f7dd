// Package cmd has all CLI commands. Each command is a go-flags Commander and gets common options,
// like the task file location, from main before execution.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/umputun/tasklist/app/tasklist"
)

// CommonOptionsCommander extends flags.Commander with SetCommon
// All commands should implement this interface
type CommonOptionsCommander interface {
	SetCommon(commonOpts CommonOpts)
	Execute(args []string) error
}

// CommonOpts sets externally from main, shared across all commands
type CommonOpts struct {
	File   string
	Stdout io.Writer
}

// SetCommon satisfies CommonOptionsCommander interface and sets common option fields
func (c *CommonOpts) SetCommon(commonOpts CommonOpts) {
	c.File = commonOpts.File
	c.Stdout = commonOpts.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
}

func (c *CommonOpts) service() (*tasklist.Service, error) {
	if c.File == "" {
		return nil, errors.New("task file location is not set")
	}
	return tasklist.New(c.File)
}

func (c *CommonOpts) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Stdout, format, args...)
}

// checkID rejects ids which can't be a task position
func checkID(id int) error {
	if id < 1 {
		return fmt.Errorf("invalid id %d, should be a positive number", id)
	}
	return nil
}
