package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anvil-build/platform"
)

type cmdCwd struct {
	global *cmdGlobal
}

func (c *cmdCwd) command() *cobra.Command {
	cmd := &cobra.Command{}

	cmd.Use = "cwd <pid>"
	cmd.Short = "Print the working directory of a running process"
	cmd.RunE = c.run

	return cmd
}

func (c *cmdCwd) run(cmd *cobra.Command, args []string) error {
	// Help and usage
	if len(args) == 0 {
		_ = cmd.Help()
		return nil
	}

	// Handle mandatory arguments
	if len(args) != 1 {
		_ = cmd.Help()
		return errors.New("Missing required argument")
	}

	pid, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("Invalid process id %q", args[0])
	}

	cwd := platform.GetWorkingDirectoryOfProcess(int32(pid))
	if cwd == "" {
		return fmt.Errorf("Working directory of process %d isn't available", pid)
	}

	fmt.Println(cwd)

	return nil
}
