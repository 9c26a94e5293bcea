package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/anvil-build/platform"
)

type cmdInfo struct {
	global *cmdGlobal
}

func (c *cmdInfo) command() *cobra.Command {
	cmd := &cobra.Command{}

	cmd.Use = "info"
	cmd.Short = "Report the platform primitives for this machine"
	cmd.RunE = c.run

	return cmd
}

func (c *cmdInfo) run(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err == nil {
		platform.WarnIfProblematicFilesystem(cwd)
	}

	data := [][]string{
		{"Executable", platform.GetSelfExecutablePath()},
		{"Monotonic clock (ns)", fmt.Sprintf("%d", platform.MonotonicClockNanos())},
		{"Process clock (ns)", fmt.Sprintf("%d", platform.ProcessClockNanos())},
		{"Working directory", platform.GetWorkingDirectoryOfProcess(int32(os.Getpid()))},
		{"Shared library name", exampleSharedLibraryName()},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"PRIMITIVE", "VALUE"})
	table.AppendBulk(data)
	table.Render()

	return nil
}

func exampleSharedLibraryName() string {
	for _, name := range []string{"libfoo.so", "libfoo.dylib", "foo.dll"} {
		if platform.IsSharedLibraryName(name) {
			return name
		}
	}

	return ""
}
