package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anvil-build/platform/logger"
	"github.com/anvil-build/platform/version"
)

type cmdGlobal struct {
	flagHelp    bool
	flagVersion bool
	flagVerbose bool
	flagDebug   bool
}

func main() {
	// probe command (main)
	probeCmd := cmdProbe{}
	app := probeCmd.command()
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	// Global flags
	globalCmd := cmdGlobal{}
	probeCmd.global = &globalCmd
	app.PersistentFlags().BoolVar(&globalCmd.flagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.flagHelp, "help", "h", false, "Print help")
	app.PersistentFlags().BoolVarP(&globalCmd.flagVerbose, "verbose", "v", false, "Show all information messages")
	app.PersistentFlags().BoolVarP(&globalCmd.flagDebug, "debug", "d", false, "Show all debug messages")

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version.Version

	// info sub-command
	infoCmd := cmdInfo{global: &globalCmd}
	app.AddCommand(infoCmd.command())

	// cwd sub-command
	cwdCmd := cmdCwd{global: &globalCmd}
	app.AddCommand(cwdCmd.command())

	// peer sub-command
	peerCmd := cmdPeer{global: &globalCmd}
	app.AddCommand(peerCmd.command())

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

type cmdProbe struct {
	global *cmdGlobal
}

func (c *cmdProbe) command() *cobra.Command {
	cmd := &cobra.Command{}

	cmd.Use = "platform-probe"
	cmd.Short = "Inspect the OS primitives backing the launcher"
	cmd.Long = `Description:
  Inspect the OS primitives backing the launcher

  This tool reports the values the platform layer would hand to the
  launcher on this machine: the executable path, the clocks, working
  directories of running processes and the identity of a socket peer.
`
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		global := c.global
		if global != nil {
			logger.InitLogger(global.flagVerbose, global.flagDebug)
		}
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}

	return cmd
}
