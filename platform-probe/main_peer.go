package main

import (
	"errors"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/anvil-build/platform"
)

type cmdPeer struct {
	global *cmdGlobal
}

func (c *cmdPeer) command() *cobra.Command {
	cmd := &cobra.Command{}

	cmd.Use = "peer <socket path>"
	cmd.Short = "Print the process id behind a local socket"
	cmd.RunE = c.run

	return cmd
}

func (c *cmdPeer) run(cmd *cobra.Command, args []string) error {
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

	// Connect to the provided address
	uAddr, err := net.ResolveUnixAddr("unix", args[0])
	if err != nil {
		return err
	}

	conn, err := net.DialUnix("unix", nil, uAddr)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	fmt.Println(platform.GetPeerProcessID(conn))

	return nil
}
