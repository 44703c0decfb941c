// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) versionCmd() *cobra.Command {
	var server bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := c.buildInfo.WriteTo(out); err != nil {
				return err
			}

			if !server {
				return nil
			}

			env, err := c.client(cmd.Context())
			if err != nil {
				return err
			}
			version, err := env.Client.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", version)

			return nil
		},
	}

	cmd.Flags().BoolVar(&server, "server", false, "also ask the server for its version")

	return cmd
}
