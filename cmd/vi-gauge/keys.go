package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-gauge/input"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the action names accepted in [keys]",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range input.ActionNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
