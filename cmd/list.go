package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the declarations marked for generation with their parameter counts
and the number of call shapes each wrapper accepts.

` + pathsHelp

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List marked declarations and their call variants",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.List(listArgs(cfg, args))
		},
	}
}
