package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/defargs/internal/domain"
	m "github.com/mouse-blink/defargs/internal/model"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain FILE NAME",
		Short: "Show the dispatch table of one declaration",
		Long: `Explain prints every call shape the wrapper of NAME accepts and the
positional call each one resolves to. NAME may be the declaration or its
wrapper.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.Explain(domain.ExplainArgs{
				Path:   m.Path(args[0]),
				Name:   args[1],
				Limits: limits(cfg),
			})
		},
	}
}
