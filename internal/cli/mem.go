package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/internal/logging"
	"github.com/yaklabco/rpn35/internal/ui/pretty"
	"github.com/yaklabco/rpn35/pkg/cost"
)

func newMemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mem <file>",
		Short: "Estimate the calculator memory a program occupies",
		Long: `Estimate the bytes of calculator memory a program occupies, with a
per-category breakdown. Instructions cost 3 bytes, numbers 35, and an
equation its text length plus 3; per-mnemonic costs can be overridden
with the "costs:" map in .rpn35.yml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			doc, err := loadBuffer(args[0])
			if err != nil {
				return err
			}

			breakdown := cost.Estimate(doc, cost.NewModel(env.cfg.Costs))
			logging.Default().Debug("estimated",
				logging.FieldInput, args[0],
				logging.FieldBytes, breakdown.Total(),
			)
			pretty.RenderEstimate(cmd.OutOrStdout(), env.styles, breakdown)
			return nil
		},
	}
	return cmd
}
