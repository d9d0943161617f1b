package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/internal/logging"
	"github.com/yaklabco/rpn35/pkg/mohpc"
)

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert a program to the numbered MoHPC format",
		Long: `Convert an internal-syntax program to the numbered MoHPC exchange
format: every program line gains a "{label}{NNN} " prefix, blank lines
are dropped, and comment lines pass through unchanged.

The document must contain exactly one LBL line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}
			doc, err := loadBuffer(args[0])
			if err != nil {
				return err
			}

			text, err := mohpc.Export(doc)
			if err != nil {
				return err
			}
			logging.Default().Debug("exported",
				logging.FieldInput, args[0],
				logging.FieldLines, doc.LineCount(),
			)
			return writeOutput(cmd, output, text)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
