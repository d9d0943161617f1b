package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/internal/logging"
	"github.com/yaklabco/rpn35/pkg/fsutil"
	"github.com/yaklabco/rpn35/pkg/mohpc"
)

func newImportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert MoHPC-format text to internal syntax",
		Long: `Convert numbered MoHPC exchange text into the internal syntax:
"{label}{NNN} " prefixes are stripped, ";" comments become "#" comments
(a trailing comment moves onto its own line before the code it
annotates), and forum mnemonics are translated to their compact names
(x^2 -> x2, x<>y -> swap, STO+ -> STOadd, ...).

Malformed prefixes are left in place rather than rejected; forum posts
are hand-authored and the importer is tolerant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}
			text, err := fsutil.ReadText(args[0])
			if err != nil {
				return err
			}

			internal := mohpc.ImportText(text)
			logging.Default().Debug("imported", logging.FieldInput, args[0])
			return writeOutput(cmd, output, internal)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
