package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rpn35/pkg/nav"
	"github.com/yaklabco/rpn35/pkg/program"
)

// positionDoc loads a buffer and places its cursor on the requested line.
func positionDoc(path string, line int) (*program.Buffer, error) {
	doc, err := loadBuffer(path)
	if err != nil {
		return nil, err
	}
	if line < 1 || line > doc.LineCount() {
		return nil, fmt.Errorf("%w: buffer line %d", nav.ErrLineOutOfRange, line)
	}
	doc.SetCursor(line)
	return doc, nil
}

func newReportCommand() *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print the program-line address of a buffer line",
		Long: `Print the program-line address ("A012") of a buffer line. Blank and
comment lines do not occupy program lines and have no address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			doc, err := positionDoc(args[0], line)
			if err != nil {
				return err
			}

			address, err := nav.Report(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), env.styles.Address.Render(address))
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 1, "1-based buffer line to report")
	return cmd
}

func newGotoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goto <file> <spec>",
		Short: "Resolve a program-line spec to a buffer line",
		Long: `Resolve a free-form program-line spec like "A031" or "31" to the
1-based buffer line holding it. A letter in the spec must match the
document's label.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			doc, err := loadBuffer(args[0])
			if err != nil {
				return err
			}

			target, err := nav.Goto(doc, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				env.styles.Address.Render(fmt.Sprintf("%d", target)))
			return nil
		},
	}
	return cmd
}

func newJumpCommand() *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "jump <file>",
		Short: "Resolve the GTO/XEQ instruction on a buffer line",
		Long: `Resolve the "GTO A010" or "XEQ A010" instruction on a buffer line to
the buffer line of its target. The operand's label letter must match
the document's sole label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			doc, err := positionDoc(args[0], line)
			if err != nil {
				return err
			}

			var session nav.Session
			target, err := session.JumpForward(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				env.styles.Address.Render(fmt.Sprintf("%d", target)))
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 1, "1-based buffer line holding the jump")
	return cmd
}
