package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneq-go/phoneset"
	"github.com/ieee0824/phoneq-go/question"
)

// coverage <questions> <phoneset>: print singleton questions still needed
// for full phone coverage.
func coverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <question-file> <phone-set-file>",
		Short: "Print the auto-generated singleton questions missing for full coverage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapFn, cfg, err := resolveMap()
			if err != nil {
				return err
			}

			questions, err := question.LoadFileConfig(args[0], cfg)
			if err != nil {
				return err
			}
			ps, err := phoneset.LoadFile(args[1])
			if err != nil {
				return err
			}

			if mapFn != nil {
				conv := &question.Converter{}
				questions = conv.ConvertAll(questions, mapFn)
				printWarnings(conv.Warnings)
			}

			missing := question.MissingPhoneSet(questions, ps.Names())
			for _, q := range missing {
				fmt.Fprintln(cmd.OutOrStdout(), q.RenderDefault())
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d phones uncovered\n", len(missing), ps.Len())
			return nil
		},
	}
}
