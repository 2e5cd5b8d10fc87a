package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneq-go/question"
)

// convert <questions>: parse, optionally remap, deduplicate, print.
func convertCmd() *cobra.Command {
	var (
		questionFormat string
		itemFormat     string
		itemDelimiter  string
	)
	cmd := &cobra.Command{
		Use:   "convert <question-file>",
		Short: "Parse a question file, remap phones, and print deduplicated questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapFn, cfg, err := resolveMap()
			if err != nil {
				return err
			}

			questions, err := question.LoadFileConfig(args[0], cfg)
			if err != nil {
				return err
			}

			if mapFn != nil {
				conv := &question.Converter{}
				questions = conv.ConvertAll(questions, mapFn)
				printWarnings(conv.Warnings)
			}

			for _, q := range questions {
				line := q.Render(questionFormat, itemFormat, itemDelimiter)
				if line == "" {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&questionFormat, "question-format", question.DefaultQuestionFormat, "question template (name, items)")
	cmd.Flags().StringVar(&itemFormat, "item-format", question.DefaultItemFormat, "per-item template")
	cmd.Flags().StringVar(&itemDelimiter, "item-delimiter", question.DefaultItemDelimiter, "item separator")
	return cmd
}
