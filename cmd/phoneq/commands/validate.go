package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	phoneq "github.com/ieee0824/phoneq-go"
)

// validate <questions> <phoneset>: run the full build pipeline and report
// every phone that does not resolve against the inventory.
func validateCmd() *cobra.Command {
	var coverage bool
	cmd := &cobra.Command{
		Use:   "validate <question-file> <phone-set-file>",
		Short: "Check every question phone against a phone inventory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapFn, cfg, err := resolveMap()
			if err != nil {
				return err
			}

			opts := []phoneq.Option{
				phoneq.WithParseConfig(cfg),
				phoneq.WithCoverage(coverage),
			}
			if mapFn != nil {
				opts = append(opts, phoneq.WithPhoneMap(mapFn))
			}

			res, err := phoneq.Build(args[0], args[1], opts...)
			if err != nil {
				return err
			}
			printWarnings(res.Warnings)

			red := color.New(color.FgRed)
			for _, d := range res.Diagnostics {
				red.Fprintln(os.Stderr, d.Error())
			}
			if n := len(res.Diagnostics); n > 0 {
				return fmt.Errorf("%d unrecognized phones in %d questions", n, len(res.Questions))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d questions ok\n", len(res.Questions))
			return nil
		},
	}
	cmd.Flags().BoolVar(&coverage, "coverage", false, "also synthesize coverage singletons before validating")
	return cmd
}
