package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	phoneq "github.com/ieee0824/phoneq-go"
	"github.com/ieee0824/phoneq-go/question"
)

var mapPath string

func Execute() error {
	root := &cobra.Command{
		Use:           "phoneq",
		Short:         "Phone question set toolkit for decision-tree TTS training",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&mapPath, "map", "", "TOML phone-remapping table (with optional [patterns] overrides)")

	root.AddCommand(convertCmd(), coverageCmd(), validateCmd(), headerCmd())

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func printWarnings(warnings []string) {
	yellow := color.New(color.FgYellow)
	for _, w := range warnings {
		yellow.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

// resolveMap loads --map if given and returns the mapping function plus the
// parse configuration (pattern overrides applied, defaults otherwise).
func resolveMap() (question.MapFunc, question.Config, error) {
	cfg := question.DefaultConfig()
	if mapPath == "" {
		return nil, cfg, nil
	}
	mf, err := phoneq.LoadMapFile(mapPath)
	if err != nil {
		return nil, cfg, err
	}
	cfg, err = mf.ParseConfig()
	if err != nil {
		return nil, cfg, err
	}
	return mf.MapFunc(), cfg, nil
}
