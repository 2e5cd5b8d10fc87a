package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ieee0824/phoneq-go/voicefont"
)

// header <file>: dump a voice-font header; with --write, create one.
func headerCmd() *cobra.Command {
	var (
		write          bool
		sampleRate     uint32
		phoneCount     uint32
		questionCount  uint32
		questionOffset uint64
		questionSize   uint64
	)
	cmd := &cobra.Command{
		Use:   "header <voice-font-file>",
		Short: "Dump or write a voice-font container header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				h := voicefont.NewHeader()
				h.SampleRate = sampleRate
				h.PhoneCount = phoneCount
				h.QuestionCount = questionCount
				h.QuestionOffset = questionOffset
				h.QuestionSize = questionSize
				return h.Write(f)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			h, err := voicefont.ReadHeader(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:         %d\n", h.Version)
			fmt.Fprintf(out, "sample rate:     %d Hz\n", h.SampleRate)
			fmt.Fprintf(out, "phones:          %d\n", h.PhoneCount)
			fmt.Fprintf(out, "questions:       %d\n", h.QuestionCount)
			fmt.Fprintf(out, "question offset: %d\n", h.QuestionOffset)
			fmt.Fprintf(out, "question size:   %d\n", h.QuestionSize)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write a header instead of dumping")
	cmd.Flags().Uint32Var(&sampleRate, "sample-rate", 16000, "sample rate in Hz")
	cmd.Flags().Uint32Var(&phoneCount, "phones", 0, "phone count")
	cmd.Flags().Uint32Var(&questionCount, "questions", 0, "question count")
	cmd.Flags().Uint64Var(&questionOffset, "question-offset", voicefont.HeaderSize, "question section offset")
	cmd.Flags().Uint64Var(&questionSize, "question-size", 0, "question section size")
	return cmd
}
