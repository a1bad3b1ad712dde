package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/guidex/pkg/section"
)

func newDecodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a guided section file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSection(args[0])
			if err != nil {
				return err
			}

			r, err := buildRegistry()
			if err != nil {
				return err
			}

			info, err := r.GetInfo(s)
			if err != nil {
				return err
			}

			var scratch []byte
			if info.ScratchSize > 0 {
				scratch = make([]byte, info.ScratchSize)
			}

			out, status, err := r.Decode(s, scratch)
			if err != nil {
				return err
			}

			if status&section.AuthTestFailed != 0 {
				pterm.Warning.Println("authentication test failed for decoded payload")
			} else if status&section.AuthNotTested != 0 {
				pterm.Info.Println("decoded payload was not authenticated")
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(output, out, 0644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write decoded payload to this file instead of stdout")
	return cmd
}
