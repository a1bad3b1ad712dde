package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/guidex/pkg/section"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show decode requirements for a guided section file",
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "guid:         %s\n", s.Guid())
			if name := decoderName(s.Guid()); name != "" {
				fmt.Fprintf(out, "decoder:      %s\n", name)
			}
			fmt.Fprintf(out, "output size:  %d\n", info.OutputSize)
			fmt.Fprintf(out, "scratch size: %d\n", info.ScratchSize)
			fmt.Fprintf(out, "attributes:   %s\n", attributeNames(info.Attributes))
			return nil
		},
	}
}

func readSection(path string) (*section.Section, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return section.Parse(raw)
}

func attributeNames(attrs uint16) string {
	switch {
	case attrs&section.ProcessingRequired != 0 && attrs&section.AuthStatusValid != 0:
		return "processing-required, auth-status-valid"
	case attrs&section.ProcessingRequired != 0:
		return "processing-required"
	case attrs&section.AuthStatusValid != 0:
		return "auth-status-valid"
	}
	return "none"
}
