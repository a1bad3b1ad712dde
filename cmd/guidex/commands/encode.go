package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/guidex/pkg/decoders/crc32"
	"github.com/arthur-debert/guidex/pkg/decoders/lzma"
	"github.com/arthur-debert/guidex/pkg/decoders/passthru"
)

func newEncodeCmd() *cobra.Command {
	var (
		decoder string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Wrap a raw payload into a guided section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var raw []byte
			switch decoder {
			case "crc32":
				raw, err = crc32.Encode(payload)
			case "lzma":
				raw, err = lzma.Encode(payload)
			case "passthru":
				raw, err = passthru.Encode(payload)
			default:
				return fmt.Errorf("unknown decoder %q (want crc32, lzma or passthru)", decoder)
			}
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			return os.WriteFile(output, raw, 0644)
		},
	}

	cmd.Flags().StringVarP(&decoder, "decoder", "d", "crc32", "Section format: crc32, lzma or passthru")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the section to this file instead of stdout")
	return cmd
}
