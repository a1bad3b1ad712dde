package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newGuidsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guids",
		Short: "List the GUIDs of the registered decoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRegistry()
			if err != nil {
				return err
			}

			guids, err := r.Guids()
			if err != nil {
				return err
			}

			data := pterm.TableData{{"GUID", "DECODER"}}
			for _, g := range guids {
				data = append(data, []string{g.String(), decoderName(g)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
