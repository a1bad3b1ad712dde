package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/guidex/internal/version"
	"github.com/arthur-debert/guidex/pkg/config"
	"github.com/arthur-debert/guidex/pkg/decoders/crc32"
	"github.com/arthur-debert/guidex/pkg/decoders/lzma"
	"github.com/arthur-debert/guidex/pkg/decoders/passthru"
	"github.com/arthur-debert/guidex/pkg/extract"
	"github.com/arthur-debert/guidex/pkg/guid"
	"github.com/arthur-debert/guidex/pkg/logging"
	"github.com/arthur-debert/guidex/pkg/store"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "guidex",
		Short: "Inspect and decode GUID-defined firmware sections",
		Long: `guidex locates and decodes guided sections: self-describing,
GUID-tagged data blocks embedded in firmware volumes. Built-in decoders
handle CRC32-checked, LZMA-compressed and pass-through sections.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v info, -vv debug, -vvv trace)")

	rootCmd.AddCommand(newGuidsCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newGenconfigCmd())

	return rootCmd
}

// buildRegistry assembles a registry per configuration and binds the
// built-in decoders into it.
func buildRegistry() (*extract.Registry, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	var providers []store.Provider
	for _, name := range cfg.Store.Order {
		switch name {
		case "static":
			p := store.NewStatic()
			if cfg.Store.Static.ReadOnly {
				p.SetWritable(false)
			}
			providers = append(providers, p)
		case "shared":
			store.SetBacked(cfg.Store.Shared.Address, cfg.Store.Shared.Backed)
			providers = append(providers, store.NewShared(cfg.Store.Shared.Address))
		}
	}

	r := extract.New(
		extract.WithCapacity(cfg.Extract.MaxHandlers),
		extract.WithProviders(providers...),
	)

	for _, register := range []func(*extract.Registry) error{
		crc32.Register,
		lzma.Register,
		passthru.Register,
	} {
		if err := register(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// decoderName maps the built-in section GUIDs to readable names for output.
func decoderName(g guid.GUID) string {
	switch g {
	case crc32.SectionGuid:
		return "crc32"
	case lzma.SectionGuid:
		return "lzma"
	case passthru.SectionGuid:
		return "passthru"
	}
	return ""
}
