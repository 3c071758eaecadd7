package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, after the config file,
the variant preset and the command-line overrides are applied. The output is
valid YAML and can be saved as ~/.tower/configs/tower.yaml.

Examples:
  tower config
  tower config open --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	e, err := prepare(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	variant := variantArg(args)
	cfg, err := registry.Configure(variant, e.cfg)
	if err != nil {
		return err
	}
	config.OverrideFPS(&cfg, flagFPS)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	fmt.Printf("# variant: %s\n", variant)
	return enc.Encode(cfg)
}
