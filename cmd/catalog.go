package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mergington.GO/config"
	"mergington.GO/core/registry"
)

var exportFile string

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "Print the effective activity catalog",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		catalog, err := config.EffectiveCatalog()
		if err != nil {
			fmt.Printf("Failed to load catalog: %v\n", err)
			os.Exit(1)
		}

		reg := registry.NewRegistry(catalog)
		fmt.Printf("%-20s %-45s %s\n", "ACTIVITY", "SCHEDULE", "ENROLLED")
		for _, name := range reg.Names() {
			act := catalog[name]
			fmt.Printf("%-20s %-45s %d/%d\n", name, act.Schedule, len(act.Participants), act.MaxParticipants)
		}
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "catalog:export",
	Short: "Write the built-in catalog as YAML (edit and point CATALOG_FILE at it)",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := yaml.Marshal(config.DefaultCatalog())
		if err != nil {
			fmt.Printf("Failed to encode catalog: %v\n", err)
			os.Exit(1)
		}
		if exportFile == "" {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(exportFile, data, 0o644); err != nil {
			fmt.Printf("Failed to write %s: %v\n", exportFile, err)
			os.Exit(1)
		}
		fmt.Printf("Catalog written to %s\n", exportFile)
	},
}

func init() {
	catalogExportCmd.Flags().StringVarP(&exportFile, "out", "o", "", "Write YAML to this file instead of stdout")
	rootCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogExportCmd)
}
