package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/hadayhoc-tech/nanglucso/internal/invoke"
	"github.com/hadayhoc-tech/nanglucso/internal/settings"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model candidates in fallback order",
	Long: `Models prints the static candidate catalog in the order the fallback
chain tries them. The selected model, when one is stored, moves to the
front of the trial order at run time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		if output == "yaml" {
			data, err := yaml.Marshal(invoke.Catalog)
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Print(string(data))
			return nil
		}

		selected := storedSelection()
		for _, c := range invoke.Catalog {
			marker := " "
			switch {
			case c.ID == selected:
				marker = "*"
			case selected == "" && c.Default:
				marker = "*"
			}
			fmt.Printf("%s %-18s %-18s %s\n", marker, c.ID, c.DisplayName, c.Description)
		}
		return nil
	},
}

func init() {
	modelsCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")

	rootCmd.AddCommand(modelsCmd)
}

// storedSelection returns the persisted model preference, or "" when the
// store is unavailable or holds none.
func storedSelection() string {
	cfg := loadConfig()
	store, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return ""
	}
	defer store.Close()

	selected, err := store.SelectedModel()
	if err != nil {
		return ""
	}
	return selected
}
