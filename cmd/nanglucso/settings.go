package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadayhoc-tech/nanglucso/internal/invoke"
	"github.com/hadayhoc-tech/nanglucso/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Open(loadConfig().Settings.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		selected, err := store.SelectedModel()
		if err != nil {
			return err
		}
		if selected == "" {
			selected = invoke.DefaultModelID() + " (default)"
		}
		fmt.Println("selected model:", selected)

		model, at, err := store.LastRun()
		if err != nil {
			return err
		}
		if model != "" {
			fmt.Printf("last run: %s at %s\n", model, at.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var settingsSetModelCmd = &cobra.Command{
	Use:   "set-model <model-id>",
	Short: "Persist the preferred model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if !invoke.InCatalog(id) {
			return fmt.Errorf("unknown model %q: run 'nanglucso models' for the catalog", id)
		}

		store, err := settings.Open(loadConfig().Settings.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetSelectedModel(id); err != nil {
			return err
		}
		fmt.Println("selected model:", id)
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the stored model preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Open(loadConfig().Settings.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Delete(settings.KeySelectedModel)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetModelCmd, settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}
