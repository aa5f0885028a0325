package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadayhoc-tech/nanglucso/internal/ingest"
	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <document>",
	Short: "Convert a document to its canonical form without invoking the model",
	Long: `Convert ingests a single document and prints the canonical payload:
HTML in markup mode (lesson plans), plain text in text mode (requirements
appendices). Useful for inspecting what the model would receive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		modeFlag, _ := cmd.Flags().GetString("mode")
		var mode types.IngestMode
		switch modeFlag {
		case "markup", "html":
			mode = types.PreserveMarkup
		case "text":
			mode = types.PlainText
		default:
			return fmt.Errorf("unknown mode %q: use markup or text", modeFlag)
		}

		ingestor := ingest.New(newConverter(cfg.Ingest))
		doc, err := ingestor.Ingest(args[0], mode)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "converted %s (%d bytes)\n", doc.Name, len(doc.Content))
		fmt.Println(doc.Content)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("mode", "markup", "canonical form: markup (HTML) or text")

	rootCmd.AddCommand(convertCmd)
}
