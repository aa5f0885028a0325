package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hadayhoc-tech/nanglucso/internal/container"
	"github.com/hadayhoc-tech/nanglucso/internal/export"
	"github.com/hadayhoc-tech/nanglucso/internal/httputil"
	"github.com/hadayhoc-tech/nanglucso/internal/ingest"
	"github.com/hadayhoc-tech/nanglucso/internal/invoke"
	"github.com/hadayhoc-tech/nanglucso/internal/pipeline"
	"github.com/hadayhoc-tech/nanglucso/internal/prompt"
	"github.com/hadayhoc-tech/nanglucso/internal/secrets"
	"github.com/hadayhoc-tech/nanglucso/internal/settings"
	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

var integrateCmd = &cobra.Command{
	Use:   "integrate <lesson-plan.docx> <requirements.docx|.txt>",
	Short: "Merge digital-competence requirements into a lesson plan",
	Long: `Integrate ingests the lesson plan (HTML-preserving) and the requirements
appendix (plain text), sends both to the Gemini API with the configured
model fallback chain, and exports the merged result as a Word-compatible
document.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrate(cmd, args[0], args[1])
	},
}

func init() {
	integrateCmd.Flags().String("api-key", "", "Gemini API key (overrides .secrets/gemini-api-key)")
	integrateCmd.Flags().String("model", "", "preferred model id (overrides the stored preference)")
	integrateCmd.Flags().String("out", "", "output directory for the exported document")

	rootCmd.AddCommand(integrateCmd)
}

func runIntegrate(cmd *cobra.Command, lessonPath, requirementsPath string) error {
	cfg := loadConfig()

	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	apiKey := resolveAPIKey(apiKeyFlag, cfg.Generation)
	if apiKey == "" {
		return fmt.Errorf("no API key: pass --api-key or create .secrets/%s", secrets.KeyGeminiAPIKey)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Export.OutputDir = out
	}

	store, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	preferred := resolvePreferredModel(cmd, cfg.Generation, store)

	ingestor := ingest.New(newConverter(cfg.Ingest))

	backend := &invoke.GeminiBackend{
		APIKey:    apiKey,
		UserAgent: cfg.Generation.UserAgent,
		Client:    httputil.NewClient(cfg.Generation.HTTPConfig),
	}
	invoker := invoke.New(backend,
		invoke.WithAttemptTimeout(cfg.Generation.AttemptTimeout),
		invoke.WithSwitchListener(func(from, to string) {
			fmt.Fprintf(os.Stderr, "model %s failed, retrying with %s...\n", from, to)
		}),
	)

	ctrl := pipeline.NewController(func(ctx context.Context, lessonHTML, requirementsText, preferredModel string) (types.IntegrationResult, error) {
		return invoker.Invoke(ctx, prompt.Build(lessonHTML, requirementsText), preferredModel)
	})

	if err := ctrl.SubmitCredential(apiKey); err != nil {
		return err
	}
	ctrl.SelectModel(preferred)

	fmt.Fprintln(os.Stderr, "ingesting documents...")
	lesson, err := ingestor.Ingest(lessonPath, types.PreserveMarkup)
	if err != nil {
		return err
	}
	appendix, err := ingestor.Ingest(requirementsPath, types.PlainText)
	if err != nil {
		return err
	}
	if err := ctrl.SetDocuments(lesson, appendix); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "analyzing lesson plan structure and requirements...")
	result, err := ctrl.Process(cmd.Context())
	if err != nil {
		return err
	}

	path, err := export.Save(result.HTML, lesson.Name, cfg.Export.OutputDir)
	if err != nil {
		return err
	}

	if err := store.RecordRun(result.UsedModel, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}

	fmt.Printf("exported %s (model: %s)\n", path, result.UsedModel)
	return nil
}

// resolvePreferredModel picks the model for this run: flag, then stored
// preference, then config. Ids not in the catalog are ignored so the trial
// order falls back to the default candidate.
func resolvePreferredModel(cmd *cobra.Command, cfg types.GenerationConfig, store *settings.Store) string {
	candidates := make([]string, 0, 3)
	if flagModel, _ := cmd.Flags().GetString("model"); flagModel != "" {
		candidates = append(candidates, flagModel)
	}
	if stored, err := store.SelectedModel(); err == nil && stored != "" {
		candidates = append(candidates, stored)
	}
	if cfg.Model != "" {
		candidates = append(candidates, cfg.Model)
	}

	for _, id := range candidates {
		if invoke.InCatalog(id) {
			return id
		}
		fmt.Fprintf(os.Stderr, "warning: unknown model %q ignored\n", id)
	}
	return ""
}

// newConverter wires the container-based converter, or nil when no runtime
// or image is available; ingestion of structured documents then reports the
// capability as unavailable.
func newConverter(cfg types.IngestConfig) ingest.Converter {
	rt, err := container.DetectRuntime()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	conv, err := ingest.NewMammothConverter(rt, cfg.Image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return nil
	}
	return conv
}
