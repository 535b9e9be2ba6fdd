package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pershop/pershop-pilote/internal/ai"
	"github.com/pershop/pershop-pilote/internal/ai/gemini"
	"github.com/pershop/pershop-pilote/internal/briefing"
	"github.com/pershop/pershop-pilote/internal/catalog"
	"github.com/pershop/pershop-pilote/internal/logger"
	"github.com/pershop/pershop-pilote/internal/matching"
	"github.com/pershop/pershop-pilote/internal/secrets"
	"github.com/pershop/pershop-pilote/internal/store"
)

const shortlistSize = 3

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a client profile against the shopper catalog and persist the assignment",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("client", "c", "", "a YAML file with the client profile. When unset the profile is collected interactively.")
}

// match is the client-facing flow: collect, validate, score, generate, persist.
func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the pershop-pilote", zap.String("version", version))

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading the shopper catalog", zap.Error(err))
	}

	logger.Info("catalog loaded", zap.Int("shoppers", cat.Len()))

	client, err := resolveClient(cmd)
	if err != nil {
		logger.Fatal("loading the client profile", zap.Error(err))
	}

	if missing := client.MissingFields(); len(missing) > 0 {
		logger.Fatal("client profile is incomplete",
			zap.Strings("missing", missing),
			zap.String("hint", "prenom, nom, city and budget are required to match correctly"),
		)
	}

	results := matching.Rank(client, cat)
	if len(results) == 0 {
		fmt.Println("Aucun personal shopper adapté pour le moment. Essaie d'élargir ta ville, ton style ou ton budget.")
		logger.Info("exiting", zap.String("reason", "no eligible personal shopper"))
		return
	}

	logger.Info("matching completed",
		zap.Int("eligible", len(results)),
		zap.Int("best_score", results[0].Score),
		zap.String("best_shopper", results[0].Shopper.Name),
	)

	briefer := prepareBriefer(ctx, config.AI, logger)
	if !briefer.Enabled() {
		fmt.Println(briefing.DisabledNotice)
	}

	best := results[0]

	prebrief := briefer.Prebrief(ctx, client, best.Shopper)
	logger.Debug("prebrief generation finished", zap.String("status", prebrief.Status.String()))

	assignment := store.NewAssignment(best.Shopper, client, prebrief.Text)
	assignments := store.NewFileStore(config.AssignmentsFile)
	if err := assignments.Append(assignment); err != nil {
		logger.Fatal("saving the assignment", zap.Error(err))
	}

	logger.Info("assignment saved",
		zap.String("assignment_id", assignment.ID),
		zap.String("shopper_id", assignment.ShopperID),
		zap.String("path", config.AssignmentsFile),
	)

	renderShortlist(matching.Shortlist(results, shortlistSize))

	summary := briefer.Summary(ctx, client, best.Shopper)
	logger.Debug("summary generation finished", zap.String("status", summary.Status.String()))

	fmt.Printf("\nFocus IA sur ton meilleur match : %s\n\n%s\n", best.Shopper.Name, summary.Text)
	fmt.Println("\nTon/ta personal shopper reçoit en coulisses un pré-brief détaillé pour préparer au mieux votre séance.")
}

func loadCatalog(config *Config) (*catalog.Catalog, error) {
	if config.CatalogFile != "" {
		return catalog.FromFile(config.CatalogFile)
	}
	return catalog.Default()
}

// resolveClient reads the client profile from the given file, or falls back
// to the interactive questionnaire.
func resolveClient(cmd *cobra.Command) (*matching.Client, error) {
	path := strings.TrimSpace(cmd.Flag("client").Value.String())
	if path == "" {
		return collectClient()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading client profile %q: %w", path, err)
	}

	var client matching.Client
	if err := v.Unmarshal(&client); err != nil {
		return nil, fmt.Errorf("decoding client profile %q: %w", path, err)
	}

	return &client, nil
}

// prepareBriefer builds the generation side of the pipeline. A missing or
// unusable credential is never fatal: matching and persistence still run,
// generated text degrades to the fixed notice.
func prepareBriefer(ctx context.Context, config *AIConfig, log *zap.Logger) *briefing.Briefer {
	generator, err := newGenerator(ctx, config)
	if err != nil {
		log.Warn("AI generation disabled", zap.Error(err))
		return briefing.New(nil, log)
	}

	genLogger := logger.WithGenerationFields(log, "gemini", generator.Model())

	return briefing.New(generator, genLogger)
}

func newGenerator(ctx context.Context, config *AIConfig) (ai.Generator, error) {
	if config == nil {
		config = &AIConfig{Enabled: true}
	}

	if !config.Enabled {
		return nil, fmt.Errorf("disabled in configuration")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: orViperString(config.APIKey, "ai.api-key"),
		File:  config.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set GEMINI_API_KEY or ai.api-key-file)", err)
	}

	return gemini.NewGenerator(ctx, apiKey, config.Model, briefing.SystemInstruction)
}

func orViperString(value, key string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return viper.GetString(key)
}

func renderShortlist(results []matching.Result) {
	fmt.Println("\nShort-list de personal shoppers recommandés")

	for _, r := range results {
		s := r.Shopper
		fmt.Printf("\n%s — ⭐ %.1f/5 — %s\n", s.Name, s.Rating, s.Zone)
		fmt.Printf("  Styles : %s\n", strings.Join(s.Styles, ", "))
		fmt.Printf("  Spécialités : %s\n", strings.Join(s.Specialties, ", "))
		fmt.Printf("  Formats : %s\n", strings.Join(s.Formats, ", "))
		fmt.Printf("  Niveaux de budget pris en charge : %s\n", strings.Join(s.BudgetLevels, ", "))
		fmt.Printf("  Tags : %s\n", strings.Join(s.Tags, " "))
		fmt.Printf("  Score de matching (règles + profil) : %d/10\n", r.Score)

		if len(r.Reasons) > 0 {
			fmt.Println("  Pourquoi ce profil te correspond :")
			for _, reason := range r.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
		}
	}
}
