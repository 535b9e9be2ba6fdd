package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pershop/pershop-pilote/internal/briefing"
	"github.com/pershop/pershop-pilote/internal/logger"
	"github.com/pershop/pershop-pilote/internal/matching"
	"github.com/pershop/pershop-pilote/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Review the clients assigned to a personal shopper with their AI pre-briefs",
	Run: func(_ *cobra.Command, _ []string) {
		sessions()
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

// sessions is the shopper-facing flow: pick a profile, list its assignments.
func sessions() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading the shopper catalog", zap.Error(err))
	}

	prompt := promptui.Select{
		Label: "Votre profil personal shopper",
		Items: cat.Labels(),
	}

	idx, _, err := prompt.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	shopper := cat.Items[idx]

	assignments, err := store.NewFileStore(config.AssignmentsFile).LoadAll()
	if err != nil {
		logger.Fatal("loading assignments", zap.Error(err))
	}

	mine := store.ForShopper(assignments, shopper.ID)

	logger.Info("assignments loaded",
		zap.String("shopper_id", shopper.ID),
		zap.Int("total", len(assignments)),
		zap.Int("mine", len(mine)),
	)

	fmt.Printf("\nClients assignés à %s\n", shopper.Name)

	if len(mine) == 0 {
		fmt.Println("Aucun client n'a encore été assigné à ce profil.")
		return
	}

	for _, a := range mine {
		renderAssignment(a)
	}
}

func renderAssignment(a *store.Assignment) {
	client := a.Client
	if client == nil {
		client = &matching.Client{}
	}

	fmt.Printf("\n%s — %s\n", client.FullName(), a.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println(strings.Repeat("-", 60))

	fmt.Println("Profil client")
	fmt.Printf("  Ville : %s\n", orNA(client.City))
	fmt.Printf("  Genre : %s\n", orNA(client.Gender))
	fmt.Printf("  Style souhaité : %s\n", orNA(strings.Join(client.Styles, ", ")))
	fmt.Printf("  Budget : %s\n", orNA(client.Budget))
	fmt.Printf("  Objectif : %s\n", orNA(client.Objective))
	fmt.Printf("  Moment de vie : %s\n", orNA(client.LifeEvent))
	fmt.Printf("  Confiance en soi : %s\n", ouiNon(client.NeedsConfidence))
	if client.ExtraInfo != "" {
		fmt.Printf("  Notes client : %s\n", client.ExtraInfo)
	}

	fmt.Println("\nPré-brief IA pour préparer la séance")
	fmt.Println(briefing.FormatPrebrief(a.Prebrief))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func ouiNon(value bool) string {
	if value {
		return "Oui"
	}
	return "Non"
}
