package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"

	"github.com/pershop/pershop-pilote/internal/matching"
)

// Questionnaire options mirror the original client intake form. An empty
// entry means "no answer"; optional fields simply skip their scoring rules.
var (
	genderOptions   = []string{"", "femme", "homme", "autre"}
	languageOptions = []string{"", "français", "anglais", "arabe", "espagnol", "italien"}
	sizeOptions     = []string{"", "XS", "S", "M", "L", "XL", "2XL+"}
	styleOptions    = []string{"casual", "chic", "streetwear", "minimal", "bohème", "élégant"}
	sectorOptions   = []string{"", "cadres", "dirigeantes", "consultants", "startups", "étudiants", "creatifs", "freelances"}
	workEnvOptions  = []string{"", "Très formel (costume / tailleur)", "Business casual", "Créatif / détendu", "Télétravail / freelance"}
	budgetOptions   = []string{"", "moins de 100€", "100 - 300€", "300 - 1000€", "plus de 1000€"}
	serviceOptions  = []string{"", "accompagnement_magasin", "virtual_style", "tri_dressing", "relooking_complet", "live_shopping"}
	modeOptions     = []string{matching.ModeAny, matching.ModeInPerson, matching.ModeRemote}
	objectiveOpts   = []string{"", "style_pro", "mariage", "confiance_en_soi", "grandes_tailles", "petit_budget", "relooking"}
	lifeEventOpts   = []string{"aucun_particulier", "nouveau_job", "reconversion", "grossesse/post-partum", "séparation", "burnout/épuisement"}
)

// collectClient walks the questionnaire and decodes the answers into a
// client profile.
func collectClient() (*matching.Client, error) {
	answers := map[string]any{}

	fmt.Println("Parle-moi de toi : quelques questions rapides, et je te propose une short-list de personal shoppers.")

	var err error
	text := func(key, label string) {
		if err != nil {
			return
		}
		var value string
		value, err = ask(label)
		answers[key] = value
	}
	choose := func(key, label string, options []string) {
		if err != nil {
			return
		}
		var value string
		value, err = selectOne(label, options)
		answers[key] = value
	}

	text("prenom", "Prénom")
	text("nom", "Nom")
	choose("gender", "Genre", genderOptions)
	text("city", "Ville principale")
	choose("language", "Langue d'accompagnement", languageOptions)
	choose("size", "Taille / morphologie (optionnel)", sizeOptions)
	text("style", "Style(s) dans lequel tu te reconnais (séparés par des virgules : "+strings.Join(styleOptions, ", ")+")")
	choose("job_sector", "Contexte pro (facultatif)", sectorOptions)
	choose("work_env", "Ambiance vestimentaire au travail", workEnvOptions)
	choose("budget", "Budget vestimentaire pour cette étape", budgetOptions)
	choose("service_type", "Type d'accompagnement", serviceOptions)
	choose("mode", "Format préféré", modeOptions)
	choose("objective", "Objectif principal", objectiveOpts)
	choose("life_event", "Moment de vie", lifeEventOpts)
	choose("needs_confidence", "Je veux travailler ma confiance en moi / mon image", []string{"non", "oui"})
	text("extra_info", "Raconte ton besoin (événement, couleurs, ce que tu veux éviter…)")
	text("favorite_brand", "Marques préférées (optionnel)")

	if err != nil {
		return nil, err
	}

	answers["style"] = splitList(answers["style"].(string))
	answers["needs_confidence"] = answers["needs_confidence"] == "oui"

	var client matching.Client
	if err := mapstructure.WeakDecode(answers, &client); err != nil {
		return nil, fmt.Errorf("decoding questionnaire answers: %w", err)
	}

	return &client, nil
}

func ask(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func selectOne(label string, options []string) (string, error) {
	prompt := promptui.Select{Label: label, Items: options}
	_, value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
