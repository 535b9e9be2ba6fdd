package matching

import (
	"sort"
	"strings"

	"github.com/pershop/pershop-pilote/internal/catalog"
)

// Reason strings surfaced to the client next to each shortlisted shopper.
const (
	reasonCityInPerson = "Basé(e) dans ta ville ou à proximité (présentiel)"
	reasonCityNearby   = "Dans ta zone géographique (utile si un jour tu veux du présentiel)"
	reasonStyle        = "Style compatible avec ce que tu recherches"
	reasonObjective    = "Spécialisé(e) sur ton objectif principal"
	reasonBudget       = "Adapté à ton budget vestimentaire"
	reasonRemote       = "Peut te proposer une séance en visio"
	reasonInPerson     = "Peut te recevoir en présentiel"
	reasonExtraPrefix  = "Correspond à ton besoin : "
)

// Formats that mean the shopper can physically meet a client.
var inPersonFormats = []string{"magasin", "domicile", "presentiel", "visio/presentiel"}

// Result is the outcome of scoring one shopper for a client. It is
// recomputed per request and never persisted.
type Result struct {
	Shopper *catalog.Shopper
	Score   int
	Reasons []string
}

// Match scores a single client/shopper pair. It is pure: no side effects,
// same inputs always give the same score and the same ordered reason list,
// one reason per scoring rule that fired.
//
// When the client insists on in-person sessions, the city check is a hard
// gate: a shopper outside the client's area is rejected outright with a zero
// score and no reasons.
func Match(client *Client, shopper *catalog.Shopper) (int, []string) {
	score := 0
	var reasons []string

	clientCity := NormalizeCity(client.City)
	shopperZone := NormalizeCity(shopper.Zone)

	if clientCity != "" {
		sameArea := SameArea(clientCity, shopperZone)

		if client.Mode == ModeInPerson {
			if !sameArea {
				return 0, nil
			}
			score += 2
			reasons = append(reasons, reasonCityInPerson)
		} else if sameArea {
			score++
			reasons = append(reasons, reasonCityNearby)
		}
	}

	if len(client.Styles) > 0 && overlaps(client.Styles, shopper.Styles) {
		score += 2
		reasons = append(reasons, reasonStyle)
	}

	if client.Objective != "" {
		objective := strings.ToLower(client.Objective)
		for _, specialty := range shopper.Specialties {
			if strings.Contains(strings.ToLower(specialty), objective) {
				score += 2
				reasons = append(reasons, reasonObjective)
				break
			}
		}
	}

	if level := BudgetLevel(client.Budget); contains(shopper.BudgetLevels, level) {
		score += 2
		reasons = append(reasons, reasonBudget)
	}

	switch client.Mode {
	case ModeRemote:
		for _, format := range shopper.Formats {
			if strings.Contains(format, "visio") {
				score++
				reasons = append(reasons, reasonRemote)
				break
			}
		}
	case ModeInPerson:
		for _, format := range inPersonFormats {
			if contains(shopper.Formats, format) {
				score++
				reasons = append(reasons, reasonInPerson)
				break
			}
		}
	}

	if client.ExtraInfo != "" {
		text := strings.ToLower(client.ExtraInfo)
		// First hit per field only, then move on to the next field.
		for _, field := range [][]string{shopper.Styles, shopper.Specialties, shopper.Tags} {
			for _, item := range field {
				needle := strings.ReplaceAll(strings.ToLower(item), "_", " ")
				if strings.Contains(text, needle) {
					score++
					reasons = append(reasons, reasonExtraPrefix+item)
					break
				}
			}
		}
	}

	return score, reasons
}

// Rank scores the whole catalog for a client, drops everything without a
// positive score and orders the rest by score, best first. The sort is
// stable, so equal scores keep catalog order.
func Rank(client *Client, cat *catalog.Catalog) []Result {
	results := make([]Result, 0, cat.Len())
	for _, shopper := range cat.Items {
		score, reasons := Match(client, shopper)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Shopper: shopper, Score: score, Reasons: reasons})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Shortlist returns at most n leading results.
func Shortlist(results []Result, n int) []Result {
	if n < 0 {
		n = 0
	}
	if len(results) > n {
		return results[:n]
	}
	return results
}

func overlaps(a, b []string) bool {
	for _, item := range a {
		if contains(b, item) {
			return true
		}
	}
	return false
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
