// Package briefing builds the natural-language prompts for the matched pair
// and degrades gracefully when the text-generation provider is unavailable.
package briefing

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pershop/pershop-pilote/internal/ai"
	"github.com/pershop/pershop-pilote/internal/catalog"
	"github.com/pershop/pershop-pilote/internal/logger"
	"github.com/pershop/pershop-pilote/internal/matching"
)

const (
	// SystemInstruction frames every generation request.
	SystemInstruction = "Tu es un expert en mode et personal shopping."

	// DisabledNotice replaces generated text when no credential is configured.
	DisabledNotice = "⚠️ IA désactivée (clé GEMINI_API_KEY manquante). " +
		"Dans un environnement complet, ce texte serait généré par le modèle."

	// FailedNotice replaces generated text when the provider call errors.
	FailedNotice = "Erreur lors de la génération IA."

	promptPreviewLength = 200
)

//go:embed prompts/summary.md
var summaryTemplate string

//go:embed prompts/prebrief.md
var prebriefTemplate string

// Briefer turns a matched client/shopper pair into a summary and a session
// pre-brief. A nil generator means generation is disabled; every request
// then returns the fixed notice without calling out.
type Briefer struct {
	generator ai.Generator
	logger    *zap.Logger
}

func New(generator ai.Generator, log *zap.Logger) *Briefer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Briefer{generator: generator, logger: log}
}

// Enabled reports whether a generation provider is configured.
func (b *Briefer) Enabled() bool {
	return b.generator != nil
}

// Summary asks the model why this shopper suits this client, as a short
// second-person paragraph.
func (b *Briefer) Summary(ctx context.Context, client *matching.Client, shopper *catalog.Shopper) ai.Result {
	return b.generate(ctx, buildSummaryPrompt(client, shopper))
}

// Prebrief asks the model for the structured Markdown session pre-brief. The
// prompt mandates the exact skeleton; the result is not validated against it.
func (b *Briefer) Prebrief(ctx context.Context, client *matching.Client, shopper *catalog.Shopper) ai.Result {
	return b.generate(ctx, buildPrebriefPrompt(client, shopper))
}

// generate never returns an error: any provider failure is logged and
// converted to a fixed fallback so the surrounding flow keeps going.
func (b *Briefer) generate(ctx context.Context, prompt string) ai.Result {
	if b.generator == nil {
		return ai.Result{Status: ai.StatusDisabled, Text: DisabledNotice}
	}

	b.logger.Debug("generation request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, promptPreviewLength)),
	)

	text, err := b.generator.GenerateContent(ctx, prompt)
	if err != nil {
		b.logger.Warn("generation failed", zap.Error(err))
		return ai.Result{Status: ai.StatusFailed, Text: FailedNotice}
	}

	return ai.Result{Status: ai.StatusGenerated, Text: strings.TrimSpace(text)}
}

func buildSummaryPrompt(client *matching.Client, shopper *catalog.Shopper) string {
	prompt := strings.ReplaceAll(summaryTemplate, "{{CLIENT_JSON}}", toJSON(client))
	return strings.ReplaceAll(prompt, "{{SHOPPER_JSON}}", toJSON(shopper))
}

func buildPrebriefPrompt(client *matching.Client, shopper *catalog.Shopper) string {
	firstName := client.FirstName
	if firstName == "" {
		firstName = "le client"
	}

	prompt := strings.ReplaceAll(prebriefTemplate, "{{CLIENT_JSON}}", toJSON(client))
	prompt = strings.ReplaceAll(prompt, "{{SHOPPER_JSON}}", toJSON(shopper))
	return strings.ReplaceAll(prompt, "{{PRENOM}}", firstName)
}

func toJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
