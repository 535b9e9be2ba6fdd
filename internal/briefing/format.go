package briefing

import "strings"

// FormatPrebrief lightly cleans up the Markdown returned by the model for
// display: headings and bullets get their own line when the model glued them
// together. It is a cosmetic pass, not a structure check.
func FormatPrebrief(prebrief string) string {
	if prebrief == "" {
		return ""
	}

	text := prebrief
	text = strings.ReplaceAll(text, "###", "\n\n###")
	text = strings.ReplaceAll(text, "* **", "\n* **")
	text = strings.ReplaceAll(text, "**Pré-brief", "\n**Pré-brief")

	return strings.TrimSpace(text)
}
