package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a credential comes from. File takes precedence over
// Value when both are set.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline value provided via configuration or the environment.
	Value string
	// File points to a file containing the value.
	File string
}

// Load resolves the credential from the source. The result is always
// trimmed. An error means the caller has no credential at all, which this
// application treats as degraded mode rather than a failure.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if secret := strings.TrimSpace(string(data)); secret != "" {
			return secret, nil
		}
		return "", fmt.Errorf("%s file %q is empty", name, file)
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	return "", fmt.Errorf("%s is not configured", name)
}
