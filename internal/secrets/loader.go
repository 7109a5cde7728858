// Package secrets resolves API credentials from files, inline values or the
// environment.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured reports that no source held a usable value.
var ErrNotConfigured = errors.New("not configured")

// Source describes where a secret comes from. Resolution order is File, then
// Value, then Env.
type Source struct {
	// Name is used in error messages to identify the secret.
	Name string
	// Value is an inline secret provided via configuration or flags.
	Value string
	// File points to a file containing the secret.
	File string
	// Env names an environment variable holding the secret.
	Env string
}

// Load resolves the secret value. The result is always trimmed.
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
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
}

// LoadOptional resolves a secret the caller can live without. It returns an
// empty string when nothing is configured and an error only for a broken
// source, such as an unreadable file.
func LoadOptional(src Source) (string, error) {
	secret, err := Load(src)
	if errors.Is(err, ErrNotConfigured) {
		return "", nil
	}
	return secret, err
}
