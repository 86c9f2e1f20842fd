package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads puzzle content.
// Search order: customPath -> ~/.puzzlebox/content.yaml -> ./content.yaml -> embedded default
func Load(customPath string) (*Content, error) {
	// Try custom path first; an explicit path that fails is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user content directory
	if userPath := userContentPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parse(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	// Try local content file
	if data, err := os.ReadFile("content.yaml"); err == nil {
		if c, err := parse(data, "content.yaml"); err == nil {
			return c, nil
		}
	}

	// Use embedded default content
	return parse(defaultContentYAML, "embedded default")
}

func parse(data []byte, source string) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content %s: %w", source, err)
	}
	applyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &c, nil
}

// applyDefaults fills attempt limits left unset by the content file.
func applyDefaults(c *Content) {
	if c.Word.MaxAttempts == 0 {
		c.Word.MaxAttempts = 6
	}
	if c.Groups.MaxAttempts == 0 {
		c.Groups.MaxAttempts = 4
	}
}

// userContentPath returns the path to the user content file, or empty if home is unavailable.
func userContentPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzlebox", "content.yaml")
}
