package content

import (
	_ "embed"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// Default returns the embedded default content.
// Panics only if the embedded file is invalid, which is a build defect.
func Default() *Content {
	c, err := parse(defaultContentYAML, "embedded default")
	if err != nil {
		panic("content: embedded default content is invalid: " + err.Error())
	}
	return c
}
