package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// GenerateDefaultConfigTOML renders DefaultConfig() as TOML text, for
// `stylescan init` to write out as a starting point.
//
// pyscn renders its default config from a go:embed'd text/template so the
// file can carry per-field comments; that template isn't part of this
// corpus, so this renders the struct directly via toml.Marshal instead
// (see DESIGN.md).
func GenerateDefaultConfigTOML() (string, error) {
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to render default config: %w", err)
	}
	return string(data), nil
}
