package format

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/value"

	"github.com/pelletier/go-toml/v2"
)

func decodeTOML(text string) (value.Map, error) {
	doc := make(map[string]any)

	err := toml.Unmarshal([]byte(text), &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value.FromMap(doc)
}
