package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/config/value"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
)

// ErrMultipleDocuments is returned when a YAML stream holds more than one document.
var ErrMultipleDocuments = errors.New("multiple documents in one stream")

func decodeYAML(text string) (value.Map, error) {
	if strings.TrimSpace(text) == "" {
		return value.Map{}, nil
	}

	file, err := parser.ParseBytes([]byte(text), 0)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	docs := 0

	for _, doc := range file.Docs {
		if doc != nil && doc.Body != nil {
			docs++
		}
	}

	if docs > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleDocuments, docs)
	}

	var doc any

	err = yaml.Unmarshal([]byte(text), &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return rootMap(doc)
}
