package format

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/hjarta-config/config/value"

	"github.com/goccy/go-json"
)

// ErrTrailingData is returned when a JSON document holds more than one value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

func decodeJSON(text string) (value.Map, error) {
	if strings.TrimSpace(text) == "" {
		return value.Map{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var doc any

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	var extra any

	err = dec.Decode(&extra)
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: got null", ErrNotMapping)
	}

	return rootMap(doc)
}
