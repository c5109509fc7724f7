package format

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/value"

	"gopkg.in/ini.v1"
)

// decodeINI places keys of the default section at the top level and nests
// every named section under its name. All values are strings.
func decodeINI(text string) (value.Map, error) {
	file, err := ini.LoadSources(ini.LoadOptions{}, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("load error: %w", err)
	}

	m := make(value.Map)

	for _, section := range file.Sections() {
		keys := make(value.Map, len(section.Keys()))
		for _, key := range section.Keys() {
			keys[key.Name()] = value.String(key.String())
		}

		if section.Name() == ini.DefaultSection {
			for k, v := range keys {
				m[k] = v
			}

			continue
		}

		m[section.Name()] = value.Mapping(keys)
	}

	return m, nil
}
