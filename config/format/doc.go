// Package format provides the registry of configuration file formats.
//
// Each Format owns an ordered list of file extensions and a Decoder that
// turns document text into a value.Map. The built-in formats are declared
// in a fixed order which also drives extension discovery:
//
//	TOML  .toml        (github.com/pelletier/go-toml/v2)
//	JSON  .json        (github.com/goccy/go-json)
//	YAML  .yaml .yml   (github.com/goccy/go-yaml)
//	HCL   .hcl         (github.com/hashicorp/hcl/v2)
//	INI   .ini         (gopkg.in/ini.v1)
//
// Additional formats can be appended with Register.
//
// Usage:
//
//	m, err := format.YAML.Parse("app.yaml", text, "app")
//	if err != nil {
//	    var perr format.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.URI names the document that failed
//	    }
//	}
//
// Every decoder requires the document root to be a mapping. An empty
// document decodes to an empty mapping.
package format
