package entry

import (
	"encoding/json"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/capfs/pkg/capfs/core"
	"github.com/arthur-debert/capfs/pkg/capfs/validation"
)

// Data type tokens accepted by LoadData, case-insensitive.
const (
	TypeJSONC = "jsonc" // JSON superset: comments and trailing commas
	TypeJSON  = "json"  // strict JSON
	TypeYAML  = "yaml"
	TypeAny   = "any" // jsonc first, then yaml
)

type parser func(data []byte) (any, error)

func parseJSONC(data []byte) (any, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	return parseJSON(std)
}

func parseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// parsersFor maps a lower-cased type token to the parsers tried in order.
func parsersFor(typ string) []parser {
	switch typ {
	case TypeJSONC:
		return []parser{parseJSONC}
	case TypeJSON:
		return []parser{parseJSON}
	case TypeYAML:
		return []parser{parseYAML}
	case TypeAny:
		return []parser{parseJSONC, parseYAML}
	default:
		return nil
	}
}

// LoadData reads the file and parses it as the given data type, trying
// each registered parser in sequence and returning the first successful
// result. An unknown token fails InvalidArgument; content no parser
// accepts fails ContentUnparseable.
func (f *File) LoadData(typ string) (any, error) {
	if err := validation.Assert("type", typ, validation.DataType, true); err != nil {
		return nil, err
	}
	typ = strings.ToLower(strings.TrimSpace(typ))
	parsers := parsersFor(typ)
	if parsers == nil {
		return nil, core.NewInvalidArgument(f.meta.Path(), "unknown data type '"+typ+"'", nil)
	}
	data, err := f.ReadBinary()
	if err != nil {
		return nil, err
	}
	var lastErr error
	for _, parse := range parsers {
		v, perr := parse(data)
		if perr == nil {
			return v, nil
		}
		lastErr = perr
	}
	return nil, core.NewContentUnparseable(f.meta.Path(), typ, lastErr)
}
