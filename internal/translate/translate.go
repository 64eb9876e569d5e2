package translate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format is an output format for settings.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: json, yaml, toml)", s)
}

// Render converts JSON data to format. JSON input is returned as is.
func Render(format Format, jsonData []byte) ([]byte, error) {
	switch format {
	case FormatJSON:
		return jsonData, nil
	case FormatYAML:
		return JSONToYAML(jsonData)
	case FormatTOML:
		return JSONToTOML(jsonData)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// JSONToYAML converts JSON data to YAML data, preserving key order.
func JSONToYAML(jsonData []byte) ([]byte, error) {
	if !gjson.ValidBytes(jsonData) {
		return nil, fmt.Errorf("invalid JSON input")
	}
	node := yamlNode(gjson.ParseBytes(jsonData))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("marshaling yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(r gjson.Result) *yaml.Node {
	switch {
	case r.IsObject():
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		r.ForEach(func(key, value gjson.Result) bool {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.String()},
				yamlNode(value))
			return true
		})
		return n
	case r.IsArray():
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		r.ForEach(func(_, value gjson.Result) bool {
			n.Content = append(n.Content, yamlNode(value))
			return true
		})
		return n
	}

	switch r.Type {
	case gjson.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Str}
	case gjson.Number:
		tag := "!!int"
		if strings.ContainsAny(r.Raw, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: r.Raw}
	case gjson.True, gjson.False:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: r.String()}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// JSONToTOML converts a JSON object to TOML data.
func JSONToTOML(jsonData []byte) ([]byte, error) {
	var data any
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}
	table, ok := prune(data).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("TOML output needs a JSON object at the top level")
	}
	out, err := toml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("marshaling toml: %w", err)
	}
	return out, nil
}

// prune drops nulls and turns integral floats into int64.
func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = prune(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			if val == nil {
				continue
			}
			out = append(out, prune(val))
		}
		return out
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return int64(t)
		}
		return t
	default:
		return v
	}
}
