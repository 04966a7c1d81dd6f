package export

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

// ToYAML serializes structured data to YAML text. Key order follows the
// data's own order; strings stay unquoted unless the quoting predicate says
// a plain rendering would be ambiguous. Empty strings are emitted as "" so
// an explicitly blank entry is distinguishable from an omitted one.
func (e *Engine) ToYAML(data *schema.Map) (string, error) {
	node, err := yamlNode(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.indent)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("export: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("export: encode yaml: %w", err)
	}
	return buf.String(), nil
}

func yamlNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *schema.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if v.Len() == 0 {
			node.Style = yaml.FlowStyle // emits {}
		}
		for _, entry := range v.Entries() {
			child, err := yamlNode(entry.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, stringNode(entry.Key), child)
		}
		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(v) == 0 {
			node.Style = yaml.FlowStyle // emits []
		}
		for _, elem := range v {
			child, err := yamlNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case string:
		return stringNode(v), nil

	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil

	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}, nil

	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v)}, nil

	case nil:
		return stringNode(""), nil

	default:
		return nil, fmt.Errorf("export: unsupported value type %T", value)
	}
}

func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if needsQuoting(s) {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

// needsQuoting decides, per scalar and before serialization, whether a
// plain rendering of s would parse back as anything other than s itself.
// The test is the YAML resolver's own: re-reading the plain text must give
// the identical string. Empty strings always quote so "explicitly blank"
// survives the trip.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	var out any
	if err := yaml.Unmarshal([]byte(s), &out); err != nil {
		return true
	}
	round, ok := out.(string)
	return !ok || round != s
}

// formatFloat renders a float so it re-parses as a float: integral values
// keep a trailing .0 and the YAML spellings are used for the non-finite
// values.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
