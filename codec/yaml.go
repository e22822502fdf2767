package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/variant/variant"
)

// EncodeYAML renders v as YAML. Object fields are emitted in insertion
// order.
func EncodeYAML(v variant.Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("codec: encode YAML: %w", err)
	}
	return out, nil
}

// DecodeYAML parses a YAML document into a value, preserving mapping
// order. An empty document decodes to null.
func DecodeYAML(data []byte) (variant.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return variant.Null(), fmt.Errorf("codec: decode YAML: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return variant.Null(), nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return variant.Null(), nil
	}
	return fromYAMLNode(node)
}

func toYAMLNode(v variant.Value) (*yaml.Node, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}
	switch v.Type() {
	case variant.TypeNull:
		return scalar("!!null", "null"), nil
	case variant.TypeInt64:
		n, _ := v.AsInt64()
		return scalar("!!int", strconv.FormatInt(n, 10)), nil
	case variant.TypeUint64:
		n, _ := v.AsUint64()
		return scalar("!!int", strconv.FormatUint(n, 10)), nil
	case variant.TypeDouble:
		d, _ := v.AsDouble()
		switch {
		case math.IsNaN(d):
			return scalar("!!float", ".nan"), nil
		case math.IsInf(d, 1):
			return scalar("!!float", ".inf"), nil
		case math.IsInf(d, -1):
			return scalar("!!float", "-.inf"), nil
		}
		return scalar("!!float", strconv.FormatFloat(d, 'g', -1, 64)), nil
	case variant.TypeBool:
		b, _ := v.AsBool()
		return scalar("!!bool", strconv.FormatBool(b)), nil
	case variant.TypeString:
		return scalar("!!str", v.GetString()), nil
	case variant.TypeArray:
		a, _ := v.GetArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := range a {
			child, err := toYAMLNode(a[i])
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case variant.TypeObject:
		o, _ := v.GetObject()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range o.Fields() {
			child, err := toYAMLNode(f.Value)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", f.Key, err)
			}
			node.Content = append(node.Content, scalar("!!str", f.Key), child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("codec: unknown tag %s", v.Type())
	}
}

func fromYAMLNode(n *yaml.Node) (variant.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		elems := make(variant.Array, len(n.Content))
		for i, c := range n.Content {
			e, err := fromYAMLNode(c)
			if err != nil {
				return variant.Null(), fmt.Errorf("array[%d]: %w", i, err)
			}
			elems[i] = e
		}
		return variant.FromArray(elems), nil
	case yaml.MappingNode:
		obj := variant.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return variant.Null(), fmt.Errorf("codec: YAML mapping key at line %d is not a scalar", keyNode.Line)
			}
			val, err := fromYAMLNode(valNode)
			if err != nil {
				return variant.Null(), fmt.Errorf("object[%q]: %w", keyNode.Value, err)
			}
			obj.Set(keyNode.Value, val)
		}
		return variant.FromObject(obj), nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	default:
		return variant.Null(), fmt.Errorf("codec: unsupported YAML node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (variant.Value, error) {
	switch n.Tag {
	case "!!null":
		return variant.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return variant.Null(), fmt.Errorf("codec: parse YAML bool %q: %w", n.Value, err)
		}
		return variant.Bool(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return variant.Int64(i), nil
		}
		if u, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			return variant.Uint64(u), nil
		}
		return variant.Null(), fmt.Errorf("codec: parse YAML int %q", n.Value)
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".nan":
			return variant.Double(math.NaN()), nil
		case ".inf", "+.inf":
			return variant.Double(math.Inf(1)), nil
		case "-.inf":
			return variant.Double(math.Inf(-1)), nil
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return variant.Null(), fmt.Errorf("codec: parse YAML float %q: %w", n.Value, err)
		}
		return variant.Double(f), nil
	default:
		// Strings, timestamps, and unknown tags keep their text form.
		return variant.Str(n.Value), nil
	}
}
