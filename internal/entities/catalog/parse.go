package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a stored catalog document
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extensions lists the file extensions probed for a document, in order
var Extensions = []string{".json", ".yaml", ".yml"}

// FormatFromExt maps a file extension to a Format, defaulting to JSON
func FormatFromExt(ext string) Format {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes raw document bytes into a node tree
func Parse(data []byte, format Format) (*Node, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatJSON, "":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

// ParseJSON decodes JSON keeping object key order
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after document: %v", tok)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
				}
				value, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				value, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.elements = append(arr.elements, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", v)
		}
	case string:
		return NewString(v), nil
	case json.Number:
		return NewNumber(v.String()), nil
	case bool:
		return NewBool(v), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ParseYAML decodes a YAML document keeping mapping order
func ParseYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("empty yaml document")
		}
		root = doc.Content[0]
	}
	if root.Kind == 0 {
		return nil, fmt.Errorf("empty yaml document")
	}
	return fromYAML(root)
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(y.Content); i += 2 {
			value, err := fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(y.Content[i].Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := NewArray()
		for _, child := range y.Content {
			value, err := fromYAML(child)
			if err != nil {
				return nil, err
			}
			arr.elements = append(arr.elements, value)
		}
		return arr, nil
	case yaml.AliasNode:
		if y.Alias == nil {
			return NewNull(), nil
		}
		return fromYAML(y.Alias)
	case yaml.ScalarNode:
		switch y.ShortTag() {
		case "!!null":
			return NewNull(), nil
		case "!!bool":
			b, err := strconv.ParseBool(y.Value)
			if err != nil {
				return NewString(y.Value), nil
			}
			return NewBool(b), nil
		case "!!int", "!!float":
			if _, err := strconv.ParseFloat(y.Value, 64); err != nil {
				return NewString(y.Value), nil
			}
			return NewNumber(y.Value), nil
		default:
			return NewString(y.Value), nil
		}
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", y.Kind, y.Line)
	}
}
