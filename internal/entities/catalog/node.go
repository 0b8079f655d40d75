// Package catalog models semi-structured catalog documents. Content is
// authored by hand and is frequently incomplete, so every accessor on Node is
// nil safe and reports absence instead of panicking on a type mismatch.
package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which variant a Node holds
type Kind int

// Node kinds
const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Node is one value in a catalog document tree. Object keys keep their
// authored order.
type Node struct {
	kind     Kind
	keys     []string
	fields   map[string]*Node
	elements []*Node
	text     string
	boolean  bool
}

// NewString creates a string node
func NewString(s string) *Node {
	return &Node{kind: KindString, text: s}
}

// NewNumber creates a number node from its literal text
func NewNumber(literal string) *Node {
	return &Node{kind: KindNumber, text: literal}
}

// NewBool creates a bool node
func NewBool(b bool) *Node {
	return &Node{kind: KindBool, boolean: b}
}

// NewNull creates a null node
func NewNull() *Node {
	return &Node{kind: KindNull}
}

// NewObject creates an empty object node
func NewObject() *Node {
	return &Node{kind: KindObject, fields: make(map[string]*Node)}
}

// NewArray creates an array node holding elements
func NewArray(elements ...*Node) *Node {
	return &Node{kind: KindArray, elements: elements}
}

// Set adds or replaces a key on an object node. Calls on other kinds are
// ignored.
func (n *Node) Set(key string, value *Node) *Node {
	if n == nil || n.kind != KindObject {
		return n
	}
	if _, exists := n.fields[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = value
	return n
}

// Kind returns the node kind; a nil node is null
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	return n.kind
}

// IsNull reports whether the node is absent or an explicit null
func (n *Node) IsNull() bool {
	return n.Kind() == KindNull
}

// Get returns the child under key, or nil when n is not an object or the key
// is missing
func (n *Node) Get(key string) *Node {
	if n.Kind() != KindObject {
		return nil
	}
	return n.fields[key]
}

// Keys returns object keys in authored order
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}
	return n.keys
}

// Elements returns array elements, or nil for other kinds
func (n *Node) Elements() []*Node {
	if n.Kind() != KindArray {
		return nil
	}
	return n.elements
}

// Index returns the i-th array element or nil when out of range
func (n *Node) Index(i int) *Node {
	elements := n.Elements()
	if i < 0 || i >= len(elements) {
		return nil
	}
	return elements[i]
}

// Len returns the number of keys or elements
func (n *Node) Len() int {
	switch n.Kind() {
	case KindObject:
		return len(n.keys)
	case KindArray:
		return len(n.elements)
	default:
		return 0
	}
}

// AsString returns the value of a string node
func (n *Node) AsString() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}
	return n.text, true
}

// AsFloat returns the value of a number node
func (n *Node) AsFloat() (float64, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsInt returns the value of a number node truncated to an int
func (n *Node) AsInt() (int, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	if i, err := strconv.Atoi(n.text); err == nil {
		return i, true
	}
	f, ok := n.AsFloat()
	if !ok {
		return 0, false
	}
	return int(f), true
}

// AsBool returns the value of a bool node
func (n *Node) AsBool() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}
	return n.boolean, true
}

// StringField returns the string stored under key, or "" when missing or not a
// string
func (n *Node) StringField(key string) string {
	s, _ := n.Get(key).AsString()
	return s
}

// Lookup walks a dot separated path. Numeric segments index into arrays.
// Returns nil as soon as a segment is missing.
func (n *Node) Lookup(path string) *Node {
	if path == "" {
		return n
	}
	current := n
	for _, segment := range strings.Split(path, ".") {
		switch current.Kind() {
		case KindObject:
			current = current.Get(segment)
		case KindArray:
			i, err := strconv.Atoi(segment)
			if err != nil {
				return nil
			}
			current = current.Index(i)
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}
	return current
}

// Truthy is true for true, non-zero numbers, non-empty strings and any
// object or array
func (n *Node) Truthy() bool {
	switch n.Kind() {
	case KindBool:
		return n.boolean
	case KindNumber:
		f, _ := n.AsFloat()
		return f != 0
	case KindString:
		return n.text != ""
	case KindObject, KindArray:
		return true
	default:
		return false
	}
}

// Text renders the node for output: scalars as their plain value, objects
// and arrays as compact JSON, null as "".
func (n *Node) Text() string {
	switch n.Kind() {
	case KindString, KindNumber:
		return n.text
	case KindBool:
		return strconv.FormatBool(n.boolean)
	case KindObject, KindArray:
		data, err := n.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// MarshalJSON encodes the node preserving key order
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindObject:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := n.fields[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, element := range n.elements {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := element.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindString:
		s, err := json.Marshal(n.text)
		if err != nil {
			return err
		}
		buf.Write(s)
	case KindNumber:
		buf.WriteString(n.text)
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolean))
	default:
		buf.WriteString("null")
	}
	return nil
}

// Walk visits every node depth first. The path argument is the dot joined
// location of the node relative to n.
func (n *Node) Walk(fn func(path string, node *Node)) {
	n.walk("", fn)
}

func (n *Node) walk(path string, fn func(string, *Node)) {
	if n == nil {
		return
	}
	fn(path, n)
	switch n.kind {
	case KindObject:
		for _, key := range n.keys {
			n.fields[key].walk(joinPath(path, key), fn)
		}
	case KindArray:
		for i, element := range n.elements {
			element.walk(joinPath(path, strconv.Itoa(i)), fn)
		}
	}
}

func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}
