// Package reference parses catalog references of the form
//
//	@domain/path/category:item[filters]?.property
//
// Parsing is purely syntactic. Malformed input yields ok == false.
package reference

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(
	`^@(?P<domain>[\w-]+)/(?P<path>[\w-]+(?:/[\w-]+)*):(?P<item>[\w\-*\s]+)(?P<filters>\[[^\]]+\])?(?P<optional>\?)?(?P<property>\.[\w.]+)?$`,
)

// Wildcard is the item name that selects a weighted random item
const Wildcard = "*"

// Reference is a parsed catalog reference
type Reference struct {
	Domain string
	// Path holds the segments before the category, slash joined; empty when
	// only the category was given
	Path     string
	Category string
	ItemName string
	// Filters is the raw text inside [...]
	Filters    string
	IsOptional bool
	// Property is the dot joined path applied after lookup
	Property string
}

// Parse parses s. It never panics.
func Parse(s string) (Reference, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Reference{}, false
	}

	ref := Reference{
		Domain:     m[pattern.SubexpIndex("domain")],
		ItemName:   m[pattern.SubexpIndex("item")],
		IsOptional: m[pattern.SubexpIndex("optional")] != "",
	}

	segments := strings.Split(m[pattern.SubexpIndex("path")], "/")
	ref.Category = segments[len(segments)-1]
	ref.Path = strings.Join(segments[:len(segments)-1], "/")

	if filters := m[pattern.SubexpIndex("filters")]; filters != "" {
		ref.Filters = filters[1 : len(filters)-1]
	}
	if property := m[pattern.SubexpIndex("property")]; property != "" {
		ref.Property = strings.Trim(property, ".")
	}

	return ref, true
}

// IsWildcard reports whether the item is the * selector
func (r Reference) IsWildcard() bool {
	return strings.TrimSpace(r.ItemName) == Wildcard
}

// ID returns <path>/<category>:<item>, or <category>:<item> without a path
func (r Reference) ID() string {
	return r.IDFor(r.ItemName)
}

// IDFor builds the canonical identifier for another item in the same scope
func (r Reference) IDFor(itemName string) string {
	if r.Path == "" {
		return r.Category + ":" + itemName
	}
	return r.Path + "/" + r.Category + ":" + itemName
}

// CatalogPath is <domain>/<path>/catalog, or <domain>/catalog without a path
func (r Reference) CatalogPath() string {
	if r.Path == "" {
		return r.Domain + "/catalog"
	}
	return r.Domain + "/" + r.Path + "/catalog"
}

// CategoryCatalogPath is the catalog stored in a directory named after the
// category, <domain>/<path>/<category>/catalog
func (r Reference) CategoryCatalogPath() string {
	if r.Path == "" {
		return r.Domain + "/" + r.Category + "/catalog"
	}
	return r.Domain + "/" + r.Path + "/" + r.Category + "/catalog"
}

// String renders the reference back to its textual form
func (r Reference) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(r.Domain)
	b.WriteString("/")
	if r.Path != "" {
		b.WriteString(r.Path)
		b.WriteString("/")
	}
	b.WriteString(r.Category)
	b.WriteString(":")
	b.WriteString(r.ItemName)
	if r.Filters != "" {
		b.WriteString("[")
		b.WriteString(r.Filters)
		b.WriteString("]")
	}
	if r.IsOptional {
		b.WriteString("?")
	}
	if r.Property != "" {
		b.WriteString(".")
		b.WriteString(r.Property)
	}
	return b.String()
}
