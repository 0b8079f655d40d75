package catalog

import (
	"strings"
	"time"
)

const (
	itemsKey        = "items"
	metadataKey     = "metadata"
	typeGroupSuffix = "_types"
)

// Document is one parsed catalog file
type Document struct {
	// Path is the normalized store key, e.g. items/weapons/catalog
	Path     string
	Domain   string
	Root     *Node
	LoadedAt time.Time
}

// NewDocument wraps a parsed tree. Domain is the first path segment.
func NewDocument(path string, root *Node, loadedAt time.Time) *Document {
	domain := path
	if i := strings.Index(path, "/"); i >= 0 {
		domain = path[:i]
	}
	return &Document{
		Path:     path,
		Domain:   domain,
		Root:     root,
		LoadedAt: loadedAt,
	}
}

// ParseDocument decodes data and wraps it as a Document
func ParseDocument(path string, data []byte, format Format, loadedAt time.Time) (*Document, error) {
	root, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return NewDocument(path, root, loadedAt), nil
}

// TypeGroup is a top level property whose key ends in _types. Each key of
// Categories names a category holding an items list.
type TypeGroup struct {
	Key        string
	Categories *Node
}

// TypeGroups returns the *_types groups in authored order, skipping metadata
func (d *Document) TypeGroups() []TypeGroup {
	if d == nil {
		return nil
	}
	var groups []TypeGroup
	for _, key := range d.Root.Keys() {
		if key == metadataKey || !strings.HasSuffix(key, typeGroupSuffix) {
			continue
		}
		node := d.Root.Get(key)
		if node.Kind() != KindObject {
			continue
		}
		groups = append(groups, TypeGroup{Key: key, Categories: node})
	}
	return groups
}

// RootItems returns the items list at the top of the document
func (d *Document) RootItems() []*Item {
	if d == nil {
		return nil
	}
	return itemsOf(d.Root.Get(itemsKey), "")
}

// Items returns the items of category across every type group. An empty
// category returns the root items.
func (d *Document) Items(category string) []*Item {
	if category == "" {
		return d.RootItems()
	}
	var items []*Item
	for _, group := range d.TypeGroups() {
		items = append(items, itemsOf(group.Categories.Get(category).Get(itemsKey), category)...)
	}
	return items
}

// AllItems returns the root items followed by every item of every category
func (d *Document) AllItems() []*Item {
	items := d.RootItems()
	for _, group := range d.TypeGroups() {
		for _, category := range group.Categories.Keys() {
			items = append(items, itemsOf(group.Categories.Get(category).Get(itemsKey), category)...)
		}
	}
	return items
}

// FindItem looks an item up by exact name or slug. With a category the
// matching category of each type group is searched first, then every other
// category. Without one the root items are searched first, then every
// category.
func (d *Document) FindItem(category, name string) (*Item, bool) {
	if d == nil || name == "" {
		return nil, false
	}

	if item, ok := match(d.Items(category), name); ok {
		return item, true
	}

	for _, group := range d.TypeGroups() {
		for _, key := range group.Categories.Keys() {
			if key == category {
				continue
			}
			if item, ok := match(itemsOf(group.Categories.Get(key).Get(itemsKey), key), name); ok {
				return item, true
			}
		}
	}
	return nil, false
}

func match(items []*Item, name string) (*Item, bool) {
	for _, item := range items {
		if item.Name() == name || item.Slug() == name {
			return item, true
		}
	}
	return nil, false
}

func itemsOf(list *Node, category string) []*Item {
	elements := list.Elements()
	items := make([]*Item, 0, len(elements))
	for _, element := range elements {
		if element.Kind() != KindObject {
			continue
		}
		items = append(items, &Item{Node: element, Category: category})
	}
	return items
}
