package catalog

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// DefaultWeight applies to items without a usable rarityWeight
const DefaultWeight = 1

// Item is one entry of a catalog items list
type Item struct {
	Node *Node
	// Category is the category key the item was found under; empty for root
	// items
	Category string
}

var _ core.Entity = (*Item)(nil)

// Name returns the item's name field
func (i *Item) Name() string {
	if i == nil {
		return ""
	}
	return i.Node.StringField("name")
}

// Slug returns the item's slug field
func (i *Item) Slug() string {
	if i == nil {
		return ""
	}
	return i.Node.StringField("slug")
}

// Weight returns rarityWeight, or DefaultWeight when missing or below 1
func (i *Item) Weight() int {
	if i == nil {
		return DefaultWeight
	}
	w, ok := i.Node.Get("rarityWeight").AsInt()
	if !ok || w < 1 {
		return DefaultWeight
	}
	return w
}

// Property walks a dot path below the item
func (i *Item) Property(path string) *Node {
	if i == nil {
		return nil
	}
	return i.Node.Lookup(path)
}

// GetID returns <category>:<name>, or the bare name for root items
func (i *Item) GetID() string {
	if i.Category == "" {
		return i.Name()
	}
	return i.Category + ":" + i.Name()
}

// GetType returns the category
func (i *Item) GetType() string {
	return i.Category
}
