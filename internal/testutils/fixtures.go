package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture catalog paths
const (
	ClassesCatalog   = "classes/catalog.json"
	WeaponsCatalog   = "items/weapons/catalog.json"
	MaterialsCatalog = "items/materials/catalog.yaml"
	EnemyNames       = "enemies/goblins/names.json"
	QuestsCatalog    = "quests/catalog.json"
)

// CatalogFixtures is a small content tree covering both catalog shapes, a
// YAML document, a names file and a document full of references
var CatalogFixtures = map[string]string{
	ClassesCatalog: `{
  "metadata": {"version": "1.0"},
  "class_types": {
    "warrior": {
      "items": [
        {"name": "Fighter", "slug": "fighter", "rarityWeight": 10, "stats": {"hp": 12, "armor": ["light", "heavy"]}},
        {"name": "Barbarian", "slug": "barbarian", "rarityWeight": 20}
      ]
    },
    "cleric": {
      "items": [
        {"name": "Priest", "slug": "priest", "rarityWeight": 15, "deity": null}
      ]
    }
  }
}`,
	WeaponsCatalog: `{
  "metadata": {"description": "weapons"},
  "weapon_types": {
    "swords": {
      "items": [
        {"name": "Longsword", "damage": "1d8", "rarityWeight": 5, "level": 1, "traits": {"versatile": true}},
        {"name": "Greatsword", "damage": "2d6", "rarityWeight": 20, "level": 5, "traits": {"heavy": true}}
      ]
    },
    "axes": {
      "items": [
        {"name": "Handaxe", "damage": "1d6", "rarityWeight": 2, "level": 1}
      ]
    }
  }
}`,
	MaterialsCatalog: `
items:
  - name: Iron
    rarityWeight: 1
    itemTypeTraits:
      weapon:
        damageBonus: 0
      armor:
        defenseBonus: 1
  - name: Mithril
    rarityWeight: 50
    itemTypeTraits:
      weapon:
        damageBonus: 2
  - name: Silk
    rarityWeight: 5
    itemTypeTraits:
      clothing:
        comfort: 3
`,
	EnemyNames: `{
  "components": {
    "prefix": [
      {"value": "Sneaky", "rarityWeight": 10},
      {"value": "Grim", "rarityWeight": 10}
    ],
    "base": [
      {"value": "Goblin", "rarityWeight": 1}
    ],
    "title": []
  },
  "patterns": [
    {"template": "{prefix} {base}", "rarityWeight": 10},
    {"pattern": "{base} {title}", "weight": 10}
  ]
}`,
	QuestsCatalog: `{
  "quest_types": {
    "main": {
      "items": [
        {
          "name": "Reclaim the Blade",
          "reward": "@items/weapons/swords:Longsword",
          "bonus": "@items/weapons/swords:Vorpal Blade?",
          "giver": "@npcs/town:Mayor",
          "notes": ["plain text", "@classes/warrior:Fighter", "@items/weapons/axes:Warhammer"]
        }
      ]
    }
  }
}`,
}

// WriteCatalogFixtures writes files (path -> content) under a fresh temp dir
// and returns the dir
func WriteCatalogFixtures(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		file := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	}
	return root
}
