package importer

import (
	"fmt"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Content is the common intermediate format produced by all Source
// implementations.
type Content struct {
	Items     []*inventory.Item
	Templates []*boss.Template
}

// Source loads item and boss definitions.
//
// Postcondition: returns validated Content, or a non-nil error.
type Source interface {
	Load() (*Content, error)
}

// DirSource reads items and boss templates from two YAML directories.
type DirSource struct {
	ItemDir string
	BossDir string
}

// NewDirSource constructs a DirSource. An empty ItemDir skips item loading.
//
// Precondition: bossDir must name a readable directory.
func NewDirSource(itemDir, bossDir string) *DirSource {
	return &DirSource{ItemDir: itemDir, BossDir: bossDir}
}

// Load reads every item file followed by every boss file.
func (s *DirSource) Load() (*Content, error) {
	var c Content
	if s.ItemDir != "" {
		items, err := inventory.LoadItems(s.ItemDir)
		if err != nil {
			return nil, fmt.Errorf("loading items from %s: %w", s.ItemDir, err)
		}
		c.Items = items
	}
	templates, err := boss.LoadTemplates(s.BossDir)
	if err != nil {
		return nil, fmt.Errorf("loading bosses from %s: %w", s.BossDir, err)
	}
	c.Templates = templates
	return &c, nil
}
