package memory

import (
	"context"
	"fmt"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/importer"
)

var _ importer.Sink = (*Store)(nil)

// Import upserts items by ID and templates by name. An existing template keeps
// its ID and instances; its drop table is replaced.
func (s *Store) Import(ctx context.Context, c *importer.Content) (importer.Stats, error) {
	if err := ctx.Err(); err != nil {
		return importer.Stats{}, err
	}
	for _, it := range c.Items {
		if err := it.Validate(); err != nil {
			return importer.Stats{}, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	var stats importer.Stats
	for _, it := range c.Items {
		cp := *it
		working.items[it.ID] = &cp
		stats.Items++
	}

	byName := make(map[string]*boss.Template, len(working.templates))
	for _, t := range working.templates {
		byName[t.Name] = t
	}
	for _, in := range c.Templates {
		for _, d := range in.DropRules {
			if _, ok := working.items[d.ItemID]; !ok {
				return importer.Stats{}, fmt.Errorf("boss %q drops item %q: %w", in.Name, d.ItemID, boss.ErrItemNotFound)
			}
		}
		next := copyTemplate(in)
		if cur, ok := byName[in.Name]; ok {
			next.ID = cur.ID
			next.CreatedAt = cur.CreatedAt
			stats.TemplatesUpdated++
		} else {
			next.ID = working.id()
			next.CreatedAt = s.now()
			stats.TemplatesCreated++
		}
		for i := range next.DropRules {
			next.DropRules[i].ID = working.id()
			next.DropRules[i].TemplateID = next.ID
		}
		working.templates[next.ID] = next
		byName[next.Name] = next
	}
	s.state = working
	return stats, nil
}
