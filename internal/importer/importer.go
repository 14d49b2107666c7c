// Package importer loads item and boss content from YAML and writes it to a
// persistent store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Stats counts what an import wrote.
type Stats struct {
	Items            int
	TemplatesCreated int
	TemplatesUpdated int
}

// Sink persists imported content. Items upsert by ID; templates upsert by
// name and have their drop tables replaced.
type Sink interface {
	Import(ctx context.Context, c *Content) (Stats, error)
}

// Importer orchestrates content import from a Source to a Sink.
type Importer struct {
	source Source
	sink   Sink
	logger *zap.Logger
}

// New constructs an Importer.
//
// Precondition: source, sink, and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, sink Sink, logger *zap.Logger) *Importer {
	return &Importer{source: source, sink: sink, logger: logger}
}

// Run loads content, checks cross references, and writes it to the sink.
//
// Postcondition: every item and template is stored, or an error is returned
// and the sink is left unchanged.
func (imp *Importer) Run(ctx context.Context) (Stats, error) {
	start := time.Now()

	content, err := imp.source.Load()
	if err != nil {
		return Stats{}, fmt.Errorf("loading source: %w", err)
	}
	imp.logger.Info("content loaded",
		zap.Int("items", len(content.Items)),
		zap.Int("templates", len(content.Templates)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := CheckReferences(content); err != nil {
		return Stats{}, err
	}

	stats, err := imp.sink.Import(ctx, content)
	if err != nil {
		return Stats{}, fmt.Errorf("writing content: %w", err)
	}
	imp.logger.Info("content imported",
		zap.Int("items", stats.Items),
		zap.Int("templates_created", stats.TemplatesCreated),
		zap.Int("templates_updated", stats.TemplatesUpdated),
		zap.Duration("elapsed", time.Since(start)),
	)
	return stats, nil
}

// CheckReferences verifies item IDs and template names are unique and every
// drop rule names an item in c.Items.
func CheckReferences(c *Content) error {
	var errs []error
	reg := inventory.NewRegistry()
	for _, it := range c.Items {
		if err := reg.Register(it); err != nil {
			errs = append(errs, err)
		}
	}
	names := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if names[t.Name] {
			errs = append(errs, fmt.Errorf("boss %q is defined more than once", t.Name))
		}
		names[t.Name] = true
		for _, d := range t.DropRules {
			if _, ok := reg.Item(d.ItemID); !ok {
				errs = append(errs, fmt.Errorf("boss %q drops unknown item %q", t.Name, d.ItemID))
			}
		}
	}
	return errors.Join(errs...)
}
