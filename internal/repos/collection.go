package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/seed"
)

// Slot keys. One serialized collection per key.
const (
	SlotCustomers = "customers"
	SlotLeads     = "leads"
	SlotProjects  = "projects"
	SlotStaff     = "staff"
	SlotEstimates = "estimates"
	SlotInvoices  = "invoices"
	SlotAvatars   = "avatars"
)

var (
	ErrNotFound = errors.New("repos: record not found")
	ErrConflict = errors.New("repos: record already exists")
)

// collection wraps one slot: every read deserializes the whole list,
// every write reserializes it. A missing or corrupt slot is replaced
// by the seed dataset, matching the original application's
// swallow-and-sample behavior, except that the replacement is logged
// and persisted so the corruption is not rediscovered on every read.
type collection[T any] struct {
	store    kvstore.Store
	log      *logger.Logger
	key      string
	seedFrom func(*seed.Dataset) []T
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			c.log.Info("Slot missing, seeding sample data", "slot", c.key)
			return c.reseed(ctx)
		}
		return nil, fmt.Errorf("load slot %q: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("Slot failed to deserialize, replacing with sample data", "slot", c.key, "error", err)
		return c.reseed(ctx)
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize slot %q: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save slot %q: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) reseed(ctx context.Context) ([]T, error) {
	ds, err := seed.Load()
	if err != nil {
		return nil, fmt.Errorf("load seed dataset: %w", err)
	}
	items := c.seedFrom(ds)
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
