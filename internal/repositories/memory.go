// Package repositories provides the data layer behind the services.
// Two backends exist: in-memory fixture repositories (the default,
// with configurable artificial latency mimicking a remote service)
// and raw-SQL MySQL repositories selected by configuration.
package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// simulate blocks for the configured artificial latency, honoring
// context cancellation so an abandoned request stops waiting.
func simulate(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// newID builds an opaque record key like "prod_3f2a9c1d".
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// containsFold is case-insensitive substring containment.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// OrderQuery narrows an order listing the way the order service
// always has: exact status (with "all" meaning no constraint) and a
// search term over order number and customer name.
type OrderQuery struct {
	Status string
	Search string
}

// ProductQuery narrows a product listing: exact category plus a
// search term over name and SKU.
type ProductQuery struct {
	Category string
	Search   string
}

// CustomerQuery narrows a customer listing by a search term over name
// and email.
type CustomerQuery struct {
	Search string
}
