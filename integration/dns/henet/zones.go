package henet

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/hedns/core/logger"
)

// ResolveZone maps a hosted zone name to its console identifier. Every
// record operation is scoped by this identifier, never by the zone name, so
// resolution precedes each create and delete.
//
// Matching is a case-insensitive exact comparison against the zones listed on
// the account overview. A trailing dot on the requested name is tolerated.
func (c *Client) ResolveZone(ctx context.Context, zone string) (string, error) {
	doc, err := c.get(ctx, "/", nil)
	if err != nil {
		return "", err
	}
	if err := c.requireSession(doc); err != nil {
		return "", err
	}

	wanted := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(zone), "."))
	id, ok := parseZones(doc)[wanted]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrZoneNotFound, zone)
	}

	c.log.DebugContext(ctx, "zone resolved",
		logger.Component("henet"),
		logger.Zone(zone),
		logger.ZoneID(id),
	)
	return id, nil
}

// RelativeName converts a fully qualified record name to the zone-relative
// form the console expects in its Name field. The comparison is
// case-insensitive and tolerates trailing dots on either argument. A name
// equal to the zone yields the empty string, the relative form of the apex.
func RelativeName(name, zone string) (string, error) {
	n := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	z := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(zone), "."))

	if n == z {
		return "", nil
	}
	rel, ok := strings.CutSuffix(n, "."+z)
	if z == "" || !ok {
		return "", fmt.Errorf("%w: %s is not under %s", ErrNotInZone, name, zone)
	}
	return rel, nil
}
