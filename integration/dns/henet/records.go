package henet

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/hedns/core/logger"
)

// Record is one row of a zone's listing as the console presents it.
type Record struct {
	ID      string
	Name    string
	Type    string
	Content string
	TTL     int
}

// txtRecordTTL is the lowest TTL the console accepts. Validation records are
// short-lived, so there is no reason to cache them longer.
const txtRecordTTL = "300"

// ListRecords fetches a zone's record listing. The zoneID must come from
// ResolveZone; the console ignores zone names on this endpoint.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]Record, error) {
	query := url.Values{}
	query.Set("menu", "edit_zone")
	query.Set("hosted_dns_zoneid", zoneID)
	query.Set("hosted_dns_editzone", "1")

	doc, err := c.get(ctx, "/index.cgi", query)
	if err != nil {
		return nil, err
	}
	if err := c.requireSession(doc); err != nil {
		return nil, err
	}
	return parseRecords(doc), nil
}

// CreateTXT submits a new TXT record to the zone. The console does not return
// the new record's identifier; recover it afterwards with LocateTXT.
//
// The submission replays the console's own new-record form field for field.
// Changing any of these values has historically broken silently, so they stay
// pinned here and in the fixture tests.
func (c *Client) CreateTXT(ctx context.Context, zoneID, name, value string) error {
	form := url.Values{}
	form.Set("account", "")
	form.Set("menu", "edit_zone")
	form.Set("Type", "TXT")
	form.Set("hosted_dns_zoneid", zoneID)
	form.Set("hosted_dns_recordid", "")
	form.Set("hosted_dns_editzone", "1")
	form.Set("Priority", "")
	form.Set("Name", name)
	form.Set("Content", value)
	form.Set("TTL", txtRecordTTL)
	form.Set("hosted_dns_editrecord", "Submit")

	doc, err := c.postForm(ctx, "/index.cgi", form)
	if err != nil {
		return err
	}
	if err := c.requireSession(doc); err != nil {
		return err
	}
	if msg, failed := consoleError(doc); failed {
		return fmt.Errorf("%w: %s", ErrCreateFailed, msg)
	}

	c.log.InfoContext(ctx, "record submitted",
		logger.Component("henet"),
		logger.ZoneID(zoneID),
		logger.RecordName(name),
	)
	return nil
}

// FindTXT reads the zone listing once and returns the identifier of the TXT
// record matching name and value. The name comparison is case-insensitive,
// the value comparison exact.
func (c *Client) FindTXT(ctx context.Context, zoneID, name, value string) (string, error) {
	records, err := c.ListRecords(ctx, zoneID)
	if err != nil {
		return "", err
	}
	for _, record := range records {
		if strings.EqualFold(record.Name, name) && record.Content == value {
			return record.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrRecordNotFound, name)
}

// LocateTXT finds a TXT record's identifier, re-reading the listing a bounded
// number of times to absorb the console's listing lag after a create. Only
// this lookup retries; submissions never do, since replaying a form against
// an HTML surface risks duplicate records.
func (c *Client) LocateTXT(ctx context.Context, zoneID, name, value string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.lookupAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %s", ErrRecordNotFound, ctx.Err())
			case <-time.After(c.lookupInterval):
			}
		}

		id, err := c.FindTXT(ctx, zoneID, name, value)
		if err == nil {
			return id, nil
		}
		lastErr = err

		c.log.DebugContext(ctx, "record not listed yet",
			logger.Component("henet"),
			logger.ZoneID(zoneID),
			logger.RecordName(name),
			logger.RetryCount(attempt),
		)
	}
	return "", fmt.Errorf("record not listed after %d attempts: %w", c.lookupAttempts, lastErr)
}

// DeleteRecord removes a record from a zone. Deleting a record that is no
// longer listed succeeds: cleanup may run more than once for the same
// challenge, and the second pass must not fail the invocation.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	records, err := c.ListRecords(ctx, zoneID)
	if err != nil {
		return err
	}
	if !recordListed(records, recordID) {
		c.log.InfoContext(ctx, "record already absent",
			logger.Component("henet"),
			logger.ZoneID(zoneID),
			logger.RecordID(recordID),
		)
		return nil
	}

	form := url.Values{}
	form.Set("menu", "edit_zone")
	form.Set("hosted_dns_zoneid", zoneID)
	form.Set("hosted_dns_recordid", recordID)
	form.Set("hosted_dns_editzone", "1")
	form.Set("hosted_dns_delrecord", "1")
	form.Set("hosted_dns_delconfirm", "delete")

	doc, err := c.postForm(ctx, "/index.cgi", form)
	if err != nil {
		return err
	}
	if err := c.requireSession(doc); err != nil {
		return err
	}

	if _, ok := statusMessage(doc); ok {
		c.log.InfoContext(ctx, "record deleted",
			logger.Component("henet"),
			logger.ZoneID(zoneID),
			logger.RecordID(recordID),
		)
		return nil
	}

	// No success marker. The console occasionally serves the zone page
	// without the status block, so trust the listing over the marker.
	records, err = c.ListRecords(ctx, zoneID)
	if err != nil {
		return err
	}
	if recordListed(records, recordID) {
		if msg, failed := consoleError(doc); failed {
			return fmt.Errorf("%w: %s", ErrDeleteFailed, msg)
		}
		return fmt.Errorf("%w: record %s still listed", ErrDeleteFailed, recordID)
	}
	return nil
}

func recordListed(records []Record, id string) bool {
	for _, record := range records {
		if record.ID == id {
			return true
		}
	}
	return false
}
