package acmedns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-acme/lego/v4/challenge"
	"github.com/go-acme/lego/v4/challenge/dns01"

	"github.com/dmitrymomot/hedns/core/logger"
	"github.com/dmitrymomot/hedns/integration/dns/henet"
)

// Console is the slice of the dns.he.net client the provider drives.
// *henet.Client satisfies it without explicitly depending on this package.
type Console interface {
	Login(ctx context.Context) error
	ResolveZone(ctx context.Context, zone string) (string, error)
	CreateTXT(ctx context.Context, zoneID, name, value string) error
	LocateTXT(ctx context.Context, zoneID, name, value string) (string, error)
	FindTXT(ctx context.Context, zoneID, name, value string) (string, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// Provider publishes and removes DNS-01 validation records on dns.he.net for
// go-acme/lego. All challenge domains must live under the single hosted zone
// the provider is constructed with.
type Provider struct {
	console Console
	zone    string
	log     *slog.Logger

	propagationTimeout time.Duration
	pollingInterval    time.Duration

	mu      sync.Mutex
	records map[string]string // challenge token -> console record id
}

var (
	_ challenge.Provider        = (*Provider)(nil)
	_ challenge.ProviderTimeout = (*Provider)(nil)
)

// New constructs a Provider for one hosted zone.
func New(console Console, zone string, opts ...Option) (*Provider, error) {
	if console == nil {
		return nil, fmt.Errorf("%w: console is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(zone) == "" {
		return nil, fmt.Errorf("%w: zone is required", ErrInvalidConfig)
	}

	p := &Provider{
		console:            console,
		zone:               zone,
		log:                slog.Default(),
		propagationTimeout: dns01.DefaultPropagationTimeout,
		pollingInterval:    dns01.DefaultPollingInterval,
		records:            make(map[string]string),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// Present creates the TXT record lego expects at the challenge FQDN and
// remembers its console identifier for CleanUp. lego invokes providers
// without a context, so console requests run under context.Background; the
// hosting process bounds the run as a whole.
func (p *Provider) Present(domain, token, keyAuth string) error {
	ctx := context.Background()
	info := dns01.GetChallengeInfo(domain, keyAuth)

	name, err := henet.RelativeName(info.EffectiveFQDN, p.zone)
	if err != nil {
		return err
	}

	zoneID, err := p.openZone(ctx)
	if err != nil {
		return err
	}
	if err := p.console.CreateTXT(ctx, zoneID, name, info.Value); err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	recordID, err := p.console.LocateTXT(ctx, zoneID, name, info.Value)
	if err != nil {
		return fmt.Errorf("locate record: %w", err)
	}

	p.mu.Lock()
	p.records[token] = recordID
	p.mu.Unlock()

	p.log.InfoContext(ctx, "validation record published",
		logger.Component("acmedns"),
		logger.Domain(domain),
		logger.RecordName(name),
		logger.RecordID(recordID),
	)
	return nil
}

// CleanUp removes the record created for token. Without a remembered
// identifier (cleanup running in a fresh process) it falls back to looking
// the record up by name and value. A record that is already gone counts as
// cleaned.
func (p *Provider) CleanUp(domain, token, keyAuth string) error {
	ctx := context.Background()
	info := dns01.GetChallengeInfo(domain, keyAuth)

	name, err := henet.RelativeName(info.EffectiveFQDN, p.zone)
	if err != nil {
		return err
	}

	zoneID, err := p.openZone(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	recordID, remembered := p.records[token]
	delete(p.records, token)
	p.mu.Unlock()

	if !remembered {
		recordID, err = p.console.FindTXT(ctx, zoneID, name, info.Value)
		if errors.Is(err, henet.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("locate record: %w", err)
		}
	}

	if err := p.console.DeleteRecord(ctx, zoneID, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	p.log.InfoContext(ctx, "validation record removed",
		logger.Component("acmedns"),
		logger.Domain(domain),
		logger.RecordName(name),
		logger.RecordID(recordID),
	)
	return nil
}

// Timeout tells lego how long to wait for the published record to become
// visible and how often to recheck, overriding its built-in defaults.
func (p *Provider) Timeout() (timeout, interval time.Duration) {
	return p.propagationTimeout, p.pollingInterval
}

// openZone authenticates and resolves the configured zone's console
// identifier. Both Present and CleanUp start here since the console scopes
// every record operation by that identifier.
func (p *Provider) openZone(ctx context.Context) (string, error) {
	if err := p.console.Login(ctx); err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	zoneID, err := p.console.ResolveZone(ctx, p.zone)
	if err != nil {
		return "", fmt.Errorf("resolve zone: %w", err)
	}
	return zoneID, nil
}
