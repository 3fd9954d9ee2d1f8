package challenge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/hedns/core/logger"
)

// Console is the authenticated provider surface the orchestration drives.
// The integration/dns/henet client satisfies it without explicitly depending
// on it; tests substitute fakes.
type Console interface {
	Login(ctx context.Context) error
	ResolveZone(ctx context.Context, zone string) (string, error)
	CreateTXT(ctx context.Context, zoneID, name, value string) error
	LocateTXT(ctx context.Context, zoneID, name, value string) (string, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// Manager runs one hook invocation end to end: the creation flow when
// certbot calls the hook for authentication, the cleanup flow when it calls
// the hook again after validation. Which flow runs is decided once, from
// Config, before any request is made.
type Manager struct {
	console Console
	cfg     Config
	log     *slog.Logger
	out     io.Writer
	sleep   func(time.Duration)
}

// New builds a Manager for one invocation. Validation failures wrap
// ErrInvalidConfig.
func New(console Console, cfg Config, opts ...Option) (*Manager, error) {
	if console == nil {
		return nil, fmt.Errorf("%w: console is required", ErrInvalidConfig)
	}
	if cfg.Zone == "" {
		return nil, fmt.Errorf("%w: Zone is required", ErrInvalidConfig)
	}
	if cfg.Domain == "" {
		return nil, fmt.Errorf("%w: Domain is required", ErrInvalidConfig)
	}
	if cfg.Validation == "" {
		return nil, fmt.Errorf("%w: Validation is required", ErrInvalidConfig)
	}
	if cfg.PropagationSeconds < 0 {
		return nil, fmt.Errorf("%w: PropagationSeconds must not be negative", ErrInvalidConfig)
	}

	o := options{
		logger: slog.Default(),
		out:    os.Stdout,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Manager{
		console: console,
		cfg:     cfg,
		log:     o.logger,
		out:     o.out,
		sleep:   o.sleep,
	}, nil
}

// Run executes the invocation's single path and blocks until it completes.
// Provider errors pass through wrapped with the failing step's name, so
// callers can still branch on the provider's error kinds with errors.Is.
func (m *Manager) Run(ctx context.Context) error {
	if m.cfg.AuthOutput != nil {
		return m.cleanup(ctx, *m.cfg.AuthOutput)
	}
	return m.create(ctx)
}

// create publishes the validation record and emits its identifier on the
// handoff channel. The identifier is emitted only after the listing lookup
// has confirmed the record: cleanup is never handed a record that was not
// fully created.
func (m *Manager) create(ctx context.Context) error {
	start := time.Now()

	name, err := RecordName(m.cfg.Domain, m.cfg.Zone)
	if err != nil {
		return err
	}

	if err := m.console.Login(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	zoneID, err := m.console.ResolveZone(ctx, m.cfg.Zone)
	if err != nil {
		return fmt.Errorf("resolve zone: %w", err)
	}

	if err := m.console.CreateTXT(ctx, zoneID, name, m.cfg.Validation); err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	wait := time.Duration(m.cfg.PropagationSeconds) * time.Second
	if wait > 0 {
		m.log.InfoContext(ctx, "waiting for record to appear in listing",
			logger.Component("challenge"),
			logger.RecordName(name),
			logger.Duration(wait),
		)
		m.sleep(wait)
	}

	recordID, err := m.console.LocateTXT(ctx, zoneID, name, m.cfg.Validation)
	if err != nil {
		return fmt.Errorf("locate record: %w", err)
	}

	if _, err := io.WriteString(m.out, FormatRecordID(recordID)); err != nil {
		return fmt.Errorf("emit record id: %w", err)
	}

	m.log.InfoContext(ctx, "validation record published",
		logger.Component("challenge"),
		logger.Zone(m.cfg.Zone),
		logger.RecordName(name),
		logger.RecordID(recordID),
		logger.Elapsed(start),
	)
	return nil
}

// cleanup removes the record named by the captured handoff output. The
// parse runs before any request: a polluted capture fails the invocation
// without touching the provider.
func (m *Manager) cleanup(ctx context.Context, captured string) error {
	recordID, err := ParseRecordID(captured)
	if err != nil {
		return err
	}

	if err := m.console.Login(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	zoneID, err := m.console.ResolveZone(ctx, m.cfg.Zone)
	if err != nil {
		return fmt.Errorf("resolve zone: %w", err)
	}

	if err := m.console.DeleteRecord(ctx, zoneID, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	m.log.InfoContext(ctx, "validation record removed",
		logger.Component("challenge"),
		logger.Zone(m.cfg.Zone),
		logger.RecordID(recordID),
	)
	return nil
}

// acmeChallengePrefix is the label the DNS-01 convention prescribes for
// validation records.
const acmeChallengePrefix = "_acme-challenge"

// RecordName derives the zone-relative TXT record name for a challenge
// domain: the DNS-01 prefix joined to the domain with the zone suffix
// stripped, which is the form the provider expects in its Name field. The
// zone apex itself validates under the bare prefix. Comparison is
// case-insensitive and tolerates trailing dots.
func RecordName(domain, zone string) (string, error) {
	d := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(domain), "."))
	z := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(zone), "."))

	if d == z {
		return acmeChallengePrefix, nil
	}
	rel, ok := strings.CutSuffix(d, "."+z)
	if z == "" || rel == "" || !ok {
		return "", fmt.Errorf("%w: %s is not under %s", ErrDomainOutsideZone, domain, zone)
	}
	return acmeChallengePrefix + "." + rel, nil
}
