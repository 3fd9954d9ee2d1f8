package letsencrypt

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-acme/lego/v4/certcrypto"
	"github.com/go-acme/lego/v4/certificate"
	"github.com/go-acme/lego/v4/challenge"
	"github.com/go-acme/lego/v4/challenge/dns01"
	"github.com/go-acme/lego/v4/lego"
	"github.com/go-acme/lego/v4/registration"
)

// Option configures the certificate generator.
type Option func(*config) error

// WithCADirectoryURL overrides the ACME directory URL (defaults to Let's Encrypt production).
func WithCADirectoryURL(url string) Option {
	return func(cfg *config) error {
		cfg.caDirURL = strings.TrimSpace(url)
		return nil
	}
}

// WithNameservers selects the resolvers lego queries when checking that the
// validation record has propagated. Leave empty to use the system resolver.
func WithNameservers(nameservers []string) Option {
	return func(cfg *config) error {
		cfg.nameservers = cloneStrings(nameservers)
		return nil
	}
}

// WithCertificateKeyType overrides the key type used for the issued certificate's private key.
func WithCertificateKeyType(keyType certcrypto.KeyType) Option {
	return func(cfg *config) error {
		cfg.certificateKeyType = keyType
		return nil
	}
}

// WithBundle toggles whether the returned certificate includes the issuer chain concatenated to the leaf cert (default true).
func WithBundle(bundle bool) Option {
	return func(cfg *config) error {
		cfg.bundle = bundle
		return nil
	}
}

// Generator issues certificates via Let's Encrypt and stores them on disk.
// Domain control is proven over DNS-01, so it works for hosts that are not
// publicly reachable over HTTP, wildcards included.
type Generator struct {
	cfg             config
	provider        challenge.Provider
	clientFactory   clientFactory
	accountKeyMaker func() (crypto.PrivateKey, error)
}

type config struct {
	domains            []string
	email              string
	outputDir          string
	caDirURL           string
	certificateKeyType certcrypto.KeyType
	bundle             bool
	nameservers        []string
}

const defaultDirectoryURL = lego.LEDirectoryProduction

// NewGenerator constructs a Generator for the provided domain list and account email.
// The provider answers the DNS-01 challenges; pair it with acmedns.Provider for
// zones hosted on dns.he.net. The first domain is used to derive the default
// filenames for the certificate artifacts.
func NewGenerator(domains []string, email, outputDir string, provider challenge.Provider, opts ...Option) (*Generator, error) {
	cfg := config{
		domains:            cloneStrings(domains),
		email:              strings.TrimSpace(email),
		outputDir:          strings.TrimSpace(outputDir),
		caDirURL:           defaultDirectoryURL,
		certificateKeyType: certcrypto.RSA2048,
		bundle:             true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if provider == nil {
		return nil, errors.New("a dns-01 challenge provider is required")
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	gen := &Generator{
		cfg:           cfg,
		provider:      provider,
		clientFactory: defaultClientFactory,
		accountKeyMaker: func() (crypto.PrivateKey, error) {
			return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		},
	}

	return gen, nil
}

// Result captures the file paths of the generated certificate artifacts.
type Result struct {
	CertificatePath       string
	PrivateKeyPath        string
	IssuerCertificatePath string
}

// Generate obtains a fresh certificate from Let's Encrypt and writes it alongside the private key to disk.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accountKey, err := g.accountKeyMaker()
	if err != nil {
		return nil, fmt.Errorf("generate account key: %w", err)
	}

	user := &accountUser{
		email: g.cfg.email,
		key:   accountKey,
	}

	legoCfg := lego.NewConfig(user)
	legoCfg.CADirURL = g.cfg.caDirURL
	legoCfg.Certificate.KeyType = g.cfg.certificateKeyType

	client, err := g.clientFactory(legoCfg)
	if err != nil {
		return nil, fmt.Errorf("create acme client: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var dnsOpts []dns01.ChallengeOption
	if len(g.cfg.nameservers) > 0 {
		dnsOpts = append(dnsOpts, dns01.AddRecursiveNameservers(g.cfg.nameservers))
	}

	if err := client.SetDNS01Provider(g.provider, dnsOpts...); err != nil {
		return nil, fmt.Errorf("configure dns-01 provider: %w", err)
	}

	registrationResource, err := client.Register(registration.RegisterOptions{TermsOfServiceAgreed: true})
	if err != nil {
		return nil, fmt.Errorf("register account: %w", err)
	}
	user.registration = registrationResource

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	certRes, err := client.Obtain(certificate.ObtainRequest{
		Domains:        g.cfg.domains,
		Bundle:         g.cfg.bundle,
		EmailAddresses: []string{g.cfg.email},
	})
	if err != nil {
		return nil, fmt.Errorf("obtain certificate: %w", err)
	}

	result, err := g.writeCertificateArtifacts(certRes)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (g *Generator) writeCertificateArtifacts(certRes *certificate.Resource) (*Result, error) {
	if certRes == nil {
		return nil, errors.New("certificate resource is nil")
	}

	if err := os.MkdirAll(g.cfg.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output directory: %w", err)
	}

	baseName := safeFileSegment(g.cfg.domains[0])
	certPath := filepath.Join(g.cfg.outputDir, baseName+".crt")
	keyPath := filepath.Join(g.cfg.outputDir, baseName+".key")
	issuerPath := filepath.Join(g.cfg.outputDir, baseName+"-issuer.crt")

	if len(certRes.PrivateKey) == 0 {
		return nil, errors.New("empty private key received from ACME server")
	}

	if err := os.WriteFile(keyPath, certRes.PrivateKey, 0o600); err != nil {
		return nil, fmt.Errorf("write private key: %w", err)
	}

	if len(certRes.Certificate) == 0 {
		return nil, errors.New("empty certificate payload received from ACME server")
	}

	if err := os.WriteFile(certPath, certRes.Certificate, 0o644); err != nil {
		return nil, fmt.Errorf("write certificate: %w", err)
	}

	issuerWritten := false
	if len(certRes.IssuerCertificate) > 0 {
		if err := os.WriteFile(issuerPath, certRes.IssuerCertificate, 0o644); err != nil {
			return nil, fmt.Errorf("write issuer certificate: %w", err)
		}
		issuerWritten = true
	}

	result := &Result{
		CertificatePath: certPath,
		PrivateKeyPath:  keyPath,
	}
	if issuerWritten {
		result.IssuerCertificatePath = issuerPath
	}

	return result, nil
}

func (cfg *config) applyDefaults() error {
	if len(cfg.domains) == 0 {
		return errors.New("at least one domain is required")
	}

	for i := range cfg.domains {
		cfg.domains[i] = strings.TrimSpace(cfg.domains[i])
		if cfg.domains[i] == "" {
			return errors.New("domain entries cannot be empty")
		}
	}

	if cfg.email == "" {
		return errors.New("email is required")
	}

	if cfg.outputDir == "" {
		return errors.New("output directory is required")
	}

	if cfg.caDirURL == "" {
		cfg.caDirURL = defaultDirectoryURL
	}

	for i := range cfg.nameservers {
		cfg.nameservers[i] = strings.TrimSpace(cfg.nameservers[i])
		if cfg.nameservers[i] == "" {
			return errors.New("nameserver entries cannot be empty")
		}
	}

	if cfg.certificateKeyType == "" {
		cfg.certificateKeyType = certcrypto.RSA2048
	}

	return nil
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, len(values))
	copy(out, values)
	return out
}

func safeFileSegment(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "certificate"
	}

	var b strings.Builder
	b.Grow(len(value))

	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._-")
	if sanitized == "" {
		return "certificate"
	}

	return sanitized
}

type clientFactory func(*lego.Config) (acmeClient, error)

type acmeClient interface {
	Register(options registration.RegisterOptions) (*registration.Resource, error)
	SetDNS01Provider(provider challenge.Provider, opts ...dns01.ChallengeOption) error
	Obtain(request certificate.ObtainRequest) (*certificate.Resource, error)
}

func defaultClientFactory(cfg *lego.Config) (acmeClient, error) {
	client, err := lego.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &legoClientAdapter{client: client}, nil
}

type legoClientAdapter struct {
	client *lego.Client
}

func (l *legoClientAdapter) Register(options registration.RegisterOptions) (*registration.Resource, error) {
	return l.client.Registration.Register(options)
}

func (l *legoClientAdapter) SetDNS01Provider(provider challenge.Provider, opts ...dns01.ChallengeOption) error {
	return l.client.Challenge.SetDNS01Provider(provider, opts...)
}

func (l *legoClientAdapter) Obtain(request certificate.ObtainRequest) (*certificate.Resource, error) {
	return l.client.Certificate.Obtain(request)
}

type accountUser struct {
	email        string
	registration *registration.Resource
	key          crypto.PrivateKey
}

func (u *accountUser) GetEmail() string {
	return u.email
}

func (u *accountUser) GetRegistration() *registration.Resource {
	return u.registration
}

func (u *accountUser) GetPrivateKey() crypto.PrivateKey {
	return u.key
}
