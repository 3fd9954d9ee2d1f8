package henet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/motemen/go-loghttp"
	"golang.org/x/net/publicsuffix"

	"github.com/dmitrymomot/hedns/core/logger"
	"github.com/dmitrymomot/hedns/pkg/htmlform"
)

// Client is an authenticated session against the dns.he.net console. The
// session state lives entirely in the HTTP client's cookie jar; nothing is
// persisted, and the session is discarded with the process.
//
// Methods are safe for sequential use only: the console serves one browsing
// session per login, and the validation flow is strictly sequential anyway.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	username   string
	password   string
	log        *slog.Logger

	lookupAttempts int
	lookupInterval time.Duration
}

// New creates a console client. The client is unauthenticated until Login
// is called.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: Timeout must be positive", ErrInvalidConfig)
	}

	o := options{
		logger:         slog.Default(),
		lookupAttempts: defaultLookupAttempts,
		lookupInterval: defaultLookupInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}
	if cfg.Debug {
		httpClient.Transport = dumpTransport(httpClient.Transport, o.logger)
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        base,
		username:       cfg.Username,
		password:       cfg.Password,
		log:            o.logger,
		lookupAttempts: o.lookupAttempts,
		lookupInterval: o.lookupInterval,
	}, nil
}

// MustNewClient creates a console client that panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// Login establishes an authenticated session. The anonymous landing page is
// fetched first to obtain the session cookie and whatever hidden fields the
// credential form wants replayed, then the credentials are submitted.
//
// The result is judged by markers, never by status code: the console's error
// block means rejected credentials, and a page still showing the credential
// form means the login did not take. Transport failures surface separately
// as ErrTransport so bad credentials are never confused with a flaky network.
func (c *Client) Login(ctx context.Context) error {
	start := time.Now()

	landing, err := c.get(ctx, "/", nil)
	if err != nil {
		return err
	}

	fields, err := loginForm(landing)
	if err != nil {
		return err
	}
	fields.Set("email", c.username)
	fields.Set("pass", c.password)

	doc, err := c.postForm(ctx, "/", fields)
	if err != nil {
		return err
	}

	if msg, failed := consoleError(doc); failed {
		return fmt.Errorf("%w: %s", ErrAuthenticationFailed, msg)
	}
	if hasLoginForm(doc) {
		return fmt.Errorf("%w: credential form still present after submission", ErrAuthenticationFailed)
	}

	c.log.DebugContext(ctx, "console session established",
		logger.Component("henet"),
		logger.Elapsed(start),
	)
	return nil
}

// get issues a GET against the console and parses the response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*htmlform.Document, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	return c.roundTrip(req)
}

// postForm issues a form-encoded POST against the console and parses the
// response body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*htmlform.Document, error) {
	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.roundTrip(req)
}

func (c *Client) roundTrip(req *http.Request) (*htmlform.Document, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s %s returned %s", ErrTransport, req.Method, req.URL.Path, resp.Status)
	}

	doc, err := htmlform.ParseDocument(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}

	c.log.DebugContext(req.Context(), "console round trip",
		logger.Component("henet"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		logger.Duration(time.Since(start)),
	)
	return doc, nil
}

// requireSession turns a page that fell back to the credential form into
// ErrSessionExpired. Every authenticated read goes through this check so an
// expired session never parses as "zone has no records".
func (c *Client) requireSession(doc *htmlform.Document) error {
	if hasLoginForm(doc) {
		return ErrSessionExpired
	}
	return nil
}

func dumpTransport(next http.RoundTripper, log *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loghttp.Transport{
		Transport: next,
		LogRequest: func(req *http.Request) {
			dump, err := httputil.DumpRequestOut(req, true)
			if err != nil {
				return
			}
			log.Debug("console request dump",
				logger.Component("henet"),
				slog.String("dump", string(dump)),
			)
		},
		LogResponse: func(resp *http.Response) {
			dump, err := httputil.DumpResponse(resp, true)
			if err != nil {
				return
			}
			log.Debug("console response dump",
				logger.Component("henet"),
				slog.String("dump", string(dump)),
			)
		},
	}
}
