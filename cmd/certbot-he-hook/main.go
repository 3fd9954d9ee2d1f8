// certbot-he-hook publishes and removes DNS-01 validation records on
// dns.he.net for certbot's --manual-auth-hook and --manual-cleanup-hook.
//
// certbot invokes the same binary for both hooks. An invocation without
// CERTBOT_AUTH_OUTPUT creates the validation record and prints its console
// identifier on stdout; certbot captures that line and hands it back in
// CERTBOT_AUTH_OUTPUT for the cleanup invocation, which deletes the record.
// Everything else the process says goes to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/hedns/core/challenge"
	"github.com/dmitrymomot/hedns/core/config"
	"github.com/dmitrymomot/hedns/core/logger"
	"github.com/dmitrymomot/hedns/integration/dns/henet"
)

// Config gathers everything the hook reads from the environment: the console
// credentials, the certbot-supplied challenge variables, and logging knobs.
type Config struct {
	Console   henet.Config
	Challenge challenge.Config
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "certbot-he-hook: %v\n", err)
		return 1
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(logger.RunID(uuid.NewString())),
	)

	client, err := henet.New(cfg.Console, henet.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "certbot-he-hook: %s\n", diagnose(err))
		return 1
	}

	mgr, err := challenge.New(client, cfg.Challenge, challenge.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "certbot-he-hook: %s\n", diagnose(err))
		return 1
	}

	// One invocation is one short flow and certbot owns the sequencing, so
	// nothing cancels mid-run; the HTTP timeout bounds each console request.
	if err := mgr.Run(context.Background()); err != nil {
		log.Error("hook run failed",
			logger.Component("certbot-he-hook"),
			logger.Error(err),
		)
		fmt.Fprintf(os.Stderr, "certbot-he-hook: %s\n", diagnose(err))
		return 1
	}
	return 0
}

// diagnose maps an error chain to the one-line explanation an operator sees
// in certbot's output. The full chain still lands in the structured log.
func diagnose(err error) string {
	switch {
	case errors.Is(err, henet.ErrAuthenticationFailed):
		return "dns.he.net rejected the credentials; check HE_USERNAME and HE_PASSWORD"
	case errors.Is(err, henet.ErrSessionExpired):
		return "the console session expired mid-flow; rerun certbot"
	case errors.Is(err, henet.ErrZoneNotFound):
		return "the account does not host the zone named in HE_ZONE"
	case errors.Is(err, challenge.ErrDomainOutsideZone):
		return "CERTBOT_DOMAIN is not inside HE_ZONE"
	case errors.Is(err, henet.ErrRecordNotFound):
		return "the validation record never showed up in the zone listing; raise HE_PROPAGATION_SECONDS and retry"
	case errors.Is(err, henet.ErrCreateFailed):
		return "the console rejected the record submission: " + err.Error()
	case errors.Is(err, henet.ErrDeleteFailed):
		return "the validation record could not be deleted: " + err.Error()
	case errors.Is(err, henet.ErrLoginFormNotFound), errors.Is(err, henet.ErrParseFailed):
		return "the console pages changed shape and this hook no longer understands them: " + err.Error()
	case errors.Is(err, challenge.ErrMissingRecordID), errors.Is(err, challenge.ErrMalformedHandoff):
		return "CERTBOT_AUTH_OUTPUT does not carry the record id the auth run printed: " + err.Error()
	case errors.Is(err, henet.ErrTransport):
		return "dns.he.net is unreachable: " + err.Error()
	default:
		return err.Error()
	}
}
