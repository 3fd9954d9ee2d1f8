package challenge

// Config carries one hook invocation's inputs. The CERTBOT_* variables
// follow certbot's manual-hook contract: certbot exports them before
// invoking the hook, and CERTBOT_AUTH_OUTPUT exists only on cleanup
// invocations, carrying whatever the auth invocation printed to stdout.
type Config struct {
	// Zone is the hosted zone the validation record is managed under.
	Zone string `env:"HE_ZONE,required"`

	// Domain is the fully qualified name under validation.
	Domain string `env:"CERTBOT_DOMAIN,required"`

	// Validation is the token to publish as the TXT record value.
	Validation string `env:"CERTBOT_VALIDATION,required"`

	// AuthOutput is the auth invocation's captured stdout. nil means this
	// is an auth invocation; non-nil, even empty, selects the cleanup flow.
	AuthOutput *string `env:"CERTBOT_AUTH_OUTPUT"`

	// PropagationSeconds is how long to wait after record creation before
	// trusting the zone listing. Zero skips the wait.
	PropagationSeconds int `env:"HE_PROPAGATION_SECONDS" envDefault:"30"`
}
