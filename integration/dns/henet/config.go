package henet

import "time"

// Config holds dns.he.net console credentials and connection settings.
// Username and Password are the regular account credentials: the console has
// no API tokens, so the client authenticates exactly like a browser would.
type Config struct {
	Username string        `env:"HE_USERNAME,required"`
	Password string        `env:"HE_PASSWORD,required"`
	BaseURL  string        `env:"HE_BASE_URL" envDefault:"https://dns.he.net"`
	Timeout  time.Duration `env:"HE_HTTP_TIMEOUT" envDefault:"30s"`
	Debug    bool          `env:"HE_HTTP_DEBUG" envDefault:"false"` // dump full requests/responses at debug level
}
