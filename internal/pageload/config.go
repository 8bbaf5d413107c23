package pageload

import "time"

// Config holds the page loader configuration.
type Config struct {
	BaseURL string        `env:"URL,required"` // e.g. "http://gradewise-api-backend" or "http://gradewise-api-backend:8080"
	Timeout time.Duration `env:"TIMEOUT"`      // default: 10s
}

func (c *Config) timeout() time.Duration {
	t := c.Timeout
	if t == 0 {
		t = 10 * time.Second
	}
	return t
}
