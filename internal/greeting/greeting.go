// Package greeting builds the greeting exchange served by the API.
package greeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyName = errors.New("empty name")

// Config holds the greeting configuration.
type Config struct {
	Text string `env:"TEXT"` // default: "Hello"
}

func (c *Config) text() string {
	t := c.Text
	if t == "" {
		t = "Hello"
	}
	return t
}

type Greeter struct {
	text string
}

func NewGreeter(cfg *Config) *Greeter {
	return &Greeter{text: cfg.text()}
}

// Greet greets name and says goodbye, one line each.
func (g *Greeter) Greet(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("greet: %w", ErrEmptyName)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("greet: %w", err)
	}

	chatLog := []string{
		fmt.Sprintf("%s, %s!", g.text, name),
		"Goodbye!",
	}
	return strings.Join(chatLog, "\n"), nil
}
