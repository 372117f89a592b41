// Package config reads the animals and orders a game is played with.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minaorangina/crazycircus/deck"
	"github.com/minaorangina/crazycircus/order"
	"github.com/minaorangina/crazycircus/podium"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given
const DefaultPath = "crazy.cfg"

const (
	minAnimals = 2
	maxAnimals = deck.MaxTokens
	minOrders  = 3
	maxOrders  = 10
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEmptyConfig   = errors.New("configuration file is empty")
)

// Config lists the animals and the orders of a game
type Config struct {
	Animals []string `yaml:"animals"`
	Orders  []string `yaml:"orders"`
}

// Load reads a configuration file. Files ending in .yaml or .yml are read as
// YAML, anything else in the two-line format: animals on the first line and
// orders on the second, separated by whitespace.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open configuration: %w", err)
	}
	defer f.Close()

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(f)
	default:
		cfg, err = Parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads the two-line format. Anything past ten animals or ten orders
// is ignored, as is anything past the second line.
func Parse(r io.Reader) (*Config, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyConfig
	}
	cfg := &Config{Animals: firstFields(scanner.Text(), maxAnimals)}

	if scanner.Scan() {
		cfg.Orders = firstFields(scanner.Text(), maxOrders)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseYAML reads a document with animals and orders lists
func ParseYAML(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyConfig
		}
		return nil, fmt.Errorf("could not decode yaml: %w", err)
	}
	return cfg, nil
}

func firstFields(line string, max int) []string {
	fields := strings.Fields(line)
	if len(fields) > max {
		fields = fields[:max]
	}
	return fields
}

// Validate checks the configuration can be played with
func (c *Config) Validate() error {
	if len(c.Animals) < minAnimals || len(c.Animals) > maxAnimals {
		return fmt.Errorf("%w: need %d to %d animals, got %d", ErrInvalidConfig, minAnimals, maxAnimals, len(c.Animals))
	}

	seen := map[string]bool{}
	for _, a := range c.Animals {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: empty animal name", ErrInvalidConfig)
		}
		if seen[a] {
			return fmt.Errorf("%w: animal %s appears twice", ErrInvalidConfig, a)
		}
		seen[a] = true
	}

	if len(c.Orders) > maxOrders {
		return fmt.Errorf("%w: at most %d orders, got %d", ErrInvalidConfig, maxOrders, len(c.Orders))
	}
	set, err := order.ParseSet(c.Orders)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if set.Len() < minOrders {
		return fmt.Errorf("%w: need at least %d different orders, got %d", ErrInvalidConfig, minOrders, set.Len())
	}

	return nil
}

// Tokens returns the animals as podium tokens
func (c *Config) Tokens() []podium.Token {
	tokens := make([]podium.Token, 0, len(c.Animals))
	for _, a := range c.Animals {
		tokens = append(tokens, podium.Token(a))
	}
	return tokens
}

// OrderSet returns the configured orders
func (c *Config) OrderSet() (order.Set, error) {
	return order.ParseSet(c.Orders)
}
