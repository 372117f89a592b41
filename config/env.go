package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Env holds the settings that can come from the environment.
// Command line flags take precedence over all of them.
type Env struct {
	ConfigPath     string `env:"CIRCUS_CONFIG,default=crazy.cfg"`
	Seed           int64  `env:"CIRCUS_SEED,default=0"`
	NoColor        bool   `env:"CIRCUS_NO_COLOR,default=false"`
	RestrictOrders bool   `env:"CIRCUS_RESTRICT_ORDERS,default=false"`
}

// FromEnv reads Env from the process environment
func FromEnv() (Env, error) {
	env := Env{ConfigPath: DefaultPath}

	err := envdecode.Decode(&env)
	if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{ConfigPath: DefaultPath}, nil
	}
	if err != nil {
		return Env{}, fmt.Errorf("could not read environment: %w", err)
	}

	return env, nil
}
