// Package env overlays settings with values from the process environment.
//
// Variables use the PSYCHMATCH_ prefix and mirror the config file keys:
// matching.requirement is PSYCHMATCH_MATCHING_REQUIREMENT, smtp.host is
// PSYCHMATCH_SMTP_HOST, and so on. Unset variables leave settings untouched.
package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
)

// Prefix is prepended to every variable name.
const Prefix = "PSYCHMATCH_"

type overlay struct {
	Matching struct {
		Requirement float64  `env:"REQUIREMENT"`
		Aspects     []string `env:"ASPECTS" envSeparator:","`
	} `envPrefix:"MATCHING_"`
	Server struct {
		Addr string `env:"ADDR"`
	} `envPrefix:"SERVER_"`
	SMTP struct {
		Host     string `env:"HOST"`
		Port     int    `env:"PORT"`
		Username string `env:"USERNAME"`
		Password string `env:"PASSWORD"`
		From     string `env:"FROM"`
	} `envPrefix:"SMTP_"`
	App struct {
		BaseURL string `env:"BASE_URL"`
	} `envPrefix:"APP_"`
}

// Apply overrides settings with any PSYCHMATCH_* variables in the process environment.
func Apply(settings *domain.Settings) error {
	return apply(settings, env.Options{Prefix: Prefix})
}

// ApplyFrom is Apply against an explicit variable set instead of the process environment.
func ApplyFrom(settings *domain.Settings, vars map[string]string) error {
	return apply(settings, env.Options{Prefix: Prefix, Environment: vars})
}

func apply(settings *domain.Settings, opts env.Options) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}

	o := toOverlay(settings)
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("%w: environment: %v", domain.ErrInvalidInput, err)
	}
	fromOverlay(o, settings)
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored. With no paths, ".env" in the working directory is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func toOverlay(s *domain.Settings) overlay {
	var o overlay
	o.Matching.Requirement = s.Matching.Requirement
	o.Matching.Aspects = s.Matching.Aspects
	o.Server.Addr = s.Server.Addr
	o.SMTP.Host = s.SMTP.Host
	o.SMTP.Port = s.SMTP.Port
	o.SMTP.Username = s.SMTP.Username
	o.SMTP.Password = s.SMTP.Password
	o.SMTP.From = s.SMTP.From
	o.App.BaseURL = s.App.BaseURL
	return o
}

func fromOverlay(o overlay, s *domain.Settings) {
	s.Matching.Requirement = o.Matching.Requirement
	s.Matching.Aspects = o.Matching.Aspects
	s.Server.Addr = o.Server.Addr
	s.SMTP.Host = o.SMTP.Host
	s.SMTP.Port = o.SMTP.Port
	s.SMTP.Username = o.SMTP.Username
	s.SMTP.Password = o.SMTP.Password
	s.SMTP.From = o.SMTP.From
	s.App.BaseURL = o.App.BaseURL
}
