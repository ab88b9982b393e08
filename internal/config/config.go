package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/AdamBeresnev/futsal-cup/internal/countdown"
)

const (
	envAddr              = "ADDR"
	envCountdownTarget   = "COUNTDOWN_TARGET"
	envCountdownInterval = "COUNTDOWN_INTERVAL"
	envTimezone          = "TIMEZONE"
	envCatalogDB         = "CATALOG_DB"
	envStartedMessage    = "STARTED_MESSAGE"
	envTournamentName    = "TOURNAMENT_NAME"
	envTagline           = "TAGLINE"
	envVenue             = "VENUE"
	envStreamCountdown   = "STREAM_COUNTDOWN"
	envLogLevel          = "LOG_LEVEL"

	defaultAddr              = ":8080"
	defaultCountdownTarget   = "2026-12-05T18:00:00"
	defaultCountdownInterval = time.Second
	defaultTimezone          = "Europe/Lisbon"
	defaultStartedMessage    = "O torneio já começou!"
	defaultTournamentName    = "Taça de Futsal 2026"
	defaultTagline           = "Quatro dias, oito equipas, um campeão."
	defaultVenue             = "Pavilhão Municipal"
	defaultLogLevel          = "info"
)

type Config struct {
	Addr              string
	CountdownTarget   time.Time
	CountdownInterval time.Duration
	Location          *time.Location
	// CatalogDB is a SQLite fixture database. Empty means the built-in catalog.
	CatalogDB       string
	StartedMessage  string
	TournamentName  string
	Tagline         string
	Venue           string
	StreamCountdown bool
	LogLevel        string
}

// Load reads the environment. A bad timezone or countdown target is a
// configuration error and stops startup.
func Load() (Config, error) {
	loc, err := time.LoadLocation(envOrDefault(envTimezone, defaultTimezone))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", envTimezone, err)
	}

	target, err := countdown.ParseTarget(envOrDefault(envCountdownTarget, defaultCountdownTarget), loc)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", envCountdownTarget, err)
	}

	return Config{
		Addr:              envOrDefault(envAddr, defaultAddr),
		CountdownTarget:   target,
		CountdownInterval: durationEnvOrDefault(envCountdownInterval, defaultCountdownInterval),
		Location:          loc,
		CatalogDB:         envOrDefault(envCatalogDB, ""),
		StartedMessage:    envOrDefault(envStartedMessage, defaultStartedMessage),
		TournamentName:    envOrDefault(envTournamentName, defaultTournamentName),
		Tagline:           envOrDefault(envTagline, defaultTagline),
		Venue:             envOrDefault(envVenue, defaultVenue),
		StreamCountdown:   boolEnvOrDefault(envStreamCountdown, true),
		LogLevel:          envOrDefault(envLogLevel, defaultLogLevel),
	}, nil
}
