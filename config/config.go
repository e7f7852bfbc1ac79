package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

// Defaults for the Canton Network deployment
const (
	DefaultAPIBaseURL      = "https://lighthouse.cantonloop.com/api"
	DefaultExplorerURL     = "https://remindnation.tech/explorer"
	DefaultMiniAppURL      = "https://remindnation.tech/explorers/webapp/index.html"
	DefaultRequiredChannel = "@remindnation"
	DefaultXLink           = "https://x.com/remindnation"

	DefaultBroadcastIntervalSeconds = 60

	DefaultListLimit      = 5
	DefaultPartyListLimit = 20
)

var (
	ErrInvalidAPIBaseURL        = errors.New("invalid API base URL")
	ErrInvalidBroadcastInterval = errors.New("invalid broadcast interval")
	ErrInvalidListLimit         = errors.New("invalid list limit")
)

// Config defines the base-level bot configuration
type Config struct {
	// The Telegram bot token.
	// Never read from the TOML file, environment / flags only
	Token string `toml:"-"`

	// The broadcast channel, a numeric chat ID or an @username.
	// Empty disables the periodic price broadcast
	ChannelID string `toml:"channel_id"`

	// The explorer REST API base URL
	APIBaseURL string `toml:"api_base_url"`

	// The explorer website URL, linked from list renders
	ExplorerURL string `toml:"explorer_url"`

	// The explorer mini-app URL for the keyboard link buttons
	MiniAppURL string `toml:"mini_app_url"`

	// The channel users must join before using the bot
	RequiredChannel string `toml:"required_channel"`

	// The X profile link shown alongside the required channel
	XLink string `toml:"x_link"`

	// The price broadcast interval, in seconds
	BroadcastIntervalSeconds int64 `toml:"broadcast_interval_seconds"`

	// Display limits for list renders
	ListLimit      int `toml:"list_limit"`
	PartyListLimit int `toml:"party_list_limit"`
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:               DefaultAPIBaseURL,
		ExplorerURL:              DefaultExplorerURL,
		MiniAppURL:               DefaultMiniAppURL,
		RequiredChannel:          DefaultRequiredChannel,
		XLink:                    DefaultXLink,
		BroadcastIntervalSeconds: DefaultBroadcastIntervalSeconds,
		ListLimit:                DefaultListLimit,
		PartyListLimit:           DefaultPartyListLimit,
	}
}

// ValidateConfig validates the bot configuration
func ValidateConfig(config *Config) error {
	// Validate the API base URL
	parsed, err := url.Parse(config.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidAPIBaseURL
	}

	if config.BroadcastIntervalSeconds <= 0 {
		return ErrInvalidBroadcastInterval
	}

	if config.ListLimit <= 0 || config.PartyListLimit <= 0 {
		return ErrInvalidListLimit
	}

	return nil
}

// BroadcastInterval returns the price broadcast interval
func (c *Config) BroadcastInterval() time.Duration {
	return time.Duration(c.BroadcastIntervalSeconds) * time.Second
}

// Read reads the configuration from the given path
func Read(path string) (*Config, error) {
	// Read the config file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it, on top of the defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
