package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	StoreBadger = "badger"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Config contains all configuration parameters for the application.
// Note: the session password is prompted at runtime and stored in memory - use GetSessionPasswordBytes()
type Config struct {
	Port             string        `envconfig:"PORT" default:"8080"`
	BackendURL       string        `envconfig:"BACKEND_URL" default:"http://localhost:8000"`
	BackendTimeout   time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	BackendRateLimit int           `envconfig:"BACKEND_RATE_LIMIT" default:"20"` // requests per second, 0 disables
	SessionStore     string        `envconfig:"SESSION_STORE" default:"badger"`
	SessionDatadir   string        `envconfig:"SESSION_DATADIR" default:"./data"`
	SessionFilePath  string        `envconfig:"SESSION_FILE_PATH" default:"./data/session.json"`
	SessionEncrypt   bool          `envconfig:"SESSION_ENCRYPT" default:"false"`
	FundSettleDelay  time.Duration `envconfig:"FUND_SETTLE_DELAY" default:"3s"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

func (c *Config) validate() error {
	switch c.SessionStore {
	case StoreBadger, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("SESSION_STORE must be one of %s, %s, %s", StoreBadger, StoreFile, StoreMemory)
	}
	if c.BackendURL == "" {
		return errors.New("BACKEND_URL must not be empty")
	}
	if c.BackendRateLimit < 0 {
		return errors.New("BACKEND_RATE_LIMIT must not be negative")
	}
	if c.FundSettleDelay < 0 {
		return errors.New("FUND_SETTLE_DELAY must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetBackendURL returns base URL of the marketplace backend
func GetBackendURL() string {
	return Get().BackendURL
}

// GetFundSettleDelay returns how long to wait after funding before reading the balance
func GetFundSettleDelay() time.Duration {
	return Get().FundSettleDelay
}

// GetLogLevel returns the parsed logrus level
func GetLogLevel() log.Level {
	lvl, err := log.ParseLevel(Get().LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

var passwordBytes []byte

// PromptForPassword prompts the user for the session password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the session store is opened.
func PromptForPassword(prompt string) error {
	raw, err := ReadPassword(prompt)
	if err != nil {
		return err
	}
	passwordBytes = raw
	return nil
}

// ReadPassword reads one password from the terminal without storing it.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}

// SetSessionPassword stores the password in memory (used when it does not come from a terminal)
func SetSessionPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetSessionPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetSessionPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
