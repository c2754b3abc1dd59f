package forge

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the external configuration inputs named in spec.md §6,
// consumed from the environment. Grounded on original_source's
// rusty_config Config::from_env pattern and bolt's DefaultConfig.
type Config struct {
	Host     string `validate:"required,ip4_addr"`
	Port     uint16 `validate:"required"`
	PoolSize int    `validate:"gte=1"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

var configValidator = validator.New()

// DefaultConfig returns the spec-mandated defaults: HOST=127.0.0.1,
// PORT=3000, POOL_SIZE derived from GOMAXPROCS*12, LOG_LEVEL=info.
func DefaultConfig() Config {
	return Config{
		Host:     "127.0.0.1",
		Port:     3000,
		PoolSize: runtime.GOMAXPROCS(0) * 12,
		LogLevel: "info",
	}
}

// LoadConfig reads HOST, PORT, POOL_SIZE, and LOG_LEVEL from the
// environment, falling back to DefaultConfig's values for anything
// unset, then validates the result.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("HOST"); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return Config{}, fmt.Errorf("forge: invalid PORT %q: %w", v, err)
		}
		cfg.Port = uint16(port)
	}
	if v, ok := os.LookupEnv("POOL_SIZE"); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("forge: invalid POOL_SIZE %q: %w", v, err)
		}
		cfg.PoolSize = size
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if err := configValidator.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("forge: invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr renders the Host/Port pair as a "host:port" string suitable for
// net.Listen.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
