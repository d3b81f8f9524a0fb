package config

import (
	"fmt"
	"os"

	"github.com/ratel-online/domino/consts"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Mode is one of "server", "local" or "client".
	Mode string `yaml:"mode"`
	// TCPAddr is where the server accepts participants.
	TCPAddr string `yaml:"tcp_addr"`
	// WSAddr enables the websocket listener when set.
	WSAddr string `yaml:"ws_addr"`
	WSPath string `yaml:"ws_path"`
	// Seed fixes the shuffle; zero shuffles from the clock.
	Seed         int64     `yaml:"seed"`
	DefaultNames [2]string `yaml:"default_names"`
	// ServerAddr is dialled in client mode.
	ServerAddr string `yaml:"server_addr"`
}

func Default() Config {
	return Config{
		Mode:         "server",
		TCPAddr:      consts.DefaultTCPAddr,
		WSPath:       consts.DefaultWSPath,
		DefaultNames: [2]string{"Player 1", "Player 2"},
		ServerAddr:   "127.0.0.1" + consts.DefaultTCPAddr,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Mode {
	case "server":
		if c.TCPAddr == "" && c.WSAddr == "" {
			return fmt.Errorf("server mode needs tcp_addr or ws_addr")
		}
	case "client":
		if c.ServerAddr == "" {
			return fmt.Errorf("client mode needs server_addr")
		}
	case "local":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}
