package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used when no port is configured.
const DefaultPort = 8080

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. A
// config.yml next to the binary is optional; a missing file yields
// defaults. A .env file and SEATMAP_* environment variables override the
// file's values.
func LoadAppConfig() error {
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{"config.yml", "config.yaml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if port := os.Getenv("SEATMAP_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SEATMAP_PORT %q: %w", port, err)
		}
		cfg.Server.Port = n
	}
	if dir := os.Getenv("SEATMAP_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}

	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = DefaultPort
	}
	return nil
}
