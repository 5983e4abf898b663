// Package config loads the flat key=value configuration file. Every key is
// optional; a missing file means pure defaults, since the service keeps no
// state and needs no install step.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	configDirName  = ".csvdeck"
	configFileName = "csvdeck.conf"
)

type Config struct {
	ServerAddress string
	ServerPort    int

	MaxUploadMB      int
	DefaultPageLimit int
	MaxPageLimit     int
	Debug            bool
}

func defaults() *Config {
	return &Config{
		ServerAddress:    "0.0.0.0",
		ServerPort:       8000,
		MaxUploadMB:      32,
		DefaultPageLimit: 100,
		MaxPageLimit:     1000,
	}
}

// NewConfig reads ~/.csvdeck/csvdeck.conf, overlaying its values on the
// defaults. A missing file is not an error.
func NewConfig() (*Config, error) {
	config := defaults()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDirName, configFileName)
	file, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := config.load(file); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) load(file *os.File) error {
	scanner := bufio.NewScanner(file)
	var err error

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "server_address":
			c.ServerAddress = value
		case "server_port":
			c.ServerPort, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid server port value: %w", err)
			}
		case "max_upload_mb":
			c.MaxUploadMB, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid max upload value: %w", err)
			}
		case "default_page_limit":
			c.DefaultPageLimit, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid default page limit value: %w", err)
			}
		case "max_page_limit":
			c.MaxPageLimit, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid max page limit value: %w", err)
			}
		case "debug":
			c.Debug = value == "true"
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}
