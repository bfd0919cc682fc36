package main

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	sender "github.com/itzg/udp-line-sender"
)

// fileConfig mirrors sender.Config for the TOML config file.
type fileConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	MaxPacketSize *int   `toml:"max_packet_size"`
}

// loadConfig layers the config file and environment variables under any
// explicitly set flags. Values from flags the user set (tracked in changed)
// always win; environment variables beat the file; the file beats defaults.
func loadConfig(cfg *sender.Config, path string, changed map[string]bool) error {
	if path != "" {
		fc, err := loadFileConfig(path)
		if err != nil {
			return err
		}
		if fc.Host != "" && !changed["host"] {
			cfg.Host = fc.Host
		}
		if fc.Port != 0 && !changed["port"] {
			cfg.Port = fc.Port
		}
		if fc.MaxPacketSize != nil && !changed["max-packet-size"] {
			cfg.MaxPacketSize = *fc.MaxPacketSize
		}
	}

	envCfg := *cfg
	if err := sender.ApplyEnv(&envCfg); err != nil {
		return err
	}
	if !changed["host"] {
		cfg.Host = envCfg.Host
	}
	if !changed["port"] {
		cfg.Port = envCfg.Port
	}
	return nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("load config: %w", err)
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}
