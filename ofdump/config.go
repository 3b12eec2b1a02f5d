package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ofdump.toml keys.
type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Ports    []int  `toml:"ports"`
	Validate bool   `toml:"validate"`
	Dump     bool   `toml:"dump"`
	Dissect  bool   `toml:"dissect"`
}

type config struct {
	LogLevel string
	// TCP ports whose payload is taken as openflow in captures.
	Ports    []uint16
	Validate bool
	Dump     bool
	Dissect  bool
}

func defaultConfig() config {
	return config{
		LogLevel: "WARNING",
		Ports:    []uint16{6653, 6633},
		Validate: true,
	}
}

// loadConfig overlays the keys present in the file on the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errors.Wrap(err, "load ofdump config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.Errorf("load ofdump config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToUpper(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("ports") {
		cfg.Ports = nil
		for _, p := range raw.Ports {
			if p <= 0 || p > 0xffff {
				return config{}, errors.Errorf("load ofdump config: port %d out of range", p)
			}
			cfg.Ports = append(cfg.Ports, uint16(p))
		}
	}
	if meta.IsDefined("validate") {
		cfg.Validate = raw.Validate
	}
	if meta.IsDefined("dump") {
		cfg.Dump = raw.Dump
	}
	if meta.IsDefined("dissect") {
		cfg.Dissect = raw.Dissect
	}
	return cfg, nil
}

func (obj config) watches(port uint16) bool {
	for _, p := range obj.Ports {
		if p == port {
			return true
		}
	}
	return false
}
