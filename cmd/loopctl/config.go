package main

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type buildConfig struct {
	Skipcount    int
	ForwardAddrs []net.HardwareAddr
	Receipt      uint16
	Data         []byte
	Filler       byte
	Capacity     int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{}
}

type fileConfig struct {
	Skipcount    int      `toml:"skipcount"`
	ForwardAddrs []string `toml:"forward_addrs"`
	Receipt      int      `toml:"receipt"`
	Data         string   `toml:"data"`
	DataHex      string   `toml:"data_hex"`
	Filler       string   `toml:"filler"`
	Capacity     int      `toml:"capacity"`
}

func loadBuildConfig(path string) (buildConfig, error) {
	cfg := defaultBuildConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return buildConfig{}, fmt.Errorf("load build config: %w", err)
	}

	if meta.IsDefined("skipcount") {
		if raw.Skipcount < 0 || raw.Skipcount > 0xffff {
			return buildConfig{}, fmt.Errorf("skipcount out of range: %d", raw.Skipcount)
		}
		cfg.Skipcount = raw.Skipcount
	}

	if meta.IsDefined("forward_addrs") {
		addrs := make([]net.HardwareAddr, 0, len(raw.ForwardAddrs))
		for _, s := range raw.ForwardAddrs {
			addr, err := net.ParseMAC(strings.TrimSpace(s))
			if err != nil {
				return buildConfig{}, fmt.Errorf("parse forward address %q: %w", s, err)
			}
			addrs = append(addrs, addr)
		}
		cfg.ForwardAddrs = addrs
	}

	if meta.IsDefined("receipt") {
		if raw.Receipt < 0 || raw.Receipt > 0xffff {
			return buildConfig{}, fmt.Errorf("receipt out of range: %d", raw.Receipt)
		}
		cfg.Receipt = uint16(raw.Receipt)
	}

	if meta.IsDefined("data") {
		cfg.Data = []byte(raw.Data)
	}

	if meta.IsDefined("data_hex") {
		b, err := hex.DecodeString(strings.TrimSpace(raw.DataHex))
		if err != nil {
			return buildConfig{}, fmt.Errorf("parse data_hex: %w", err)
		}
		cfg.Data = b
	}

	if meta.IsDefined("filler") {
		b, err := parseFillerByte(raw.Filler)
		if err != nil {
			return buildConfig{}, err
		}
		cfg.Filler = b
	}

	if meta.IsDefined("capacity") {
		if raw.Capacity < 0 {
			return buildConfig{}, fmt.Errorf("capacity must not be negative: %d", raw.Capacity)
		}
		cfg.Capacity = raw.Capacity
	}

	return cfg, nil
}

func parseFillerByte(raw string) (byte, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	b, err := strconv.ParseUint(v, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("parse filler %q: %w", raw, err)
	}
	return byte(b), nil
}
