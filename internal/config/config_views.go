// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ServerConfig is the configuration view of the report server.
type ServerConfig struct {
	App       App
	Storage   Storage
	Server    Server
	Telemetry Telemetry
	Log       Log
}

// ClientConfig is the configuration view of the terminal client.
type ClientConfig struct {
	App     App
	Storage Storage
	Log     Log
}

// CLIConfig is the configuration view of auditctl. Command flags are owned
// by cobra, so only .env, environment, JSON and defaults are read.
type CLIConfig struct {
	App     App
	Storage Storage
	Log     Log
}

// GetServerConfig builds and validates the server view from os.Args.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ServerView()
}

// GetClientConfig builds and validates the client view from os.Args.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientView()
}

// GetCLIConfig builds and validates the auditctl view. jsonPath, when not
// empty, takes the place of the CONFIG variable.
func GetCLIConfig(jsonPath string) (*CLIConfig, error) {
	b := newConfigBuilder().withDotEnv(".env").withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}
	cfg, err := b.withJSON().withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.CLIView()
}

// ServerView maps the merged config to a validated [ServerConfig].
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	v := &ServerConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Server:    cfg.Server,
		Telemetry: cfg.Telemetry,
		Log:       cfg.Log,
	}
	return v, v.validate()
}

// ClientView maps the merged config to a validated [ClientConfig].
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	v := &ClientConfig{App: cfg.App, Storage: cfg.Storage, Log: cfg.Log}
	return v, v.validate()
}

// CLIView maps the merged config to a validated [CLIConfig].
func (cfg *StructuredConfig) CLIView() (*CLIConfig, error) {
	v := &CLIConfig{App: cfg.App, Storage: cfg.Storage, Log: cfg.Log}
	return v, v.validate()
}

// RequestTimeoutOrDefault returns the configured timeout or the default.
func (s Server) RequestTimeoutOrDefault() time.Duration {
	if s.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return s.RequestTimeout
}
