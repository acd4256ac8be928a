// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the flags shared by the server and the terminal client.
//
// Flags:
//
//	-a report server address in format [host]:[port]
//	-d storage DSN
//	-c/-config json file path with configs
//	-vocabulary fault vocabulary name
//	-pin-hash supervisor PIN bcrypt hash
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per minute per client
//	-cors-origins comma separated browser origins allowed to call the API
//	-otlp-endpoint OTLP/HTTP trace endpoint
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var vocabulary string
	var pinHash string
	var requestTimeout time.Duration
	var rateLimit int
	var corsOrigins string
	var otlpEndpoint string
	var logLevel string

	fs := flag.NewFlagSet("fireaudit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&vocabulary, "vocabulary", "", "Fault vocabulary (standard, extended)")
	fs.StringVar(&pinHash, "pin-hash", "", "Supervisor PIN bcrypt hash")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated browser origins allowed to call the API")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP trace endpoint")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Vocabulary:        vocabulary,
			SupervisorPINHash: pinHash,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			CORSOrigins:    splitList(corsOrigins),
		},
		Telemetry:    Telemetry{OTLPEndpoint: otlpEndpoint},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping blank elements.
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; otherwise it must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
