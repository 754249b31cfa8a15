package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a local API address in format [host]:[port]
//	-r remote PostgREST base URL
//	-k remote API key
//	-d remote PostgreSQL DSN
//	-db local SQLite database path
//	-c/-config json file path with configs
//	-debounce debounce delay (e.g., "1s", "250ms")
//	-max-attempts remote write attempts per sync cycle
//	-retry-base-delay first retry wait (e.g., "500ms")
//	-request-timeout remote request timeout (e.g., "15s")
//	-resync-interval full resync interval (e.g., "5m")
//	-log-file client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("tabsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var localAddress NetAddress
	var remoteURL, apiKey, remoteDSN string
	var localDSN string
	var jsonConfigPath string
	var debounceDelay, retryBaseDelay, requestTimeout, resyncInterval time.Duration
	var maxAttempts int
	var logFile string

	fs.Var(&localAddress, "a", "Local API net address host:port")
	fs.StringVar(&remoteURL, "r", "", "Remote PostgREST base URL")
	fs.StringVar(&apiKey, "k", "", "Remote API key")
	fs.StringVar(&remoteDSN, "d", "", "Remote PostgreSQL DSN")
	fs.StringVar(&localDSN, "db", "", "Local SQLite database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&debounceDelay, "debounce", 0, "Debounce delay (e.g., 1s, 250ms)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Remote write attempts per sync cycle")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "First retry wait (e.g., 500ms)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Full resync interval (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Remote: Remote{
			URL:            remoteURL,
			APIKey:         apiKey,
			DSN:            remoteDSN,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: localDSN},
		},
		Sync: Sync{
			DebounceDelay:  debounceDelay,
			MaxAttempts:    maxAttempts,
			RetryBaseDelay: retryBaseDelay,
		},
		Server: Server{
			HTTPAddress: localAddress.String(),
		},
		Workers:      Workers{ResyncInterval: resyncInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
