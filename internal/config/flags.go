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

// parseFlags parses the relay server flags from args (without the program
// name).
//
// Flags:
//
//	-a relay address in format [host]:[port]
//	-metrics-address metrics listener address in format [host]:[port]
//	-shutdown-timeout graceful shutdown bound (e.g. "10s")
//	-dispatch-url repository-dispatch endpoint URL
//	-dispatch-timeout dispatch request bound (e.g. "30s"), 0 waits indefinitely
//	-repo-pat dispatch bearer credential
//	-log-level minimal log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var shutdownTimeout time.Duration
	var dispatchURL string
	var dispatchTimeout time.Duration
	var repoPAT string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("devopsmind-relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener address host:port")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&dispatchURL, "dispatch-url", "", "Repository dispatch endpoint URL")
	fs.DurationVar(&dispatchTimeout, "dispatch-timeout", 0, "Dispatch request timeout (e.g., 30s)")
	fs.StringVar(&repoPAT, "repo-pat", "", "Dispatch bearer token")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			MetricsAddress:  metricsAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Dispatch: Dispatch{
			URL:            dispatchURL,
			RequestTimeout: dispatchTimeout,
		},
		RepoPAT:      repoPAT,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
