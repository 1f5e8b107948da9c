package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the daemon's command-line flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d SQLite DSN
//	-c/-config json file path with configs
//	-kdf-iterations PBKDF2 iteration count
//	-key-wait-timeout how long requests wait for an unlock (e.g. "60s")
//	-auto-lock idle period before the vault locks itself, 0 disables
//	-request-timeout request timeout (e.g. "90s")
//	-prompt-command command launched to ask for the master password
//	-fill-mode "agent" or "clipboard"
//	-agent-address fill agent base URL
//	-token-sign-key caller token signing key
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vaultd", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath, promptCommand string
	var fillMode, agentAddress, tokenSignKey, logLevel string
	var kdfIterations int
	var keyWaitTimeout, autoLockAfter, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.DurationVar(&keyWaitTimeout, "key-wait-timeout", 0, "Unlock wait timeout (e.g., 60s)")
	fs.DurationVar(&autoLockAfter, "auto-lock", 0, "Idle period before auto-lock (e.g., 15m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 90s)")
	fs.StringVar(&promptCommand, "prompt-command", "", "Command launched to ask for the master password")
	fs.StringVar(&fillMode, "fill-mode", "", "Autofill surface: agent or clipboard")
	fs.StringVar(&agentAddress, "agent-address", "", "Fill agent base URL")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Caller token signing key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			TokenSignKey: tokenSignKey,
		},
		Vault: Vault{
			KDFIterations:  kdfIterations,
			KeyWaitTimeout: keyWaitTimeout,
			AutoLockAfter:  autoLockAfter,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Prompt: Prompt{Command: promptCommand},
		Fill: Fill{
			Mode:         fillMode,
			AgentAddress: agentAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
