package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tab-sidebar/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envListen       = "TAB_SIDEBAR_LISTEN"
	envStateFile    = "TAB_SIDEBAR_STATE_FILE"
	envStartupDelay = "TAB_SIDEBAR_STARTUP_DELAY"
	envResync       = "TAB_SIDEBAR_RESYNC"
	envWidth        = "TAB_SIDEBAR_WIDTH"
	envHeight       = "TAB_SIDEBAR_HEIGHT"
	envShowFooter   = "TAB_SIDEBAR_FOOTER"
	envVerbose      = "TAB_SIDEBAR_VERBOSE"
	envTrace        = "TAB_SIDEBAR_TRACE"
	envLogFile      = "TAB_SIDEBAR_LOG_FILE"
)

const (
	defaultListen       = "127.0.0.1:8741"
	defaultStartupDelay = 250 * time.Millisecond
	defaultResync       = 15 * time.Second
)

// DefaultStatePath resolves the XDG-style default state file location.
func DefaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tab-sidebar-state.yaml"
	}
	return filepath.Join(home, ".local", "state", "tab-sidebar", "state.yaml")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tab-sidebar", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	listen := fs.String("listen", envOrDefault(env, envListen, defaultListen), "address the extension bridge listens on")
	stateFile := fs.String("state-file", envOrDefault(env, envStateFile, DefaultStatePath()), "path to the persisted titles/collapse state file")
	startupDelay := fs.Duration("startup-delay", envOrDuration(env, envStartupDelay, defaultStartupDelay), "delay before the first render, giving the extension time to connect")
	resync := fs.Duration("resync", envOrDuration(env, envResync, defaultResync), "interval between full resyncs with the host (0 disables)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show success messages for host actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *startupDelay < 0 {
		return Config{}, fmt.Errorf("startup-delay must be >= 0 (got %s)", *startupDelay)
	}

	cfg := Config{
		App: app.Config{
			ListenAddr:   *listen,
			StateFile:    *stateFile,
			StartupDelay: *startupDelay,
			Resync:       *resync,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"listen":       *listen,
			"stateFile":    *stateFile,
			"startupDelay": startupDelay.String(),
			"resync":       resync.String(),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ListenAddr) == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if strings.TrimSpace(cfg.App.StateFile) == "" {
		return fmt.Errorf("state file path must not be empty")
	}
	return nil
}
