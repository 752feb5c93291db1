package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/tab-sidebar/internal/app"
	"github.com/atomicstack/tab-sidebar/internal/config"
	"github.com/atomicstack/tab-sidebar/internal/logging"
	"github.com/atomicstack/tab-sidebar/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func startupTracePayload(cfg config.Config) map[string]interface{} {
	return map[string]interface{}{
		"args":  cfg.Args,
		"flags": cfg.Flags,
		"tty":   collectTTYDetails(),
	}
}

func collectTTYDetails() map[string]interface{} {
	details := make(map[string]interface{})
	for name, file := range map[string]*os.File{
		"stdin":  os.Stdin,
		"stdout": os.Stdout,
		"stderr": os.Stderr,
	} {
		fd := int(file.Fd())
		entry := map[string]interface{}{
			"isTerminal": term.IsTerminal(fd),
		}
		if term.IsTerminal(fd) {
			if width, height, err := term.GetSize(fd); err == nil {
				entry["width"] = width
				entry["height"] = height
			}
		}
		details[name] = entry
	}
	return details
}
