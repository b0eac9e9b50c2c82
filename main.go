package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/atomicstack/cubegen/internal/app"
	"github.com/atomicstack/cubegen/internal/config"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/logging"
	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/settings"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	err := app.Run(ctx, runtimeCfg.App)
	stop()
	events.App.Stop(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"timer":    timerDetails(cfg.App.Settings),
		"bindings": bindingDetails(cfg.App.Bindings),
		"history":  historyDetails(cfg.App.DBPath),
		"terminal": collectTerminalDetails(cfg.App),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

func timerDetails(s settings.Settings) map[string]interface{} {
	return map[string]interface{}{
		"tickRate":    s.TickRate,
		"holdToStart": s.Timer.UseKeyRelease,
		"freeze":      s.Timer.Freeze().String(),
		"decimals":    s.Timer.DisplayDecimalPoints,
	}
}

// bindingDetails lists the configured key strings per action name, falling
// back to the built-in defaults when no bindings were supplied.
func bindingDetails(raw input.RawBindings) map[string][]string {
	if raw == nil {
		raw = input.DefaultBindings()
	}
	out := make(map[string][]string, len(raw))
	for action, keys := range raw {
		out[action.String()] = append([]string(nil), keys...)
	}
	return out
}

func historyDetails(dbPath string) string {
	if dbPath == "" {
		return "disabled"
	}
	return dbPath
}

// terminalDetails records what the timer will be drawing on. Interactive
// needs both stdin and stdout to be terminals.
type terminalDetails struct {
	Interactive  bool                `json:"interactive"`
	KeyReleases  bool                `json:"key_releases"`
	Mouse        bool                `json:"mouse"`
	Width        int                 `json:"width,omitempty"`
	Height       int                 `json:"height,omitempty"`
	SizeSource   string              `json:"size_source,omitempty"`
	SizeOverride bool                `json:"size_override,omitempty"`
	Descriptors  []descriptorDetails `json:"descriptors"`
}

type descriptorDetails struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// collectTerminalDetails checks the standard descriptors and resolves the
// size the first frame will use: the configured override when both
// dimensions are set, else the first descriptor that reports one.
func collectTerminalDetails(cfg app.Config) terminalDetails {
	details := terminalDetails{
		KeyReleases: cfg.Settings.Timer.UseKeyRelease,
		Mouse:       cfg.Mouse,
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		details.Width, details.Height = cfg.Width, cfg.Height
		details.SizeSource = "config"
		details.SizeOverride = true
	}
	files := []struct {
		name string
		f    *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	terminals := map[string]bool{}
	for _, file := range files {
		entry := descriptorDetails{Name: file.name}
		fd := int(file.f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			terminals[file.name] = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				entry.Error = err.Error()
			case details.SizeSource == "":
				details.Width, details.Height = width, height
				details.SizeSource = file.name
			}
		}
		details.Descriptors = append(details.Descriptors, entry)
	}
	details.Interactive = terminals["stdin"] && terminals["stdout"]
	return details
}
