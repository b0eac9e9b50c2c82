package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/cubegen/internal/app"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/settings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the YAML file that was applied, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	appName = "cubegen"

	envTickRate      = "CUBEGEN_TICKRATE"
	envUseKeyRelease = "CUBEGEN_USE_KEY_RELEASE"
	envFreezeTime    = "CUBEGEN_FREEZE_TIME"
	envDecimals      = "CUBEGEN_DECIMALS"
	envShowFooter    = "CUBEGEN_FOOTER"
	envMouse         = "CUBEGEN_MOUSE"
	envDB            = "CUBEGEN_DB"
	envWidth         = "CUBEGEN_WIDTH"
	envHeight        = "CUBEGEN_HEIGHT"
	envTrace         = "CUBEGEN_TRACE"
	envLogFile       = "CUBEGEN_LOG_FILE"
	envConfig        = "CUBEGEN_CONFIG"
)

// fileConfig mirrors the YAML file. Pointers distinguish "absent" from zero.
type fileConfig struct {
	TickRate *float64 `yaml:"tickrate"`
	Timer    struct {
		UseKeyRelease        *bool    `yaml:"use_key_release"`
		FreezeTime           *float64 `yaml:"freeze_time"`
		DisplayDecimalPoints *int     `yaml:"display_decimal_points"`
	} `yaml:"timer"`
	Keybindings map[string][]string `yaml:"keybindings"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values come
// from, in increasing priority: defaults, environment, config file, flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := settings.Default()

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tickRate := fs.Float64("tickrate", envOrFloat(env, envTickRate, defaults.TickRate), "redraws per second")
	useKeyRelease := fs.Bool("use-key-release", envOrBool(env, envUseKeyRelease, defaults.Timer.UseKeyRelease), "start the timer when the held key is released (needs a terminal that reports releases)")
	freezeTime := fs.Float64("freeze-time", envOrFloat(env, envFreezeTime, defaults.Timer.FreezeTime), "seconds the key must be held before a release starts the timer")
	decimals := fs.Int("decimals", envOrInt(env, envDecimals, defaults.Timer.DisplayDecimalPoints), "decimal places shown by the timer")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, false), "enable mouse wheel scrolling of the solve list")
	db := fs.String("db", envOrDefault(env, envDB, defaultDBPath(env)), "path to the solve history database (empty disables history)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configFile := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := Config{
		App: app.Config{
			Settings: settings.Settings{
				TickRate: *tickRate,
				Timer: settings.Timer{
					UseKeyRelease:        *useKeyRelease,
					FreezeTime:           *freezeTime,
					DisplayDecimalPoints: *decimals,
				},
			},
			Bindings:   input.DefaultBindings(),
			DBPath:     *db,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Mouse:      *mouse,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Args: append([]string(nil), args...),
	}

	path, required := *configFile, true
	if path == "" {
		path, required = defaultConfigPath(env), false
	}
	if path != "" {
		file, ok, err := readFile(path, required)
		if err != nil {
			return Config{}, err
		}
		if ok {
			if err := applyFile(&cfg.App, file, set); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
			cfg.File = path
		}
	}

	s := cfg.App.Settings
	cfg.Flags = map[string]string{
		"tickrate":        strconv.FormatFloat(s.TickRate, 'g', -1, 64),
		"use-key-release": strconv.FormatBool(s.Timer.UseKeyRelease),
		"freeze-time":     strconv.FormatFloat(s.Timer.FreezeTime, 'g', -1, 64),
		"decimals":        strconv.Itoa(s.Timer.DisplayDecimalPoints),
		"footer":          strconv.FormatBool(*footer),
		"mouse":           strconv.FormatBool(*mouse),
		"db":              *db,
		"width":           strconv.Itoa(*width),
		"height":          strconv.Itoa(*height),
		"trace":           strconv.FormatBool(*trace),
		"logFile":         *logFile,
		"config":          cfg.File,
	}
	return cfg, nil
}

func readFile(path string, required bool) (fileConfig, bool, error) {
	var file fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return file, false, nil
		}
		return file, false, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, false, fmt.Errorf("parse config yaml: %w", err)
	}
	return file, true, nil
}

// applyFile overlays file values onto cfg, skipping settings whose flag was
// given explicitly.
func applyFile(cfg *app.Config, file fileConfig, set map[string]bool) error {
	if file.TickRate != nil && !set["tickrate"] {
		cfg.Settings.TickRate = *file.TickRate
	}
	if v := file.Timer.UseKeyRelease; v != nil && !set["use-key-release"] {
		cfg.Settings.Timer.UseKeyRelease = *v
	}
	if v := file.Timer.FreezeTime; v != nil && !set["freeze-time"] {
		cfg.Settings.Timer.FreezeTime = *v
	}
	if v := file.Timer.DisplayDecimalPoints; v != nil && !set["decimals"] {
		cfg.Settings.Timer.DisplayDecimalPoints = *v
	}
	for name, keys := range file.Keybindings {
		action, err := input.ParseAction(name)
		if err != nil {
			return fmt.Errorf("keybindings: %w", err)
		}
		cfg.Bindings[action] = append([]string(nil), keys...)
	}
	return nil
}

func defaultConfigPath(env map[string]string) string {
	dir := env["XDG_CONFIG_HOME"]
	if dir == "" {
		home := env["HOME"]
		if home == "" {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, "config.yaml")
}

func defaultDBPath(env map[string]string) string {
	dir := env["XDG_DATA_HOME"]
	if dir == "" {
		home := env["HOME"]
		if home == "" {
			return ""
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, appName, "solves.db")
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

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects out-of-range values.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return cfg.App.Settings.Validate()
}
