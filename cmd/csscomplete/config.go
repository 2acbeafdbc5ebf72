package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/csscomplete"
	"github.com/yacobolo/csscomplete/internal/log"
)

const (
	defaultConfigPath = ".csscomplete.yaml"
	envPrefix         = "CSSCOMPLETE_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	if err := loadConfigFromPath(configPathFlag(cmd)); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set
	// or whose key is still missing)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// configPathFlag resolves the config file path from the --config flag
func configPathFlag(cmd *cobra.Command) string {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	return configPath
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	return loadInto(k, configPath)
}

func loadInto(ko *koanf.Koanf, configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := ko.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCOMPLETE_* prefix)
	if err := ko.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	CSSCOMPLETE_REFRESH_TAILWIND_URL -> refresh.tailwind-url
//	CSSCOMPLETE_CUSTOM_CLASSES       -> custom-classes
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "refresh_"); ok {
		return "refresh." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// settings is the resolved server configuration
type settings struct {
	Framework       csscomplete.Framework
	Debounce        time.Duration
	LogFile         string
	RefreshInterval time.Duration
	RefreshTimeout  time.Duration
	TailwindURL     string
	BootstrapURL    string
}

// buildSettings constructs the server settings from koanf state.
func buildSettings() (settings, error) {
	fw, err := csscomplete.ParseFramework(getStringWithFallback("framework", "framework", string(csscomplete.Tailwind)))
	if err != nil {
		return settings{}, err
	}

	return settings{
		Framework:       fw,
		Debounce:        getDurationWithFallback("debounce", csscomplete.DefaultDebounce),
		LogFile:         getStringWithFallback("log-file", "log-file", ""),
		RefreshInterval: getDurationWithFallback("refresh.interval", csscomplete.DefaultRefreshInterval),
		RefreshTimeout:  getDurationWithFallback("refresh.timeout", csscomplete.DefaultFetchTimeout),
		TailwindURL:     getStringWithFallback("tailwind-url", "refresh.tailwind-url", csscomplete.DefaultTailwindURL),
		BootstrapURL:    getStringWithFallback("bootstrap-url", "refresh.bootstrap-url", csscomplete.DefaultBootstrapURL),
	}, nil
}

// newRefresher builds the documentation refresher for the given settings
func newRefresher(s settings, catalog *csscomplete.Catalog) *csscomplete.Refresher {
	sources := csscomplete.DefaultSources()
	tw := sources[csscomplete.Tailwind]
	tw.URL = s.TailwindURL
	sources[csscomplete.Tailwind] = tw
	bs := sources[csscomplete.Bootstrap]
	bs.URL = s.BootstrapURL
	sources[csscomplete.Bootstrap] = bs

	return csscomplete.NewRefresher(csscomplete.RefreshOptions{
		Catalog:  catalog,
		Sources:  sources,
		Interval: s.RefreshInterval,
		Timeout:  s.RefreshTimeout,
	})
}

// configCustomClasses re-reads custom-classes and custom-stylesheets from
// the config file and environment on every call.
type configCustomClasses struct {
	path string
}

// CustomClasses implements csscomplete.CustomClassSource.
func (c configCustomClasses) CustomClasses() []string {
	ko := koanf.New(".")
	if err := loadInto(ko, c.path); err != nil {
		log.Config("Reading custom classes: %v", err)
		return nil
	}

	classes := getStrings(ko, "custom-classes")
	if patterns := getStrings(ko, "custom-stylesheets"); len(patterns) > 0 {
		scanned, stats, err := csscomplete.ScanStylesheets(patterns)
		if err != nil {
			log.Config("Scanning custom stylesheets: %v", err)
		} else {
			log.Config("Scanned %d stylesheets (%d ignored), %d classes",
				stats.FilesScanned, stats.FilesSkipped, len(scanned))
			classes = append(classes, scanned...)
		}
	}
	return classes
}

// getStrings reads a list key. Values from the environment arrive as a
// single string and are split on commas and whitespace.
func getStrings(ko *koanf.Koanf, key string) []string {
	if !ko.Exists(key) {
		return nil
	}
	if s, ok := ko.Get(key).(string); ok {
		return strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
	}
	return ko.Strings(key)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getDurationWithFallback reads a duration ("300ms", "1h"); missing or
// non-positive values return the default.
func getDurationWithFallback(key string, defaultVal time.Duration) time.Duration {
	if !k.Exists(key) {
		return defaultVal
	}
	if d := k.Duration(key); d > 0 {
		return d
	}
	return defaultVal
}
