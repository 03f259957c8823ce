package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinh/cref/internal/branding"
	"github.com/shinh/cref/internal/manifest"
	"github.com/shinh/cref/internal/typereg"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyDataDir        = "data_dir"
	KeyTargets        = "targets"
	KeyLibc           = "libc"
	KeyAllowConflicts = "allow_conflicts"
	KeyPointerType    = "pointer_type"
	KeyVerbose        = "verbose"
)

// Keys lists the recognised keys in display order.
var Keys = []string{KeyDataDir, KeyTargets, KeyLibc, KeyAllowConflicts, KeyPointerType, KeyVerbose}

// Dir returns the path to the config directory. CREF_HOME overrides the
// default of ~/.cref/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyDataDir, ".")
	viper.SetDefault(KeyPointerType, typereg.DefaultPointerType)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Known reports whether key is a recognised configuration key.
func Known(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !Known(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the config file against the config schema. A missing file
// is valid.
func Validate() (*manifest.ValidationResult, error) {
	if _, err := os.Stat(FilePath()); os.IsNotExist(err) {
		return &manifest.ValidationResult{Valid: true}, nil
	}
	return manifest.ValidateFile(manifest.SchemaConfig, FilePath())
}

// Settings is the resolved configuration used by report commands.
type Settings struct {
	DataDir        string
	Targets        []string
	Libc           string
	AllowConflicts []string
	PointerType    string
	Verbose        bool
}

// Current returns the settings from the loaded config and environment.
func Current() Settings {
	return Settings{
		DataDir:        viper.GetString(KeyDataDir),
		Targets:        splitList(viper.GetString(KeyTargets)),
		Libc:           viper.GetString(KeyLibc),
		AllowConflicts: splitList(viper.GetString(KeyAllowConflicts)),
		PointerType:    viper.GetString(KeyPointerType),
		Verbose:        viper.GetBool(KeyVerbose),
	}
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
