// Package config loads the listhashmap command configuration from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Names of the supported hash algorithms
const (
	HashMaphash = "maphash"
	HashCRC32   = "crc32"
	HashXXHash  = "xxhash"
)

// Config - Settings for the listhashmap command
//   - HashAlgorithm is one of maphash, crc32 or xxhash
//   - LogLevel is a zap level name (debug, info, warn, error)
type Config struct {
	HashAlgorithm string `yaml:"hashAlgorithm" toml:"hash_algorithm"`
	LogLevel      string `yaml:"logLevel" toml:"log_level"`
}

// Default - Returns the configuration used when no file is given
func Default() Config {
	return Config{HashAlgorithm: HashMaphash, LogLevel: "info"}
}

// Load - Reads configuration from fileName, choosing the decoder by extension (.yaml, .yml or .toml).
// Fields missing from the file keep their default values. An empty fileName returns Default().
func Load(fileName string) (cfg Config, err error) {
	cfg = Default()
	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		err = fmt.Errorf("reading config file: %w", err)
		return
	}

	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config file extension %q, use .yaml, .yml or .toml", ext)
		return
	}
	if err != nil {
		err = fmt.Errorf("decoding config file %s: %w", fileName, err)
		return
	}

	err = cfg.Validate()

	return
}

// Validate - Checks that every setting has a supported value
func (C Config) Validate() error {
	switch C.HashAlgorithm {
	case HashMaphash, HashCRC32, HashXXHash:
	default:
		return fmt.Errorf("unknown hash algorithm %q, use %s, %s or %s", C.HashAlgorithm, HashMaphash, HashCRC32, HashXXHash)
	}

	if _, err := zapcore.ParseLevel(C.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Level - Returns the configured log level, info if it can not be parsed
func (C Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(C.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
