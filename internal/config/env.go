package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment setting.
const EnvPrefix = "PAIRTAG_"

// LoadEnv applies settings from the dotenv file at path and then from the
// process environment, which wins over the file. A missing file is not an
// error; an empty path skips the file.
func LoadEnv(cfg *Config, path string) error {
	vars := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, fs.ErrNotExist):
			// optional
		default:
			return fmt.Errorf("read env file %s: %w", path, err)
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return ApplyEnv(cfg, vars)
}

// ApplyEnv copies recognized PAIRTAG_* keys from vars into cfg. Unknown
// keys with the prefix are rejected so typos do not go unnoticed.
func ApplyEnv(cfg *Config, vars map[string]string) error {
	for k, v := range vars {
		name, ok := strings.CutPrefix(k, EnvPrefix)
		if !ok {
			continue
		}
		if err := applyEnvVar(cfg, name, v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}

func applyEnvVar(cfg *Config, name, v string) error {
	var err error
	switch name {
	case "ALPHABET":
		cfg.Alphabet, err = ParseAlphabet(v)
	case "LENGTH":
		cfg.TagLength, err = strconv.Atoi(strings.TrimSpace(v))
	case "PRIMARY":
		cfg.PrimaryMarker = v
	case "SECONDARY":
		cfg.SecondaryMarker = v
	case "INSTRUMENT":
		cfg.Instrument = v
	case "HEADER_EVERY":
		cfg.HeaderInterval, err = strconv.Atoi(strings.TrimSpace(v))
	case "WORKERS":
		cfg.Workers, err = strconv.Atoi(strings.TrimSpace(v))
	case "SORT":
		cfg.SortPairs, err = strconv.ParseBool(v)
	case "FORCE":
		cfg.Force, err = strconv.ParseBool(v)
	case "CLEANUP":
		cfg.Cleanup, err = strconv.ParseBool(v)
	case "COLOR":
		cfg.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	case "LOG":
		cfg.LogFile = v
	case "BASE_PATH":
		cfg.BasePath = v
	default:
		return errors.New("unknown setting")
	}
	return err
}
