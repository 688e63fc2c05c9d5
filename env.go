package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "CONSOLETRIS_"

// loadEnvFile exports the variables of a .env file without overriding what
// is already set in the environment. A missing file is ignored.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// applyEnv overrides config values with CONSOLETRIS_* variables. Values that
// do not parse are skipped and reported by name.
func applyEnv(config Config) (Config, []string) {
	var invalid []string
	if value, ok := lookupEnv("THEME"); ok {
		config.Theme = value
	}
	if value, ok := lookupEnv("MUSIC_PATH"); ok {
		config.MusicPath = value
	}
	bools := map[string]*bool{
		"SOUND":  &config.Sound,
		"MUSIC":  &config.Music,
		"SHADOW": &config.Shadow,
	}
	for name, target := range bools {
		value, ok := lookupEnv(name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			invalid = append(invalid, envPrefix+name)
			continue
		}
		*target = parsed
	}
	ints := map[string]*int{
		"VOLUME": &config.Volume,
		"FPS":    &config.FPS,
	}
	for name, target := range ints {
		value, ok := lookupEnv(name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			invalid = append(invalid, envPrefix+name)
			continue
		}
		*target = parsed
	}
	return config.normalize(), invalid
}

func lookupEnv(name string) (string, bool) {
	value, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
