package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const configFile = "config.yaml"

// Validator is implemented by every loadable configuration type.
type Validator interface {
	Validate() error
}

// Load builds a configuration of type T by layering, lowest priority first:
// config.yaml, the .env file, and prefixed system environment variables.
// The prefix is derived from serviceName, e.g. "server" -> SERVER_.
func Load[T Validator](serviceName string) (T, error) {
	var cfg T
	k := koanf.New(".")
	envPrefix := strings.ToUpper(serviceName) + "_"

	// SERVER_DATABASE_URL becomes the koanf path database.url.
	keyFromEnv := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	loadDotEnv(k, keyFromEnv)

	// System environment variables take the highest priority.
	if err := k.Load(env.Provider(envPrefix, ".", keyFromEnv), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadDotEnv(k *koanf.Koanf, keyFromEnv func(string) string) {
	pairs, err := godotenv.Read(".env")
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error reading .env file: %v", err)
		}
		return
	}
	values := make(map[string]any, len(pairs))
	for key, value := range pairs {
		values[keyFromEnv(key)] = value
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		log.Printf("WARN: error loading .env config: %v", err)
	}
}
